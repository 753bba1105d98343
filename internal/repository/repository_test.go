package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"familydirectory/internal/database"
	"familydirectory/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "directory.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(context.Background(), "../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func intPtrOf(n int) *int { return &n }

func TestMemberRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	dob := time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC)
	member := &models.FamilyMember{
		UserID:        "acct-1",
		Name:          "Sunita",
		Relationship:  models.RelationshipChild,
		DateOfBirth:   &dob,
		Gender:        models.GenderFemale,
		MaritalStatus: models.MaritalStatusMarried,
		SpouseFamily:  "Shah",
		SpouseCity:    "Indore",
		MarriageYear:  intPtrOf(2015),
	}
	if err := repo.Create(ctx, member); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if member.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	got, err := repo.GetByID(ctx, member.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if got.Name != "Sunita" || got.Relationship != models.RelationshipChild {
		t.Errorf("unexpected member: %+v", got)
	}
	if got.Age != nil {
		t.Errorf("Age = %v, want nil", *got.Age)
	}
	if got.DateOfBirth == nil || got.DateOfBirth.Year() != 1990 {
		t.Errorf("DateOfBirth = %v, want 1990", got.DateOfBirth)
	}
	if got.MarriageYear == nil || *got.MarriageYear != 2015 {
		t.Errorf("MarriageYear = %v, want 2015", got.MarriageYear)
	}

	got.Profession = "Doctor"
	got.Age = intPtrOf(34)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, _ := repo.GetByID(ctx, member.ID)
	if updated.Profession != "Doctor" || updated.Age == nil || *updated.Age != 34 {
		t.Errorf("update not persisted: %+v", updated)
	}

	list, err := repo.ListByUser(ctx, "acct-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByUser = %d members, %v", len(list), err)
	}

	if err := repo.Delete(ctx, member.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	missing, err := repo.GetByID(ctx, member.ID)
	if err != nil || missing != nil {
		t.Errorf("GetByID after delete = %v, %v; want nil, nil", missing, err)
	}
}

func TestListMemberRowsJoinsProfiles(t *testing.T) {
	db := newTestDB(t)
	members := NewMemberRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	if err := profiles.UpsertProfile(ctx, &models.Profile{ID: "acct-1", FullName: "Ramesh Jain", City: "Bhopal", CommunityName: "Jain Samaj"}); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	for _, m := range []*models.FamilyMember{
		{UserID: "acct-1", Name: "Ramesh", Relationship: models.RelationshipParent},
		{UserID: "acct-2", Name: "Kavita", Relationship: models.RelationshipSpouse},
	} {
		if err := members.Create(ctx, m); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rows, err := members.ListMemberRows(ctx)
	if err != nil {
		t.Fatalf("ListMemberRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	byOwner := map[string]models.MemberRow{}
	for _, r := range rows {
		byOwner[r.Member.UserID] = r
	}
	if r := byOwner["acct-1"]; r.DisplayName != "Ramesh Jain" || r.ResidentCity != "Bhopal" || r.CommunityName != "Jain Samaj" {
		t.Errorf("acct-1 row = %+v", r)
	}
	// acct-2 only has the blank profile created alongside its first member
	if r := byOwner["acct-2"]; r.DisplayName != "" || r.ResidentCity != "" {
		t.Errorf("acct-2 row = %+v", r)
	}

	own, err := members.ListMemberRowsForUser(ctx, "acct-1")
	if err != nil {
		t.Fatalf("ListMemberRowsForUser failed: %v", err)
	}
	if len(own) != 1 || own[0].Member.Name != "Ramesh" || own[0].DisplayName != "Ramesh Jain" {
		t.Errorf("ListMemberRowsForUser(acct-1) = %+v", own)
	}
}

func TestProfileRepositoryUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	missing, err := repo.GetProfile(ctx, "acct-9")
	if err != nil || missing != nil {
		t.Fatalf("GetProfile(missing) = %v, %v", missing, err)
	}

	p := &models.Profile{ID: "acct-9", FullName: "Mehta", City: "Indore"}
	if err := repo.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	p.City = "Ujjain"
	if err := repo.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := repo.GetProfile(ctx, "acct-9")
	if err != nil || got == nil {
		t.Fatalf("GetProfile = %v, %v", got, err)
	}
	if got.City != "Ujjain" || got.FullName != "Mehta" || got.IsAdmin {
		t.Errorf("unexpected profile: %+v", got)
	}
}

func TestScanNormalizesStoredSpellings(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := db.ExecContext(ctx, "INSERT INTO profiles (id, created_at, updated_at) VALUES (?, ?, ?)", "acct-1", now, now); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	insert := `
		INSERT INTO family_members (id, user_id, name, relationship, age, gender, marital_status, spouse_family, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	seed := []struct {
		id, relationship, gender, marital string
	}{
		{"m1", "Child", "Female", "Married"},
		{"m2", "uncle-aunt", " MALE ", "unmarried"},
		{"m3", "Neighbour", "female", "Prefer Not To Say"},
	}
	for _, s := range seed {
		if _, err := db.ExecContext(ctx, insert, s.id, "acct-1", "Member "+s.id, s.relationship, 25, s.gender, s.marital, "Sharma", now, now); err != nil {
			t.Fatalf("failed to seed member %s: %v", s.id, err)
		}
	}

	tests := []struct {
		id           string
		relationship models.Relationship
		gender       models.Gender
		marital      models.MaritalStatus
	}{
		{"m1", models.RelationshipChild, models.GenderFemale, models.MaritalStatusMarried},
		{"m2", models.RelationshipUncleAunt, models.GenderMale, models.MaritalStatusSingle},
		{"m3", models.Relationship("Neighbour"), models.GenderFemale, models.MaritalStatus("Prefer Not To Say")},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id)
			if err != nil || got == nil {
				t.Fatalf("GetByID = %v, %v", got, err)
			}
			if got.Relationship != tt.relationship || got.Gender != tt.gender || got.MaritalStatus != tt.marital {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)",
					got.Relationship, got.Gender, got.MaritalStatus, tt.relationship, tt.gender, tt.marital)
			}
		})
	}

	rows, err := repo.ListMemberRows(ctx)
	if err != nil {
		t.Fatalf("ListMemberRows failed: %v", err)
	}
	for _, r := range rows {
		if r.Member.ID == "m1" && r.Member.Relationship != models.RelationshipChild {
			t.Errorf("ListMemberRows relationship = %q, want child", r.Member.Relationship)
		}
	}
}
