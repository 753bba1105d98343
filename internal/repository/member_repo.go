package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"familydirectory/internal/database"
	"familydirectory/internal/models"

	"github.com/google/uuid"
)

const memberColumns = `
	m.id, m.user_id, m.name, m.relationship, m.age, m.date_of_birth, m.gender,
	m.profession, m.school, m.class, m.marital_status, m.spouse_family,
	m.spouse_city, m.marriage_year, m.created_at, m.updated_at`

// MemberRepository handles database operations for family members
type MemberRepository struct {
	db *database.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberRowSelect = `
	SELECT ` + memberColumns + `,
		COALESCE(p.full_name, ''), COALESCE(p.city, ''), COALESCE(p.community_name, '')
	FROM family_members m
	LEFT JOIN profiles p ON p.id = m.user_id
`

// ListMemberRows returns every member joined with its owner's profile,
// grouped by owner. Members whose owner has no profile carry blank profile fields.
func (r *MemberRepository) ListMemberRows(ctx context.Context) ([]models.MemberRow, error) {
	return r.queryMemberRows(ctx, memberRowSelect+" ORDER BY m.user_id, m.created_at, m.id")
}

// ListMemberRowsForUser returns the joined rows of a single account
func (r *MemberRepository) ListMemberRowsForUser(ctx context.Context, userID string) ([]models.MemberRow, error) {
	return r.queryMemberRows(ctx, memberRowSelect+" WHERE m.user_id = ? ORDER BY m.created_at, m.id", userID)
}

func (r *MemberRepository) queryMemberRows(ctx context.Context, query string, args ...any) ([]models.MemberRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var result []models.MemberRow
	for rows.Next() {
		var row models.MemberRow
		if err := scanMember(rows, &row.Member, &row.DisplayName, &row.ResidentCity, &row.CommunityName); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return result, nil
}

// ListByUser returns the members owned by one account in insertion order
func (r *MemberRepository) ListByUser(ctx context.Context, userID string) ([]models.FamilyMember, error) {
	query := "SELECT " + memberColumns + " FROM family_members m WHERE m.user_id = ? ORDER BY m.created_at, m.id"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members for user: %w", err)
	}
	defer rows.Close()

	members := []models.FamilyMember{}
	for rows.Next() {
		var m models.FamilyMember
		if err := scanMember(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// GetByID retrieves a member by ID, or nil if it does not exist
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.FamilyMember, error) {
	query := "SELECT " + memberColumns + " FROM family_members m WHERE m.id = ?"
	member := &models.FamilyMember{}
	err := scanMember(r.db.QueryRowContext(ctx, query, id), member)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// Create stores a new member, assigning its ID and timestamps. A blank
// profile is created for owners that have not saved one yet.
func (r *MemberRepository) Create(ctx context.Context, member *models.FamilyMember) error {
	now := time.Now().UTC()
	member.ID = uuid.NewString()
	member.CreatedAt = now
	member.UpdatedAt = now

	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		if err := ensureProfile(ctx, tx, member.UserID, now); err != nil {
			return err
		}

		query := `
			INSERT INTO family_members (
				id, user_id, name, relationship, age, date_of_birth, gender,
				profession, school, class, marital_status, spouse_family,
				spouse_city, marriage_year, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			member.ID, member.UserID, member.Name, string(member.Relationship),
			nullInt(member.Age), nullTime(member.DateOfBirth), string(member.Gender),
			member.Profession, member.School, member.Class, string(member.MaritalStatus),
			member.SpouseFamily, member.SpouseCity, nullInt(member.MarriageYear),
			member.CreatedAt, member.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return nil
	})
}

// Update overwrites a member's editable fields
func (r *MemberRepository) Update(ctx context.Context, member *models.FamilyMember) error {
	member.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE family_members SET
			name = ?, relationship = ?, age = ?, date_of_birth = ?, gender = ?,
			profession = ?, school = ?, class = ?, marital_status = ?,
			spouse_family = ?, spouse_city = ?, marriage_year = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		member.Name, string(member.Relationship), nullInt(member.Age), nullTime(member.DateOfBirth),
		string(member.Gender), member.Profession, member.School, member.Class,
		string(member.MaritalStatus), member.SpouseFamily, member.SpouseCity,
		nullInt(member.MarriageYear), member.UpdatedAt, member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// Delete removes a member
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM family_members WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// RestoreMember writes a member exactly as exported, keeping its ID and
// timestamps. An existing member with the same ID is overwritten.
func RestoreMember(ctx context.Context, q database.DBTX, m *models.FamilyMember) error {
	cols := []string{
		"user_id", "name", "relationship", "age", "date_of_birth", "gender",
		"profession", "school", "class", "marital_status", "spouse_family",
		"spouse_city", "marriage_year", "created_at", "updated_at",
	}
	query := `
		INSERT INTO family_members (
			id, user_id, name, relationship, age, date_of_birth, gender,
			profession, school, class, marital_status, spouse_family,
			spouse_city, marriage_year, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	` + q.GetDialect().UpsertClause("id", cols)

	_, err := q.ExecContext(ctx, query,
		m.ID, m.UserID, m.Name, string(m.Relationship),
		nullInt(m.Age), nullTime(m.DateOfBirth), string(m.Gender),
		m.Profession, m.School, m.Class, string(m.MaritalStatus),
		m.SpouseFamily, m.SpouseCity, nullInt(m.MarriageYear),
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to restore member %s: %w", m.ID, err)
	}
	return nil
}

// ensureProfile creates a blank profile for id unless one exists
func ensureProfile(ctx context.Context, q database.DBTX, id string, now time.Time) error {
	var count int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = ?", id).Scan(&count); err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := q.ExecContext(ctx, "INSERT INTO profiles (id, created_at, updated_at) VALUES (?, ?, ?)", id, now, now)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(s scanner, m *models.FamilyMember, extra ...any) error {
	var (
		relationship, gender, marital string
		age, marriageYear             sql.NullInt64
		dob                           sql.NullTime
	)
	dest := []any{
		&m.ID, &m.UserID, &m.Name, &relationship, &age, &dob, &gender,
		&m.Profession, &m.School, &m.Class, &marital, &m.SpouseFamily,
		&m.SpouseCity, &marriageYear, &m.CreatedAt, &m.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return err
	}

	// Rows written outside the service may carry legacy spellings
	m.Relationship = models.ParseRelationship(relationship)
	m.Gender = models.ParseGender(gender)
	m.MaritalStatus = models.ParseMaritalStatus(marital)
	m.Age = intPtr(age)
	m.MarriageYear = intPtr(marriageYear)
	if dob.Valid {
		t := dob.Time
		m.DateOfBirth = &t
	} else {
		m.DateOfBirth = nil
	}
	return nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
