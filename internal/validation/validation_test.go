package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"familydirectory/internal/models"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func intPtr(n int) *int { return &n }

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Ramesh Jain", wantErr: false},
		{name: "two runes", input: "Om", wantErr: false},
		{name: "devanagari", input: "सुनीता", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "single character", input: "A", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMember(t *testing.T) {
	valid := func() *models.FamilyMember {
		return &models.FamilyMember{
			Name:         "Sunita",
			Relationship: models.RelationshipChild,
			Gender:       models.GenderFemale,
		}
	}
	future := now.AddDate(0, 1, 0)
	ancient := time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(m *models.FamilyMember)
		wantField string
	}{
		{name: "valid member", mutate: func(m *models.FamilyMember) {}},
		{name: "missing name", mutate: func(m *models.FamilyMember) { m.Name = "" }, wantField: "name"},
		{name: "unknown relationship", mutate: func(m *models.FamilyMember) { m.Relationship = "neighbour" }, wantField: "relationship"},
		{name: "unknown gender", mutate: func(m *models.FamilyMember) { m.Gender = "robot" }, wantField: "gender"},
		{name: "unknown marital status", mutate: func(m *models.FamilyMember) { m.MaritalStatus = "engaged" }, wantField: "marital_status"},
		{name: "negative age", mutate: func(m *models.FamilyMember) { m.Age = intPtr(-1) }, wantField: "age"},
		{name: "age too high", mutate: func(m *models.FamilyMember) { m.Age = intPtr(131) }, wantField: "age"},
		{name: "future birth date", mutate: func(m *models.FamilyMember) { m.DateOfBirth = &future }, wantField: "date_of_birth"},
		{name: "ancient birth date", mutate: func(m *models.FamilyMember) { m.DateOfBirth = &ancient }, wantField: "date_of_birth"},
		{name: "future marriage year", mutate: func(m *models.FamilyMember) { m.MarriageYear = intPtr(2030) }, wantField: "marriage_year"},
		{name: "long profession", mutate: func(m *models.FamilyMember) { m.Profession = strings.Repeat("x", 101) }, wantField: "profession"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := ValidateMember(m, now)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateMember() unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateMember() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidateMember() field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateMemberReportsFirstLongField(t *testing.T) {
	m := &models.FamilyMember{
		Name:         "Sunita",
		Relationship: models.RelationshipChild,
		School:       strings.Repeat("s", 101),
		Class:        strings.Repeat("c", 101),
		SpouseCity:   strings.Repeat("x", 101),
	}

	// Repeat so a randomized iteration order would show up
	for i := 0; i < 20; i++ {
		var verr ValidationError
		if err := ValidateMember(m, now); !errors.As(err, &verr) || verr.Field != "school" {
			t.Fatalf("ValidateMember() = %v, want school error", err)
		}
	}
}

func TestValidateProfile(t *testing.T) {
	if err := ValidateProfile(&models.Profile{FullName: "Ramesh Jain", City: "Bhopal"}); err != nil {
		t.Errorf("ValidateProfile() unexpected error: %v", err)
	}
	if err := ValidateProfile(&models.Profile{FullName: ""}); err == nil {
		t.Error("ValidateProfile() expected error for missing name")
	}
	if err := ValidateProfile(&models.Profile{FullName: "Ramesh", City: strings.Repeat("c", 200)}); err == nil {
		t.Error("ValidateProfile() expected error for long city")
	}
}
