package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"familydirectory/internal/models"
)

const (
	maxNameLength  = 100
	maxLabelLength = 100
	maxAge         = 130
	earliestYear   = 1900
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks if a name is valid
func ValidateName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: field, Message: "name is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		return ValidationError{Field: field, Message: "name must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ValidationError{Field: field, Message: fmt.Sprintf("name must be at most %d characters", maxNameLength)}
	}
	return nil
}

// ValidateLabel checks an optional free-text field such as a city or profession
func ValidateLabel(field, value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > maxLabelLength {
		return ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLabelLength)}
	}
	return nil
}

// ValidateMember checks a family member before it is stored.
// Enum fields are expected to be parsed already.
func ValidateMember(m *models.FamilyMember, now time.Time) error {
	if err := ValidateName("name", m.Name); err != nil {
		return err
	}
	if !m.Relationship.IsKnown() {
		return ValidationError{Field: "relationship", Message: fmt.Sprintf("unknown relationship %q", m.Relationship)}
	}
	if !m.Gender.IsKnown() {
		return ValidationError{Field: "gender", Message: fmt.Sprintf("unknown gender %q", m.Gender)}
	}
	if !m.MaritalStatus.IsKnown() {
		return ValidationError{Field: "marital_status", Message: fmt.Sprintf("unknown marital status %q", m.MaritalStatus)}
	}

	if m.Age != nil && (*m.Age < 0 || *m.Age > maxAge) {
		return ValidationError{Field: "age", Message: fmt.Sprintf("age must be between 0 and %d", maxAge)}
	}
	if m.DateOfBirth != nil {
		if m.DateOfBirth.After(now) {
			return ValidationError{Field: "date_of_birth", Message: "date of birth cannot be in the future"}
		}
		if m.DateOfBirth.Year() < earliestYear {
			return ValidationError{Field: "date_of_birth", Message: fmt.Sprintf("date of birth must be after %d", earliestYear)}
		}
	}
	if m.MarriageYear != nil && (*m.MarriageYear < earliestYear || *m.MarriageYear > now.Year()) {
		return ValidationError{Field: "marriage_year", Message: fmt.Sprintf("marriage year must be between %d and %d", earliestYear, now.Year())}
	}

	for _, f := range []struct{ name, value string }{
		{"profession", m.Profession},
		{"school", m.School},
		{"class", m.Class},
		{"spouse_family", m.SpouseFamily},
		{"spouse_city", m.SpouseCity},
	} {
		if err := ValidateLabel(f.name, f.value); err != nil {
			return err
		}
	}

	return nil
}

// ValidateProfile checks the editable fields of an account profile
func ValidateProfile(p *models.Profile) error {
	if err := ValidateName("full_name", p.FullName); err != nil {
		return err
	}
	if err := ValidateLabel("city", p.City); err != nil {
		return err
	}
	return ValidateLabel("community_name", p.CommunityName)
}
