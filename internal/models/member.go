package models

import (
	"strings"
	"time"
)

// Relationship describes how a family member relates to the account holder
type Relationship string

const (
	RelationshipParent      Relationship = "parent"
	RelationshipSpouse      Relationship = "spouse"
	RelationshipChild       Relationship = "child"
	RelationshipSibling     Relationship = "sibling"
	RelationshipGrandparent Relationship = "grandparent"
	RelationshipGrandchild  Relationship = "grandchild"
	RelationshipUncleAunt   Relationship = "uncle_aunt"
	RelationshipCousin      Relationship = "cousin"
	RelationshipOther       Relationship = "other"
)

var knownRelationships = map[Relationship]bool{
	RelationshipParent:      true,
	RelationshipSpouse:      true,
	RelationshipChild:       true,
	RelationshipSibling:     true,
	RelationshipGrandparent: true,
	RelationshipGrandchild:  true,
	RelationshipUncleAunt:   true,
	RelationshipCousin:      true,
	RelationshipOther:       true,
}

// ParseRelationship normalizes a stored relationship label.
// Unrecognized legacy values are kept as-is.
func ParseRelationship(s string) Relationship {
	n := Relationship(normalizeEnum(s))
	if knownRelationships[n] {
		return n
	}
	return Relationship(strings.TrimSpace(s))
}

// IsKnown reports whether r is one of the defined relationships
func (r Relationship) IsKnown() bool {
	return knownRelationships[r]
}

// Gender of a family member
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
	GenderUnspecified    Gender = ""
)

// ParseGender normalizes a stored gender value; unknown values are kept as-is
func ParseGender(s string) Gender {
	switch g := Gender(normalizeEnum(s)); g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay, GenderUnspecified:
		return g
	}
	return Gender(strings.TrimSpace(s))
}

// IsKnown reports whether g is one of the defined genders (or unspecified)
func (g Gender) IsKnown() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay, GenderUnspecified:
		return true
	}
	return false
}

// MaritalStatus of a family member
type MaritalStatus string

const (
	MaritalStatusSingle      MaritalStatus = "single"
	MaritalStatusMarried     MaritalStatus = "married"
	MaritalStatusDivorced    MaritalStatus = "divorced"
	MaritalStatusWidowed     MaritalStatus = "widowed"
	MaritalStatusUnspecified MaritalStatus = ""
)

// ParseMaritalStatus normalizes a stored marital status; unknown values are kept as-is
func ParseMaritalStatus(s string) MaritalStatus {
	switch m := MaritalStatus(normalizeEnum(s)); m {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed, MaritalStatusUnspecified:
		return m
	case "unmarried":
		return MaritalStatusSingle
	}
	return MaritalStatus(strings.TrimSpace(s))
}

// IsKnown reports whether m is one of the defined statuses (or unspecified)
func (m MaritalStatus) IsKnown() bool {
	switch m {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed, MaritalStatusUnspecified:
		return true
	}
	return false
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// FamilyMember is a single person recorded under an owning account
type FamilyMember struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Name          string        `json:"name"`
	Relationship  Relationship  `json:"relationship"`
	Age           *int          `json:"age,omitempty"`
	DateOfBirth   *time.Time    `json:"date_of_birth,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	Profession    string        `json:"profession,omitempty"`
	School        string        `json:"school,omitempty"`
	Class         string        `json:"class,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
	SpouseFamily  string        `json:"spouse_family,omitempty"`
	SpouseCity    string        `json:"spouse_city,omitempty"`
	MarriageYear  *int          `json:"marriage_year,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// EffectiveAge returns the stored age, or one derived from the birth year.
// The derived age subtracts calendar years only, so it can be one too high
// shortly before a birthday.
func (m *FamilyMember) EffectiveAge(currentYear int) (int, bool) {
	if m.Age != nil {
		return *m.Age, true
	}
	if m.DateOfBirth != nil {
		return currentYear - m.DateOfBirth.Year(), true
	}
	return 0, false
}

// IsMinor reports whether the member is known to be under 18
func (m *FamilyMember) IsMinor(currentYear int) bool {
	age, ok := m.EffectiveAge(currentYear)
	return ok && age < 18
}

// MemberRow is a family member joined with the owning account's profile fields
type MemberRow struct {
	Member        FamilyMember
	DisplayName   string
	ResidentCity  string
	CommunityName string
}
