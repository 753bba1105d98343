package directory

import (
	"strconv"

	"familydirectory/internal/models"
)

// UnknownBirthYear is shown when neither a birth date nor an age is recorded
const UnknownBirthYear = "Unknown"

// Generation levels, counted from the oldest generation shown
const (
	GenerationGrandparents  = 1
	GenerationParents       = 2
	GenerationSelf          = 3
	GenerationChildren      = 4
	GenerationGrandchildren = 5
)

// GenerationLevel places a relationship on the five-level family ladder.
// Relationships without a fixed place share the account holder's generation.
func GenerationLevel(r models.Relationship) int {
	switch r {
	case models.RelationshipGrandparent:
		return GenerationGrandparents
	case models.RelationshipParent:
		return GenerationParents
	case models.RelationshipSpouse, models.RelationshipSibling:
		return GenerationSelf
	case models.RelationshipChild:
		return GenerationChildren
	case models.RelationshipGrandchild:
		return GenerationGrandchildren
	}
	return GenerationSelf
}

// RoleLabel is the display role for a member. Unrecognized relationships
// are shown as stored.
func RoleLabel(m *models.FamilyMember, currentYear int) string {
	age, known := m.EffectiveAge(currentYear)
	switch m.Relationship {
	case models.RelationshipSpouse:
		if known && age > 40 {
			return "Father/Mother"
		}
		return "Husband/Wife"
	case models.RelationshipParent:
		return "Parent"
	case models.RelationshipChild:
		if known && age < 18 {
			return "Child"
		}
		return "Son/Daughter"
	case models.RelationshipSibling:
		return "Sibling"
	case models.RelationshipGrandparent:
		return "Grandparent"
	case models.RelationshipGrandchild:
		return "Grandchild"
	}
	return string(m.Relationship)
}

// BirthYear prefers the recorded birth date, then currentYear minus age.
// The result is a display string and may be UnknownBirthYear.
func BirthYear(m *models.FamilyMember, currentYear int) string {
	if m.DateOfBirth != nil {
		return strconv.Itoa(m.DateOfBirth.Year())
	}
	if m.Age != nil {
		return strconv.Itoa(currentYear - *m.Age)
	}
	return UnknownBirthYear
}

// GenerationGroup is one row of the family hierarchy view
type GenerationGroup struct {
	Level   int      `json:"level"`
	Members []Member `json:"members"`
}

// GroupByGeneration splits a family's members into generation rows, oldest
// first. Empty generations are omitted; member order within a row is kept.
func GroupByGeneration(unit FamilyUnit) []GenerationGroup {
	var groups []GenerationGroup
	for level := GenerationGrandparents; level <= GenerationGrandchildren; level++ {
		var members []Member
		for _, m := range unit.Members {
			if m.GenerationLevel == level {
				members = append(members, m)
			}
		}
		if len(members) > 0 {
			groups = append(groups, GenerationGroup{Level: level, Members: members})
		}
	}
	return groups
}
