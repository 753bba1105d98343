// Package directory turns flat family-member rows into family units and
// narrows them by location and member attributes. Every function here is
// pure: inputs are never mutated and the same inputs always give the same output.
package directory

import (
	"strings"

	"familydirectory/internal/models"
)

// Fallbacks for missing account metadata
const (
	UnknownFamily = "Unknown Family"
	UnknownCity   = "Unknown"
)

// MarriedInto links a daughter to the family she married into
type MarriedInto struct {
	City         string `json:"city"`
	Family       string `json:"family"`
	MarriageYear *int   `json:"marriage_year"`
}

// Member is a family member with the fields derived during aggregation
type Member struct {
	models.FamilyMember
	MarriedInto     *MarriedInto `json:"married_into,omitempty"`
	CurrentAge      *int         `json:"current_age,omitempty"`
	GenerationLevel int          `json:"generation_level"`
	RoleLabel       string       `json:"role_label"`
	BirthYear       string       `json:"birth_year"`
}

// FamilyUnit is every member recorded under one account
type FamilyUnit struct {
	ID            string   `json:"id"`
	FamilyHead    string   `json:"family_head"`
	City          string   `json:"city"`
	CommunityName string   `json:"community_name"`
	Members       []Member `json:"members"`
}

// AggregateOptions supplies the values aggregation cannot derive from rows
type AggregateOptions struct {
	DefaultCommunity string
	CurrentYear      int
}

// AggregateResult is the output of Aggregate. Dropped counts rows that had
// no owning account and could not be grouped.
type AggregateResult struct {
	Families []FamilyUnit
	Dropped  int
}

// Aggregate groups rows by owning account in first-seen order. Family
// metadata comes from the first row seen for each account.
func Aggregate(rows []models.MemberRow, opts AggregateOptions) AggregateResult {
	result := AggregateResult{Families: []FamilyUnit{}}
	positions := make(map[string]int)

	for i := range rows {
		row := &rows[i]
		userID := strings.TrimSpace(row.Member.UserID)
		if userID == "" {
			result.Dropped++
			continue
		}

		pos, ok := positions[userID]
		if !ok {
			pos = len(result.Families)
			positions[userID] = pos
			result.Families = append(result.Families, FamilyUnit{
				ID:            userID,
				FamilyHead:    fallback(row.DisplayName, UnknownFamily),
				City:          fallback(row.ResidentCity, UnknownCity),
				CommunityName: fallback(row.CommunityName, opts.DefaultCommunity),
				Members:       []Member{},
			})
		}

		unit := &result.Families[pos]
		unit.Members = append(unit.Members, enrich(row.Member, opts.CurrentYear))
	}

	return result
}

// MarriedIntoFor returns the marriage link for a member, or nil. Only adult
// married daughters with a recorded spouse family qualify.
func MarriedIntoFor(m *models.FamilyMember, currentYear int) *MarriedInto {
	if m.Relationship != models.RelationshipChild || m.Gender != models.GenderFemale {
		return nil
	}
	if m.MaritalStatus != models.MaritalStatusMarried || strings.TrimSpace(m.SpouseFamily) == "" {
		return nil
	}
	age, ok := m.EffectiveAge(currentYear)
	if !ok || age < 18 {
		return nil
	}

	var year *int
	if m.MarriageYear != nil {
		y := *m.MarriageYear
		year = &y
	}
	return &MarriedInto{
		City:         fallback(m.SpouseCity, UnknownCity),
		Family:       fallback(m.SpouseFamily, UnknownFamily),
		MarriageYear: year,
	}
}

func enrich(m models.FamilyMember, currentYear int) Member {
	out := Member{
		FamilyMember:    m,
		MarriedInto:     MarriedIntoFor(&m, currentYear),
		GenerationLevel: GenerationLevel(m.Relationship),
		RoleLabel:       RoleLabel(&m, currentYear),
		BirthYear:       BirthYear(&m, currentYear),
	}
	if age, ok := m.EffectiveAge(currentYear); ok {
		out.CurrentAge = &age
	}
	return out
}

func fallback(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
