package directory

import (
	"strconv"
	"strings"

	"familydirectory/internal/location"
	"familydirectory/internal/models"
)

// Filter applies the location selection, then the attribute predicates
func Filter(units []FamilyUnit, idx *location.Index, loc LocationSelection, attrs AttributeFilterState) []FamilyUnit {
	return FilterByAttributes(FilterByLocation(units, idx, loc), attrs)
}

// FilterByLocation keeps the units matching the most specific non-"all"
// level of the selection. Levels are not combined: a village choice alone
// decides the result even if a city is also set. A state on its own does
// not narrow anything.
func FilterByLocation(units []FamilyUnit, idx *location.Index, loc LocationSelection) []FamilyUnit {
	level, value := loc.MostSpecific()

	var match func(FamilyUnit) bool
	switch level {
	case LevelVillage:
		match = func(u FamilyUnit) bool { return u.City == value }
	case LevelCity:
		match = func(u FamilyUnit) bool { return location.SameLocation(u.City, value) }
	case LevelDistrict:
		var cities []string
		if idx != nil {
			cities = idx.CitiesForDistrict(value)
		}
		match = func(u FamilyUnit) bool {
			if u.City == value {
				return true
			}
			for _, c := range cities {
				if location.SameLocation(u.City, c) {
					return true
				}
			}
			return false
		}
	default:
		return keep(units, func(FamilyUnit) bool { return true })
	}

	return keep(units, match)
}

// FilterByAttributes keeps the units satisfying every enabled predicate.
// Each member-level predicate passes when any one member matches.
func FilterByAttributes(units []FamilyUnit, attrs AttributeFilterState) []FamilyUnit {
	preds := attributePredicates(attrs)
	return keep(units, func(u FamilyUnit) bool {
		for _, p := range preds {
			if !p(u) {
				return false
			}
		}
		return true
	})
}

func attributePredicates(attrs AttributeFilterState) []func(FamilyUnit) bool {
	var preds []func(FamilyUnit) bool

	if term := strings.ToLower(strings.TrimSpace(attrs.SearchTerm)); term != "" {
		preds = append(preds, func(u FamilyUnit) bool {
			if containsFold(u.FamilyHead, term) || containsFold(u.City, term) {
				return true
			}
			return anyMember(u, func(m *Member) bool {
				return containsFold(m.Name, term) || containsFold(m.Profession, term)
			})
		})
	}

	if !isAll(attrs.Generation) {
		want := strings.TrimSpace(attrs.Generation)
		preds = append(preds, func(u FamilyUnit) bool {
			return anyMember(u, func(m *Member) bool {
				return strconv.Itoa(m.GenerationLevel) == want
			})
		})
	}

	if !isAll(attrs.Gender) {
		want := models.ParseGender(attrs.Gender)
		preds = append(preds, func(u FamilyUnit) bool {
			return anyMember(u, func(m *Member) bool { return m.Gender == want })
		})
	}

	if !isAll(attrs.MaritalStatus) {
		preds = append(preds, maritalPredicate(attrs.MaritalStatus))
	}

	if !isAll(attrs.Occupation) {
		keyword := strings.ToLower(strings.TrimSpace(attrs.Occupation))
		preds = append(preds, func(u FamilyUnit) bool {
			return anyMember(u, func(m *Member) bool { return containsFold(m.Profession, keyword) })
		})
	}

	return preds
}

func maritalPredicate(status string) func(FamilyUnit) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "married":
		return func(u FamilyUnit) bool {
			return anyMember(u, func(m *Member) bool {
				return m.Relationship == models.RelationshipSpouse || m.MarriedInto != nil
			})
		}
	case "unmarried", "single":
		return func(u FamilyUnit) bool {
			return anyMember(u, func(m *Member) bool {
				if m.MarriedInto != nil || m.Relationship == models.RelationshipSpouse || m.CurrentAge == nil {
					return false
				}
				return *m.CurrentAge >= 18
			})
		}
	}
	// unrecognized selections match nothing
	return func(FamilyUnit) bool { return false }
}

func anyMember(u FamilyUnit, pred func(*Member) bool) bool {
	for i := range u.Members {
		if pred(&u.Members[i]) {
			return true
		}
	}
	return false
}

func keep(units []FamilyUnit, pred func(FamilyUnit) bool) []FamilyUnit {
	out := make([]FamilyUnit, 0, len(units))
	for _, u := range units {
		if pred(u) {
			out = append(out, u)
		}
	}
	return out
}

// containsFold reports whether s contains lowerTerm, ignoring case.
// lowerTerm must already be lower-cased.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
