package directory

import "strings"

// All disables a selection level or attribute predicate
const All = "all"

// LocationSelection is the cascading state → district → city → village choice.
// Values are immutable; the With* methods return updated copies.
type LocationSelection struct {
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Village  string `json:"village"`
}

// NewLocationSelection builds a selection as a caller supplied it. It does not
// enforce the cascade: inconsistent combinations are accepted and resolved by
// the most-specific-level rule when filtering.
func NewLocationSelection(state, district, city, village string) LocationSelection {
	return LocationSelection{
		State:    normalizeChoice(state),
		District: normalizeChoice(district),
		City:     normalizeChoice(city),
		Village:  normalizeChoice(village),
	}
}

// AllLocations selects every location
func AllLocations() LocationSelection {
	return LocationSelection{State: All, District: All, City: All, Village: All}
}

// WithState changes the state and resets every level below it
func (s LocationSelection) WithState(state string) LocationSelection {
	return LocationSelection{State: normalizeChoice(state), District: All, City: All, Village: All}
}

// WithDistrict changes the district and resets city and village
func (s LocationSelection) WithDistrict(district string) LocationSelection {
	s = s.normalized()
	s.District = normalizeChoice(district)
	s.City = All
	s.Village = All
	return s
}

// WithCity changes the city and resets the village
func (s LocationSelection) WithCity(city string) LocationSelection {
	s = s.normalized()
	s.City = normalizeChoice(city)
	s.Village = All
	return s
}

// WithVillage changes the village
func (s LocationSelection) WithVillage(village string) LocationSelection {
	s = s.normalized()
	s.Village = normalizeChoice(village)
	return s
}

// DistrictEnabled reports whether a district can be chosen
func (s LocationSelection) DistrictEnabled() bool {
	return !isAll(s.State)
}

// CityEnabled reports whether a city can be chosen
func (s LocationSelection) CityEnabled() bool {
	return s.DistrictEnabled() && !isAll(s.District)
}

// VillageEnabled reports whether a village can be chosen
func (s LocationSelection) VillageEnabled() bool {
	return s.CityEnabled() && !isAll(s.City)
}

// Level identifies a location hierarchy level
type Level int

const (
	LevelNone Level = iota
	LevelState
	LevelDistrict
	LevelCity
	LevelVillage
)

func (l Level) String() string {
	switch l {
	case LevelState:
		return "state"
	case LevelDistrict:
		return "district"
	case LevelCity:
		return "city"
	case LevelVillage:
		return "village"
	}
	return "none"
}

// MostSpecific returns the deepest level that is not "all" and its value.
// Levels are checked independently of the ones above them.
func (s LocationSelection) MostSpecific() (Level, string) {
	switch {
	case !isAll(s.Village):
		return LevelVillage, s.Village
	case !isAll(s.City):
		return LevelCity, s.City
	case !isAll(s.District):
		return LevelDistrict, s.District
	case !isAll(s.State):
		return LevelState, s.State
	}
	return LevelNone, ""
}

func (s LocationSelection) normalized() LocationSelection {
	return NewLocationSelection(s.State, s.District, s.City, s.Village)
}

// AttributeFilterState holds the non-location predicates. "all" or an empty
// value disables a predicate; the search term is disabled when blank.
type AttributeFilterState struct {
	SearchTerm    string `json:"search_term"`
	Generation    string `json:"generation"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	Occupation    string `json:"occupation"`
}

// NoAttributeFilters disables every attribute predicate
func NoAttributeFilters() AttributeFilterState {
	return AttributeFilterState{Generation: All, Gender: All, MaritalStatus: All, Occupation: All}
}

// Active reports whether any attribute predicate is enabled
func (a AttributeFilterState) Active() bool {
	return strings.TrimSpace(a.SearchTerm) != "" ||
		!isAll(a.Generation) ||
		!isAll(a.Gender) ||
		!isAll(a.MaritalStatus) ||
		!isAll(a.Occupation)
}

func normalizeChoice(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, All) {
		return All
	}
	return v
}

func isAll(v string) bool {
	return normalizeChoice(v) == All
}
