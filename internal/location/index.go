// Package location holds the state → district → city → village reference
// tables and the lookups the directory filters are built on.
//
// Reference data is inconsistently suffixed ("Bhopal" in one table,
// "Bhopal City" in another), so every city lookup tolerates both spellings.
package location

import "strings"

// CitySuffix is the optional suffix some tables attach to urban centers
const CitySuffix = " City"

// Index is an immutable view over the location reference tables.
// It is safe for concurrent use once built.
type Index struct {
	states         []string
	stateDistricts map[string][]string
	districtCities map[string][]string
	cityVillages   map[string][]string
}

// Tables is the raw reference data an Index is built from
type Tables struct {
	StateDistricts map[string][]string
	DistrictCities map[string][]string
	CityVillages   map[string][]string
}

// NewIndex builds an index from the given tables. District lists are used
// in the order given; callers that load data from files sort them first.
func NewIndex(t Tables) *Index {
	idx := &Index{
		stateDistricts: copyTable(t.StateDistricts),
		districtCities: copyTable(t.DistrictCities),
		cityVillages:   copyTable(t.CityVillages),
	}
	for state := range idx.stateDistricts {
		idx.states = append(idx.states, state)
	}
	sortLabels(idx.states)
	return idx
}

// States returns every configured state
func (idx *Index) States() []string {
	return clone(idx.states)
}

// DistrictsForState returns the districts of a state, or an empty slice for an unknown state
func (idx *Index) DistrictsForState(state string) []string {
	return clone(idx.stateDistricts[state])
}

// CitiesForDistrict returns the cities of a district. The district's namesake
// urban center is itself a valid city, so it is prepended when missing from
// the configured list. Unknown districts yield an empty slice.
func (idx *Index) CitiesForDistrict(district string) []string {
	cities, ok := idx.districtCities[district]
	if !ok {
		return []string{}
	}
	for _, c := range cities {
		if c == district {
			return clone(cities)
		}
	}
	out := make([]string, 0, len(cities)+1)
	out = append(out, district)
	return append(out, cities...)
}

// VillagesForCity returns the villages of a city, trying the exact label,
// the label with " City" appended, then the label with " City" stripped.
// The first non-empty match wins.
func (idx *Index) VillagesForCity(city string) []string {
	for _, label := range LabelVariants(city) {
		if villages := idx.cityVillages[label]; len(villages) > 0 {
			return clone(villages)
		}
	}
	return []string{}
}

// HasDistrict reports whether district is configured
func (idx *Index) HasDistrict(district string) bool {
	_, ok := idx.districtCities[district]
	return ok
}

// LabelVariants returns the three spellings a city label may appear under:
// exact, with " City" appended, and with a trailing " City" removed.
func LabelVariants(label string) [3]string {
	return [3]string{label, label + CitySuffix, strings.TrimSuffix(label, CitySuffix)}
}

// SameLocation reports whether two city labels name the same place under the
// suffix-tolerance rule. The comparison is symmetric.
func SameLocation(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	av := LabelVariants(a)
	bv := LabelVariants(b)
	for _, x := range av {
		for _, y := range bv {
			if x == y {
				return true
			}
		}
	}
	return false
}

func copyTable(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = clone(v)
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
