package location

import (
	"fmt"
	"os"
	"strings"

	"github.com/facette/natsort"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of the reference data
type File struct {
	StateDistricts map[string][]string `yaml:"state_districts"`
	DistrictCities map[string][]string `yaml:"district_cities"`
	CityVillages   map[string][]string `yaml:"city_villages"`
}

// Load reads a YAML reference file and builds an index from it
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read location file %s: %w", path, err)
	}
	idx, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location file %s: %w", path, err)
	}
	return idx, nil
}

// Parse decodes YAML reference data. District lists are natural-sorted so
// selectors list them in a stable order regardless of how the file is kept.
func Parse(data []byte) (*Index, error) {
	f, err := decode(data)
	if err != nil {
		return nil, err
	}
	return NewIndex(f.Tables()), nil
}

func decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.StateDistricts) == 0 {
		return nil, fmt.Errorf("no states defined")
	}
	return &f, nil
}

// Tables converts the file into index tables, trimming labels and sorting district lists
func (f *File) Tables() Tables {
	t := Tables{
		StateDistricts: make(map[string][]string, len(f.StateDistricts)),
		DistrictCities: make(map[string][]string, len(f.DistrictCities)),
		CityVillages:   make(map[string][]string, len(f.CityVillages)),
	}
	for state, districts := range f.StateDistricts {
		ds := trimAll(districts)
		sortLabels(ds)
		t.StateDistricts[strings.TrimSpace(state)] = ds
	}
	for district, cities := range f.DistrictCities {
		t.DistrictCities[strings.TrimSpace(district)] = trimAll(cities)
	}
	for city, villages := range f.CityVillages {
		t.CityVillages[strings.TrimSpace(city)] = trimAll(villages)
	}
	return t
}

// Problem is a consistency issue found in reference data
type Problem struct {
	Level   string
	Label   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %q: %s", p.Level, p.Label, p.Message)
}

// Validate reads a reference file and reports consistency problems.
// Problems do not prevent loading; lookups on the affected labels simply come back empty.
func Validate(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read location file %s: %w", path, err)
	}
	f, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location file %s: %w", path, err)
	}
	return f.Tables().Problems(), nil
}

// Problems lists districts without a city table, districts claimed by more
// than one state and village tables whose city no district lists.
func (t Tables) Problems() []Problem {
	var problems []Problem

	owner := make(map[string]string)
	for _, state := range sortedKeys(t.StateDistricts) {
		for _, d := range t.StateDistricts[state] {
			if prev, ok := owner[d]; ok && prev != state {
				problems = append(problems, Problem{Level: "district", Label: d, Message: fmt.Sprintf("listed under both %s and %s", prev, state)})
				continue
			}
			owner[d] = state
			if _, ok := t.DistrictCities[d]; !ok {
				problems = append(problems, Problem{Level: "district", Label: d, Message: "has no city table"})
			}
		}
	}

	idx := NewIndex(t)
	for _, city := range sortedKeys(t.CityVillages) {
		found := false
		for d := range t.DistrictCities {
			for _, c := range idx.CitiesForDistrict(d) {
				if SameLocation(c, city) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			problems = append(problems, Problem{Level: "city", Label: city, Message: "has villages but no district lists it"})
		}
	}

	return problems
}

func sortLabels(labels []string) {
	natsort.Sort(labels)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortLabels(keys)
	return keys
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
