package directory

// MigrationRecord describes a daughter who married from one tracked family into another
type MigrationRecord struct {
	MemberID          string `json:"member_id"`
	FamilyID          string `json:"family_id"`
	Name              string `json:"name"`
	OriginalFamily    string `json:"original_family"`
	OriginalLocation  string `json:"original_location"`
	MarriedToLocation string `json:"married_to_location"`
	MarriedToFamily   string `json:"married_to_family"`
	MarriageYear      *int   `json:"marriage_year,omitempty"`
}

// ExtractMigrations lists one record per member with a marriage link, in
// unit order then member order. Records are not deduplicated.
func ExtractMigrations(units []FamilyUnit) []MigrationRecord {
	records := []MigrationRecord{}
	for _, u := range units {
		for _, m := range u.Members {
			if m.MarriedInto == nil {
				continue
			}
			records = append(records, MigrationRecord{
				MemberID:          m.ID,
				FamilyID:          u.ID,
				Name:              m.Name,
				OriginalFamily:    u.FamilyHead,
				OriginalLocation:  u.City,
				MarriedToLocation: m.MarriedInto.City,
				MarriedToFamily:   m.MarriedInto.Family,
				MarriageYear:      m.MarriedInto.MarriageYear,
			})
		}
	}
	return records
}

// MigrationSummary counts migrations per destination location
type MigrationSummary struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// SummarizeMigrations groups records by destination, in first-seen order
func SummarizeMigrations(records []MigrationRecord) []MigrationSummary {
	summary := []MigrationSummary{}
	positions := make(map[string]int)
	for _, r := range records {
		pos, ok := positions[r.MarriedToLocation]
		if !ok {
			pos = len(summary)
			positions[r.MarriedToLocation] = pos
			summary = append(summary, MigrationSummary{Location: r.MarriedToLocation})
		}
		summary[pos].Count++
	}
	return summary
}
