package directory

import (
	"familydirectory/internal/location"
	"familydirectory/internal/models"
)

const testYear = 2024

func intPtr(v int) *int {
	return &v
}

func row(userID, head, city string, m models.FamilyMember) models.MemberRow {
	m.UserID = userID
	return models.MemberRow{
		Member:        m,
		DisplayName:   head,
		ResidentCity:  city,
		CommunityName: "Jain Samaj",
	}
}

func aggregate(rows ...models.MemberRow) []FamilyUnit {
	return Aggregate(rows, AggregateOptions{DefaultCommunity: "Community", CurrentYear: testYear}).Families
}

func testLocations() *location.Index {
	return location.NewIndex(location.Tables{
		StateDistricts: map[string][]string{"Madhya Pradesh": {"Bhopal", "Indore"}},
		DistrictCities: map[string][]string{
			"Bhopal": {"Kolar", "Berasia"},
			"Indore": {"Mhow"},
		},
		CityVillages: map[string][]string{
			"Bhopal City": {"Misrod"},
		},
	})
}

func unitIDs(units []FamilyUnit) []string {
	ids := make([]string, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.ID)
	}
	return ids
}
