package models

import (
	"testing"
	"time"
)

func TestParseRelationship(t *testing.T) {
	tests := []struct {
		input string
		want  Relationship
		known bool
	}{
		{input: "child", want: RelationshipChild, known: true},
		{input: " Grandparent ", want: RelationshipGrandparent, known: true},
		{input: "uncle-aunt", want: RelationshipUncleAunt, known: true},
		{input: "Uncle Aunt", want: RelationshipUncleAunt, known: true},
		{input: "Bhabhi", want: Relationship("Bhabhi"), known: false},
		{input: "", want: Relationship(""), known: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseRelationship(tt.input)
			if got != tt.want {
				t.Errorf("ParseRelationship(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got.IsKnown() != tt.known {
				t.Errorf("IsKnown() = %v, want %v", got.IsKnown(), tt.known)
			}
		})
	}
}

func TestParseGenderAndMaritalStatus(t *testing.T) {
	if got := ParseGender("Prefer not to say"); got != GenderPreferNotToSay {
		t.Errorf("ParseGender() = %q, want %q", got, GenderPreferNotToSay)
	}
	if got := ParseGender(" FEMALE "); got != GenderFemale {
		t.Errorf("ParseGender() = %q, want %q", got, GenderFemale)
	}
	if !ParseGender("").IsKnown() {
		t.Error("unspecified gender should be known")
	}
	if got := ParseMaritalStatus("Unmarried"); got != MaritalStatusSingle {
		t.Errorf("ParseMaritalStatus() = %q, want %q", got, MaritalStatusSingle)
	}
	if got := ParseMaritalStatus("engaged"); got.IsKnown() {
		t.Errorf("ParseMaritalStatus(engaged) = %q should not be known", got)
	}
}

func TestEffectiveAge(t *testing.T) {
	age := func(n int) *int { return &n }
	dob := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name      string
		member    FamilyMember
		wantAge   int
		wantKnown bool
		wantMinor bool
	}{
		{name: "stored age wins", member: FamilyMember{Age: age(40), DateOfBirth: dob(2010, 1, 1)}, wantAge: 40, wantKnown: true},
		{name: "derived from birth year", member: FamilyMember{DateOfBirth: dob(2010, 1, 1)}, wantAge: 14, wantKnown: true, wantMinor: true},
		// calendar years only, so a December birthday already counts in June
		{name: "birthday later in year", member: FamilyMember{DateOfBirth: dob(2006, 12, 31)}, wantAge: 18, wantKnown: true},
		{name: "unknown", member: FamilyMember{}, wantAge: 0, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := tt.member.EffectiveAge(2024)
			if got != tt.wantAge || known != tt.wantKnown {
				t.Errorf("EffectiveAge() = %d, %v; want %d, %v", got, known, tt.wantAge, tt.wantKnown)
			}
			if minor := tt.member.IsMinor(2024); minor != tt.wantMinor {
				t.Errorf("IsMinor() = %v, want %v", minor, tt.wantMinor)
			}
		})
	}
}
