package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"familydirectory/internal/models"
	"familydirectory/internal/validation"
)

const dateLayout = "2006-01-02"

// MemberStore persists family members
type MemberStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.FamilyMember, error)
	GetByID(ctx context.Context, id string) (*models.FamilyMember, error)
	Create(ctx context.Context, member *models.FamilyMember) error
	Update(ctx context.Context, member *models.FamilyMember) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore persists account profiles
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
}

// MemberInput is the editable part of a family member as submitted by a client
type MemberInput struct {
	Name          string `json:"name"`
	Relationship  string `json:"relationship"`
	Age           *int   `json:"age"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	Profession    string `json:"profession"`
	School        string `json:"school"`
	Class         string `json:"class"`
	MaritalStatus string `json:"marital_status"`
	SpouseFamily  string `json:"spouse_family"`
	SpouseCity    string `json:"spouse_city"`
	MarriageYear  *int   `json:"marriage_year"`
}

// MemberService handles family member business logic
type MemberService struct {
	members  MemberStore
	profiles ProfileStore
	now      func() time.Time
}

// NewMemberService creates a new member service
func NewMemberService(members MemberStore, profiles ProfileStore) *MemberService {
	return &MemberService{
		members:  members,
		profiles: profiles,
		now:      time.Now,
	}
}

// ListMembers returns the members owned by accountID
func (s *MemberService) ListMembers(ctx context.Context, accountID string) ([]models.FamilyMember, error) {
	members, err := s.members.ListByUser(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// CreateMember adds a member to accountID's family
func (s *MemberService) CreateMember(ctx context.Context, accountID string, input MemberInput) (*models.FamilyMember, error) {
	member := &models.FamilyMember{UserID: accountID}
	if err := s.apply(member, input); err != nil {
		return nil, err
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// UpdateMember replaces the editable fields of a member. Only the owning
// account or an admin may change it.
func (s *MemberService) UpdateMember(ctx context.Context, accountID, memberID string, input MemberInput) (*models.FamilyMember, error) {
	member, err := s.authorizedMember(ctx, accountID, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(member, input); err != nil {
		return nil, err
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return member, nil
}

// DeleteMember removes a member. Only the owning account or an admin may delete it.
func (s *MemberService) DeleteMember(ctx context.Context, accountID, memberID string) error {
	if _, err := s.authorizedMember(ctx, accountID, memberID); err != nil {
		return err
	}
	if err := s.members.Delete(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (s *MemberService) authorizedMember(ctx context.Context, accountID, memberID string) (*models.FamilyMember, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if member.UserID == accountID {
		return member, nil
	}

	profile, err := s.profiles.GetProfile(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin access: %w", err)
	}
	if profile == nil || !profile.IsAdmin {
		return nil, ErrNotMemberOwner
	}
	return member, nil
}

// apply copies normalized input onto member and validates the result
func (s *MemberService) apply(member *models.FamilyMember, input MemberInput) error {
	now := s.now()

	var dob *time.Time
	if raw := strings.TrimSpace(input.DateOfBirth); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return validation.ValidationError{Field: "date_of_birth", Message: "date of birth must be YYYY-MM-DD"}
		}
		dob = &t
	}

	member.Name = strings.TrimSpace(input.Name)
	member.Relationship = models.ParseRelationship(input.Relationship)
	member.Age = input.Age
	member.DateOfBirth = dob
	member.Gender = models.ParseGender(input.Gender)
	member.Profession = strings.TrimSpace(input.Profession)
	member.School = strings.TrimSpace(input.School)
	member.Class = strings.TrimSpace(input.Class)
	member.MaritalStatus = models.ParseMaritalStatus(input.MaritalStatus)
	member.SpouseFamily = strings.TrimSpace(input.SpouseFamily)
	member.SpouseCity = strings.TrimSpace(input.SpouseCity)
	member.MarriageYear = input.MarriageYear

	// Schooling only applies to minors and spouse details only to married members
	if age, ok := member.EffectiveAge(now.Year()); ok && age >= 18 {
		member.School = ""
		member.Class = ""
	}
	if member.MaritalStatus != models.MaritalStatusMarried {
		member.SpouseFamily = ""
		member.SpouseCity = ""
		member.MarriageYear = nil
	}

	return validation.ValidateMember(member, now)
}
