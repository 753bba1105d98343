package service

import (
	"context"
	"fmt"
	"strings"

	"familydirectory/internal/models"
	"familydirectory/internal/validation"
)

// ProfileInput is the editable part of an account profile
type ProfileInput struct {
	FullName      string `json:"full_name"`
	City          string `json:"city"`
	CommunityName string `json:"community_name"`
}

// ProfileService handles reads and updates of the caller's own profile
type ProfileService struct {
	profiles ProfileStore
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetProfile retrieves the profile for accountID
func (s *ProfileService) GetProfile(ctx context.Context, accountID string) (*models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile validates and stores the profile for accountID
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID string, input ProfileInput) (*models.Profile, error) {
	profile := &models.Profile{
		ID:            accountID,
		FullName:      strings.TrimSpace(input.FullName),
		City:          strings.TrimSpace(input.City),
		CommunityName: strings.TrimSpace(input.CommunityName),
	}
	if err := validation.ValidateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.profiles.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(ctx, accountID)
}
