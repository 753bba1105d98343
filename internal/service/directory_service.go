package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"familydirectory/internal/directory"
	"familydirectory/internal/location"
	"familydirectory/internal/models"
)

// MemberRowSource supplies the flat member rows the directory is built from
type MemberRowSource interface {
	ListMemberRows(ctx context.Context) ([]models.MemberRow, error)
	ListMemberRowsForUser(ctx context.Context, userID string) ([]models.MemberRow, error)
}

// DirectoryService builds the family directory views from stored member rows
type DirectoryService struct {
	rows             MemberRowSource
	index            *location.Index
	defaultCommunity string
	fetchTimeout     time.Duration
	now              func() time.Time
}

// NewDirectoryService creates a new directory service. Each row fetch is
// bounded by fetchTimeout.
func NewDirectoryService(rows MemberRowSource, index *location.Index, defaultCommunity string, fetchTimeout time.Duration) *DirectoryService {
	return &DirectoryService{
		rows:             rows,
		index:            index,
		defaultCommunity: defaultCommunity,
		fetchTimeout:     fetchTimeout,
		now:              time.Now,
	}
}

// Locations returns the location reference index used for filtering
func (s *DirectoryService) Locations() *location.Index {
	return s.index
}

// FamilyListing is a filtered page of the directory
type FamilyListing struct {
	Families []directory.FamilyUnit         `json:"families"`
	Location directory.LocationSelection    `json:"location"`
	Filters  directory.AttributeFilterState `json:"filters"`
	Total    int                            `json:"total"`
	Matched  int                            `json:"matched"`
	Dropped  int                            `json:"dropped"`
}

// ListFamilies returns the families matching the location and attribute filters
func (s *DirectoryService) ListFamilies(ctx context.Context, loc directory.LocationSelection, attrs directory.AttributeFilterState) (*FamilyListing, error) {
	result, err := s.loadFamilies(ctx)
	if err != nil {
		return nil, err
	}

	filtered := directory.Filter(result.Families, s.index, loc, attrs)
	return &FamilyListing{
		Families: filtered,
		Location: loc,
		Filters:  attrs,
		Total:    len(result.Families),
		Matched:  len(filtered),
		Dropped:  result.Dropped,
	}, nil
}

// MigrationScope selects which families migrations are extracted from
type MigrationScope string

const (
	// ScopeAll extracts from every family regardless of filters
	ScopeAll MigrationScope = "all"
	// ScopeFiltered extracts only from families matching the current filters
	ScopeFiltered MigrationScope = "filtered"
)

// ParseMigrationScope parses a scope name; blank means ScopeAll
func ParseMigrationScope(s string) (MigrationScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ScopeAll):
		return ScopeAll, nil
	case string(ScopeFiltered):
		return ScopeFiltered, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
}

// MigrationListing holds the daughters who married out of their families
type MigrationListing struct {
	Scope   MigrationScope               `json:"scope"`
	Records []directory.MigrationRecord  `json:"records"`
	Summary []directory.MigrationSummary `json:"summary"`
}

// ListMigrations extracts marriage migrations from the directory
func (s *DirectoryService) ListMigrations(ctx context.Context, scope MigrationScope, loc directory.LocationSelection, attrs directory.AttributeFilterState) (*MigrationListing, error) {
	result, err := s.loadFamilies(ctx)
	if err != nil {
		return nil, err
	}

	units := result.Families
	switch scope {
	case ScopeAll:
	case ScopeFiltered:
		units = directory.Filter(units, s.index, loc, attrs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	records := directory.ExtractMigrations(units)
	return &MigrationListing{
		Scope:   scope,
		Records: records,
		Summary: directory.SummarizeMigrations(records),
	}, nil
}

// FamilyTree is one family's members arranged by generation
type FamilyTree struct {
	ID            string                      `json:"id"`
	FamilyHead    string                      `json:"family_head"`
	City          string                      `json:"city"`
	CommunityName string                      `json:"community_name"`
	Generations   []directory.GenerationGroup `json:"generations"`
}

// FamilyTree returns the generation view of the family owned by userID
func (s *DirectoryService) FamilyTree(ctx context.Context, userID string) (*FamilyTree, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	rows, err := s.rows.ListMemberRowsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load family rows: %w", err)
	}

	result := s.aggregate(rows)
	for _, unit := range result.Families {
		if unit.ID != userID {
			continue
		}
		return &FamilyTree{
			ID:            unit.ID,
			FamilyHead:    unit.FamilyHead,
			City:          unit.City,
			CommunityName: unit.CommunityName,
			Generations:   directory.GroupByGeneration(unit),
		}, nil
	}
	return nil, ErrFamilyNotFound
}

func (s *DirectoryService) loadFamilies(ctx context.Context) (directory.AggregateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	rows, err := s.rows.ListMemberRows(ctx)
	if err != nil {
		return directory.AggregateResult{}, fmt.Errorf("failed to load member rows: %w", err)
	}

	return s.aggregate(rows), nil
}

func (s *DirectoryService) aggregate(rows []models.MemberRow) directory.AggregateResult {
	result := directory.Aggregate(rows, directory.AggregateOptions{
		DefaultCommunity: s.defaultCommunity,
		CurrentYear:      s.now().Year(),
	})
	if result.Dropped > 0 {
		log.Printf("Skipped %d member rows with no owning account", result.Dropped)
	}
	return result
}
