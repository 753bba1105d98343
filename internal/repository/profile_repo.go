package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"familydirectory/internal/database"
	"familydirectory/internal/models"
)

// ProfileRepository handles database operations for account profiles
type ProfileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile retrieves a profile by account ID, or nil if none is stored
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, full_name, city, community_name, is_admin, created_at, updated_at
		FROM profiles WHERE id = ?
	`
	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.City,
		&profile.CommunityName,
		&profile.IsAdmin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile inserts or updates the display fields of a profile.
// The admin flag is never changed here.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO profiles (id, full_name, city, community_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	` + r.db.Dialect.UpsertClause("id", []string{"full_name", "city", "community_name", "updated_at"})

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.FullName, profile.City, profile.CommunityName, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	profile.UpdatedAt = now
	return nil
}

// ListProfiles returns every stored profile ordered by ID
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, full_name, city, community_name, is_admin, created_at, updated_at
		FROM profiles ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.City, &p.CommunityName, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}

// RestoreProfile writes a profile exactly as exported, admin flag and
// timestamps included
func RestoreProfile(ctx context.Context, q database.DBTX, p *models.Profile) error {
	cols := []string{"full_name", "city", "community_name", "is_admin", "created_at", "updated_at"}
	query := `
		INSERT INTO profiles (id, full_name, city, community_name, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	` + q.GetDialect().UpsertClause("id", cols)

	_, err := q.ExecContext(ctx, query,
		p.ID, p.FullName, p.City, p.CommunityName, p.IsAdmin, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore profile %s: %w", p.ID, err)
	}
	return nil
}
