package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"familydirectory/internal/database"
	"familydirectory/internal/models"
	"familydirectory/internal/repository"
)

const backupVersion = 1

// BackupData is the complete directory snapshot written by Export
type BackupData struct {
	Version      int                   `json:"version"`
	ExportedAt   time.Time             `json:"exported_at"`
	DatabaseType string                `json:"database_type"`
	Profiles     []models.Profile      `json:"profiles"`
	Members      []models.FamilyMember `json:"members"`
}

// BackupService handles directory export and restore
type BackupService struct {
	db       *database.DB
	profiles *repository.ProfileRepository
	members  *repository.MemberRepository
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{
		db:       db,
		profiles: repository.NewProfileRepository(db),
		members:  repository.NewMemberRepository(db),
	}
}

// Export writes every profile and member to w as JSON
func (s *BackupService) Export(ctx context.Context, w io.Writer) (*BackupData, error) {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export profiles: %w", err)
	}
	rows, err := s.members.ListMemberRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export members: %w", err)
	}

	data := &BackupData{
		Version:      backupVersion,
		ExportedAt:   time.Now().UTC(),
		DatabaseType: s.db.Dialect.DriverName(),
		Profiles:     profiles,
		Members:      make([]models.FamilyMember, 0, len(rows)),
	}
	for _, row := range rows {
		data.Members = append(data.Members, row.Member)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to write backup: %w", err)
	}
	return data, nil
}

// Import restores a snapshot read from r in a single transaction.
// Records with existing IDs are overwritten; nothing is deleted.
func (s *BackupService) Import(ctx context.Context, r io.Reader) (*BackupData, error) {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	if data.Version != backupVersion {
		return nil, fmt.Errorf("unsupported backup version %d", data.Version)
	}

	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		for i := range data.Profiles {
			if err := repository.RestoreProfile(ctx, tx, &data.Profiles[i]); err != nil {
				return err
			}
		}
		for i := range data.Members {
			m := &data.Members[i]
			m.Relationship = models.ParseRelationship(string(m.Relationship))
			m.Gender = models.ParseGender(string(m.Gender))
			m.MaritalStatus = models.ParseMaritalStatus(string(m.MaritalStatus))
			if err := repository.RestoreMember(ctx, tx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import backup: %w", err)
	}

	log.Printf("Restored %d profiles and %d members (exported %s from %s)",
		len(data.Profiles), len(data.Members), data.ExportedAt.Format(time.RFC3339), data.DatabaseType)
	return &data, nil
}

// Clear deletes every member and profile
func (s *BackupService) Clear(ctx context.Context) error {
	return s.db.WithTx(ctx, func(tx *database.Tx) error {
		// Delete in reverse order of dependencies
		for _, table := range []string{"family_members", "profiles"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}
		return nil
	})
}
