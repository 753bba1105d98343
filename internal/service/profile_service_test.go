package service

import (
	"context"
	"errors"
	"testing"

	"familydirectory/internal/models"
	"familydirectory/internal/validation"
)

func TestProfileService(t *testing.T) {
	store := newFakeProfileStore(models.Profile{ID: "admin", FullName: "Samaj Admin", IsAdmin: true})
	svc := NewProfileService(store)
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, "acct-1"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrProfileNotFound", err)
	}

	p, err := svc.UpdateProfile(ctx, "acct-1", ProfileInput{FullName: " Ramesh Jain ", City: "Bhopal", CommunityName: "Jain Samaj"})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if p.FullName != "Ramesh Jain" || p.City != "Bhopal" || p.IsAdmin {
		t.Errorf("unexpected profile: %+v", p)
	}

	admin, err := svc.UpdateProfile(ctx, "admin", ProfileInput{FullName: "Samaj Office"})
	if err != nil {
		t.Fatalf("UpdateProfile(admin) error: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("profile update cleared the admin flag")
	}

	var verr validation.ValidationError
	if _, err := svc.UpdateProfile(ctx, "acct-1", ProfileInput{FullName: ""}); !errors.As(err, &verr) {
		t.Errorf("UpdateProfile() error = %v, want ValidationError", err)
	}
}
