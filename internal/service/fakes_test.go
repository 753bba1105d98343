package service

import (
	"context"
	"errors"
	"fmt"

	"familydirectory/internal/models"
)

type staticRows []models.MemberRow

func (s staticRows) ListMemberRows(ctx context.Context) ([]models.MemberRow, error) {
	return s, nil
}

func (s staticRows) ListMemberRowsForUser(ctx context.Context, userID string) ([]models.MemberRow, error) {
	var out []models.MemberRow
	for _, r := range s {
		if r.Member.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// accountRows serves only single-account queries
type accountRows struct {
	staticRows
}

func (accountRows) ListMemberRows(ctx context.Context) ([]models.MemberRow, error) {
	return nil, errors.New("full directory scan")
}

// blockingRows never answers and reports the context error
type blockingRows struct{}

func (blockingRows) ListMemberRows(ctx context.Context) ([]models.MemberRow, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b blockingRows) ListMemberRowsForUser(ctx context.Context, userID string) ([]models.MemberRow, error) {
	return b.ListMemberRows(ctx)
}

type failingRows struct{}

func (failingRows) ListMemberRows(ctx context.Context) ([]models.MemberRow, error) {
	return nil, errors.New("connection refused")
}

func (f failingRows) ListMemberRowsForUser(ctx context.Context, userID string) ([]models.MemberRow, error) {
	return f.ListMemberRows(ctx)
}

type fakeMemberStore struct {
	members map[string]*models.FamilyMember
	nextID  int
}

func newFakeMemberStore(members ...models.FamilyMember) *fakeMemberStore {
	s := &fakeMemberStore{members: map[string]*models.FamilyMember{}}
	for i := range members {
		m := members[i]
		s.members[m.ID] = &m
	}
	return s
}

func (s *fakeMemberStore) ListByUser(ctx context.Context, userID string) ([]models.FamilyMember, error) {
	out := []models.FamilyMember{}
	for _, m := range s.members {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *fakeMemberStore) GetByID(ctx context.Context, id string) (*models.FamilyMember, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (s *fakeMemberStore) Create(ctx context.Context, member *models.FamilyMember) error {
	s.nextID++
	member.ID = fmt.Sprintf("m-%d", s.nextID)
	cp := *member
	s.members[member.ID] = &cp
	return nil
}

func (s *fakeMemberStore) Update(ctx context.Context, member *models.FamilyMember) error {
	cp := *member
	s.members[member.ID] = &cp
	return nil
}

func (s *fakeMemberStore) Delete(ctx context.Context, id string) error {
	delete(s.members, id)
	return nil
}

type fakeProfileStore struct {
	profiles map[string]*models.Profile
}

func newFakeProfileStore(profiles ...models.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: map[string]*models.Profile{}}
	for i := range profiles {
		p := profiles[i]
		s.profiles[p.ID] = &p
	}
	return s
}

func (s *fakeProfileStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProfileStore) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	if existing, ok := s.profiles[profile.ID]; ok {
		profile.IsAdmin = existing.IsAdmin
	}
	cp := *profile
	s.profiles[profile.ID] = &cp
	return nil
}
