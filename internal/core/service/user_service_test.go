package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubUserStore struct {
	users []domain.User
	err   error
	calls int
}

func (s *stubUserStore) GetAll(_ context.Context) ([]domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func ana() domain.User {
	return domain.User{
		ID:            "1",
		Name:          "Ana",
		Email:         "ana@x.com",
		PasswordHash:  "$2a$10$secret",
		Company:       "Acme",
		TaxID:         "123",
		CreatedAt:     t0,
		EmailVerified: true,
	}
}

// ---------------------------------------------------------------------------
// ListUsers tests
// ---------------------------------------------------------------------------

func TestUserService_ListUsers_ProjectsRecord(t *testing.T) {
	svc := NewUserService(&stubUserStore{users: []domain.User{ana()}}, zerolog.Nop())

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}

	s := got[0]
	if s.ID != "1" || s.Name != "Ana" || s.Email != "ana@x.com" || s.Company != "Acme" || s.TaxID != "123" {
		t.Errorf("unexpected summary: %+v", s)
	}
	if !s.CreatedAt.Equal(t0) || !s.EmailVerified {
		t.Errorf("timestamps/verification not copied: %+v", s)
	}
	if s.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, s.Role)
	}
}

func TestUserService_ListUsers_KeepsExplicitRole(t *testing.T) {
	admin := ana()
	admin.ID = "2"
	admin.Role = domain.RoleAdmin
	svc := NewUserService(&stubUserStore{users: []domain.User{admin}}, zerolog.Nop())

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %q", got[0].Role)
	}
}

func TestUserService_ListUsers_PreservesOrderAndIsIdempotent(t *testing.T) {
	a, b, c := ana(), ana(), ana()
	b.ID, b.Email = "2", "bruno@x.com"
	c.ID, c.Email = "3", "carla@x.com"
	svc := NewUserService(&stubUserStore{users: []domain.User{c, a, b}}, zerolog.Nop())

	first, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("listing is not idempotent:\n%+v\n%+v", first, second)
	}
	ids := []string{first[0].ID, first[1].ID, first[2].ID}
	if !reflect.DeepEqual(ids, []string{"3", "1", "2"}) {
		t.Errorf("store order not preserved: %v", ids)
	}
}

func TestUserService_ListUsers_EmptyStore(t *testing.T) {
	svc := NewUserService(&stubUserStore{}, zerolog.Nop())

	got, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUserService_ListUsers_StoreError(t *testing.T) {
	svc := NewUserService(&stubUserStore{err: errors.New("connection refused")}, zerolog.Nop())

	got, err := svc.ListUsers(context.Background())
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %+v", got)
	}
}

func TestUserService_ListUsers_MalformedRecord(t *testing.T) {
	cases := map[string]func(u *domain.User){
		"missing id":    func(u *domain.User) { u.ID = "" },
		"invalid email": func(u *domain.User) { u.Email = "not-an-email" },
		"unknown role":  func(u *domain.User) { u.Role = "superuser" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			bad := ana()
			bad.ID = "2"
			mutate(&bad)
			svc := NewUserService(&stubUserStore{users: []domain.User{ana(), bad}}, zerolog.Nop())

			got, err := svc.ListUsers(context.Background())
			if !errors.Is(err, domain.ErrInternal) {
				t.Fatalf("expected ErrInternal, got %v", err)
			}
			if got != nil {
				t.Fatalf("expected no partial result, got %+v", got)
			}
		})
	}
}
