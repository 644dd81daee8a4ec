package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/99minutos/admin-users/internal/core/domain"
	"github.com/99minutos/admin-users/internal/core/ports"
)

// userRecordRules are the structural checks applied to every stored record
// before it is projected.
type userRecordRules struct {
	ID    string `validate:"required"`
	Email string `validate:"required,email"`
	Role  string `validate:"omitempty,oneof=admin user"`
}

// UserService lists user records for administrators. Callers are expected to
// have passed the Guard; no authorization happens here.
type UserService struct {
	store    ports.UserStore
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserService(store ports.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{store: store, validate: validator.New(), logger: logger}
}

// ListUsers returns every stored user projected to a UserSummary, in store
// order. A store failure or a malformed record fails the whole call.
func (s *UserService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read users")
		return nil, fmt.Errorf("list users: %w: %v", domain.ErrInternal, err)
	}

	out := make([]ports.UserSummary, 0, len(users))
	for i, u := range users {
		if err := s.validate.Struct(userRecordRules{ID: u.ID, Email: u.Email, Role: u.Role}); err != nil {
			s.logger.Error().Err(err).Int("index", i).Str("user_id", u.ID).Msg("malformed user record")
			return nil, fmt.Errorf("list users: record %d: %w: %v", i, domain.ErrInternal, err)
		}
		out = append(out, toSummary(u))
	}

	s.logger.Debug().Int("total", len(out)).Msg("users listed")
	return out, nil
}

func toSummary(u domain.User) ports.UserSummary {
	return ports.UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.EffectiveRole(),
		Company:       u.Company,
		TaxID:         u.TaxID,
		CreatedAt:     u.CreatedAt,
		EmailVerified: u.EmailVerified,
	}
}
