// Package memory holds the in-process user store used when no database is
// configured. Records live only as long as the process.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// UserStore keeps users in insertion order.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserStore(seed ...domain.User) *UserStore {
	s := &UserStore{}
	for _, u := range seed {
		s.Add(u)
	}
	return s
}

// Add appends a user, assigning an ID and creation time when missing.
func (s *UserStore) Add(u domain.User) domain.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return u
}

// GetAll returns a copy of every stored user.
func (s *UserStore) GetAll(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// seedUser is the on-disk seed format. Password hashes are never read from
// seed files.
type seedUser struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Company       string    `json:"company"`
	TaxID         string    `json:"taxId"`
	CreatedAt     time.Time `json:"createdAt"`
	EmailVerified bool      `json:"emailVerified"`
}

// LoadSeed reads a JSON array of users from r and adds them in order. It
// returns the number of users added.
func (s *UserStore) LoadSeed(r io.Reader) (int, error) {
	var seed []seedUser
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return 0, fmt.Errorf("decode seed users: %w", err)
	}
	for _, su := range seed {
		s.Add(domain.User{
			ID:            su.ID,
			Name:          su.Name,
			Email:         su.Email,
			Role:          su.Role,
			Company:       su.Company,
			TaxID:         su.TaxID,
			CreatedAt:     su.CreatedAt,
			EmailVerified: su.EmailVerified,
		})
	}
	return len(seed), nil
}
