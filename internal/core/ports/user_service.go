package ports

import (
	"context"
	"time"
)

// UserSummary is the public-safe projection of a domain.User. Its field set is
// fixed and never includes authentication secrets.
type UserSummary struct {
	ID            string
	Name          string
	Email         string
	Role          string
	Company       string
	TaxID         string
	CreatedAt     time.Time
	EmailVerified bool
}

// UserService defines the admin use cases over user records.
type UserService interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
}
