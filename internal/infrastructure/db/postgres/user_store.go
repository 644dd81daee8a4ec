package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/99minutos/admin-users/internal/core/domain"
)

const listUsersQuery = `
	SELECT id, name, email, password_hash, role, company, tax_id, created_at, email_verified
	FROM users
	ORDER BY created_at, id`

// UserStore reads user records from the users table.
type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

type userRow struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Email         string         `db:"email"`
	PasswordHash  sql.NullString `db:"password_hash"`
	Role          sql.NullString `db:"role"`
	Company       sql.NullString `db:"company"`
	TaxID         sql.NullString `db:"tax_id"`
	CreatedAt     time.Time      `db:"created_at"`
	EmailVerified bool           `db:"email_verified"`
}

func (s *UserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, r := range rows {
		users[i] = r.toDomain()
	}
	return users, nil
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		PasswordHash:  r.PasswordHash.String,
		Role:          r.Role.String,
		Company:       r.Company.String,
		TaxID:         r.TaxID.String,
		CreatedAt:     r.CreatedAt.UTC(),
		EmailVerified: r.EmailVerified,
	}
}
