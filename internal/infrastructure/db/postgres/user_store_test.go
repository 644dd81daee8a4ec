package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestUserRow_ToDomain_NullColumns(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	u := userRow{
		ID:        "1",
		Name:      "Ana",
		Email:     "ana@x.com",
		CreatedAt: created,
	}.toDomain()

	if u.Role != "" || u.Company != "" || u.TaxID != "" || u.PasswordHash != "" {
		t.Fatalf("NULL columns must map to empty strings: %+v", u)
	}
	if !u.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", u.CreatedAt)
	}
}

func TestUserRow_ToDomain_AllColumns(t *testing.T) {
	u := userRow{
		ID:            "2",
		Name:          "Root",
		Email:         "root@x.com",
		PasswordHash:  sql.NullString{String: "hash", Valid: true},
		Role:          sql.NullString{String: "admin", Valid: true},
		Company:       sql.NullString{String: "Acme", Valid: true},
		TaxID:         sql.NullString{String: "999", Valid: true},
		EmailVerified: true,
	}.toDomain()

	if u.Role != "admin" || u.Company != "Acme" || u.TaxID != "999" || u.PasswordHash != "hash" || !u.EmailVerified {
		t.Fatalf("unexpected user: %+v", u)
	}
}
