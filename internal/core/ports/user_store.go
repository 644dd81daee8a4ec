package ports

import (
	"context"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// UserStore is the read capability the listing service needs from persistence.
// Implementations return records in their natural order.
type UserStore interface {
	GetAll(ctx context.Context) ([]domain.User, error)
}
