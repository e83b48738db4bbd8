package repository

import (
	"context"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
)

// UserRepository defines the interface for credential persistence.
// Create must fail with ErrDuplicate when the email is already registered;
// GetByEmail returns ErrNotFound for unknown emails.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
