package repository

import (
	"context"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
)

// BookRepository defines the interface for book persistence.
// GetByID, Update and Delete share the ErrNotFound contract for missing ids.
type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id int64) (*entity.Book, error)
	GetAll(ctx context.Context) ([]entity.Book, error)
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
}
