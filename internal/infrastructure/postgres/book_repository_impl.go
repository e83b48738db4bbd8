package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	"github.com/shashankrushiya/bookstore-api/internal/domain/repository"
)

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, b *entity.Book) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO books (name, author, published_year, book_summary, cover_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, b.Name, b.Author, b.PublishedYear, b.BookSummary, b.CoverURL)

	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*entity.Book, error) {
	b := &entity.Book{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, author, published_year, book_summary, cover_url, created_at, updated_at
		FROM books
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.Name, &b.Author, &b.PublishedYear, &b.BookSummary,
		&b.CoverURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookRepository) GetAll(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, author, published_year, book_summary, cover_url, created_at, updated_at
		FROM books
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Author, &b.PublishedYear, &b.BookSummary,
			&b.CoverURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) Update(ctx context.Context, b *entity.Book) error {
	b.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE books
		SET name = $1, author = $2, published_year = $3, book_summary = $4, cover_url = $5, updated_at = $6
		WHERE id = $7
	`, b.Name, b.Author, b.PublishedYear, b.BookSummary, b.CoverURL, b.UpdatedAt, b.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BookRepository = (*BookRepository)(nil)
