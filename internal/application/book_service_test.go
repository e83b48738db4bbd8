package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	"github.com/shashankrushiya/bookstore-api/internal/domain/repository"
)

type memBookRepo struct {
	mu      sync.Mutex
	books   map[int64]entity.Book
	seq     int64
	updates int
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{books: make(map[int64]entity.Book)}
}

func (r *memBookRepo) Create(ctx context.Context, b *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = r.seq
	r.books[b.ID] = *b
	return nil
}

func (r *memBookRepo) GetByID(ctx context.Context, id int64) (*entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *memBookRepo) GetAll(ctx context.Context) ([]entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Book, 0, len(r.books))
	for id := int64(1); id <= r.seq; id++ {
		if b, ok := r.books[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookRepo) Update(ctx context.Context, b *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; !ok {
		return repository.ErrNotFound
	}
	r.books[b.ID] = *b
	r.updates++
	return nil
}

func (r *memBookRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newTestBookService(repo repository.BookRepository) *BookService {
	return NewBookService(repo, nil, "", nil, nil, "")
}

func createTestBook(t *testing.T, svc *BookService) *entity.Book {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateBookInput{
		Name:          "N",
		Author:        "A",
		PublishedYear: 2020,
		BookSummary:   "S",
	})
	require.NoError(t, err)
	return b
}

func TestCreateAssignsID(t *testing.T) {
	svc := newTestBookService(newMemBookRepo())

	b := createTestBook(t, svc)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "N", b.Name)

	got, err := svc.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestListEmptyIsValid(t *testing.T) {
	svc := newTestBookService(newMemBookRepo())

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotNil(t, books)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := newTestBookService(newMemBookRepo())
	b := createTestBook(t, svc)

	got, err := svc.Update(context.Background(), b.ID, UpdateBookInput{Name: strPtr("N2")})
	require.NoError(t, err)

	// only the supplied field changes
	assert.Equal(t, "N2", got.Name)
	assert.Equal(t, "A", got.Author)
	assert.Equal(t, 2020, got.PublishedYear)
	assert.Equal(t, "S", got.BookSummary)

	got, err = svc.Update(context.Background(), b.ID, UpdateBookInput{
		Author:        strPtr("A2"),
		PublishedYear: intPtr(2021),
	})
	require.NoError(t, err)
	assert.Equal(t, "N2", got.Name)
	assert.Equal(t, "A2", got.Author)
	assert.Equal(t, 2021, got.PublishedYear)
}

func TestUpdateEmptyFieldSetIsIdempotent(t *testing.T) {
	repo := newMemBookRepo()
	svc := newTestBookService(repo)
	b := createTestBook(t, svc)

	got, err := svc.Update(context.Background(), b.ID, UpdateBookInput{})
	require.NoError(t, err)
	assert.Equal(t, b.Name, got.Name)
	assert.Equal(t, b.Author, got.Author)
	assert.Equal(t, b.PublishedYear, got.PublishedYear)
	assert.Equal(t, b.BookSummary, got.BookSummary)
	// the unchanged record was still re-persisted
	assert.Equal(t, 1, repo.updates)
}

func TestNotFoundConsistency(t *testing.T) {
	svc := newTestBookService(newMemBookRepo())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.Update(context.Background(), 99, UpdateBookInput{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrBookNotFound)

	err = svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := newTestBookService(newMemBookRepo())
	b := createTestBook(t, svc)

	require.NoError(t, svc.Delete(context.Background(), b.ID))

	_, err := svc.Get(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	err = svc.Delete(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
