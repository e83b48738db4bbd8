package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	repo "github.com/shashankrushiya/bookstore-api/internal/domain/repository"
	"github.com/shashankrushiya/bookstore-api/pkg/helpers"
)

var ErrBookNotFound = errors.New("book not found")

// BookService executes the catalog CRUD contract. Concurrent updates to
// the same id are last-write-wins; there is no optimistic concurrency
// token (known limitation).
type BookService struct {
	Repo         repo.BookRepository
	GCS          *storage.Client
	GCSBucket    string
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESBooksIndex string
}

func NewBookService(r repo.BookRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, es *elasticsearch.Client, esBooksIndex string) *BookService {
	return &BookService{
		Repo:         r,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		Logger:       logger,
		ES:           es,
		ESBooksIndex: esBooksIndex,
	}
}

type CreateBookInput struct {
	Name          string
	Author        string
	PublishedYear int
	BookSummary   string
}

// UpdateBookInput carries a partial update: nil fields leave the stored
// value unchanged.
type UpdateBookInput struct {
	Name          *string
	Author        *string
	PublishedYear *int
	BookSummary   *string
}

func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*entity.Book, error) {
	b := &entity.Book{
		Name:          in.Name,
		Author:        in.Author,
		PublishedYear: in.PublishedYear,
		BookSummary:   in.BookSummary,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	_ = s.indexBook(ctx, b)
	return b, nil
}

func (s *BookService) Get(ctx context.Context, id int64) (*entity.Book, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BookService) List(ctx context.Context) ([]entity.Book, error) {
	return s.Repo.GetAll(ctx)
}

// Update merges only the provided fields into the stored record. An empty
// field set is an idempotent no-op that still re-persists the record.
func (s *BookService) Update(ctx context.Context, id int64, in UpdateBookInput) (*entity.Book, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.PublishedYear != nil {
		b.PublishedYear = *in.PublishedYear
	}
	if in.BookSummary != nil {
		b.BookSummary = *in.BookSummary
	}
	if err := s.Repo.Update(ctx, b); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	_ = s.indexBook(ctx, b)
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

// UploadCover streams a cover image to GCS and stores the public URL.
func (s *BookService) UploadCover(ctx context.Context, id int64, r io.Reader, filename, contentType string) (*entity.Book, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", strconv.FormatInt(id, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	b.CoverURL = url
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}
	_ = s.indexBook(ctx, b)
	return b, nil
}

func (s *BookService) indexBook(ctx context.Context, b *entity.Book) error {
	if s.ES == nil || s.ESBooksIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":             b.ID,
		"name":           b.Name,
		"author":         b.Author,
		"published_year": b.PublishedYear,
		"book_summary":   b.BookSummary,
		"updated_at":     b.UpdatedAt.Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESBooksIndex,
		DocumentID: strconv.FormatInt(b.ID, 10),
		Body:       strings.NewReader(string(body)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("book_id", b.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("book_id", b.ID).Warn("es index response error")
	}
	return nil
}

func (s *BookService) removeFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESBooksIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("book_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match over name, author and summary.
func (s *BookService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "author", "book_summary"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESBooksIndex),
		s.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
