package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shashankrushiya/bookstore-api/internal/application"
	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	"github.com/shashankrushiya/bookstore-api/pkg/response"
	"github.com/shashankrushiya/bookstore-api/pkg/validation"
)

const detailBookNotFound = "Book not found"

// BookService is the slice of the application layer the handler needs.
type BookService interface {
	Create(ctx context.Context, in application.CreateBookInput) (*entity.Book, error)
	Get(ctx context.Context, id int64) (*entity.Book, error)
	List(ctx context.Context) ([]entity.Book, error)
	Update(ctx context.Context, id int64, in application.UpdateBookInput) (*entity.Book, error)
	Delete(ctx context.Context, id int64) error
	UploadCover(ctx context.Context, id int64, r io.Reader, filename, contentType string) (*entity.Book, error)
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
}

type BookHandler struct {
	Svc    BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

type createBookRequest struct {
	Name          string `json:"name" binding:"required"`
	Author        string `json:"author" binding:"required"`
	PublishedYear int    `json:"published_year" binding:"required"`
	BookSummary   string `json:"book_summary" binding:"required"`
}

// updateBookRequest is a partial update; nil fields stay unchanged.
type updateBookRequest struct {
	Name          *string `json:"name"`
	Author        *string `json:"author"`
	PublishedYear *int    `json:"published_year"`
	BookSummary   *string `json:"book_summary"`
}

// A non-numeric path id names no book, so it shares the not-found contract.
func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, detailBookNotFound)
		return 0, false
	}
	return id, true
}

// Create handles POST /books/.
func (h *BookHandler) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), application.CreateBookInput{
		Name:          req.Name,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		BookSummary:   req.BookSummary,
	})
	if err != nil {
		h.internal(c, err, "create book failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// Get handles GET /books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	b, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrBookNotFound) {
			response.Detail(c, http.StatusNotFound, detailBookNotFound)
			return
		}
		h.internal(c, err, "get book failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// List handles GET /books/. An empty catalog is a valid empty array.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.internal(c, err, "list books failed")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Update handles PUT /books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	b, err := h.Svc.Update(c.Request.Context(), id, application.UpdateBookInput{
		Name:          req.Name,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		BookSummary:   req.BookSummary,
	})
	if err != nil {
		if errors.Is(err, application.ErrBookNotFound) {
			response.Detail(c, http.StatusNotFound, detailBookNotFound)
			return
		}
		h.internal(c, err, "update book failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrBookNotFound) {
			response.Detail(c, http.StatusNotFound, detailBookNotFound)
			return
		}
		h.internal(c, err, "delete book failed")
		return
	}
	response.Message(c, http.StatusOK, "Book deleted successfully")
}

// UploadCover handles POST /books/:id/cover (multipart field "file").
func (h *BookHandler) UploadCover(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Detail(c, http.StatusBadRequest, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.internal(c, err, "open upload failed")
		return
	}
	defer func() { _ = f.Close() }()

	b, err := h.Svc.UploadCover(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrBookNotFound) {
			response.Detail(c, http.StatusNotFound, detailBookNotFound)
			return
		}
		h.internal(c, err, "cover upload failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// Search handles GET /books/search?q=.
func (h *BookHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Detail(c, http.StatusBadRequest, "q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.internal(c, err, "search failed")
		return
	}
	c.JSON(http.StatusOK, hits)
}

func (h *BookHandler) internal(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Detail(c, http.StatusInternalServerError, "internal error")
}
