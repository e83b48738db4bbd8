package entity

import (
	"time"
)

// Book is the catalog aggregate. Books carry no relation to the user that
// created them; CoverURL is populated by the cover upload flow.
type Book struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Author        string    `json:"author"`
	PublishedYear int       `json:"published_year"`
	BookSummary   string    `json:"book_summary"`
	CoverURL      string    `json:"cover_url,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
