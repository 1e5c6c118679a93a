package library

import "errors"

const (
	// MinYear doubles as the "no year filter applied" sentinel used by Search.
	MinYear = 1900
	MaxYear = 2100
)

var (
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrEmptyAuthor    = errors.New("author must not be empty")
	ErrEmptyGenre     = errors.New("genre must not be empty")
	ErrYearOutOfRange = errors.New("year must be between 1900 and 2100")
)

// Book is one catalog entry. JSON field names match the persisted document
// format, which predates this implementation.
type Book struct {
	Title  string `json:"Title"`
	Author string `json:"Author"`
	Year   int    `json:"Year"`
	Genre  string `json:"Genre"`
	Read   bool   `json:"Read"`
}

// Validate checks the required fields and the year range. It is meant to be
// called at the input boundary, before a book enters the library.
func (b Book) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if b.Author == "" {
		return ErrEmptyAuthor
	}
	if b.Genre == "" {
		return ErrEmptyGenre
	}
	if b.Year < MinYear || b.Year > MaxYear {
		return ErrYearOutOfRange
	}
	return nil
}
