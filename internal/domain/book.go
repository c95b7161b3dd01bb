package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BookStatus represents the lending state of a book in the shared catalog.
type BookStatus string

// Possible book status values
const (
	BookStatusAvailable BookStatus = "available"
	BookStatusBorrowed  BookStatus = "borrowed"
)

// Common validation errors for Book
var (
	ErrEmptyBookID          = errors.New("book ID cannot be empty")
	ErrEmptyBookTitle       = errors.New("book title cannot be empty")
	ErrEmptyBookAuthor      = errors.New("book author cannot be empty")
	ErrInvalidBookStatus    = errors.New("invalid book status")
	ErrNegativePageCount    = errors.New("book page count cannot be negative")
	ErrNegativeCurrentPage  = errors.New("current page cannot be negative")
	ErrCurrentPageOverTotal = errors.New("current page cannot exceed total pages")

	// ErrBookPageCountUnset is returned when reading progress is computed
	// against a book with zero or unset total pages. Callers must guard
	// before dividing.
	ErrBookPageCountUnset = errors.New("book has no page count, progress is undefined")
)

// Book represents a title in the shared catalog. Books are not owned
// per-user; reading progress is tracked on the book itself as a current
// page plus a derived percentage.
type Book struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	CoverImage      string     `json:"cover_image"`
	Status          BookStatus `json:"status"`
	TotalPages      int        `json:"total_pages"`
	CurrentPage     int        `json:"current_page"`
	ReadingProgress float64    `json:"reading_progress"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewBook creates a new Book with the given fields, status available and
// zero reading progress. Returns an error if validation fails.
func NewBook(title, author, category, description, coverImage string, totalPages int) (*Book, error) {
	book := &Book{
		ID:          uuid.New(),
		Title:       title,
		Author:      author,
		Category:    category,
		Description: description,
		CoverImage:  coverImage,
		Status:      BookStatusAvailable,
		TotalPages:  totalPages,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookID
	}

	if b.Title == "" {
		return ErrEmptyBookTitle
	}

	if b.Author == "" {
		return ErrEmptyBookAuthor
	}

	if !isValidBookStatus(b.Status) {
		return ErrInvalidBookStatus
	}

	if b.TotalPages < 0 {
		return ErrNegativePageCount
	}

	if b.CurrentPage < 0 {
		return ErrNegativeCurrentPage
	}

	if b.CurrentPage > b.TotalPages {
		return ErrCurrentPageOverTotal
	}

	return nil
}

// ApplyProgress records a new current page, clamping it to the total page
// count, and recomputes the derived reading-progress percentage. Both
// fields change together; on error the book is left untouched.
//
// Returns ErrNegativeCurrentPage for negative input and
// ErrBookPageCountUnset when the book has no total page count to divide by.
func (b *Book) ApplyProgress(newCurrentPage int) error {
	if newCurrentPage < 0 {
		return ErrNegativeCurrentPage
	}

	if b.TotalPages <= 0 {
		return ErrBookPageCountUnset
	}

	page := newCurrentPage
	if page > b.TotalPages {
		page = b.TotalPages
	}

	b.CurrentPage = page
	b.ReadingProgress = float64(page) / float64(b.TotalPages) * 100
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// InProgress reports whether the book is partway through being read.
func (b *Book) InProgress() bool {
	return b.ReadingProgress > 0 && b.ReadingProgress < 100
}

// isValidBookStatus checks if the given status is a valid BookStatus.
func isValidBookStatus(status BookStatus) bool {
	switch status {
	case BookStatusAvailable, BookStatusBorrowed:
		return true
	default:
		return false
	}
}
