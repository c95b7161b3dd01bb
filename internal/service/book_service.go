package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
)

// recentSessionLimit caps the session history returned with a book detail.
const recentSessionLimit = 5

// CreateBookInput carries the fields for adding a book to the catalog.
type CreateBookInput struct {
	Title       string
	Author      string
	Category    string
	Description string
	CoverImage  string
	TotalPages  int
}

// BookDetail is a book together with the most recent study sessions
// that reference it.
type BookDetail struct {
	Book           *domain.Book
	RecentSessions []*domain.StudySession
}

// BookService owns the shared book catalog and the reading-progress
// invariant: the current page is clamped to the page count and the derived
// percentage is recomputed on every progress write, with both fields
// stored atomically.
type BookService struct {
	books    store.BookStore
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewBookService creates a new BookService.
func NewBookService(books store.BookStore, sessions store.SessionStore, logger *slog.Logger) *BookService {
	if books == nil {
		panic("book store cannot be nil")
	}
	if sessions == nil {
		panic("session store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BookService{
		books:    books,
		sessions: sessions,
		logger:   logger.With(slog.String("component", "book_service")),
	}
}

// CreateBook validates and stores a new book in the shared catalog.
func (s *BookService) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	book, err := domain.NewBook(
		input.Title,
		input.Author,
		input.Category,
		input.Description,
		input.CoverImage,
		input.TotalPages,
	)
	if err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

// ListBooks returns the whole catalog.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.books.List(ctx)
}

// GetBook retrieves a book and the most recent sessions referencing it.
func (s *BookService) GetBook(ctx context.Context, bookID uuid.UUID) (*BookDetail, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	recent, err := s.sessions.ListRecentByBook(ctx, bookID, recentSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent sessions for book: %w", err)
	}

	return &BookDetail{Book: book, RecentSessions: recent}, nil
}

// UpdateProgress records a new current page for a book, clamping to the
// page count, and recomputes the derived reading-progress percentage.
// Page and percentage are persisted together in a single write.
//
// Returns domain.ErrNegativeCurrentPage for negative input and
// domain.ErrBookPageCountUnset when the book has no page count.
func (s *BookService) UpdateProgress(
	ctx context.Context,
	bookID uuid.UUID,
	newCurrentPage int,
) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := book.ApplyProgress(newCurrentPage); err != nil {
		return nil, err
	}

	if err := s.books.UpdateProgress(ctx, bookID, book.CurrentPage, book.ReadingProgress); err != nil {
		return nil, fmt.Errorf("failed to persist book progress: %w", err)
	}

	return book, nil
}
