package store

import (
	"context"
	"database/sql"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/google/uuid"
)

// BookStore defines the interface for book catalog persistence.
// Books are shared across users, not owned per-user.
type BookStore interface {
	// Create saves a new book to the store.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// List returns all books in the catalog, oldest first.
	List(ctx context.Context) ([]*domain.Book, error)

	// Update saves changes to an existing book.
	// Returns ErrBookNotFound if the book does not exist.
	// Returns validation errors from the domain Book if data is invalid.
	Update(ctx context.Context, book *domain.Book) error

	// UpdateProgress writes a book's current page and derived reading
	// progress in a single statement so the pair can never diverge.
	// Returns ErrBookNotFound if the book does not exist.
	UpdateProgress(ctx context.Context, id uuid.UUID, currentPage int, readingProgress float64) error

	// Delete removes a book from the store by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountInProgress returns the number of books, catalog-wide, with
	// reading progress strictly between 0 and 100 percent.
	CountInProgress(ctx context.Context) (int, error)

	// WithTx returns a new BookStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) BookStore
}
