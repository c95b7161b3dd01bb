package api

import (
	"log/slog"
	"net/http"

	"github.com/calebmartin/chime-api/internal/api/shared"
	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/platform/logger"
	"github.com/calebmartin/chime-api/internal/service"
)

// BookDetailResponse is a book together with the most recent study
// sessions that reference it.
type BookDetailResponse struct {
	Book           *domain.Book           `json:"book"`
	RecentSessions []*domain.StudySession `json:"recent_sessions"`
}

// BookHandler handles book catalog HTTP requests. The catalog is shared;
// requests still require authentication but books are not scoped per user.
type BookHandler struct {
	bookService *service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService *service.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// ListBooks handles GET /books requests.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// CreateBook handles POST /books requests.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), service.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		TotalPages:  req.TotalPages,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("book created", slog.String("book_id", book.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// GetBook handles GET /books/{id} requests. The response includes the most
// recent study sessions recorded against the book.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	bookID, err := getPathUUID(r, "id")
	if err != nil {
		log.Warn("invalid book id", slog.String("value", r.URL.Path))
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.bookService.GetBook(r.Context(), bookID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BookDetailResponse{
		Book:           detail.Book,
		RecentSessions: detail.RecentSessions,
	})
}

// UpdateProgress handles PATCH /books/{id}/progress requests. The current
// page is clamped to the page count and the derived percentage is
// recomputed server-side.
func (h *BookHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	bookID, err := getPathUUID(r, "id")
	if err != nil {
		log.Warn("invalid book id", slog.String("value", r.URL.Path))
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateBookProgressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	book, err := h.bookService.UpdateProgress(r.Context(), bookID, *req.CurrentPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}
