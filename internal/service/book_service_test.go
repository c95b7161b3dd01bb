package service

import (
	"context"
	"testing"
	"time"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	mockSessions := new(MockSessionStore)
	svc := NewBookService(mockBooks, mockSessions, nil)

	mockBooks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Book")).Return(nil)

	book, err := svc.CreateBook(context.Background(), CreateBookInput{
		Title:      "The Go Programming Language",
		Author:     "Donovan",
		TotalPages: 380,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookStatusAvailable, book.Status)
	assert.Equal(t, 0, book.CurrentPage)
	assert.Equal(t, 0.0, book.ReadingProgress)
	mockBooks.AssertExpectations(t)
}

func TestCreateBookRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	svc := NewBookService(mockBooks, new(MockSessionStore), nil)

	_, err := svc.CreateBook(context.Background(), CreateBookInput{Author: "Donovan"})
	assert.ErrorIs(t, err, domain.ErrEmptyBookTitle)

	mockBooks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetBookIncludesRecentSessions(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	mockSessions := new(MockSessionStore)
	svc := NewBookService(mockBooks, mockSessions, nil)

	book, err := domain.NewBook("Title", "Author", "", "", "", 100)
	require.NoError(t, err)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	session, err := domain.NewStudySession(uuid.New(), "Reading", start, 45, "", &book.ID)
	require.NoError(t, err)

	mockBooks.On("GetByID", mock.Anything, book.ID).Return(book, nil)
	mockSessions.On("ListRecentByBook", mock.Anything, book.ID, 5).
		Return([]*domain.StudySession{session}, nil)

	detail, err := svc.GetBook(context.Background(), book.ID)
	require.NoError(t, err)

	assert.Equal(t, book.ID, detail.Book.ID)
	require.Len(t, detail.RecentSessions, 1)
	assert.Equal(t, session.ID, detail.RecentSessions[0].ID)
}

func TestUpdateProgressClampsAndPersistsPair(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	svc := NewBookService(mockBooks, new(MockSessionStore), nil)

	book, err := domain.NewBook("Title", "Author", "", "", "", 200)
	require.NoError(t, err)

	mockBooks.On("GetByID", mock.Anything, book.ID).Return(book, nil)
	mockBooks.On("UpdateProgress", mock.Anything, book.ID, 200, 100.0).Return(nil)

	updated, err := svc.UpdateProgress(context.Background(), book.ID, 250)
	require.NoError(t, err)

	assert.Equal(t, 200, updated.CurrentPage)
	assert.Equal(t, 100.0, updated.ReadingProgress)
	mockBooks.AssertExpectations(t)
}

func TestUpdateProgressRejectsNegativePage(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	svc := NewBookService(mockBooks, new(MockSessionStore), nil)

	book, err := domain.NewBook("Title", "Author", "", "", "", 200)
	require.NoError(t, err)

	mockBooks.On("GetByID", mock.Anything, book.ID).Return(book, nil)

	_, err = svc.UpdateProgress(context.Background(), book.ID, -5)
	assert.ErrorIs(t, err, domain.ErrNegativeCurrentPage)
	mockBooks.AssertNotCalled(t, "UpdateProgress",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProgressWithoutPageCount(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	svc := NewBookService(mockBooks, new(MockSessionStore), nil)

	book, err := domain.NewBook("Title", "Author", "", "", "", 0)
	require.NoError(t, err)

	mockBooks.On("GetByID", mock.Anything, book.ID).Return(book, nil)

	_, err = svc.UpdateProgress(context.Background(), book.ID, 10)
	assert.ErrorIs(t, err, domain.ErrBookPageCountUnset)
}

func TestUpdateProgressUnknownBook(t *testing.T) {
	t.Parallel()
	mockBooks := new(MockBookStore)
	svc := NewBookService(mockBooks, new(MockSessionStore), nil)

	id := uuid.New()
	mockBooks.On("GetByID", mock.Anything, id).Return(nil, store.ErrBookNotFound)

	_, err := svc.UpdateProgress(context.Background(), id, 10)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}
