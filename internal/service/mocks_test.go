package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/calebmartin/chime-api/internal/domain"
	"github.com/calebmartin/chime-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAlarmStore mocks the store.AlarmStore interface
type MockAlarmStore struct {
	mock.Mock
}

func (m *MockAlarmStore) Create(ctx context.Context, alarm *domain.Alarm) error {
	args := m.Called(ctx, alarm)
	return args.Error(0)
}

func (m *MockAlarmStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alarm), args.Error(1)
}

func (m *MockAlarmStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	orderByTime bool,
) ([]*domain.Alarm, error) {
	args := m.Called(ctx, userID, orderByTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Alarm), args.Error(1)
}

func (m *MockAlarmStore) ListActive(ctx context.Context) ([]*domain.Alarm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Alarm), args.Error(1)
}

func (m *MockAlarmStore) Update(ctx context.Context, alarm *domain.Alarm) error {
	args := m.Called(ctx, alarm)
	return args.Error(0)
}

func (m *MockAlarmStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlarmStore) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAlarmStore) WithTx(tx *sql.Tx) store.AlarmStore {
	args := m.Called(tx)
	return args.Get(0).(store.AlarmStore)
}

// MockSessionStore mocks the store.SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.StudySession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudySession), args.Error(1)
}

func (m *MockSessionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.StudySession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudySession), args.Error(1)
}

func (m *MockSessionStore) ListRecentByBook(
	ctx context.Context,
	bookID uuid.UUID,
	limit int,
) ([]*domain.StudySession, error) {
	args := m.Called(ctx, bookID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudySession), args.Error(1)
}

func (m *MockSessionStore) Update(ctx context.Context, session *domain.StudySession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) CountStartedBetween(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionStore) SumCompletedMinutes(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	args := m.Called(tx)
	return args.Get(0).(store.SessionStore)
}

// MockBookStore mocks the store.BookStore interface
type MockBookStore struct {
	mock.Mock
}

func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Book), args.Error(1)
}

func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookStore) UpdateProgress(
	ctx context.Context,
	id uuid.UUID,
	currentPage int,
	readingProgress float64,
) error {
	args := m.Called(ctx, id, currentPage, readingProgress)
	return args.Error(0)
}

func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookStore) CountInProgress(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockBookStore) WithTx(tx *sql.Tx) store.BookStore {
	args := m.Called(tx)
	return args.Get(0).(store.BookStore)
}
