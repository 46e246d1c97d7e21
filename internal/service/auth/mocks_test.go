package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/domain"
)

var (
	_ UserRepo    = &userRepoMock{}
	_ SessionRepo = &sessionRepoMock{}
)

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, username, passwordHash string) (domain.User, error)
	GetByIDFunc       func(ctx context.Context, id int64) (domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (domain.User, error)
}

func (m *userRepoMock) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	return m.CreateFunc(ctx, username, passwordHash)
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

// sessionRepoMock stores sessions in memory so the token roundtrip tests
// exercise create, lookup and delete together.
type sessionRepoMock struct {
	sessions map[uuid.UUID]domain.Session

	deleteCalls []uuid.UUID
}

func newSessionRepoMock() *sessionRepoMock {
	return &sessionRepoMock{sessions: make(map[uuid.UUID]domain.Session)}
}

func (m *sessionRepoMock) Create(ctx context.Context, userID int64, expiresAt time.Time) (domain.Session, error) {
	s := domain.Session{ID: uuid.New(), UserID: userID, ExpiresAt: expiresAt, CreatedAt: time.Now()}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return s, nil
}

func (m *sessionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls = append(m.deleteCalls, id)
	delete(m.sessions, id)
	return nil
}
