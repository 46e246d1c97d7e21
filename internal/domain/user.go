package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user. PasswordHash is a bcrypt
// composite string (algorithm, cost, salt, and digest in one value) and never
// leaves the backend.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session represents a server-side login session. The browser holds a signed
// cookie referencing the session by ID; deleting the row invalidates the
// cookie regardless of its expiry.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
