package shell

import (
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/clientrec/internal/model"
)

// Session is the logged-in state of one shell login. It is created by login
// and dropped on logout.
type Session struct {
	ID        uuid.UUID
	User      model.UserSummary
	StartedAt time.Time
}

// NewSession starts a session for user.
func NewSession(user model.UserSummary, now time.Time) Session {
	return Session{
		ID:        uuid.New(),
		User:      user,
		StartedAt: now,
	}
}
