package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// ISessionRepository abstracts the durable slot holding the active identity.
//
// Get returns nil with a nil error when no session is stored. Write failures
// are the repository's problem to report; callers log and continue, a broken
// slot never blocks the in-memory login.

type ISessionRepository interface {
	Get(ctx context.Context) (*entities.User, error)
	Save(ctx context.Context, u entities.User) error
	Clear(ctx context.Context) error
}
