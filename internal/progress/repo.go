package progress

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "progress state not found" }

// Repo persists per-user progress snapshots.
type Repo interface {
	Get(ctx context.Context, userID string) (State, error)
	Save(ctx context.Context, userID string, state State) error
}
