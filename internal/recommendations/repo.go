package recommendations

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "recommendation not found" }

type Repo interface {
	Insert(ctx context.Context, record Record) error
	Latest(ctx context.Context, userID string) (Record, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)
}
