package users

import "context"

var (
	ErrNotFound   = errNotFound{}
	ErrEmailTaken = errEmailTaken{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type errEmailTaken struct{}

func (errEmailTaken) Error() string { return "email already registered" }

type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
