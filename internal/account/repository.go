package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("username already exists")
)

// Repo abstracts the user store. The memory implementation backs tests and
// single-node dev runs; Postgres backs real deployments.
type Repo interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id string) error
}
