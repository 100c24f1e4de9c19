package identity

import (
	"context"
)

// UserRepository abstracts persistence for users. Implementations return
// apperrors.ErrNotFound for absent rows; finders never return a nil user
// without an error.
type UserRepository interface {
	Save(ctx context.Context, user *User) error

	FindByID(ctx context.Context, userID int64) (*User, error)

	FindByUsername(ctx context.Context, username string) (*User, error)

	FindByEmail(ctx context.Context, email string) (*User, error)

	FindAll(ctx context.Context) ([]*User, error)

	ExistsByID(ctx context.Context, userID int64) (bool, error)

	Delete(ctx context.Context, userID int64) error

	Count(ctx context.Context) (int64, error)
}

// RoleRepository resolves the role referenced by a user. Roles are seeded
// out-of-band, so the port is read-only.
type RoleRepository interface {
	FindByID(ctx context.Context, roleID int64) (*Role, error)

	FindByName(ctx context.Context, name string) (*Role, error)

	FindAll(ctx context.Context) ([]*Role, error)
}
