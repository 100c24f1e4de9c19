package employee

import (
	"context"
)

// Repository abstracts bank-employee persistence. Implementations return
// apperrors.ErrNotFound for absent rows and translate unique-constraint
// violations on the user link into validation errors.
type Repository interface {
	Save(ctx context.Context, emp *BankEmployee) error

	FindByID(ctx context.Context, employeeID int64) (*BankEmployee, error)

	FindByUserID(ctx context.Context, userID int64) (*BankEmployee, error)

	FindAll(ctx context.Context) ([]*BankEmployee, error)

	ExistsByID(ctx context.Context, employeeID int64) (bool, error)

	Delete(ctx context.Context, employeeID int64) error

	Count(ctx context.Context) (int64, error)
}

// UserDirectory is the slice of the identity subsystem this service needs.
type UserDirectory interface {
	ExistsByID(ctx context.Context, userID int64) (bool, error)
}

// CustomerLookup answers whether a user already holds a customer profile;
// used when dual profiles are disallowed.
type CustomerLookup interface {
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
}
