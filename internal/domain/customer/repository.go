package customer

import (
	"context"
)

// Repository abstracts customer persistence. Implementations return
// apperrors.ErrNotFound for absent rows and translate unique-constraint
// violations on the user link into validation errors.
type Repository interface {
	Save(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindByUserID(ctx context.Context, userID int64) (*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	ExistsByID(ctx context.Context, customerID int64) (bool, error)

	Delete(ctx context.Context, customerID int64) error

	Count(ctx context.Context) (int64, error)
}

// UserDirectory is the slice of the identity subsystem the customer service
// needs: existence of the user a profile binds to.
type UserDirectory interface {
	ExistsByID(ctx context.Context, userID int64) (bool, error)
}

// EmployeeLookup answers whether a user already holds a bank-employee
// profile; used when dual profiles are disallowed.
type EmployeeLookup interface {
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
}
