package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"maverick-bank/internal/domain/customer"
	"maverick-bank/internal/domain/employee"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const constraintCustomersUserID = "customers_user_id_key"

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

var _ employee.CustomerLookup = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.CustomerID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.Int64("userID", cust.UserID))

	query := `
        INSERT INTO customers (name, gender, contact_number, address, date_of_birth, aadhar_number, pan_number, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		cust.Name,
		cust.Gender,
		cust.ContactNumber,
		cust.Address,
		cust.DateOfBirth,
		cust.AadharNumber,
		cust.PanNumber,
		cust.UserID,
	).Scan(&cust.CustomerID)

	if err != nil {
		if uniqueConstraint(err, constraintCustomersUserID) {
			r.logger.WarnContext(ctx, "Unique constraint violation on customer user link")
			return apperrors.NewValidationError("userId", "User already has a customer profile")
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.CustomerID))

	query := `
        UPDATE customers
        SET name = $1,
            gender = $2,
            contact_number = $3,
            address = $4,
            date_of_birth = $5,
            aadhar_number = $6,
            pan_number = $7
        WHERE id = $8`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.Name,
		cust.Gender,
		cust.ContactNumber,
		cust.Address,
		cust.DateOfBirth,
		cust.AadharNumber,
		cust.PanNumber,
		cust.CustomerID,
	)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	query := `
        SELECT id, name, gender, contact_number, address, date_of_birth, aadhar_number, pan_number, user_id
        FROM customers
        WHERE id = $1`

	return r.scanCustomer(ctx, query, customerID)
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID int64) (*customer.Customer, error) {
	query := `
        SELECT id, name, gender, contact_number, address, date_of_birth, aadhar_number, pan_number, user_id
        FROM customers
        WHERE user_id = $1`

	return r.scanCustomer(ctx, query, userID)
}

func (r *CustomerRepository) scanCustomer(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Gender,
		&cust.ContactNumber,
		&cust.Address,
		&cust.DateOfBirth,
		&cust.AadharNumber,
		&cust.PanNumber,
		&cust.UserID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer: %w", apperrors.ErrDatabase, err)
	}
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	query := `
        SELECT id, name, gender, contact_number, address, date_of_birth, aadhar_number, pan_number, user_id
        FROM customers
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.CustomerID,
			&cust.Name,
			&cust.Gender,
			&cust.ContactNumber,
			&cust.Address,
			&cust.DateOfBirth,
			&cust.AadharNumber,
			&cust.PanNumber,
			&cust.UserID,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, customerID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *CustomerRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE user_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence by user", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence by user: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	query := `DELETE FROM customers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count customers", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count customers: %w", apperrors.ErrDatabase, err)
	}
	return count, nil
}
