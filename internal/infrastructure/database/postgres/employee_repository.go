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

const constraintEmployeesUserID = "bank_employees_user_id_key"

type BankEmployeeRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ employee.Repository = (*BankEmployeeRepository)(nil)

var _ customer.EmployeeLookup = (*BankEmployeeRepository)(nil)

func NewBankEmployeeRepository(db DBPool, logger *slog.Logger) *BankEmployeeRepository {
	if db == nil {
		panic("DBPool cannot be nil for BankEmployeeRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewBankEmployeeRepository, using default stderr handler")
	}
	return &BankEmployeeRepository{
		db:     db,
		logger: logger.With("component", "BankEmployeeRepository"),
	}
}

func (r *BankEmployeeRepository) Save(ctx context.Context, emp *employee.BankEmployee) error {
	if emp == nil {
		return fmt.Errorf("%w: bank employee cannot be nil", apperrors.ErrInvalidArgument)
	}

	if emp.EmployeeID == 0 {
		return r.createEmployee(ctx, emp)
	}
	return r.updateEmployee(ctx, emp)
}

func (r *BankEmployeeRepository) createEmployee(ctx context.Context, emp *employee.BankEmployee) error {
	r.logger.InfoContext(ctx, "Attempting to insert new bank employee", slog.Int64("userID", emp.UserID))

	query := `
        INSERT INTO bank_employees (name, contact_number, branch_id, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		emp.Name,
		emp.ContactNumber,
		emp.BranchID,
		emp.UserID,
	).Scan(&emp.EmployeeID)

	if err != nil {
		if uniqueConstraint(err, constraintEmployeesUserID) {
			r.logger.WarnContext(ctx, "Unique constraint violation on employee user link")
			return apperrors.NewValidationError("userId", "User already has a bank employee profile")
		}
		r.logger.ErrorContext(ctx, "Failed to insert bank employee", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert bank employee: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Bank employee inserted successfully", slog.Int64("employeeID", emp.EmployeeID))
	return nil
}

func (r *BankEmployeeRepository) updateEmployee(ctx context.Context, emp *employee.BankEmployee) error {
	r.logger.InfoContext(ctx, "Attempting to update bank employee", slog.Int64("employeeID", emp.EmployeeID))

	query := `
        UPDATE bank_employees
        SET name = $1,
            contact_number = $2,
            branch_id = $3,
            user_id = $4
        WHERE id = $5`

	cmdTag, err := r.db.Exec(ctx, query,
		emp.Name,
		emp.ContactNumber,
		emp.BranchID,
		emp.UserID,
		emp.EmployeeID,
	)

	if err != nil {
		if uniqueConstraint(err, constraintEmployeesUserID) {
			r.logger.WarnContext(ctx, "Unique constraint violation on employee user link")
			return apperrors.NewValidationError("userId", "User already has a bank employee profile")
		}
		r.logger.ErrorContext(ctx, "Failed to update bank employee", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update bank employee: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, bank employee likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Bank employee updated successfully")
	return nil
}

func (r *BankEmployeeRepository) FindByID(ctx context.Context, employeeID int64) (*employee.BankEmployee, error) {
	query := `
        SELECT id, name, contact_number, branch_id, user_id
        FROM bank_employees
        WHERE id = $1`

	return r.scanEmployee(ctx, query, employeeID)
}

func (r *BankEmployeeRepository) FindByUserID(ctx context.Context, userID int64) (*employee.BankEmployee, error) {
	query := `
        SELECT id, name, contact_number, branch_id, user_id
        FROM bank_employees
        WHERE user_id = $1`

	return r.scanEmployee(ctx, query, userID)
}

func (r *BankEmployeeRepository) scanEmployee(ctx context.Context, query string, arg any) (*employee.BankEmployee, error) {
	var emp employee.BankEmployee
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&emp.EmployeeID,
		&emp.Name,
		&emp.ContactNumber,
		&emp.BranchID,
		&emp.UserID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Bank employee not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan bank employee", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get bank employee: %w", apperrors.ErrDatabase, err)
	}
	return &emp, nil
}

func (r *BankEmployeeRepository) FindAll(ctx context.Context) ([]*employee.BankEmployee, error) {
	query := `
        SELECT id, name, contact_number, branch_id, user_id
        FROM bank_employees
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query bank employees", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query bank employees: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	employees := make([]*employee.BankEmployee, 0)
	for rows.Next() {
		var emp employee.BankEmployee
		err := rows.Scan(
			&emp.EmployeeID,
			&emp.Name,
			&emp.ContactNumber,
			&emp.BranchID,
			&emp.UserID,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan bank employee row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan bank employee row: %w", apperrors.ErrDatabase, err)
		}
		employees = append(employees, &emp)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating bank employee rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating bank employee rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding bank employees", slog.Int("count", len(employees)))
	return employees, nil
}

func (r *BankEmployeeRepository) ExistsByID(ctx context.Context, employeeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bank_employees WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check bank employee existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check bank employee existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *BankEmployeeRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bank_employees WHERE user_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check bank employee existence by user", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check bank employee existence by user: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *BankEmployeeRepository) Delete(ctx context.Context, employeeID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete bank employee", slog.Int64("employeeID", employeeID))

	query := `DELETE FROM bank_employees WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete bank employee", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete bank employee: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, bank employee likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Bank employee deleted successfully")
	return nil
}

func (r *BankEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bank_employees`).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count bank employees", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count bank employees: %w", apperrors.ErrDatabase, err)
	}
	return count, nil
}
