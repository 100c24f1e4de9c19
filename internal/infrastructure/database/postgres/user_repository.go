package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"maverick-bank/internal/domain/customer"
	"maverick-bank/internal/domain/employee"
	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	constraintUsersUsername = "users_username_key"
	constraintUsersEmail    = "users_email_key"
)

type UserRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ identity.UserRepository = (*UserRepository)(nil)

var _ customer.UserDirectory = (*UserRepository)(nil)

var _ employee.UserDirectory = (*UserRepository)(nil)

func NewUserRepository(db DBPool, logger *slog.Logger) *UserRepository {
	if db == nil {
		panic("DBPool cannot be nil for UserRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewUserRepository, using default stderr handler")
	}
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "UserRepository"),
	}
}

func (r *UserRepository) Save(ctx context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user cannot be nil", apperrors.ErrInvalidArgument)
	}

	if user.UserID == 0 {
		return r.createUser(ctx, user)
	}
	return r.updateUser(ctx, user)
}

func (r *UserRepository) createUser(ctx context.Context, user *identity.User) error {
	r.logger.InfoContext(ctx, "Attempting to insert new user", slog.String("username", user.Username))

	query := `
        INSERT INTO users (username, password_hash, email, role_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.RoleID,
	).Scan(&user.UserID)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			if mapped := r.mapUniqueViolation(ctx, err); mapped != nil {
				return mapped
			}
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert user: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "User inserted successfully", slog.Int64("userID", user.UserID))
	return nil
}

func (r *UserRepository) updateUser(ctx context.Context, user *identity.User) error {
	r.logger.InfoContext(ctx, "Attempting to update user", slog.Int64("userID", user.UserID))

	query := `
        UPDATE users
        SET username = $1,
            password_hash = $2,
            email = $3,
            role_id = $4
        WHERE id = $5`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.RoleID,
		user.UserID,
	)

	if err != nil {
		if mapped := r.mapUniqueViolation(ctx, err); mapped != nil {
			return mapped
		}
		r.logger.ErrorContext(ctx, "Failed to update user", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update user: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, user likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "User updated successfully")
	return nil
}

// mapUniqueViolation turns commit-time uniqueness conflicts into the same
// validation errors the service's pre-checks produce, so racing registrations
// surface identically to a failed pre-check.
func (r *UserRepository) mapUniqueViolation(ctx context.Context, err error) error {
	switch {
	case uniqueConstraint(err, constraintUsersUsername):
		r.logger.WarnContext(ctx, "Unique constraint violation on username")
		return apperrors.NewValidationError("username", "Username already exists")
	case uniqueConstraint(err, constraintUsersEmail):
		r.logger.WarnContext(ctx, "Unique constraint violation on email")
		return apperrors.NewValidationError("email", "Email already exists")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int64) (*identity.User, error) {
	query := `
        SELECT id, username, password_hash, email, role_id
        FROM users
        WHERE id = $1`

	return r.scanUser(ctx, query, userID)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	query := `
        SELECT id, username, password_hash, email, role_id
        FROM users
        WHERE username = $1`

	return r.scanUser(ctx, query, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	query := `
        SELECT id, username, password_hash, email, role_id
        FROM users
        WHERE email = $1`

	return r.scanUser(ctx, query, email)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*identity.User, error) {
	var user identity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.RoleID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "User not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan user", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get user: %w", apperrors.ErrDatabase, err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*identity.User, error) {
	query := `
        SELECT id, username, password_hash, email, role_id
        FROM users
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query users", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query users: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	users := make([]*identity.User, 0)
	for rows.Next() {
		var user identity.User
		err := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.PasswordHash,
			&user.Email,
			&user.RoleID,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan user row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan user row: %w", apperrors.ErrDatabase, err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating user rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating user rows: %w", apperrors.ErrDatabase, err)
	}
	return users, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check user existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check user existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

// Delete removes the user row; linked customer and bank-employee profiles go
// with it through the ON DELETE CASCADE foreign keys.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete user", slog.Int64("userID", userID))

	query := `DELETE FROM users WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete user", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete user: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, user likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "User deleted successfully")
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count users", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count users: %w", apperrors.ErrDatabase, err)
	}
	return count, nil
}
