package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type RoleRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ identity.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(db DBPool, logger *slog.Logger) *RoleRepository {
	if db == nil {
		panic("DBPool cannot be nil for RoleRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewRoleRepository, using default stderr handler")
	}
	return &RoleRepository{
		db:     db,
		logger: logger.With("component", "RoleRepository"),
	}
}

func (r *RoleRepository) FindByID(ctx context.Context, roleID int64) (*identity.Role, error) {
	query := `SELECT id, name FROM roles WHERE id = $1`

	var role identity.Role
	err := r.db.QueryRow(ctx, query, roleID).Scan(&role.RoleID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Role not found", slog.Int64("roleID", roleID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan role by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get role by ID: %w", apperrors.ErrDatabase, err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	query := `SELECT id, name FROM roles WHERE name = $1`

	var role identity.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.RoleID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Role not found by name", slog.String("name", name))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan role by name", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get role by name: %w", apperrors.ErrDatabase, err)
	}
	return &role, nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]*identity.Role, error) {
	query := `SELECT id, name FROM roles ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query roles", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query roles: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	roles := make([]*identity.Role, 0)
	for rows.Next() {
		var role identity.Role
		if err := rows.Scan(&role.RoleID, &role.Name); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan role row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan role row: %w", apperrors.ErrDatabase, err)
		}
		roles = append(roles, &role)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating role rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating role rows: %w", apperrors.ErrDatabase, err)
	}
	return roles, nil
}
