package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"maverick-bank/internal/domain/identity"
	"maverick-bank/internal/pkg/apperrors"
)

// Uniqueness of usernames, emails, role names and profile links is enforced
// here, in the store, so it holds post-commit regardless of request
// interleaving. The services' pre-checks only exist for friendly messages.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role_id BIGINT NOT NULL REFERENCES roles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		gender TEXT,
		contact_number TEXT,
		address TEXT,
		date_of_birth DATE,
		aadhar_number TEXT,
		pan_number TEXT,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS bank_employees (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact_number TEXT,
		branch_id BIGINT,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE
	)`,
}

var seedRoleNames = []string{identity.DefaultRoleName, "EMPLOYEE", "ADMIN"}

func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Ensuring database schema exists...")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			logger.Error("Failed to apply schema statement", "error", err)
			return fmt.Errorf("%w: failed to apply schema: %w", apperrors.ErrDatabase, err)
		}
	}
	return nil
}

// SeedRoles inserts the well-known roles and verifies the default role is
// present afterwards. A missing default role is an initialization error the
// caller must treat as fatal.
func SeedRoles(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Seeding well-known roles...", "roles", seedRoleNames)

	query := `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range seedRoleNames {
		if _, err := db.Exec(ctx, query, name); err != nil {
			logger.Error("Failed to seed role", "role", name, "error", err)
			return fmt.Errorf("%w: failed to seed role %s: %w", apperrors.ErrDatabase, name, err)
		}
	}

	var defaultRoleID int64
	err := db.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, identity.DefaultRoleName).Scan(&defaultRoleID)
	if err != nil {
		logger.Error("Default role missing after seeding", "role", identity.DefaultRoleName, "error", err)
		return fmt.Errorf("%w: role %s not present after seeding: %w", apperrors.ErrRoleMissing, identity.DefaultRoleName, err)
	}

	logger.Info("Role seeding complete.", "defaultRoleID", defaultRoleID)
	return nil
}
