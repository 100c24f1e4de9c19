package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"maverick-bank/internal/event"
	"maverick-bank/internal/pkg/apperrors"
	"maverick-bank/internal/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgUsernameExists     = "Username already exists"
	msgEmailExists        = "Email already exists"
	msgInvalidEmail       = "Invalid email format"
	msgWeakPassword       = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one digit"
	msgInvalidCredentials = "Invalid username or password"
)

type RegisterUserInput struct {
	Username string
	Password string
	Email    string
	RoleID   *int64
}

// UpdateUserInput is a partial patch: a nil field means "leave as-is". An
// explicit empty password is also left as-is, matching the legacy contract
// that fields can never be cleared through update.
type UpdateUserInput struct {
	Username *string
	Password *string
	Email    *string
	RoleID   *int64
}

type UserService interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetUserByID(ctx context.Context, userID int64) (*User, error)
	UpdateUser(ctx context.Context, userID int64, patch UpdateUserInput) (*User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

var _ UserService = (*userService)(nil)

type userService struct {
	users  UserRepository
	roles  RoleRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewUserService(users UserRepository, roles RoleRepository, pub event.EventPublisher, logger *slog.Logger) UserService {
	if users == nil {
		panic("user repository cannot be nil")
	}
	if roles == nil {
		panic("role repository cannot be nil")
	}
	if pub == nil {
		pub = event.NewNoopEventPublisher()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewUserService, using default stderr handler")
	}

	return &userService{
		users:  users,
		roles:  roles,
		pub:    pub,
		logger: logger.With(slog.String("component", "userService")),
	}
}

// RegisterUser runs every check before any write; the first failing check
// leaves nothing persisted.
func (s *userService) RegisterUser(ctx context.Context, input RegisterUserInput) (*User, error) {
	logCtx := s.logger.With(slog.String("username", input.Username))
	logCtx.InfoContext(ctx, "Attempting to register user")

	taken, err := s.usernameTaken(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		logCtx.WarnContext(ctx, "Validation failed: username already exists")
		return nil, apperrors.NewValidationError("username", msgUsernameExists)
	}

	if !validation.IsValidEmail(input.Email) {
		logCtx.WarnContext(ctx, "Validation failed: invalid email format")
		return nil, apperrors.NewValidationError("email", msgInvalidEmail)
	}

	emailTaken, err := s.emailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		logCtx.WarnContext(ctx, "Validation failed: email already exists")
		return nil, apperrors.NewValidationError("email", msgEmailExists)
	}

	if !validation.IsValidPassword(input.Password) {
		logCtx.WarnContext(ctx, "Validation failed: password does not meet strength requirements")
		return nil, apperrors.NewValidationError("password", msgWeakPassword)
	}

	role, err := s.resolveRole(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to hash password: %w", apperrors.ErrInternalServer, err)
	}

	user := &User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		RoleID:       role.RoleID,
	}

	if err := s.users.Save(ctx, user); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save new user", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully registered user, publishing registration event", slog.Int64("userID", user.UserID))
	registered := event.UserRegisteredEvent{
		Timestamp: time.Now(),
		Payload:   newUserEventPayload(user),
	}
	if pubErr := s.pub.PublishUserRegistered(ctx, registered); pubErr != nil {
		logCtx.ErrorContext(ctx, "User registered, but failed to publish registration event", slog.Any("error", pubErr))
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user as a success
// marker. No token or session is issued.
func (s *userService) Login(ctx context.Context, username, password string) (*User, error) {
	logCtx := s.logger.With(slog.String("username", username))
	logCtx.InfoContext(ctx, "Attempting login")

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Login failed: unknown username")
			return nil, apperrors.NewValidationError("", msgInvalidCredentials)
		}
		logCtx.ErrorContext(ctx, "Repository error during login", slog.Any("error", err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logCtx.WarnContext(ctx, "Login failed: password mismatch")
		return nil, apperrors.NewValidationError("", msgInvalidCredentials)
	}

	logCtx.InfoContext(ctx, "Login successful", slog.Int64("userID", user.UserID))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	logCtx := s.logger.With(slog.Int64("userID", userID))
	logCtx.DebugContext(ctx, "Fetching user by ID")

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "User not found by repository")
			return nil, apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding user", slog.Any("error", err))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, patch UpdateUserInput) (*User, error) {
	logCtx := s.logger.With(slog.Int64("userID", userID))
	logCtx.InfoContext(ctx, "Attempting to update user")

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "User not found by repository")
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if patch.Username != nil && *patch.Username != user.Username {
		taken, err := s.usernameTaken(ctx, *patch.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			logCtx.WarnContext(ctx, "Validation failed: new username already exists")
			return nil, apperrors.NewValidationError("username", msgUsernameExists)
		}
		user.Username = *patch.Username
	}

	if patch.Password != nil && *patch.Password != "" {
		if !validation.IsValidPassword(*patch.Password) {
			logCtx.WarnContext(ctx, "Validation failed: new password does not meet strength requirements")
			return nil, apperrors.NewValidationError("password", msgWeakPassword)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to hash password: %w", apperrors.ErrInternalServer, err)
		}
		user.PasswordHash = string(hash)
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if !validation.IsValidEmail(*patch.Email) {
			logCtx.WarnContext(ctx, "Validation failed: new email format invalid")
			return nil, apperrors.NewValidationError("email", msgInvalidEmail)
		}
		emailTaken, err := s.emailTaken(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if emailTaken {
			logCtx.WarnContext(ctx, "Validation failed: new email already exists")
			return nil, apperrors.NewValidationError("email", msgEmailExists)
		}
		user.Email = *patch.Email
	}

	if patch.RoleID != nil {
		role, err := s.roles.FindByID(ctx, *patch.RoleID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logCtx.WarnContext(ctx, "Role not found for update", slog.Int64("roleID", *patch.RoleID))
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}
		user.RoleID = role.RoleID
	}

	if err := s.users.Save(ctx, user); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save updated user", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully updated user, publishing update event")
	updated := event.UserUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   newUserEventPayload(user),
	}
	if pubErr := s.pub.PublishUserUpdated(ctx, updated); pubErr != nil {
		logCtx.ErrorContext(ctx, "User updated, but failed to publish update event", slog.Any("error", pubErr))
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	logCtx := s.logger.With(slog.Int64("userID", userID))
	logCtx.InfoContext(ctx, "Attempting to delete user")

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking user existence", slog.Any("error", err))
		return err
	}
	if !exists {
		logCtx.WarnContext(ctx, "User not found by repository")
		return apperrors.ErrNotFound
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to delete user", slog.Any("error", err))
		return err
	}

	logCtx.InfoContext(ctx, "Successfully deleted user, publishing deletion event")
	deleted := event.UserDeletedEvent{Timestamp: time.Now(), UserID: userID}
	if pubErr := s.pub.PublishUserDeleted(ctx, deleted); pubErr != nil {
		logCtx.ErrorContext(ctx, "User deleted, but failed to publish deletion event", slog.Any("error", pubErr))
	}
	return nil
}

// GetUserByUsername serves internal callers such as the login path. Absence
// is an explicit apperrors.ErrNotFound, never a nil user without error.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding user by username", slog.Any("error", err))
		return nil, err
	}
	return user, nil
}

func (s *userService) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.logger.ErrorContext(ctx, "Repository error checking username", slog.Any("error", err))
		return false, err
	}
	return true, nil
}

func (s *userService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.logger.ErrorContext(ctx, "Repository error checking email", slog.Any("error", err))
		return false, err
	}
	return true, nil
}

// resolveRole looks up the requested role, falling back to the CUSTOMER role
// when the request carries no role or an unknown one.
func (s *userService) resolveRole(ctx context.Context, roleID *int64) (*Role, error) {
	if roleID != nil {
		role, err := s.roles.FindByID(ctx, *roleID)
		if err == nil {
			return role, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Repository error resolving role", slog.Any("error", err))
			return nil, err
		}
		s.logger.WarnContext(ctx, "Requested role not found, falling back to default", slog.Int64("roleID", *roleID))
	}

	role, err := s.roles.FindByName(ctx, DefaultRoleName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Default role is missing from the role table")
			return nil, apperrors.NewValidationError("roleId", "Default role "+DefaultRoleName+" is missing")
		}
		return nil, err
	}
	return role, nil
}

func newUserEventPayload(user *User) event.UserEventPayload {
	if user == nil {
		return event.UserEventPayload{}
	}
	return event.UserEventPayload{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
	}
}
