package employee

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"maverick-bank/internal/event"
	"maverick-bank/internal/pkg/apperrors"
	"maverick-bank/internal/pkg/validation"
)

const (
	msgUserRequired    = "User ID is required and must exist"
	msgHasCustomer     = "User already holds a customer profile"
	msgEmployeeMissing = "Bank employee not found by repository"
)

type CreateEmployeeInput struct {
	Name          string
	ContactNumber string
	BranchID      *int64
	UserID        int64
}

// UpdateEmployeeInput is a partial patch: nil fields are left as-is. An
// unknown UserID in the patch is a not-found error, never silently ignored.
type UpdateEmployeeInput struct {
	Name          *string
	ContactNumber *string
	BranchID      *int64
	UserID        *int64
}

type Service interface {
	CreateBankEmployee(ctx context.Context, input CreateEmployeeInput) (*BankEmployee, error)
	GetBankEmployeeByID(ctx context.Context, employeeID int64) (*BankEmployee, error)
	GetAllBankEmployees(ctx context.Context) ([]*BankEmployee, error)
	UpdateBankEmployee(ctx context.Context, employeeID int64, patch UpdateEmployeeInput) (*BankEmployee, error)
	DeleteBankEmployee(ctx context.Context, employeeID int64) error
	GetBankEmployeeByUserID(ctx context.Context, userID int64) (*BankEmployee, error)
}

var _ Service = (*employeeService)(nil)

type employeeService struct {
	repo              Repository
	users             UserDirectory
	customers         CustomerLookup
	pub               event.EventPublisher
	logger            *slog.Logger
	allowDualProfiles bool
}

func NewService(repo Repository, users UserDirectory, customers CustomerLookup, pub event.EventPublisher, logger *slog.Logger, allowDualProfiles bool) Service {
	if repo == nil {
		panic("employee repository cannot be nil")
	}
	if users == nil {
		panic("user directory cannot be nil")
	}
	if customers == nil {
		panic("customer lookup cannot be nil")
	}
	if pub == nil {
		pub = event.NewNoopEventPublisher()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewService, using default stderr handler")
	}

	return &employeeService{
		repo:              repo,
		users:             users,
		customers:         customers,
		pub:               pub,
		logger:            logger.With(slog.String("component", "employeeService")),
		allowDualProfiles: allowDualProfiles,
	}
}

func (s *employeeService) CreateBankEmployee(ctx context.Context, input CreateEmployeeInput) (*BankEmployee, error) {
	logCtx := s.logger.With(slog.Int64("userID", input.UserID))
	logCtx.InfoContext(ctx, "Attempting to create bank employee")

	if err := validation.RequireNonEmpty(input.Name, "name"); err != nil {
		logCtx.WarnContext(ctx, "Validation failed: name is empty")
		return nil, err
	}

	if input.UserID <= 0 {
		logCtx.WarnContext(ctx, "Validation failed: user ID missing")
		return nil, apperrors.NewValidationError("userId", msgUserRequired)
	}
	exists, err := s.users.ExistsByID(ctx, input.UserID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking user existence", slog.Any("error", err))
		return nil, err
	}
	if !exists {
		logCtx.WarnContext(ctx, "Validation failed: linked user does not exist")
		return nil, apperrors.NewValidationError("userId", msgUserRequired)
	}

	if !s.allowDualProfiles {
		hasCustomer, err := s.customers.ExistsByUserID(ctx, input.UserID)
		if err != nil {
			logCtx.ErrorContext(ctx, "Repository error checking customer profile", slog.Any("error", err))
			return nil, err
		}
		if hasCustomer {
			logCtx.WarnContext(ctx, "Validation failed: user already holds a customer profile")
			return nil, apperrors.NewValidationError("userId", msgHasCustomer)
		}
	}

	emp := &BankEmployee{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		BranchID:      input.BranchID,
		UserID:        input.UserID,
	}

	if err := s.repo.Save(ctx, emp); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save new bank employee", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully created bank employee, publishing creation event", slog.Int64("employeeID", emp.EmployeeID))
	created := event.EmployeeCreatedEvent{
		Timestamp: time.Now(),
		Payload: event.EmployeeEventPayload{
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			BranchID:   emp.BranchID,
			UserID:     emp.UserID,
		},
	}
	if pubErr := s.pub.PublishEmployeeCreated(ctx, created); pubErr != nil {
		logCtx.ErrorContext(ctx, "Bank employee created, but failed to publish creation event", slog.Any("error", pubErr))
	}

	return emp, nil
}

func (s *employeeService) GetBankEmployeeByID(ctx context.Context, employeeID int64) (*BankEmployee, error) {
	logCtx := s.logger.With(slog.Int64("employeeID", employeeID))
	logCtx.DebugContext(ctx, "Fetching bank employee by ID")

	emp, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, msgEmployeeMissing)
			return nil, apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding bank employee", slog.Any("error", err))
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) GetAllBankEmployees(ctx context.Context) ([]*BankEmployee, error) {
	s.logger.DebugContext(ctx, "Fetching all bank employees")

	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing bank employees", slog.Any("error", err))
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) UpdateBankEmployee(ctx context.Context, employeeID int64, patch UpdateEmployeeInput) (*BankEmployee, error) {
	logCtx := s.logger.With(slog.Int64("employeeID", employeeID))
	logCtx.InfoContext(ctx, "Attempting to update bank employee")

	emp, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, msgEmployeeMissing)
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		if err := validation.RequireNonEmpty(*patch.Name, "name"); err != nil {
			return nil, err
		}
		emp.Name = *patch.Name
	}
	if patch.ContactNumber != nil {
		emp.ContactNumber = *patch.ContactNumber
	}
	if patch.BranchID != nil {
		emp.BranchID = patch.BranchID
	}
	if patch.UserID != nil {
		exists, err := s.users.ExistsByID(ctx, *patch.UserID)
		if err != nil {
			logCtx.ErrorContext(ctx, "Repository error checking user existence", slog.Any("error", err))
			return nil, err
		}
		if !exists {
			logCtx.WarnContext(ctx, "Linked user not found for update", slog.Int64("userID", *patch.UserID))
			return nil, apperrors.ErrNotFound
		}
		emp.UserID = *patch.UserID
	}

	if err := s.repo.Save(ctx, emp); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save updated bank employee", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully updated bank employee")
	return emp, nil
}

func (s *employeeService) DeleteBankEmployee(ctx context.Context, employeeID int64) error {
	logCtx := s.logger.With(slog.Int64("employeeID", employeeID))
	logCtx.InfoContext(ctx, "Attempting to delete bank employee")

	exists, err := s.repo.ExistsByID(ctx, employeeID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking bank employee existence", slog.Any("error", err))
		return err
	}
	if !exists {
		logCtx.WarnContext(ctx, msgEmployeeMissing)
		return apperrors.ErrNotFound
	}

	if err := s.repo.Delete(ctx, employeeID); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to delete bank employee", slog.Any("error", err))
		return err
	}

	logCtx.InfoContext(ctx, "Successfully deleted bank employee")
	return nil
}

func (s *employeeService) GetBankEmployeeByUserID(ctx context.Context, userID int64) (*BankEmployee, error) {
	logCtx := s.logger.With(slog.Int64("userID", userID))
	logCtx.DebugContext(ctx, "Fetching bank employee by linked user ID")

	emp, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Bank employee not found for the given user ID")
			return nil, apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding bank employee by user ID", slog.Any("error", err))
		return nil, err
	}
	return emp, nil
}
