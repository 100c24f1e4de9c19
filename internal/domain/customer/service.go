package customer

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
	msgUnderage        = "Customer must be at least 18 years old"
	msgDOBRequired     = "Date of birth is required"
	msgHasEmployee     = "User already holds a bank employee profile"
	msgCustomerMissing = "Customer not found by repository"
)

type CreateCustomerInput struct {
	Name          string
	Gender        string
	ContactNumber string
	Address       string
	DateOfBirth   time.Time
	AadharNumber  string
	PanNumber     string
	UserID        int64
}

// UpdateCustomerInput is a partial patch: nil fields are left as-is. Fields
// cannot be cleared through update.
type UpdateCustomerInput struct {
	Name          *string
	Gender        *string
	ContactNumber *string
	Address       *string
	DateOfBirth   *time.Time
	AadharNumber  *string
	PanNumber     *string
}

type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*Customer, error)
	GetAllCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, patch UpdateCustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	GetCustomerByUserID(ctx context.Context, userID int64) (*Customer, error)
}

var _ Service = (*customerService)(nil)

type customerService struct {
	repo              Repository
	users             UserDirectory
	employees         EmployeeLookup
	pub               event.EventPublisher
	logger            *slog.Logger
	allowDualProfiles bool
}

func NewService(repo Repository, users UserDirectory, employees EmployeeLookup, pub event.EventPublisher, logger *slog.Logger, allowDualProfiles bool) Service {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if users == nil {
		panic("user directory cannot be nil")
	}
	if employees == nil {
		panic("employee lookup cannot be nil")
	}
	if pub == nil {
		pub = event.NewNoopEventPublisher()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewService, using default stderr handler")
	}

	return &customerService{
		repo:              repo,
		users:             users,
		employees:         employees,
		pub:               pub,
		logger:            logger.With(slog.String("component", "customerService")),
		allowDualProfiles: allowDualProfiles,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error) {
	logCtx := s.logger.With(slog.Int64("userID", input.UserID))
	logCtx.InfoContext(ctx, "Attempting to create customer")

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
		hasEmployee, err := s.employees.ExistsByUserID(ctx, input.UserID)
		if err != nil {
			logCtx.ErrorContext(ctx, "Repository error checking employee profile", slog.Any("error", err))
			return nil, err
		}
		if hasEmployee {
			logCtx.WarnContext(ctx, "Validation failed: user already holds an employee profile")
			return nil, apperrors.NewValidationError("userId", msgHasEmployee)
		}
	}

	cust := &Customer{
		Name:          input.Name,
		Gender:        input.Gender,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		DateOfBirth:   input.DateOfBirth,
		AadharNumber:  input.AadharNumber,
		PanNumber:     input.PanNumber,
		UserID:        input.UserID,
	}

	if err := validateCustomer(cust); err != nil {
		logCtx.WarnContext(ctx, "Customer validation failed", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Save(ctx, cust); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully created customer, publishing creation event", slog.Int64("customerID", cust.CustomerID))
	created := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, created); pubErr != nil {
		logCtx.ErrorContext(ctx, "Customer created, but failed to publish creation event", slog.Any("error", pubErr))
	}

	return cust, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*Customer, error) {
	logCtx := s.logger.With(slog.Int64("customerID", customerID))
	logCtx.DebugContext(ctx, "Fetching customer by ID")

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, msgCustomerMissing)
			return nil, apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, err
	}
	return cust, nil
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]*Customer, error) {
	s.logger.DebugContext(ctx, "Fetching all customers")

	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, err
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, patch UpdateCustomerInput) (*Customer, error) {
	logCtx := s.logger.With(slog.Int64("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to update customer")

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, msgCustomerMissing)
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		cust.Name = *patch.Name
	}
	if patch.Gender != nil {
		cust.Gender = *patch.Gender
	}
	if patch.ContactNumber != nil {
		cust.ContactNumber = *patch.ContactNumber
	}
	if patch.Address != nil {
		cust.Address = *patch.Address
	}
	if patch.DateOfBirth != nil {
		cust.DateOfBirth = *patch.DateOfBirth
	}
	if patch.AadharNumber != nil {
		cust.AadharNumber = *patch.AadharNumber
	}
	if patch.PanNumber != nil {
		cust.PanNumber = *patch.PanNumber
	}

	if err := validateCustomer(cust); err != nil {
		logCtx.WarnContext(ctx, "Customer validation failed after patch", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Save(ctx, cust); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, err
	}

	logCtx.InfoContext(ctx, "Successfully updated customer, publishing update event")
	updated := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updated); pubErr != nil {
		logCtx.ErrorContext(ctx, "Customer updated, but failed to publish update event", slog.Any("error", pubErr))
	}

	return cust, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	logCtx := s.logger.With(slog.Int64("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to delete customer")

	exists, err := s.repo.ExistsByID(ctx, customerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking customer existence", slog.Any("error", err))
		return err
	}
	if !exists {
		logCtx.WarnContext(ctx, msgCustomerMissing)
		return apperrors.ErrNotFound
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		logCtx.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return err
	}

	logCtx.InfoContext(ctx, "Successfully deleted customer, publishing deletion event")
	deleted := event.CustomerDeletedEvent{Timestamp: time.Now(), CustomerID: customerID}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deleted); pubErr != nil {
		logCtx.ErrorContext(ctx, "Customer deleted, but failed to publish deletion event", slog.Any("error", pubErr))
	}
	return nil
}

func (s *customerService) GetCustomerByUserID(ctx context.Context, userID int64) (*Customer, error) {
	logCtx := s.logger.With(slog.Int64("userID", userID))
	logCtx.DebugContext(ctx, "Fetching customer by linked user ID")

	cust, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found for the given user ID")
			return nil, apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer by user ID", slog.Any("error", err))
		return nil, err
	}
	return cust, nil
}

// validateCustomer enforces the onboarding rules: required fields present
// and an account holder at least 18 calendar years old.
func validateCustomer(cust *Customer) error {
	if err := validation.RequireNonEmpty(cust.Name, "name"); err != nil {
		return err
	}
	if cust.DateOfBirth.IsZero() {
		return apperrors.NewValidationError("dateOfBirth", msgDOBRequired)
	}
	if !validation.IsAdult(cust.DateOfBirth, time.Now()) {
		return apperrors.NewValidationError("dateOfBirth", msgUnderage)
	}
	if err := validation.RequireNonEmpty(cust.Address, "address"); err != nil {
		return err
	}
	if err := validation.RequireNonEmpty(cust.ContactNumber, "contactNumber"); err != nil {
		return err
	}
	return nil
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	dob := cust.DateOfBirth
	return event.CustomerEventPayload{
		CustomerID:    cust.CustomerID,
		Name:          cust.Name,
		ContactNumber: cust.ContactNumber,
		Address:       cust.Address,
		DateOfBirth:   &dob,
		UserID:        cust.UserID,
	}
}
