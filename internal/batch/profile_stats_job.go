package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"maverick-bank/internal/infrastructure/monitoring"
)

// Counter reports the number of rows a repository currently holds.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// ProfileStatsJob refreshes the user, customer and bank-employee gauges on a
// schedule so operators can watch onboarding volume without querying the
// database directly.
type ProfileStatsJob struct {
	users     Counter
	customers Counter
	employees Counter
	logger    *slog.Logger
}

func NewProfileStatsJob(users, customers, employees Counter, logger *slog.Logger) *ProfileStatsJob {
	if users == nil || customers == nil || employees == nil || logger == nil {
		panic("ProfileStatsJob dependencies cannot be nil")
	}
	return &ProfileStatsJob{
		users:     users,
		customers: customers,
		employees: employees,
		logger:    logger.With("job", "ProfileStats"),
	}
}

func (j *ProfileStatsJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting profile stats refresh job.")

	userCount, err := j.users.Count(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count users, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count users: %w", err)
	}

	customerCount, err := j.customers.Count(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count customers, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count customers: %w", err)
	}

	employeeCount, err := j.employees.Count(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count bank employees, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count bank employees: %w", err)
	}

	monitoring.SetProfileCounts(userCount, customerCount, employeeCount)

	j.logger.InfoContext(ctx, "Profile stats refresh job finished.",
		slog.Int64("users", userCount),
		slog.Int64("customers", customerCount),
		slog.Int64("bankEmployees", employeeCount),
		slog.Duration("duration", time.Since(startTime)),
	)
	return nil
}
