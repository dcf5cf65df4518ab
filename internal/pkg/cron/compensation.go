package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type CompensationJobs struct {
	employeeRepo        employee.EmployeeRepository
	compensationService compensation.CompensationService
	db                  *database.DB
}

func NewCompensationJobs(
	employeeRepo employee.EmployeeRepository,
	compensationService compensation.CompensationService,
	db *database.DB,
) *CompensationJobs {
	return &CompensationJobs{
		employeeRepo:        employeeRepo,
		compensationService: compensationService,
		db:                  db,
	}
}

func (j *CompensationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_current_month", 1*time.Hour, j.RecomputeCurrentMonth)
}

// RecomputeCurrentMonth re-derives the current month's compensation records
// for every active employee. Punch edits already recompute their own day;
// this pass catches records invalidated by settings, schedule, or holiday
// changes that happened since.
func (j *CompensationJobs) RecomputeCurrentMonth(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 local)
	if time.Now().Hour() != 0 {
		return nil
	}

	slog.Info("starting monthly compensation recompute")

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	recomputed := 0
	for _, emp := range employees {
		if _, err := j.compensationService.RecomputeMonth(ctx, emp.ID, year, month); err != nil {
			slog.Error("failed to recompute compensation",
				"employee_id", emp.ID,
				"year", year,
				"month", month,
				"error", err)
			continue
		}
		recomputed++
	}

	slog.Info("monthly compensation recompute finished",
		"employees", len(employees),
		"recomputed", recomputed)
	return nil
}
