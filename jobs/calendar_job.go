// Package jobs holds the periodic attendance bookkeeping that runs under the
// supervisor tree.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
)

type DayCloser interface {
	CloseDay(ctx context.Context, employeeIDs []primitive.ObjectID) (attendance.DayReport, error)
	LocalNow(ctx context.Context) (time.Time, error)
}

type EmployeeLister interface {
	ListEmployeeIDs(ctx context.Context) ([]primitive.ObjectID, error)
}

type HolidayFeed interface {
	Fetch(ctx context.Context, year int) ([]models.Holiday, error)
}

type HolidayStore interface {
	UpsertHolidays(ctx context.Context, holidays []models.Holiday) (int64, error)
}

// CalendarJob seeds weekend and holiday records, marks absences after the
// work day ends and auto clocks-out open records. When a holiday feed is set
// it also imports the year's holidays once per day, before closing the day.
type CalendarJob struct {
	days      DayCloser
	employees EmployeeLister
	interval  time.Duration

	feed     HolidayFeed
	holidays HolidayStore

	mu         sync.Mutex
	lastImport string
}

type Option func(*CalendarJob)

func WithHolidayFeed(feed HolidayFeed, store HolidayStore) Option {
	return func(j *CalendarJob) {
		j.feed = feed
		j.holidays = store
	}
}

func NewCalendarJob(days DayCloser, employees EmployeeLister, interval time.Duration, opts ...Option) *CalendarJob {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	j := &CalendarJob{days: days, employees: employees, interval: interval}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Serve runs once immediately and then on every tick until ctx is canceled.
// Run errors are logged and do not stop the service.
func (j *CalendarJob) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if err := j.RunOnce(ctx); err != nil && ctx.Err() == nil {
			logging.Ctx(ctx).Error().Err(err).Msg("calendar job run failed")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (j *CalendarJob) String() string {
	return "calendar-job"
}

func (j *CalendarJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	var errs []error
	if err := j.importHolidays(ctx); err != nil {
		errs = append(errs, err)
	}

	report, err := j.closeDay(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	logging.Ctx(ctx).Info().
		Str("date", report.Date).
		Str("kind", report.Kind.String()).
		Int("seeded", report.Seeded).
		Int("absent", report.Absent).
		Int("auto_clocked_out", report.AutoClockedOut).
		Msg("calendar job run")

	err = errors.Join(errs...)
	metrics.RecordJobRun(err)
	return err
}

func (j *CalendarJob) closeDay(ctx context.Context) (attendance.DayReport, error) {
	ids, err := j.employees.ListEmployeeIDs(ctx)
	if err != nil {
		return attendance.DayReport{}, fmt.Errorf("list employees: %w", err)
	}
	report, err := j.days.CloseDay(ctx, ids)
	if err != nil {
		return report, fmt.Errorf("close day: %w", err)
	}
	return report, nil
}

func (j *CalendarJob) importHolidays(ctx context.Context) error {
	if j.feed == nil || j.holidays == nil {
		return nil
	}
	now, err := j.days.LocalNow(ctx)
	if err != nil {
		return err
	}
	today := now.Format(models.DateLayout)

	j.mu.Lock()
	done := j.lastImport == today
	j.mu.Unlock()
	if done {
		return nil
	}

	fetched, err := j.feed.Fetch(ctx, now.Year())
	if err != nil {
		return fmt.Errorf("fetch holidays: %w", err)
	}
	inserted, err := j.holidays.UpsertHolidays(ctx, fetched)
	if err != nil {
		return fmt.Errorf("store holidays: %w", err)
	}

	j.mu.Lock()
	j.lastImport = today
	j.mu.Unlock()

	logging.Ctx(ctx).Info().Int("year", now.Year()).Int("fetched", len(fetched)).Int64("inserted", inserted).Msg("holidays imported")
	return nil
}
