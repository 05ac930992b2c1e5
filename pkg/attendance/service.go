package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
)

// RecordStore persists attendance records.
//
// Get returns (nil, nil) when no record exists for the employee and date.
// Put inserts rec when rec.Version is zero and otherwise replaces the stored
// record only if its version still equals rec.Version. On success rec.ID and
// rec.Version reflect the stored document. A duplicate (employee, date) insert
// or a stale version fails with ErrRecordConflict.
type RecordStore interface {
	Get(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	Put(ctx context.Context, rec *models.Attendance) error
	ListRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error)
}

// SettingsSource returns the organization settings in effect.
type SettingsSource interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
}

// OfficeCodeLookup finds an office code by value, or nil.
type OfficeCodeLookup interface {
	FindOfficeCode(ctx context.Context, code string) (*models.OfficeCode, error)
}

// RemoteApprovals reports whether an employee holds an approved
// work-from-home request for a date.
type RemoteApprovals interface {
	HasApprovedRemote(ctx context.Context, employeeID primitive.ObjectID, date string) (bool, error)
}

type ClockInRequest struct {
	Mode       models.AttendanceMode
	Override   bool
	OfficeCode string
}

// Correction describes an admin edit. Empty fields are left unchanged.
// ClockIn and ClockOut are HH:MM on the record's date.
type Correction struct {
	ClockIn  string
	ClockOut string
	Mode     models.AttendanceMode
	Status   models.AttendanceStatus
	Note     string
}

// DayReport summarizes one CloseDay pass.
type DayReport struct {
	Date           string
	Kind           DayKind
	Seeded         int
	Absent         int
	AutoClockedOut int
}

type Service struct {
	records  RecordStore
	settings SettingsSource
	holidays HolidayLookup
	codes    OfficeCodeLookup
	remote   RemoteApprovals
	clock    Clock
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithHolidays(h HolidayLookup) Option {
	return func(s *Service) { s.holidays = h }
}

func WithOfficeCodes(c OfficeCodeLookup) Option {
	return func(s *Service) { s.codes = c }
}

// WithRemoteApprovals lets approved work-from-home requests bypass a
// disabled remote clock-in.
func WithRemoteApprovals(r RemoteApprovals) Option {
	return func(s *Service) { s.remote = r }
}

func NewService(records RecordStore, settings SettingsSource, opts ...Option) *Service {
	s := &Service{records: records, settings: settings, clock: SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// day bundles what one command needs to know about "today".
type day struct {
	settings *models.Settings
	window   WorkWindow
	calendar *Calendar
	now      time.Time
	date     string
}

func (s *Service) today(ctx context.Context) (*day, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: timezone: %v", ErrInvalidSettings, err)
	}
	window, err := NewWorkWindow(settings)
	if err != nil {
		return nil, err
	}
	cal, err := NewCalendar(settings.WorkWeekRule, loc, s.holidays)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now().In(loc).Truncate(time.Second)
	return &day{
		settings: settings,
		window:   window,
		calendar: cal,
		now:      now,
		date:     now.Format(models.DateLayout),
	}, nil
}

func (s *Service) currentSettings(ctx context.Context) (*models.Settings, error) {
	if s.settings == nil {
		def := models.DefaultSettings("UTC")
		return &def, nil
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if settings == nil {
		def := models.DefaultSettings("UTC")
		return &def, nil
	}
	return settings, nil
}

// LocalNow returns the current time in the organization timezone.
func (s *Service) LocalNow(ctx context.Context) (time.Time, error) {
	d, err := s.today(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return d.now, nil
}

// ValidateSettings checks that settings can drive the classifier and calendar.
func ValidateSettings(settings *models.Settings) error {
	loc, err := settings.Location()
	if err != nil {
		return fmt.Errorf("%w: timezone: %v", ErrInvalidSettings, err)
	}
	if _, err := NewWorkWindow(settings); err != nil {
		return err
	}
	if settings.DailyTargetHours <= 0 {
		return fmt.Errorf("%w: daily_target_hours must be positive", ErrInvalidSettings)
	}
	if settings.WeekStartsOn < 0 || settings.WeekStartsOn > 6 {
		return fmt.Errorf("%w: week_starts_on must be between 0 and 6", ErrInvalidSettings)
	}
	_, err = NewCalendar(settings.WorkWeekRule, loc, nil)
	return err
}

// ClockIn opens today's record for employeeID. An existing closed or
// pre-seeded record for today is overwritten.
func (s *Service) ClockIn(ctx context.Context, employeeID primitive.ObjectID, req ClockInRequest) (*models.Attendance, error) {
	rec, err := s.clockIn(ctx, employeeID, req)
	if err != nil {
		metrics.RecordCommandError("clock_in", reason(err))
		return nil, err
	}
	metrics.RecordClockEvent("clock_in", string(rec.Status))
	logging.Ctx(ctx).Info().
		Str("user_id", employeeID.Hex()).
		Str("date", rec.Date).
		Str("mode", string(rec.Mode)).
		Str("status", string(rec.Status)).
		Msg("clock-in recorded")
	return rec, nil
}

func (s *Service) clockIn(ctx context.Context, employeeID primitive.ObjectID, req ClockInRequest) (*models.Attendance, error) {
	if !req.Mode.Valid() {
		return nil, ErrInvalidMode
	}
	d, err := s.today(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.Get(ctx, employeeID, d.date)
	if err != nil {
		return nil, fmt.Errorf("load today's record: %w", err)
	}
	if existing.IsOpen() {
		return nil, ErrAlreadyClockedIn
	}

	kind, _, err := d.calendar.Kind(ctx, d.now)
	if err != nil {
		return nil, err
	}
	if kind != WorkDay && !req.Override {
		return nil, ErrWeekendClockInDisallowed
	}
	if req.Mode == models.ModeRemote && !d.settings.AllowRemoteClockIn {
		if err := s.checkRemoteApproval(ctx, employeeID, d.date); err != nil {
			return nil, err
		}
	}
	if req.Mode == models.ModeOffice && d.settings.RequireOfficeQR {
		if err := s.checkOfficeCode(ctx, req.OfficeCode, d); err != nil {
			return nil, err
		}
	}

	status := kind.Status()
	if kind == WorkDay {
		status = d.window.ClassifyClockIn(d.now)
	}

	rec := &models.Attendance{UserID: employeeID, Date: d.date, CreatedAt: d.now}
	if existing != nil {
		cp := *existing
		rec = &cp
	}
	now := d.now
	rec.ClockIn = &now
	rec.ClockOut = nil
	rec.Mode = req.Mode
	rec.Status = status
	rec.WorkHours = 0
	rec.IsCorrected = false
	rec.UpdatedAt = now

	if err := s.records.Put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) checkRemoteApproval(ctx context.Context, employeeID primitive.ObjectID, date string) error {
	if s.remote == nil {
		return ErrRemoteClockInDisabled
	}
	ok, err := s.remote.HasApprovedRemote(ctx, employeeID, date)
	if err != nil {
		return fmt.Errorf("lookup remote approval: %w", err)
	}
	if !ok {
		return ErrRemoteClockInDisabled
	}
	return nil
}

func (s *Service) checkOfficeCode(ctx context.Context, code string, d *day) error {
	if code == "" || s.codes == nil {
		return ErrInvalidOfficeCode
	}
	oc, err := s.codes.FindOfficeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("lookup office code: %w", err)
	}
	if !oc.ValidFor(d.date, d.now) {
		return ErrInvalidOfficeCode
	}
	return nil
}

// ClockOut closes today's open record for employeeID.
func (s *Service) ClockOut(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error) {
	rec, err := s.clockOut(ctx, employeeID)
	if err != nil {
		metrics.RecordCommandError("clock_out", reason(err))
		return nil, err
	}
	metrics.RecordClockEvent("clock_out", string(rec.Status))
	logging.Ctx(ctx).Info().
		Str("user_id", employeeID.Hex()).
		Str("date", rec.Date).
		Float64("work_hours", rec.WorkHours).
		Str("status", string(rec.Status)).
		Msg("clock-out recorded")
	return rec, nil
}

func (s *Service) clockOut(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error) {
	d, err := s.today(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.records.Get(ctx, employeeID, d.date)
	if err != nil {
		return nil, fmt.Errorf("load today's record: %w", err)
	}
	if !existing.IsOpen() {
		return nil, ErrNoOpenClockIn
	}
	if d.now.Before(*existing.ClockIn) {
		return nil, ErrClockOutBeforeClockIn
	}

	rec := inLocation(existing, d.now.Location())
	closeRecord(&rec, d.now, d.window)
	if err := s.records.Put(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// inLocation copies rec with its clock events moved to loc. Records read back
// from MongoDB carry UTC times; classification needs local wall time.
func inLocation(rec *models.Attendance, loc *time.Location) models.Attendance {
	out := *rec
	if out.ClockIn != nil {
		t := out.ClockIn.In(loc)
		out.ClockIn = &t
	}
	if out.ClockOut != nil {
		t := out.ClockOut.In(loc)
		out.ClockOut = &t
	}
	return out
}

func closeRecord(rec *models.Attendance, at time.Time, w WorkWindow) {
	out := at
	rec.ClockOut = &out
	rec.WorkHours = RoundHours(out.Sub(*rec.ClockIn))
	rec.Status = ResolveClockOutStatus(rec.Status, w.ClassifyClockOut(out))
	rec.UpdatedAt = at
}

// Today returns today's record for employeeID, or nil.
func (s *Service) Today(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error) {
	d, err := s.today(ctx)
	if err != nil {
		return nil, err
	}
	return s.records.Get(ctx, employeeID, d.date)
}

// History lists records dated within [from, to]. Empty bounds default to the
// current month.
func (s *Service) History(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error) {
	d, err := s.today(ctx)
	if err != nil {
		return nil, err
	}
	if from == "" {
		from = MonthStart(d.now).Format(models.DateLayout)
	}
	if to == "" {
		to = d.date
	}
	for _, v := range []string{from, to} {
		if _, err := time.Parse(models.DateLayout, v); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidDateRange, v)
		}
	}
	if to < from {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, from, to)
	}
	return s.records.ListRange(ctx, employeeID, from, to)
}

// Summary computes the today, week and month hours for employeeID.
func (s *Service) Summary(ctx context.Context, employeeID primitive.ObjectID) (models.AttendanceSummary, error) {
	d, err := s.today(ctx)
	if err != nil {
		return models.AttendanceSummary{}, err
	}
	weekStart := WeekStart(d.now, time.Weekday(d.settings.WeekStartsOn))
	monthStart := MonthStart(d.now)

	from := weekStart
	if monthStart.Before(from) {
		from = monthStart
	}
	to := weekStart.AddDate(0, 0, 6)
	if monthEnd := monthStart.AddDate(0, 1, -1); monthEnd.After(to) {
		to = monthEnd
	}

	records, err := s.records.ListRange(ctx, employeeID, from.Format(models.DateLayout), to.Format(models.DateLayout))
	if err != nil {
		return models.AttendanceSummary{}, fmt.Errorf("list records: %w", err)
	}
	return Summarize(records, d.now, d.settings), nil
}

// Correct applies an admin correction to the record with the given id.
func (s *Service) Correct(ctx context.Context, id primitive.ObjectID, c Correction) (*models.Attendance, error) {
	rec, err := s.correct(ctx, id, c)
	if err != nil {
		metrics.RecordCommandError("correct", reason(err))
		return nil, err
	}
	metrics.RecordClockEvent("correct", string(rec.Status))
	logging.Ctx(ctx).Info().
		Str("attendance_id", id.Hex()).
		Str("status", string(rec.Status)).
		Msg("attendance corrected")
	return rec, nil
}

func (s *Service) correct(ctx context.Context, id primitive.ObjectID, c Correction) (*models.Attendance, error) {
	if c.Mode != "" && !c.Mode.Valid() {
		return nil, ErrInvalidMode
	}
	existing, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if existing == nil {
		return nil, ErrRecordNotFound
	}
	return s.applyCorrection(ctx, existing, c)
}

// CorrectDay applies a correction to the employee's record for date,
// creating an ABSENT record first when the day has none.
func (s *Service) CorrectDay(ctx context.Context, employeeID primitive.ObjectID, date string, c Correction) (*models.Attendance, error) {
	rec, err := s.correctDay(ctx, employeeID, date, c)
	if err != nil {
		metrics.RecordCommandError("correct", reason(err))
		return nil, err
	}
	metrics.RecordClockEvent("correct", string(rec.Status))
	logging.Ctx(ctx).Info().
		Str("user_id", employeeID.Hex()).
		Str("date", date).
		Str("status", string(rec.Status)).
		Msg("attendance day corrected")
	return rec, nil
}

func (s *Service) correctDay(ctx context.Context, employeeID primitive.ObjectID, date string, c Correction) (*models.Attendance, error) {
	if c.Mode != "" && !c.Mode.Valid() {
		return nil, ErrInvalidMode
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidDateRange, date)
	}
	existing, err := s.records.Get(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if existing == nil {
		now := s.clock.Now()
		existing = &models.Attendance{
			UserID:    employeeID,
			Date:      date,
			Status:    models.StatusAbsent,
			CreatedAt: now,
		}
	}
	return s.applyCorrection(ctx, existing, c)
}

func (s *Service) applyCorrection(ctx context.Context, existing *models.Attendance, c Correction) (*models.Attendance, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: timezone: %v", ErrInvalidSettings, err)
	}
	window, err := NewWorkWindow(settings)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation(models.DateLayout, existing.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("record date %q: %w", existing.Date, err)
	}

	rec := inLocation(existing, loc)
	timesChanged := false
	if c.ClockIn != "" {
		t, err := At(date, c.ClockIn)
		if err != nil {
			return nil, fmt.Errorf("clock_in: %w", err)
		}
		rec.ClockIn = &t
		timesChanged = true
	}
	if c.ClockOut != "" {
		t, err := At(date, c.ClockOut)
		if err != nil {
			return nil, fmt.Errorf("clock_out: %w", err)
		}
		rec.ClockOut = &t
		timesChanged = true
	}
	if rec.ClockOut != nil && (rec.ClockIn == nil || rec.ClockOut.Before(*rec.ClockIn)) {
		return nil, ErrClockOutBeforeClockIn
	}

	rec.WorkHours = 0
	if rec.ClockIn != nil && rec.ClockOut != nil {
		rec.WorkHours = RoundHours(rec.ClockOut.Sub(*rec.ClockIn))
	}

	switch {
	case c.Status != "":
		rec.Status = c.Status
	case timesChanged && rec.ClockIn != nil && reclassifiable(rec.Status):
		status := window.ClassifyClockIn(*rec.ClockIn)
		if rec.ClockOut != nil {
			status = ResolveClockOutStatus(status, window.ClassifyClockOut(*rec.ClockOut))
		}
		rec.Status = status
	}
	if c.Mode != "" {
		rec.Mode = c.Mode
	}
	if c.Note != "" {
		rec.Note = c.Note
	}
	rec.IsCorrected = true
	rec.UpdatedAt = s.clock.Now().In(loc)

	if err := s.records.Put(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// reclassifiable reports whether corrected times may replace status.
// WEEKEND and HOLIDAY describe the day, not the employee, and are kept.
func reclassifiable(status models.AttendanceStatus) bool {
	return severity(status) >= 0 || status == models.StatusAbsent || status == models.StatusSickLeave
}

// MarkSickLeave records date as excused sick leave for employeeID. A day that
// already has a clock-in is left unchanged and fails with ErrDayAlreadyWorked.
func (s *Service) MarkSickLeave(ctx context.Context, employeeID primitive.ObjectID, date, note string) (*models.Attendance, error) {
	rec, err := s.markSickLeave(ctx, employeeID, date, note)
	if err != nil {
		metrics.RecordCommandError("sick_leave", reason(err))
		return nil, err
	}
	metrics.RecordClockEvent("sick_leave", string(rec.Status))
	logging.Ctx(ctx).Info().
		Str("user_id", employeeID.Hex()).
		Str("date", date).
		Msg("sick leave recorded")
	return rec, nil
}

func (s *Service) markSickLeave(ctx context.Context, employeeID primitive.ObjectID, date, note string) (*models.Attendance, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidDateRange, date)
	}
	existing, err := s.records.Get(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	now := s.clock.Now()
	rec := &models.Attendance{UserID: employeeID, Date: date, CreatedAt: now}
	if existing != nil {
		if existing.ClockIn != nil {
			return nil, ErrDayAlreadyWorked
		}
		cp := *existing
		rec = &cp
	}
	rec.Status = models.StatusSickLeave
	rec.Mode = ""
	rec.WorkHours = 0
	rec.Note = note
	rec.UpdatedAt = now

	if err := s.records.Put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CloseDay runs the calendar bookkeeping for today over employeeIDs. On a
// non-working day it seeds WEEKEND or HOLIDAY records. On a working day, once
// the work day has ended, employees without a record are marked ABSENT and,
// if enabled, open records are clocked out at the work-day end.
func (s *Service) CloseDay(ctx context.Context, employeeIDs []primitive.ObjectID) (DayReport, error) {
	d, err := s.today(ctx)
	if err != nil {
		return DayReport{}, err
	}
	kind, _, err := d.calendar.Kind(ctx, d.now)
	if err != nil {
		return DayReport{}, err
	}
	report := DayReport{Date: d.date, Kind: kind}

	end := d.window.EndOn(d.now)
	if kind == WorkDay && d.now.Before(end) {
		return report, nil
	}

	var errs []error
	for _, id := range employeeIDs {
		existing, err := s.records.Get(ctx, id, d.date)
		if err != nil {
			errs = append(errs, fmt.Errorf("load record for %s: %w", id.Hex(), err))
			continue
		}

		switch {
		case existing == nil:
			status := kind.Status()
			if kind == WorkDay {
				status = models.StatusAbsent
			}
			rec := &models.Attendance{
				UserID:    id,
				Date:      d.date,
				Status:    status,
				CreatedAt: d.now,
				UpdatedAt: d.now,
			}
			err = s.records.Put(ctx, rec)
			if err == nil {
				if kind == WorkDay {
					report.Absent++
				} else {
					report.Seeded++
				}
			}
		case kind == WorkDay && existing.IsOpen() && d.settings.AutoClockOut:
			rec := inLocation(existing, d.now.Location())
			at := end
			if at.Before(*rec.ClockIn) {
				at = *rec.ClockIn
			}
			closeRecord(&rec, at, d.window)
			rec.UpdatedAt = d.now
			err = s.records.Put(ctx, &rec)
			if err == nil {
				report.AutoClockedOut++
			}
		}

		// A concurrent clock-in won the race for this record.
		if err != nil && !errors.Is(err, ErrRecordConflict) {
			errs = append(errs, fmt.Errorf("write record for %s: %w", id.Hex(), err))
		}
	}

	metrics.RecordJobRecords("seeded", report.Seeded)
	metrics.RecordJobRecords("absent", report.Absent)
	metrics.RecordJobRecords("auto_clock_out", report.AutoClockedOut)
	return report, errors.Join(errs...)
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyClockedIn):
		return "already_clocked_in"
	case errors.Is(err, ErrNoOpenClockIn):
		return "no_open_clock_in"
	case errors.Is(err, ErrWeekendClockInDisallowed):
		return "non_working_day"
	case errors.Is(err, ErrRecordConflict):
		return "conflict"
	case errors.Is(err, ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, ErrClockOutBeforeClockIn):
		return "clock_out_before_clock_in"
	case errors.Is(err, ErrRemoteClockInDisabled):
		return "remote_disabled"
	case errors.Is(err, ErrInvalidOfficeCode):
		return "invalid_office_code"
	case errors.Is(err, ErrDayAlreadyWorked):
		return "day_already_worked"
	case errors.Is(err, ErrInvalidMode):
		return "invalid_mode"
	case errors.Is(err, ErrInvalidSettings):
		return "invalid_settings"
	default:
		return "internal"
	}
}
