package attendance

import (
	"fmt"
	"time"

	"employee-attendance/models"
)

// WorkWindow holds the work-day boundaries as minutes after midnight.
type WorkWindow struct {
	Start    int
	End      int
	GraceIn  int
	GraceOut int
}

// NewWorkWindow parses the boundaries out of s.
func NewWorkWindow(s *models.Settings) (WorkWindow, error) {
	start, err := parseClock(s.WorkDayStart)
	if err != nil {
		return WorkWindow{}, fmt.Errorf("%w: work_day_start: %v", ErrInvalidSettings, err)
	}
	end, err := parseClock(s.WorkDayEnd)
	if err != nil {
		return WorkWindow{}, fmt.Errorf("%w: work_day_end: %v", ErrInvalidSettings, err)
	}
	if end <= start {
		return WorkWindow{}, fmt.Errorf("%w: work_day_end must be after work_day_start", ErrInvalidSettings)
	}
	if s.GraceMinutesIn < 0 || s.GraceMinutesOut < 0 {
		return WorkWindow{}, fmt.Errorf("%w: grace minutes must not be negative", ErrInvalidSettings)
	}
	return WorkWindow{Start: start, End: end, GraceIn: s.GraceMinutesIn, GraceOut: s.GraceMinutesOut}, nil
}

func parseClock(v string) (int, error) {
	t, err := time.Parse(models.ClockLayout, v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// minuteOfDay truncates t to the minute in its own location.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClassifyClockIn returns LATE when t is after the start plus grace, else ON_TIME.
func (w WorkWindow) ClassifyClockIn(t time.Time) models.AttendanceStatus {
	if minuteOfDay(t) > w.Start+w.GraceIn {
		return models.StatusLate
	}
	return models.StatusOnTime
}

// ClassifyClockOut returns EARLY when t is before the end minus grace, else ON_TIME.
func (w WorkWindow) ClassifyClockOut(t time.Time) models.AttendanceStatus {
	if minuteOfDay(t) < w.End-w.GraceOut {
		return models.StatusEarly
	}
	return models.StatusOnTime
}

// EndOn returns the work-day end on the calendar date of day, in day's location.
func (w WorkWindow) EndOn(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, w.End/60, w.End%60, 0, 0, day.Location())
}

// At returns the instant hh:mm on the calendar date of day.
func At(day time.Time, clock string) (time.Time, error) {
	mins, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, mins/60, mins%60, 0, 0, day.Location()), nil
}

func severity(s models.AttendanceStatus) int {
	switch s {
	case models.StatusOnTime:
		return 0
	case models.StatusEarly:
		return 1
	case models.StatusLate:
		return 2
	default:
		return -1
	}
}

// ResolveClockOutStatus merges the clock-in status with the clock-out
// classification. The more severe of the two is kept (ON_TIME < EARLY < LATE).
// Statuses outside that scale, such as WEEKEND or HOLIDAY, are never replaced.
func ResolveClockOutStatus(current, out models.AttendanceStatus) models.AttendanceStatus {
	if severity(current) < 0 {
		return current
	}
	if severity(out) > severity(current) {
		return out
	}
	return current
}
