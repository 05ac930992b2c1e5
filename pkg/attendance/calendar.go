package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"employee-attendance/models"
)

// HolidayLookup finds the holiday observed on a date, or nil.
type HolidayLookup interface {
	FindHolidayByDate(ctx context.Context, date string) (*models.Holiday, error)
}

type DayKind int

const (
	WorkDay DayKind = iota
	Weekend
	Holiday
)

func (k DayKind) String() string {
	switch k {
	case Weekend:
		return "weekend"
	case Holiday:
		return "holiday"
	default:
		return "workday"
	}
}

// Status is the record status seeded for a non-working day.
func (k DayKind) Status() models.AttendanceStatus {
	switch k {
	case Weekend:
		return models.StatusWeekend
	case Holiday:
		return models.StatusHoliday
	default:
		return ""
	}
}

// Calendar decides whether a date is a working day. Working weekdays come from
// a weekly recurrence rule; holidays come from the holiday store and take
// precedence over the rule.
type Calendar struct {
	opt      rrule.ROption
	loc      *time.Location
	holidays HolidayLookup
}

// NewCalendar parses an RRULE body such as "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR".
// The rule describes one repeating week, so INTERVAL and COUNT are rejected.
// holidays may be nil.
func NewCalendar(rule string, loc *time.Location, holidays HolidayLookup) (*Calendar, error) {
	if loc == nil {
		loc = time.UTC
	}
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	opt, err := rrule.StrToROptionInLocation(rule, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: work_week_rule: %v", ErrInvalidSettings, err)
	}
	if opt.Interval > 1 || opt.Count > 0 {
		return nil, fmt.Errorf("%w: work_week_rule must repeat every week", ErrInvalidSettings)
	}
	opt.Dtstart = mondayOf(time.Now().In(loc))
	if _, err := rrule.NewRRule(*opt); err != nil {
		return nil, fmt.Errorf("%w: work_week_rule: %v", ErrInvalidSettings, err)
	}
	return &Calendar{opt: *opt, loc: loc, holidays: holidays}, nil
}

// mondayOf returns midnight on the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	back := (int(t.Weekday()) + 6) % 7
	return time.Date(y, m, d-back, 0, 0, 0, 0, t.Location())
}

// Location is the calendar's timezone.
func (c *Calendar) Location() *time.Location { return c.loc }

// IsWorkWeekDay reports whether the recurrence rule has an occurrence on the
// calendar date of day. Holidays are not consulted.
func (c *Calendar) IsWorkWeekDay(day time.Time) bool {
	day = day.In(c.loc)
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)

	// Anchoring on the queried week keeps expansion to a few occurrences.
	opt := c.opt
	opt.Dtstart = mondayOf(start)
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return false
	}
	next := r.After(start, true)
	if next.IsZero() {
		return false
	}
	return next.In(c.loc).Format(models.DateLayout) == start.Format(models.DateLayout)
}

// Kind classifies the calendar date of day. The holiday is returned when the
// date is one.
func (c *Calendar) Kind(ctx context.Context, day time.Time) (DayKind, *models.Holiday, error) {
	day = day.In(c.loc)
	if c.holidays != nil {
		h, err := c.holidays.FindHolidayByDate(ctx, day.Format(models.DateLayout))
		if err != nil {
			return WorkDay, nil, fmt.Errorf("lookup holiday: %w", err)
		}
		if h != nil {
			return Holiday, h, nil
		}
	}
	if !c.IsWorkWeekDay(day) {
		return Weekend, nil, nil
	}
	return WorkDay, nil, nil
}
