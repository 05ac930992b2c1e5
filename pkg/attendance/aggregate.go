package attendance

import (
	"math"
	"time"

	"employee-attendance/models"
)

// Predicate selects records for aggregation.
type Predicate func(r *models.Attendance) bool

// SumHours adds up WorkHours over the records matching pred. A nil pred
// matches every record. The result is rounded to one decimal.
func SumHours(records []models.Attendance, pred Predicate) float64 {
	var total float64
	for i := range records {
		if pred == nil || pred(&records[i]) {
			total += records[i].WorkHours
		}
	}
	return round1(total)
}

// CountMatching returns how many records match pred.
func CountMatching(records []models.Attendance, pred Predicate) int {
	n := 0
	for i := range records {
		if pred == nil || pred(&records[i]) {
			n++
		}
	}
	return n
}

// InRange matches records dated within [from, to] inclusive, skipping
// WEEKEND, HOLIDAY and SICK_LEAVE records. Dates are YYYY-MM-DD and compare
// lexically.
func InRange(from, to string) Predicate {
	return func(r *models.Attendance) bool {
		switch r.Status {
		case models.StatusWeekend, models.StatusHoliday, models.StatusSickLeave:
			return false
		}
		return r.Date >= from && r.Date <= to
	}
}

// OnDate matches records for a single date.
func OnDate(date string) Predicate {
	return func(r *models.Attendance) bool { return r.Date == date }
}

// RoundHours converts d to hours rounded to one decimal.
func RoundHours(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return round1(d.Hours())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Progress is actual/target as a percentage capped at 100.
func Progress(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round1(math.Min(100, actual/target*100))
}

// WeekStart returns midnight of the first day of the week containing day.
func WeekStart(day time.Time, startsOn time.Weekday) time.Time {
	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	offset := (int(midnight.Weekday()) - int(startsOn) + 7) % 7
	return midnight.AddDate(0, 0, -offset)
}

// MonthStart returns midnight of the first day of the month containing day.
func MonthStart(day time.Time) time.Time {
	y, m, _ := day.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, day.Location())
}

// Summarize builds the today, week and month view of records as seen at now.
// An open record for today contributes its live elapsed hours to the today
// figure only. Targets are the daily target times the number of counted
// records, never less than one day.
func Summarize(records []models.Attendance, now time.Time, s *models.Settings) models.AttendanceSummary {
	today := now.Format(models.DateLayout)
	daily := s.DailyTargetHours

	weekStart := WeekStart(now, time.Weekday(s.WeekStartsOn))
	weekEnd := weekStart.AddDate(0, 0, 6)
	monthStart := MonthStart(now)
	monthEnd := monthStart.AddDate(0, 1, -1)

	sum := models.AttendanceSummary{
		Date:        today,
		TodayTarget: daily,
		WeekStart:   weekStart.Format(models.DateLayout),
		WeekEnd:     weekEnd.Format(models.DateLayout),
		MonthStart:  monthStart.Format(models.DateLayout),
	}

	for i := range records {
		r := &records[i]
		if r.Date != today {
			continue
		}
		if r.IsOpen() {
			sum.ClockedIn = true
			sum.TodayHours = RoundHours(now.Sub(*r.ClockIn))
		} else {
			sum.TodayHours = r.WorkHours
		}
		break
	}
	sum.TodayProgress = Progress(sum.TodayHours, sum.TodayTarget)

	week := InRange(sum.WeekStart, sum.WeekEnd)
	sum.WeekHours = SumHours(records, week)
	sum.WeekTarget = daily * float64(max(1, CountMatching(records, week)))
	sum.WeekProgress = Progress(sum.WeekHours, sum.WeekTarget)

	month := InRange(sum.MonthStart, monthEnd.Format(models.DateLayout))
	sum.MonthHours = SumHours(records, month)
	sum.MonthTarget = daily * float64(max(1, CountMatching(records, month)))
	sum.MonthProgress = Progress(sum.MonthHours, sum.MonthTarget)

	return sum
}
