package models

import "time"

// SettingsID is the _id of the single organization settings document.
const SettingsID = "organization"

type Settings struct {
	ID                 string    `json:"-" bson:"_id"`
	WorkDayStart       string    `json:"work_day_start" bson:"work_day_start" validate:"required,datetime=15:04"`
	WorkDayEnd         string    `json:"work_day_end" bson:"work_day_end" validate:"required,datetime=15:04"`
	GraceMinutesIn     int       `json:"grace_minutes_in" bson:"grace_minutes_in" validate:"min=0,max=240"`
	GraceMinutesOut    int       `json:"grace_minutes_out" bson:"grace_minutes_out" validate:"min=0,max=240"`
	DailyTargetHours   float64   `json:"daily_target_hours" bson:"daily_target_hours" validate:"gt=0,max=24"`
	WorkWeekRule       string    `json:"work_week_rule" bson:"work_week_rule" validate:"required"`
	WeekStartsOn       int       `json:"week_starts_on" bson:"week_starts_on" validate:"min=0,max=6"`
	AllowRemoteClockIn bool      `json:"allow_remote_clock_in" bson:"allow_remote_clock_in"`
	AutoClockOut       bool      `json:"auto_clock_out" bson:"auto_clock_out"`
	RequireOfficeQR    bool      `json:"require_office_qr" bson:"require_office_qr"`
	Timezone           string    `json:"timezone" bson:"timezone" validate:"required"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// DefaultSettings returns the settings a fresh organization starts with.
func DefaultSettings(timezone string) Settings {
	if timezone == "" {
		timezone = "UTC"
	}
	return Settings{
		ID:                 SettingsID,
		WorkDayStart:       "10:00",
		WorkDayEnd:         "19:00",
		GraceMinutesIn:     10,
		GraceMinutesOut:    10,
		DailyTargetHours:   9,
		WorkWeekRule:       "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		WeekStartsOn:       0,
		AllowRemoteClockIn: true,
		Timezone:           timezone,
	}
}

// Location loads the settings timezone.
func (s *Settings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
