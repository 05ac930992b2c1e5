package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-date format used for Attendance.Date and Holiday.Date.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format used by settings and correction payloads.
const ClockLayout = "15:04"

type AttendanceMode string

const (
	ModeOffice AttendanceMode = "OFFICE"
	ModeRemote AttendanceMode = "REMOTE"
)

func (m AttendanceMode) Valid() bool {
	return m == ModeOffice || m == ModeRemote
}

type AttendanceStatus string

const (
	StatusOnTime    AttendanceStatus = "ON_TIME"
	StatusLate      AttendanceStatus = "LATE"
	StatusEarly     AttendanceStatus = "EARLY"
	StatusAbsent    AttendanceStatus = "ABSENT"
	StatusHoliday   AttendanceStatus = "HOLIDAY"
	StatusWeekend   AttendanceStatus = "WEEKEND"
	StatusSickLeave AttendanceStatus = "SICK_LEAVE"
)

// Attendance is one employee's record for one calendar date.
type Attendance struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date        string             `json:"date" bson:"date"`
	ClockIn     *time.Time         `json:"clock_in" bson:"clock_in"`
	ClockOut    *time.Time         `json:"clock_out" bson:"clock_out"`
	Mode        AttendanceMode     `json:"mode,omitempty" bson:"mode,omitempty"`
	Status      AttendanceStatus   `json:"status" bson:"status"`
	WorkHours   float64            `json:"work_hours" bson:"work_hours"`
	IsCorrected bool               `json:"is_corrected" bson:"is_corrected"`
	Version     int64              `json:"version" bson:"version"`
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsOpen reports whether the record has a clock-in without a clock-out.
func (a *Attendance) IsOpen() bool {
	return a != nil && a.ClockIn != nil && a.ClockOut == nil
}

type ClockInPayload struct {
	Mode       string `json:"mode" validate:"required,oneof=OFFICE REMOTE"`
	Override   bool   `json:"override"`
	OfficeCode string `json:"office_code" validate:"omitempty,uuid"`
}

type AttendanceCorrectionPayload struct {
	ClockIn  string `json:"clock_in,omitempty" validate:"omitempty,datetime=15:04"`
	ClockOut string `json:"clock_out,omitempty" validate:"omitempty,datetime=15:04"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=OFFICE REMOTE"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=ON_TIME LATE EARLY ABSENT HOLIDAY WEEKEND SICK_LEAVE"`
	Note     string `json:"note,omitempty" validate:"max=255"`
}

type AttendanceWithUser struct {
	Attendance     `bson:",inline"`
	UserName       string `json:"user_name" bson:"user_name"`
	UserEmail      string `json:"user_email" bson:"user_email"`
	UserPosition   string `json:"user_position,omitempty" bson:"user_position,omitempty"`
	UserDepartment string `json:"user_department,omitempty" bson:"user_department,omitempty"`
}

// AttendanceSummary is the dashboard view of an employee's hours.
type AttendanceSummary struct {
	Date          string  `json:"date"`
	TodayHours    float64 `json:"today_hours"`
	TodayTarget   float64 `json:"today_target"`
	TodayProgress float64 `json:"today_progress"`
	WeekStart     string  `json:"week_start"`
	WeekEnd       string  `json:"week_end"`
	WeekHours     float64 `json:"week_hours"`
	WeekTarget    float64 `json:"week_target"`
	WeekProgress  float64 `json:"week_progress"`
	MonthStart    string  `json:"month_start"`
	MonthHours    float64 `json:"month_hours"`
	MonthTarget   float64 `json:"month_target"`
	MonthProgress float64 `json:"month_progress"`
	ClockedIn     bool    `json:"clocked_in"`
}
