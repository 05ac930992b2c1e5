package attendance

import "errors"

var (
	ErrAlreadyClockedIn         = errors.New("already clocked in today")
	ErrNoOpenClockIn            = errors.New("no open clock-in for today")
	ErrWeekendClockInDisallowed = errors.New("clock-in is not allowed on a non-working day")
	ErrRecordConflict           = errors.New("attendance record was modified concurrently")
	ErrRecordNotFound           = errors.New("attendance record not found")
	ErrClockOutBeforeClockIn    = errors.New("clock-out precedes clock-in")
	ErrRemoteClockInDisabled    = errors.New("remote clock-in is disabled")
	ErrInvalidOfficeCode        = errors.New("office code is missing, expired or not valid today")
	ErrInvalidMode              = errors.New("attendance mode must be OFFICE or REMOTE")
	ErrInvalidSettings          = errors.New("invalid attendance settings")
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrDayAlreadyWorked         = errors.New("the day already has a clock-in")
)
