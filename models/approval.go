package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApprovalType string

const (
	ApprovalAttendanceFix ApprovalType = "ATTENDANCE_FIX"
	ApprovalWFH           ApprovalType = "WFH"
	ApprovalSickLeave     ApprovalType = "SICK_LEAVE"
)

func (t ApprovalType) Valid() bool {
	return t == ApprovalAttendanceFix || t == ApprovalWFH || t == ApprovalSickLeave
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ApprovalRequest is an employee's request for an admin decision about one
// calendar date. ClockIn and ClockOut carry the requested times of an
// ATTENDANCE_FIX as HH:MM.
type ApprovalRequest struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	Type           ApprovalType       `json:"type" bson:"type"`
	Date           string             `json:"date" bson:"date"`
	Reason         string             `json:"reason" bson:"reason"`
	ClockIn        string             `json:"clock_in,omitempty" bson:"clock_in,omitempty"`
	ClockOut       string             `json:"clock_out,omitempty" bson:"clock_out,omitempty"`
	Status         ApprovalStatus     `json:"status" bson:"status"`
	ResolvedAt     *time.Time         `json:"resolved_at" bson:"resolved_at"`
	ResolvedBy     string             `json:"resolved_by,omitempty" bson:"resolved_by,omitempty"`
	ResolutionNote string             `json:"resolution_note,omitempty" bson:"resolution_note,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type ApprovalRequestWithUser struct {
	ApprovalRequest `bson:",inline"`
	UserName        string `json:"user_name" bson:"user_name"`
	UserEmail       string `json:"user_email" bson:"user_email"`
}

type ApprovalCreatePayload struct {
	Type     string `json:"type" validate:"required,oneof=ATTENDANCE_FIX WFH SICK_LEAVE"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason   string `json:"reason" validate:"required,min=10,max=500"`
	ClockIn  string `json:"clock_in,omitempty" validate:"required_if=Type ATTENDANCE_FIX,omitempty,datetime=15:04"`
	ClockOut string `json:"clock_out,omitempty" validate:"omitempty,datetime=15:04"`
}

type ApprovalDecisionPayload struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   string `json:"note,omitempty" validate:"max=255"`
}
