// Package approval handles employee requests that need an admin decision:
// attendance fixes, work-from-home days and sick leave. Approving a request
// applies it to the attendance records.
package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
)

var (
	ErrRequestNotFound  = errors.New("approval request not found")
	ErrAlreadyResolved  = errors.New("approval request is already resolved")
	ErrDuplicateRequest = errors.New("a pending request of that type already exists for the date")
	ErrInvalidRequest   = errors.New("invalid approval request")
	ErrInvalidDecision  = errors.New("decision must be APPROVED or REJECTED")
)

// Store persists approval requests.
//
// CreateRequest fails with ErrDuplicateRequest when the employee already has
// a pending request of the same type for the date. Resolve only updates a
// request that is still pending and reports whether it did.
type Store interface {
	CreateRequest(ctx context.Context, req *models.ApprovalRequest) error
	FindRequestByID(ctx context.Context, id primitive.ObjectID) (*models.ApprovalRequest, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ApprovalRequest, error)
	ListWithUsers(ctx context.Context, status models.ApprovalStatus) ([]models.ApprovalRequestWithUser, error)
	Resolve(ctx context.Context, id primitive.ObjectID, status models.ApprovalStatus, by, note string, at time.Time) (bool, error)
}

// DayEditor applies approved requests to attendance records.
type DayEditor interface {
	CorrectDay(ctx context.Context, employeeID primitive.ObjectID, date string, c attendance.Correction) (*models.Attendance, error)
	MarkSickLeave(ctx context.Context, employeeID primitive.ObjectID, date, note string) (*models.Attendance, error)
	LocalNow(ctx context.Context) (time.Time, error)
}

type Submission struct {
	Type     models.ApprovalType
	Date     string
	Reason   string
	ClockIn  string
	ClockOut string
}

type Decision struct {
	Status     models.ApprovalStatus
	Note       string
	ResolvedBy string
}

type Service struct {
	store Store
	days  DayEditor
}

func NewService(store Store, days DayEditor) *Service {
	return &Service{store: store, days: days}
}

// Submit files a pending request for employeeID. An ATTENDANCE_FIX needs a
// clock-in time and cannot target a future date.
func (s *Service) Submit(ctx context.Context, employeeID primitive.ObjectID, sub Submission) (*models.ApprovalRequest, error) {
	now, err := s.days.LocalNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := validate(sub, now.Format(models.DateLayout)); err != nil {
		return nil, err
	}

	req := &models.ApprovalRequest{
		UserID:    employeeID,
		Type:      sub.Type,
		Date:      sub.Date,
		Reason:    sub.Reason,
		ClockIn:   sub.ClockIn,
		ClockOut:  sub.ClockOut,
		Status:    models.ApprovalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	metrics.RecordApproval(string(req.Type), "submitted")
	logging.Ctx(ctx).Info().
		Str("user_id", employeeID.Hex()).
		Str("approval_id", req.ID.Hex()).
		Str("type", string(req.Type)).
		Str("date", req.Date).
		Msg("approval request submitted")
	return req, nil
}

func validate(sub Submission, today string) error {
	if !sub.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, sub.Type)
	}
	if _, err := time.Parse(models.DateLayout, sub.Date); err != nil {
		return fmt.Errorf("%w: date %q", ErrInvalidRequest, sub.Date)
	}
	if sub.Type != models.ApprovalAttendanceFix {
		return nil
	}

	if sub.Date > today {
		return fmt.Errorf("%w: cannot fix attendance for a future date", ErrInvalidRequest)
	}
	in, err := time.Parse(models.ClockLayout, sub.ClockIn)
	if err != nil {
		return fmt.Errorf("%w: clock_in %q", ErrInvalidRequest, sub.ClockIn)
	}
	if sub.ClockOut != "" {
		out, err := time.Parse(models.ClockLayout, sub.ClockOut)
		if err != nil {
			return fmt.Errorf("%w: clock_out %q", ErrInvalidRequest, sub.ClockOut)
		}
		if out.Before(in) {
			return fmt.Errorf("%w: clock_out precedes clock_in", ErrInvalidRequest)
		}
	}
	return nil
}

// ListMine returns employeeID's requests, newest first.
func (s *Service) ListMine(ctx context.Context, employeeID primitive.ObjectID) ([]models.ApprovalRequest, error) {
	return s.store.ListByUser(ctx, employeeID)
}

// List returns requests joined with the requester's profile. An empty
// status lists every request.
func (s *Service) List(ctx context.Context, status models.ApprovalStatus) ([]models.ApprovalRequestWithUser, error) {
	switch status {
	case "", models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}
	return s.store.ListWithUsers(ctx, status)
}

// Decide approves or rejects a pending request. An approval is applied to
// the attendance records before the request is resolved; if applying fails
// the request stays pending.
func (s *Service) Decide(ctx context.Context, id primitive.ObjectID, d Decision) (*models.ApprovalRequest, error) {
	if d.Status != models.ApprovalApproved && d.Status != models.ApprovalRejected {
		return nil, ErrInvalidDecision
	}
	req, err := s.store.FindRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != models.ApprovalPending {
		return nil, ErrAlreadyResolved
	}

	if d.Status == models.ApprovalApproved {
		if err := s.apply(ctx, req); err != nil {
			return nil, fmt.Errorf("apply %s request: %w", req.Type, err)
		}
	}

	now, err := s.days.LocalNow(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.store.Resolve(ctx, id, d.Status, d.ResolvedBy, d.Note, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyResolved
	}

	req.Status = d.Status
	req.ResolvedAt = &now
	req.ResolvedBy = d.ResolvedBy
	req.ResolutionNote = d.Note
	req.UpdatedAt = now

	outcome := "rejected"
	if d.Status == models.ApprovalApproved {
		outcome = "approved"
	}
	metrics.RecordApproval(string(req.Type), outcome)
	logging.Ctx(ctx).Info().
		Str("approval_id", id.Hex()).
		Str("type", string(req.Type)).
		Str("status", string(req.Status)).
		Str("resolved_by", d.ResolvedBy).
		Msg("approval request resolved")
	return req, nil
}

// apply carries an approved request over to attendance. WFH needs nothing
// here: clock-in looks approved remote days up directly.
func (s *Service) apply(ctx context.Context, req *models.ApprovalRequest) error {
	switch req.Type {
	case models.ApprovalAttendanceFix:
		_, err := s.days.CorrectDay(ctx, req.UserID, req.Date, attendance.Correction{
			ClockIn:  req.ClockIn,
			ClockOut: req.ClockOut,
			Note:     "Approved fix: " + req.Reason,
		})
		return err
	case models.ApprovalSickLeave:
		_, err := s.days.MarkSickLeave(ctx, req.UserID, req.Date, "Approved sick leave: "+req.Reason)
		return err
	}
	return nil
}
