package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/config/middleware"
	"employee-attendance/pkg/approval"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/token"
	util "employee-attendance/pkg/utils"
)

const requestTimeout = 5 * time.Second

var errSuperAdminNoRecord = errors.New("the super-admin account has no employee record")

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

// parseBody decodes and validates the request body into payload. On failure
// it has already written the 400 response and returns false.
func parseBody(c *fiber.Ctx, payload interface{}) (bool, error) {
	if err := c.BodyParser(payload); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "errors": errs})
	}
	return true, nil
}

// currentEmployee returns the authenticated caller and their ObjectID.
func currentEmployee(c *fiber.Ctx) (*token.Claims, primitive.ObjectID, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	if claims.UserID == token.SuperAdminID {
		return claims, primitive.NilObjectID, errSuperAdminNoRecord
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return claims, primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "Invalid user in token")
	}
	return claims, id, nil
}

func errorStatus(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errSuperAdminNoRecord):
		return fiber.StatusForbidden
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNoOpenClockIn),
		errors.Is(err, attendance.ErrRecordConflict),
		errors.Is(err, attendance.ErrDayAlreadyWorked),
		errors.Is(err, approval.ErrAlreadyResolved),
		errors.Is(err, approval.ErrDuplicateRequest):
		return fiber.StatusConflict
	case errors.Is(err, attendance.ErrWeekendClockInDisallowed),
		errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, attendance.ErrRemoteClockInDisabled),
		errors.Is(err, attendance.ErrInvalidOfficeCode):
		return fiber.StatusForbidden
	case errors.Is(err, attendance.ErrInvalidMode),
		errors.Is(err, attendance.ErrInvalidDateRange),
		errors.Is(err, attendance.ErrInvalidSettings),
		errors.Is(err, approval.ErrInvalidRequest),
		errors.Is(err, approval.ErrInvalidDecision):
		return fiber.StatusBadRequest
	case errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, approval.ErrRequestNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes {"error": ...} with the status mapped from err.
// Internal errors are logged and their details hidden.
func respondError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("request failed")
		msg = "Internal server error"
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg = fe.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// ErrorHandler is the fiber.Config ErrorHandler for errors no handler wrote.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
