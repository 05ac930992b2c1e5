package handlers

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

type AttendanceHandler struct {
	service *attendance.Service
	records repository.AttendanceRepository
	codes   repository.OfficeCodeRepository
}

func NewAttendanceHandler(service *attendance.Service, records repository.AttendanceRepository, codes repository.OfficeCodeRepository) *AttendanceHandler {
	return &AttendanceHandler{service: service, records: records, codes: codes}
}

// ClockIn godoc
// @Summary Clock in
// @Description Opens today's attendance record. Non-working days need override=true.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ClockInPayload true "Mode, override flag and office code"
// @Success 201 {object} models.AttendanceResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ErrorResponse "Remote clock-in disabled or bad office code"
// @Failure 409 {object} models.ErrorResponse "Already clocked in"
// @Failure 422 {object} models.ErrorResponse "Non-working day"
// @Router /attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	var payload models.ClockInPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.service.ClockIn(ctx, userID, attendance.ClockInRequest{
		Mode:       models.AttendanceMode(payload.Mode),
		Override:   payload.Override,
		OfficeCode: payload.OfficeCode,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.AttendanceResponse{Message: "Clock-in recorded", Attendance: *rec})
}

// ClockOut godoc
// @Summary Clock out
// @Description Closes today's open attendance record and computes the work hours
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceResponse
// @Failure 409 {object} models.ErrorResponse "No open clock-in"
// @Failure 422 {object} models.ErrorResponse "Clock-out precedes clock-in"
// @Router /attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.service.ClockOut(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.AttendanceResponse{Message: "Clock-out recorded", Attendance: *rec})
}

// Today godoc
// @Summary Today's record
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{attendance=models.Attendance}
// @Router /attendance/today [get]
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.service.Today(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"attendance": rec})
}

// History godoc
// @Summary Attendance history
// @Description Lists the caller's records between from and to (inclusive). Defaults to the current month.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.AttendanceListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/history [get]
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.service.History(ctx, userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	if records == nil {
		records = []models.Attendance{}
	}
	return c.JSON(models.AttendanceListResponse{Attendances: records, Total: len(records)})
}

// Summary godoc
// @Summary Hours summary
// @Description Today, week and month hours against the daily target
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceSummary
// @Router /attendance/summary [get]
func (h *AttendanceHandler) Summary(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// DailyAttendance godoc
// @Summary Attendance for a date
// @Description Lists every record of a date joined with the employee profile (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} object{date=string,data=[]models.AttendanceWithUser,total=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/attendance [get]
func (h *AttendanceHandler) DailyAttendance(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	date := c.Query("date")
	if date == "" {
		now, err := h.service.LocalNow(ctx)
		if err != nil {
			return respondError(c, err)
		}
		date = now.Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	rows, err := h.records.ListByDateWithUsers(ctx, date)
	if err != nil {
		return respondError(c, err)
	}
	if rows == nil {
		rows = []models.AttendanceWithUser{}
	}
	return c.JSON(fiber.Map{"date": date, "data": rows, "total": len(rows)})
}

// OfficeCode godoc
// @Summary Today's office code
// @Description Returns today's office code as a QR image, creating it on first request (admin only)
// @Tags Admin
// @Produce json
// @Produce png
// @Security BearerAuth
// @Param format query string false "png to receive the raw image"
// @Success 200 {object} object{code=string,date=string,expires_at=string,qr_code_image=string}
// @Router /admin/attendance/office-code [get]
func (h *AttendanceHandler) OfficeCode(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	now, err := h.service.LocalNow(ctx)
	if err != nil {
		return respondError(c, err)
	}
	date := now.Format(models.DateLayout)

	oc, err := h.codes.FindActiveOfficeCode(ctx, date, now)
	if err != nil {
		return respondError(c, err)
	}
	if oc == nil {
		y, m, d := now.Date()
		oc = &models.OfficeCode{
			Code:      util.GenerateOfficeCode(),
			Date:      date,
			ExpiresAt: time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()),
		}
		if err := h.codes.CreateOfficeCode(ctx, oc); err != nil {
			return respondError(c, err)
		}
	}

	png, err := util.QRCodePNG(oc.Code)
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "png" {
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}
	return c.JSON(fiber.Map{
		"code":          oc.Code,
		"date":          oc.Date,
		"expires_at":    oc.ExpiresAt,
		"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	})
}

// Correct godoc
// @Summary Correct a record
// @Description Edits clock times, mode, status or note of a record and marks it corrected (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Param payload body models.AttendanceCorrectionPayload true "Fields to change"
// @Success 200 {object} models.AttendanceResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /admin/attendance/{id} [put]
func (h *AttendanceHandler) Correct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance ID"})
	}

	var payload models.AttendanceCorrectionPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.service.Correct(ctx, id, attendance.Correction{
		ClockIn:  payload.ClockIn,
		ClockOut: payload.ClockOut,
		Mode:     models.AttendanceMode(payload.Mode),
		Status:   models.AttendanceStatus(payload.Status),
		Note:     payload.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.AttendanceResponse{Message: "Attendance corrected", Attendance: *rec})
}
