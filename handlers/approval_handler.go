package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/config/middleware"
	"employee-attendance/models"
	"employee-attendance/pkg/approval"
	"employee-attendance/repository"
)

type ApprovalHandler struct {
	service  *approval.Service
	requests repository.ApprovalRepository
}

func NewApprovalHandler(service *approval.Service, requests repository.ApprovalRepository) *ApprovalHandler {
	return &ApprovalHandler{service: service, requests: requests}
}

// Submit godoc
// @Summary Submit an approval request
// @Description Files an attendance fix, work-from-home day or sick leave for an admin to decide
// @Tags Approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ApprovalCreatePayload true "Request type, date and reason"
// @Success 201 {object} object{message=string,approval=models.ApprovalRequest}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "A pending request already exists"
// @Router /approvals [post]
func (h *ApprovalHandler) Submit(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	var payload models.ApprovalCreatePayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	req, err := h.service.Submit(ctx, userID, approval.Submission{
		Type:     models.ApprovalType(payload.Type),
		Date:     payload.Date,
		Reason:   payload.Reason,
		ClockIn:  payload.ClockIn,
		ClockOut: payload.ClockOut,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Request submitted", "approval": req})
}

// Mine godoc
// @Summary My approval requests
// @Tags Approvals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{approvals=[]models.ApprovalRequest,total=int}
// @Router /approvals [get]
func (h *ApprovalHandler) Mine(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reqs, err := h.service.ListMine(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"approvals": reqs, "total": len(reqs)})
}

// List godoc
// @Summary Approval requests
// @Description Lists requests with the requester's profile, optionally filtered by status (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} object{approvals=[]models.ApprovalRequestWithUser,total=int,pending=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/approvals [get]
func (h *ApprovalHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	reqs, err := h.service.List(ctx, models.ApprovalStatus(c.Query("status")))
	if err != nil {
		return respondError(c, err)
	}
	pending, err := h.requests.CountPending(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"approvals": reqs, "total": len(reqs), "pending": pending})
}

// Decide godoc
// @Summary Approve or reject a request
// @Description Approving an attendance fix corrects that day's record; approving sick leave marks the day (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Approval request ID"
// @Param payload body models.ApprovalDecisionPayload true "Decision and note"
// @Success 200 {object} object{message=string,approval=models.ApprovalRequest}
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Already resolved or the day was worked"
// @Router /admin/approvals/{id} [put]
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid approval ID"})
	}
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated"))
	}

	var payload models.ApprovalDecisionPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	req, err := h.service.Decide(ctx, id, approval.Decision{
		Status:     models.ApprovalStatus(payload.Status),
		Note:       payload.Note,
		ResolvedBy: claims.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Request " + string(req.Status), "approval": req})
}
