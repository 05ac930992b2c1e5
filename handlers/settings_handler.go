package handlers

import (
	"github.com/gofiber/fiber/v2"

	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/repository"
)

type SettingsHandler struct {
	repo repository.SettingsRepository
}

func NewSettingsHandler(repo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get godoc
// @Summary Organization settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Settings
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	s, err := h.repo.GetSettings(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Update godoc
// @Summary Replace organization settings
// @Description Work-day window, grace minutes, targets, work week and clock-in rules (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.Settings true "Settings"
// @Success 200 {object} models.Settings
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var payload models.Settings
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}
	if err := attendance.ValidateSettings(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.repo.SaveSettings(ctx, &payload); err != nil {
		return respondError(c, err)
	}
	logging.Ctx(ctx).Info().
		Str("work_day_start", payload.WorkDayStart).
		Str("work_day_end", payload.WorkDayEnd).
		Str("timezone", payload.Timezone).
		Msg("settings updated")
	return c.JSON(payload)
}
