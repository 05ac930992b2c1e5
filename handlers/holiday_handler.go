package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/repository"
)

// HolidaySource fetches the public holidays of a year from an external feed.
type HolidaySource interface {
	Fetch(ctx context.Context, year int) ([]models.Holiday, error)
}

// LocalClock reports the current time in the organization timezone.
type LocalClock interface {
	LocalNow(ctx context.Context) (time.Time, error)
}

type HolidayHandler struct {
	repo  repository.HolidayRepository
	feed  HolidaySource
	clock LocalClock
}

// NewHolidayHandler builds the handler. feed may be nil when no holiday feed
// is configured.
func NewHolidayHandler(repo repository.HolidayRepository, feed HolidaySource, clock LocalClock) *HolidayHandler {
	return &HolidayHandler{repo: repo, feed: feed, clock: clock}
}

func (h *HolidayHandler) year(c *fiber.Ctx) (int, error) {
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "year must be a four digit number")
		}
		return y, nil
	}
	now, err := h.clock.LocalNow(c.UserContext())
	if err != nil {
		return 0, err
	}
	return now.Year(), nil
}

// List godoc
// @Summary List holidays
// @Tags Holidays
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} object{year=int,data=[]models.Holiday,total=int}
// @Router /holidays [get]
func (h *HolidayHandler) List(c *fiber.Ctx) error {
	year, err := h.year(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	holidays, err := h.repo.ListHolidays(ctx, fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
	if err != nil {
		return respondError(c, err)
	}
	if holidays == nil {
		holidays = []models.Holiday{}
	}
	return c.JSON(fiber.Map{"year": year, "data": holidays, "total": len(holidays)})
}

// Create godoc
// @Summary Add a holiday
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param holiday body models.HolidayCreatePayload true "Holiday"
// @Success 201 {object} models.Holiday
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/holidays [post]
func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var payload models.HolidayCreatePayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	holiday := &models.Holiday{
		Date:     payload.Date,
		Occasion: payload.Occasion,
		Type:     models.HolidayType(payload.Type),
	}
	if err := h.repo.CreateHoliday(ctx, holiday); err != nil {
		if errors.Is(err, repository.ErrHolidayExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(holiday)
}

// Delete godoc
// @Summary Remove a holiday
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/holidays/{id} [delete]
func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid holiday ID"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	deleted, err := h.repo.DeleteHoliday(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Holiday not found"})
	}
	return c.JSON(models.MessageResponse{Message: "Holiday deleted"})
}

// Sync godoc
// @Summary Import holidays from the feed
// @Description Fetches the year's holidays from the configured feed. Existing dates are kept.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} object{year=int,fetched=int,inserted=int}
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/holidays/sync [post]
func (h *HolidayHandler) Sync(c *fiber.Ctx) error {
	if h.feed == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "No holiday feed is configured"})
	}
	year, err := h.year(c)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	holidays, err := h.feed.Fetch(ctx, year)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("year", year).Msg("holiday feed fetch failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Holiday feed unavailable"})
	}
	inserted, err := h.repo.UpsertHolidays(ctx, holidays)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"year": year, "fetched": len(holidays), "inserted": inserted})
}
