package handlers

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/config/middleware"
	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/repository"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// Me godoc
// @Summary Current user
// @Description Returns the profile of the logged-in user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.GetUserSuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, userID, err := currentEmployee(c)
	if errors.Is(err, errSuperAdminNoRecord) {
		return c.JSON(models.GetUserSuccessResponse{
			Message: "User found",
			User:    models.User{Name: "Super Admin", Email: claims.Email, Role: models.RoleAdmin},
		})
	}
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(models.GetUserSuccessResponse{Message: "User found", User: *user})
}

// GetAllUsers godoc
// @Summary List users
// @Description Lists users with pagination and filters (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param search query string false "Search by name or email"
// @Param role query string false "Filter by role"
// @Success 200 {object} object{data=[]models.User,total=int,page=int,limit=int}
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search")
	role := c.Query("role")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if search != "" {
		pattern := regexp.QuoteMeta(search)
		filter["$or"] = []bson.M{
			{"name": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"email": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}
	if role != "" {
		filter["role"] = role
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, total, err := h.userRepo.GetAllUsers(ctx, filter, int64(page), int64(limit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// DeleteUser godoc
// @Summary Delete user
// @Description Deletes a user account (admin only). Attendance history is kept.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if claims, ok := middleware.CurrentUser(c); ok && claims.UserID == id.Hex() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot delete your own account"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	logging.Ctx(ctx).Info().Str("deleted_user_id", id.Hex()).Msg("user deleted")
	return c.JSON(models.MessageResponse{Message: "User deleted"})
}
