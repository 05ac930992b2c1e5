package handlers

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
	"employee-attendance/pkg/password"
	"employee-attendance/pkg/token"
	"employee-attendance/repository"
)

// SuperAdmin holds the bootstrap credentials that log in without a user document.
type SuperAdmin struct {
	Email    string
	Password string
}

type AuthHandler struct {
	userRepo   repository.UserRepository
	issuer     token.Issuer
	superAdmin SuperAdmin
}

func NewAuthHandler(userRepo repository.UserRepository, issuer token.Issuer, superAdmin SuperAdmin) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		issuer:     issuer,
		superAdmin: superAdmin,
	}
}

// CreateUser godoc
// @Summary Create employee account
// @Description Creates an account with the user role (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "New user"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/admin/create-user [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	return h.register(c, models.RoleUser)
}

// CreateAdmin godoc
// @Summary Create admin account
// @Description Creates an account with the admin role (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "New admin"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/admin/create-admin [post]
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	return h.register(c, models.RoleAdmin)
}

func (h *AuthHandler) register(c *fiber.Ctx, role string) error {
	var payload models.UserRegisterPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	hashed, err := password.Hash(payload.Password)
	if err != nil {
		return respondError(c, err)
	}

	newUser := &models.User{
		Name:       payload.Name,
		Email:      payload.Email,
		Password:   hashed,
		Role:       role,
		Position:   payload.Position,
		Department: payload.Department,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		return respondError(c, err)
	}

	logging.Ctx(ctx).Info().Str("new_user_id", newUser.ID.Hex()).Str("role", role).Msg("account created")
	return c.Status(fiber.StatusCreated).JSON(models.RegisterSuccessResponse{
		Message: "Account created",
		UserID:  newUser.ID.Hex(),
	})
}

// Login godoc
// @Summary Login
// @Description Verifies the credentials and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Credentials"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Wrong email or password"
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
	}

	if h.isSuperAdmin(payload) {
		return h.issue(c, token.Claims{UserID: token.SuperAdminID, Email: payload.Email, Role: models.RoleAdmin})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil || password.Check(user.Password, payload.Password) != nil {
		metrics.RecordLogin(false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email or password"})
	}

	return h.issue(c, token.Claims{UserID: user.ID.Hex(), Email: user.Email, Role: user.Role})
}

func (h *AuthHandler) isSuperAdmin(p models.UserLoginPayload) bool {
	if h.superAdmin.Email == "" || h.superAdmin.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(p.Email), []byte(h.superAdmin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(p.Password), []byte(h.superAdmin.Password)) == 1
	return emailOK && passOK
}

func (h *AuthHandler) issue(c *fiber.Ctx, claims token.Claims) error {
	tok, expiresAt, err := h.issuer.Issue(claims)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordLogin(true)
	logging.Ctx(c.UserContext()).Info().Str("user_id", claims.UserID).Str("role", claims.Role).Msg("login succeeded")
	return c.Status(fiber.StatusOK).JSON(models.LoginSuccessResponse{
		Message:   "Login successful",
		Token:     tok,
		UserID:    claims.UserID,
		Role:      claims.Role,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// ChangePassword godoc
// @Summary Change password
// @Description Changes the password of the logged-in user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Old and new password"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Old password is wrong"
// @Failure 403 {object} models.ErrorResponse
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	_, userID, err := currentEmployee(c)
	if err != nil {
		return respondError(c, err)
	}

	var payload models.ChangePasswordPayload
	if ok, err := parseBody(c, &payload); !ok {
		return err
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
	if password.Check(user.Password, payload.OldPassword) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password is wrong"})
	}

	hashed, err := password.Hash(payload.NewPassword)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.userRepo.UpdateUserPassword(ctx, userID, hashed); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Password changed"})
}
