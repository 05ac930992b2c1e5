package router

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"employee-attendance/config"
	"employee-attendance/config/middleware"
	_ "employee-attendance/docs"
	"employee-attendance/handlers"
	"employee-attendance/pkg/approval"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/token"
	"employee-attendance/repository"
)

// Per-minute request limits for the account routes.
const (
	loginLimit       = 5
	createUserLimit  = 20
	createAdminLimit = 10
)

// Dependencies are the stores and services the routes are built on.
type Dependencies struct {
	Users       repository.UserRepository
	Attendance  repository.AttendanceRepository
	Holidays    repository.HolidayRepository
	Settings    repository.SettingsRepository
	OfficeCodes repository.OfficeCodeRepository
	Approvals   repository.ApprovalRepository
	Service     *attendance.Service
	Issuer      token.Issuer
	HolidayFeed handlers.HolidaySource
	SuperAdmin  handlers.SuperAdmin
	CORSOrigins []string
}

func (d Dependencies) validate() error {
	if d.Users == nil || d.Attendance == nil || d.Holidays == nil || d.Settings == nil || d.OfficeCodes == nil || d.Approvals == nil {
		return errors.New("router: all repositories are required")
	}
	if d.Service == nil || d.Issuer == nil {
		return errors.New("router: attendance service and token issuer are required")
	}
	return nil
}

// New builds the Fiber app with middleware and every route registered.
func New(deps Dependencies) (*fiber.App, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	authz, err := middleware.NewAuthorizer()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "Employee Attendance API",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	config.SetupCORS(app, deps.CORSOrigins)

	SetupRoutes(app, deps, authz)
	return app, nil
}

func SetupRoutes(app *fiber.App, deps Dependencies, authz *middleware.Authorizer) {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Issuer, deps.SuperAdmin)
	userHandler := handlers.NewUserHandler(deps.Users)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Service, deps.Attendance, deps.OfficeCodes)
	holidayHandler := handlers.NewHolidayHandler(deps.Holidays, deps.HolidayFeed, deps.Service)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings)
	approvalHandler := handlers.NewApprovalHandler(approval.NewService(deps.Approvals, deps.Service), deps.Approvals)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Attendance API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	api.Post("/auth/login", middleware.RateLimit(loginLimit), authHandler.Login)

	authn := middleware.AuthMiddleware(deps.Issuer)
	authorize := middleware.Authorize(authz)
	secured := func(prefix string) fiber.Router {
		return api.Group(prefix, authn, authorize)
	}

	accounts := secured("/auth/admin")
	accounts.Post("/create-user", middleware.RateLimit(createUserLimit), authHandler.CreateUser)
	accounts.Post("/create-admin", middleware.RateLimit(createAdminLimit), authHandler.CreateAdmin)

	users := secured("/users")
	users.Get("/me", userHandler.Me)
	users.Post("/change-password", authHandler.ChangePassword)

	att := secured("/attendance")
	att.Post("/clock-in", attendanceHandler.ClockIn)
	att.Post("/clock-out", attendanceHandler.ClockOut)
	att.Get("/today", attendanceHandler.Today)
	att.Get("/history", attendanceHandler.History)
	att.Get("/summary", attendanceHandler.Summary)

	secured("/holidays").Get("", holidayHandler.List)
	secured("/settings").Get("", settingsHandler.Get)

	approvals := secured("/approvals")
	approvals.Post("", approvalHandler.Submit)
	approvals.Get("", approvalHandler.Mine)

	admin := secured("/admin")
	admin.Get("/users", userHandler.GetAllUsers)
	admin.Delete("/users/:id", userHandler.DeleteUser)
	admin.Get("/attendance", attendanceHandler.DailyAttendance)
	admin.Get("/attendance/office-code", attendanceHandler.OfficeCode)
	admin.Put("/attendance/:id", attendanceHandler.Correct)
	admin.Put("/settings", settingsHandler.Update)
	admin.Post("/holidays", holidayHandler.Create)
	admin.Post("/holidays/sync", holidayHandler.Sync)
	admin.Delete("/holidays/:id", holidayHandler.Delete)
	admin.Get("/approvals", approvalHandler.List)
	admin.Put("/approvals/:id", approvalHandler.Decide)

	logging.Info().Int("routes", len(app.GetRoutes(true))).Msg("routes registered")
}
