package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"employee-attendance/config"
	"employee-attendance/handlers"
	"employee-attendance/jobs"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/supervisor"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
	"employee-attendance/router"
	"employee-attendance/seeder"
)

const demoEmployees = 10

// @title Employee Attendance API
// @version 1.0
// @description Clock-in/out, lateness classification and work-hour aggregation for employees.
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
//
// @tag.name Auth
// @tag.description Login and account creation
//
// @tag.name Users
// @tag.description Profile and password
//
// @tag.name Attendance
// @tag.description Clock-in, clock-out and hour summaries
//
// @tag.name Holidays
// @tag.description Holiday calendar
//
// @tag.name Settings
// @tag.description Organization work-day settings
//
// @tag.name Approvals
// @tag.description Attendance fix, work-from-home and sick-leave requests
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("server stopped with error")
	}
	logging.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	client, err := config.MongoConnect(ctx, cfg.MongoString)
	if err != nil {
		return err
	}
	defer config.DisconnectDB(client)

	db := client.Database(cfg.DBName)
	if err := config.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db.Collection(config.UserCollection))
	attendanceRepo := repository.NewAttendanceRepository(db.Collection(config.AttendanceCollection))
	holidayRepo := repository.NewHolidayRepository(db.Collection(config.HolidayCollection))
	settingsRepo := repository.NewSettingsRepository(db.Collection(config.SettingsCollection), cfg.Timezone)
	codeRepo := repository.NewOfficeCodeRepository(db.Collection(config.OfficeCodeCollection))
	approvalRepo := repository.NewApprovalRepository(db.Collection(config.ApprovalCollection))

	if _, err := seeder.SeedSettings(ctx, settingsRepo); err != nil {
		return err
	}
	if cfg.SeedDemoData {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if _, err := seeder.SeedUsers(ctx, userRepo, demoEmployees, rng); err != nil {
			return err
		}
	}

	issuer, err := cfg.NewTokenIssuer()
	if err != nil {
		return err
	}

	svc := attendance.NewService(attendanceRepo, settingsRepo,
		attendance.WithHolidays(holidayRepo),
		attendance.WithOfficeCodes(codeRepo),
		attendance.WithRemoteApprovals(approvalRepo),
	)

	var jobOpts []jobs.Option
	var feed handlers.HolidaySource
	if cfg.HolidayFeedURL != "" {
		f := util.NewHolidayFeed(cfg.HolidayFeedURL, &http.Client{Timeout: 15 * time.Second})
		feed = f
		jobOpts = append(jobOpts, jobs.WithHolidayFeed(f, holidayRepo))
	}

	app, err := router.New(router.Dependencies{
		Users:       userRepo,
		Attendance:  attendanceRepo,
		Holidays:    holidayRepo,
		Settings:    settingsRepo,
		OfficeCodes: codeRepo,
		Approvals:   approvalRepo,
		Service:     svc,
		Issuer:      issuer,
		HolidayFeed: feed,
		SuperAdmin:  handlers.SuperAdmin{Email: cfg.SuperAdminEmail, Password: cfg.SuperAdminPassword},
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}

	tree := supervisor.NewTree(supervisor.DefaultConfig())
	tree.AddAPIService(supervisor.NewHTTPService(app, ":"+cfg.Port, 10*time.Second))
	tree.AddJobService(jobs.NewCalendarJob(svc, userRepo, cfg.JobInterval, jobOpts...))

	logging.Info().
		Str("port", cfg.Port).
		Str("docs", "/docs/index.html").
		Strs("cors_origins", cfg.CORSOrigins).
		Str("token_format", cfg.TokenFormat).
		Msg("starting server")

	if err := tree.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		logging.Warn().Int("services", len(report)).Msg("some services did not stop in time")
	}
	return nil
}
