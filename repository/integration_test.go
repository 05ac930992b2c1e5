//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-attendance/config"
	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}

	uri, err := ctr.PortEndpoint(ctx, "27017/tcp", "mongodb")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	client, err := config.MongoConnect(ctx, uri)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { config.DisconnectDB(client) })

	db := client.Database("attendance_it")
	if err := config.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	return db
}

type fixedSettings struct{}

func (fixedSettings) GetSettings(context.Context) (*models.Settings, error) {
	s := models.DefaultSettings("UTC")
	return &s, nil
}

func TestIntegrationOneRecordPerEmployeeDay(t *testing.T) {
	db := startMongo(t)
	repo := NewAttendanceRepository(db.Collection(config.AttendanceCollection))
	ctx := context.Background()
	employee := primitive.NewObjectID()

	// Concurrent inserts for the same day: exactly one wins.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Put(ctx, &models.Attendance{UserID: employee, Date: "2025-06-02", Status: models.StatusAbsent})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case !errors.Is(err, attendance.ErrRecordConflict):
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("successful inserts = %d, want 1", wins)
	}

	recs, err := repo.ListRange(ctx, employee, "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
}

func TestIntegrationClockInOut(t *testing.T) {
	db := startMongo(t)
	repo := NewAttendanceRepository(db.Collection(config.AttendanceCollection))
	ctx := context.Background()
	employee := primitive.NewObjectID()

	now := time.Date(2025, 6, 2, 9, 55, 0, 0, time.UTC)
	svc := attendance.NewService(repo, fixedSettings{},
		attendance.WithClock(attendance.ClockFunc(func() time.Time { return now })),
		attendance.WithHolidays(NewHolidayRepository(db.Collection(config.HolidayCollection))),
	)

	if _, err := svc.ClockIn(ctx, employee, attendance.ClockInRequest{Mode: models.ModeOffice}); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	now = now.Add(8*time.Hour + 45*time.Minute)
	rec, err := svc.ClockOut(ctx, employee)
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if rec.Status != models.StatusEarly || rec.WorkHours != 8.8 || rec.Version != 2 {
		t.Errorf("unexpected record %+v", rec)
	}

	stored, err := repo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Version != 2 || stored.ClockOut == nil {
		t.Errorf("stored record %+v", stored)
	}
}

func TestIntegrationDailyListKeepsDeletedUsers(t *testing.T) {
	db := startMongo(t)
	users := NewUserRepository(db.Collection(config.UserCollection))
	repo := NewAttendanceRepository(db.Collection(config.AttendanceCollection))
	ctx := context.Background()

	ana := &models.User{Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleUser}
	if _, err := users.CreateUser(ctx, ana); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	kept := ana.ID
	gone := primitive.NewObjectID()
	for _, id := range []primitive.ObjectID{kept, gone} {
		if err := repo.Put(ctx, &models.Attendance{UserID: id, Date: "2025-06-02", Status: models.StatusAbsent}); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	rows, err := repo.ListByDateWithUsers(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("ListByDateWithUsers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	names := map[primitive.ObjectID]string{}
	for _, r := range rows {
		names[r.UserID] = r.UserName
	}
	if names[kept] != "Ana Lima" || names[gone] != "" {
		t.Errorf("unexpected rows %+v", rows)
	}
}
