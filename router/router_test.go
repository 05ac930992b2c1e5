package router

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"employee-attendance/handlers"
	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
	"employee-attendance/pkg/password"
	"employee-attendance/pkg/token"
)

const (
	testSecret    = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	rootEmail     = "root@example.com"
	rootPassword  = "RootPass1"
	monday        = "2025-06-02"
	saturday      = "2025-06-07"
	employeeEmail = "ana@example.com"
	employeePass  = "Secret123"
)

type testEnv struct {
	app       *fiber.App
	clock     *testClock
	users     *fakeUsers
	holidays  *fakeHolidays
	settings  *fakeSettings
	codes     *fakeCodes
	feed      *fakeFeed
	approvals *fakeApprovals
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	issuer, err := token.New(token.FormatPaseto, testSecret, "", 0)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	env := &testEnv{
		clock:    &testClock{},
		users:    newFakeUsers(),
		holidays: newFakeHolidays(),
		settings: &fakeSettings{s: models.DefaultSettings("UTC")},
		codes:    &fakeCodes{},
		feed:     &fakeFeed{},
	}
	env.clock.set(monday, "09:00")
	env.approvals = newFakeApprovals(env.users)

	records := &fakeAttendance{MemoryStore: attendance.NewMemoryStore(), users: env.users}
	svc := attendance.NewService(records, env.settings,
		attendance.WithClock(env.clock),
		attendance.WithHolidays(env.holidays),
		attendance.WithOfficeCodes(env.codes),
		attendance.WithRemoteApprovals(env.approvals),
	)

	env.app, err = New(Dependencies{
		Users:       env.users,
		Attendance:  records,
		Holidays:    env.holidays,
		Settings:    env.settings,
		OfficeCodes: env.codes,
		Approvals:   env.approvals,
		Service:     svc,
		Issuer:      issuer,
		HolidayFeed: env.feed,
		SuperAdmin:  handlers.SuperAdmin{Email: rootEmail, Password: rootPassword},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return env
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s %s response %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

func (e *testEnv) login(t *testing.T, email, pass string) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": email, "password": pass})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d body %v", email, status, body)
	}
	return body["token"].(string)
}

func (e *testEnv) addEmployee(t *testing.T, email, role string) {
	t.Helper()
	hashed, err := password.Hash(employeePass)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if _, err := e.users.CreateUser(t.Context(), &models.User{Name: "Ana Pratiwi", Email: email, Password: hashed, Role: role}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
}

func attendanceOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	rec, ok := body["attendance"].(map[string]any)
	if !ok {
		t.Fatalf("response has no attendance: %v", body)
	}
	return rec
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)

	status, body := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": employeeEmail, "password": employeePass})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, body)
	}
	if body["role"] != models.RoleUser || body["token"] == "" {
		t.Errorf("unexpected login body %v", body)
	}

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": employeeEmail, "password": "WrongPass1"})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", status)
	}

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "not-an-email"})
	if status != http.StatusBadRequest {
		t.Errorf("invalid payload status = %d, want 400", status)
	}

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": rootEmail, "password": rootPassword})
	if status != http.StatusOK || body["role"] != models.RoleAdmin || body["user_id"] != token.SuperAdminID {
		t.Errorf("super-admin login = %d %v", status, body)
	}
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)
	var status int
	for i := 0; i < loginLimit+1; i++ {
		status, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "x@example.com", "password": "nope"})
	}
	if status != http.StatusTooManyRequests {
		t.Errorf("status after %d attempts = %d, want 429", loginLimit+1, status)
	}
}

func TestAccountManagement(t *testing.T) {
	env := newTestEnv(t)
	root := env.login(t, rootEmail, rootPassword)

	newUser := map[string]any{"name": "Budi Santoso", "email": "budi@example.com", "password": "Secret123", "position": "Engineer"}
	status, body := env.do(t, http.MethodPost, "/api/v1/auth/admin/create-user", root, newUser)
	if status != http.StatusCreated {
		t.Fatalf("create-user status = %d, body %v", status, body)
	}
	userID := body["user_id"].(string)

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/admin/create-user", root, newUser)
	if status != http.StatusConflict {
		t.Errorf("duplicate create-user status = %d, want 409", status)
	}

	weak := map[string]any{"name": "Citra", "email": "citra@example.com", "password": "lowercase1"}
	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/admin/create-admin", root, weak)
	if status != http.StatusBadRequest {
		t.Errorf("weak password status = %d, want 400", status)
	}

	budi := env.login(t, "budi@example.com", "Secret123")
	status, body = env.do(t, http.MethodGet, "/api/v1/users/me", budi, nil)
	if status != http.StatusOK {
		t.Fatalf("me status = %d", status)
	}
	if u := body["user"].(map[string]any); u["email"] != "budi@example.com" || u["password"] != nil {
		t.Errorf("me user = %v", u)
	}

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/admin/create-user", budi, newUser)
	if status != http.StatusForbidden {
		t.Errorf("employee create-user status = %d, want 403", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/admin/users", budi, nil)
	if status != http.StatusForbidden {
		t.Errorf("employee list users status = %d, want 403", status)
	}

	status, body = env.do(t, http.MethodPost, "/api/v1/users/change-password", budi, map[string]any{"old_password": "Wrong1234", "new_password": "Another123"})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong old password status = %d, body %v", status, body)
	}
	status, _ = env.do(t, http.MethodPost, "/api/v1/users/change-password", budi, map[string]any{"old_password": "Secret123", "new_password": "Another123"})
	if status != http.StatusOK {
		t.Errorf("change password status = %d", status)
	}
	env.login(t, "budi@example.com", "Another123")

	status, body = env.do(t, http.MethodGet, "/api/v1/admin/users", root, nil)
	if status != http.StatusOK || body["total"].(float64) != 1 {
		t.Errorf("list users = %d %v", status, body)
	}

	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/users/"+userID, root, nil)
	if status != http.StatusOK {
		t.Errorf("delete status = %d", status)
	}
	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/users/"+userID, root, nil)
	if status != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/users/not-an-id", root, nil)
	if status != http.StatusBadRequest {
		t.Errorf("bad id delete status = %d, want 400", status)
	}
}

func TestClockInOutFlow(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)

	status, body := env.do(t, http.MethodPost, "/api/v1/attendance/clock-out", tok, nil)
	if status != http.StatusConflict {
		t.Errorf("clock-out without clock-in = %d %v, want 409", status, body)
	}

	env.clock.set(monday, "10:05")
	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE"})
	if status != http.StatusCreated {
		t.Fatalf("clock-in status = %d, body %v", status, body)
	}
	if rec := attendanceOf(t, body); rec["status"] != "ON_TIME" || rec["date"] != monday {
		t.Errorf("clock-in record = %v", rec)
	}

	status, _ = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE"})
	if status != http.StatusConflict {
		t.Errorf("second clock-in = %d, want 409", status)
	}

	env.clock.set(monday, "19:05")
	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-out", tok, nil)
	if status != http.StatusOK {
		t.Fatalf("clock-out status = %d, body %v", status, body)
	}
	rec := attendanceOf(t, body)
	if rec["status"] != "ON_TIME" || rec["work_hours"].(float64) != 9 {
		t.Errorf("clock-out record = %v", rec)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/attendance/today", tok, nil)
	if status != http.StatusOK || attendanceOf(t, body)["clock_out"] == nil {
		t.Errorf("today = %d %v", status, body)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/attendance/summary", tok, nil)
	if status != http.StatusOK || body["week_hours"].(float64) != 9 || body["today_hours"].(float64) != 9 {
		t.Errorf("summary = %d %v", status, body)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/attendance/history?from=2025-06-01&to=2025-06-30", tok, nil)
	if status != http.StatusOK || body["total"].(float64) != 1 {
		t.Errorf("history = %d %v", status, body)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/attendance/history?from=2025-06-30&to=2025-06-01", tok, nil)
	if status != http.StatusBadRequest {
		t.Errorf("inverted history range = %d, want 400", status)
	}
}

func TestClockInLateAndInvalidMode(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)

	status, _ := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "BEACH"})
	if status != http.StatusBadRequest {
		t.Errorf("invalid mode = %d, want 400", status)
	}

	env.clock.set(monday, "10:15")
	status, body := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusCreated || attendanceOf(t, body)["status"] != "LATE" {
		t.Errorf("late clock-in = %d %v", status, body)
	}
}

func TestWeekendClockIn(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)

	env.clock.set(saturday, "10:00")
	status, _ := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("saturday clock-in = %d, want 422", status)
	}

	status, body := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE", "override": true})
	if status != http.StatusCreated || attendanceOf(t, body)["status"] != "WEEKEND" {
		t.Errorf("override clock-in = %d %v", status, body)
	}
}

func TestSuperAdminHasNoAttendance(t *testing.T) {
	env := newTestEnv(t)
	root := env.login(t, rootEmail, rootPassword)

	status, _ := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", root, map[string]any{"mode": "OFFICE"})
	if status != http.StatusForbidden {
		t.Errorf("super-admin clock-in = %d, want 403", status)
	}
	status, body := env.do(t, http.MethodGet, "/api/v1/users/me", root, nil)
	if status != http.StatusOK || body["user"].(map[string]any)["role"] != models.RoleAdmin {
		t.Errorf("super-admin me = %d %v", status, body)
	}
}

func TestOfficeCodeRequired(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)
	root := env.login(t, rootEmail, rootPassword)

	s := models.DefaultSettings("UTC")
	s.RequireOfficeQR = true
	s.AllowRemoteClockIn = false
	status, body := env.do(t, http.MethodPut, "/api/v1/admin/settings", root, s)
	if status != http.StatusOK {
		t.Fatalf("update settings = %d %v", status, body)
	}

	status, _ = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusForbidden {
		t.Errorf("remote clock-in = %d, want 403", status)
	}
	status, _ = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE"})
	if status != http.StatusForbidden {
		t.Errorf("office clock-in without code = %d, want 403", status)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/admin/attendance/office-code", root, nil)
	if status != http.StatusOK {
		t.Fatalf("office code = %d %v", status, body)
	}
	code := body["code"].(string)
	if !strings.HasPrefix(body["qr_code_image"].(string), "data:image/png;base64,") {
		t.Errorf("qr image = %.40v", body["qr_code_image"])
	}

	_, again := env.do(t, http.MethodGet, "/api/v1/admin/attendance/office-code", root, nil)
	if again["code"] != code {
		t.Errorf("second request issued a new code %v, want %s", again["code"], code)
	}

	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE", "office_code": code})
	if status != http.StatusCreated {
		t.Errorf("office clock-in with code = %d %v", status, body)
	}
}

func TestOfficeCodePNG(t *testing.T) {
	env := newTestEnv(t)
	root := env.login(t, rootEmail, rootPassword)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/attendance/office-code?format=png", nil)
	req.Header.Set("Authorization", "Bearer "+root)
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.Header.Get("Content-Type") != "image/png" || !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Errorf("content type %q, %d bytes", resp.Header.Get("Content-Type"), len(raw))
	}
}

func TestSettings(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)
	root := env.login(t, rootEmail, rootPassword)

	bad := models.DefaultSettings("UTC")
	bad.WorkDayEnd = "08:00"
	status, _ := env.do(t, http.MethodPut, "/api/v1/admin/settings", root, bad)
	if status != http.StatusBadRequest {
		t.Errorf("end before start = %d, want 400", status)
	}
	bad = models.DefaultSettings("Nowhere/City")
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/settings", root, bad)
	if status != http.StatusBadRequest {
		t.Errorf("bad timezone = %d, want 400", status)
	}

	good := models.DefaultSettings("UTC")
	good.WorkDayStart = "09:00"
	good.WorkDayEnd = "17:00"
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/settings", tok, good)
	if status != http.StatusForbidden {
		t.Errorf("employee settings update = %d, want 403", status)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/settings", root, good)
	if status != http.StatusOK {
		t.Fatalf("settings update = %d", status)
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/settings", tok, nil)
	if status != http.StatusOK || body["work_day_start"] != "09:00" {
		t.Errorf("settings = %d %v", status, body)
	}

	env.clock.set(monday, "09:15")
	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE"})
	if status != http.StatusCreated || attendanceOf(t, body)["status"] != "LATE" {
		t.Errorf("clock-in under new window = %d %v", status, body)
	}
}

func TestHolidays(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)
	root := env.login(t, rootEmail, rootPassword)

	holiday := map[string]any{"date": monday, "occasion": "Company Day", "type": "public"}
	status, body := env.do(t, http.MethodPost, "/api/v1/admin/holidays", root, holiday)
	if status != http.StatusCreated {
		t.Fatalf("create holiday = %d %v", status, body)
	}
	id := body["id"].(string)
	status, _ = env.do(t, http.MethodPost, "/api/v1/admin/holidays", root, holiday)
	if status != http.StatusConflict {
		t.Errorf("duplicate holiday = %d, want 409", status)
	}

	env.clock.set(monday, "10:00")
	status, _ = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("holiday clock-in = %d, want 422", status)
	}

	env.feed.holidays = []models.Holiday{
		{Date: "2025-08-17", Occasion: "Independence Day", Type: models.HolidayPublic},
		{Date: monday, Occasion: "Duplicate", Type: models.HolidayPublic},
	}
	status, body = env.do(t, http.MethodPost, "/api/v1/admin/holidays/sync?year=2025", root, nil)
	if status != http.StatusOK || body["inserted"].(float64) != 1 {
		t.Errorf("sync = %d %v", status, body)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/holidays?year=2025", tok, nil)
	if status != http.StatusOK || body["total"].(float64) != 2 {
		t.Errorf("list holidays = %d %v", status, body)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/holidays?year=abc", tok, nil)
	if status != http.StatusBadRequest {
		t.Errorf("bad year = %d, want 400", status)
	}

	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/holidays/"+id, root, nil)
	if status != http.StatusOK {
		t.Errorf("delete holiday = %d", status)
	}
	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusCreated {
		t.Errorf("clock-in after holiday removed = %d %v", status, body)
	}
}

func TestAdminAttendanceAndCorrection(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)
	root := env.login(t, rootEmail, rootPassword)

	env.clock.set(monday, "10:30")
	_, body := env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "OFFICE"})
	id := attendanceOf(t, body)["id"].(string)

	status, body := env.do(t, http.MethodGet, "/api/v1/admin/attendance", root, nil)
	if status != http.StatusOK || body["total"].(float64) != 1 || body["date"] != monday {
		t.Fatalf("daily attendance = %d %v", status, body)
	}
	row := body["data"].([]any)[0].(map[string]any)
	if row["user_email"] != employeeEmail || row["status"] != "LATE" {
		t.Errorf("row = %v", row)
	}

	correction := map[string]any{"clock_in": "10:00", "clock_out": "19:00", "note": "badge reader outage"}
	status, body = env.do(t, http.MethodPut, "/api/v1/admin/attendance/"+id, root, correction)
	if status != http.StatusOK {
		t.Fatalf("correct = %d %v", status, body)
	}
	rec := attendanceOf(t, body)
	if rec["is_corrected"] != true || rec["work_hours"].(float64) != 9 || rec["status"] != "ON_TIME" {
		t.Errorf("corrected record = %v", rec)
	}

	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/attendance/"+id, root, map[string]any{"clock_in": "25:00"})
	if status != http.StatusBadRequest {
		t.Errorf("invalid correction = %d, want 400", status)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/attendance/665f1c2e8b3e4a0012345678", root, correction)
	if status != http.StatusNotFound {
		t.Errorf("missing record correction = %d, want 404", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/admin/attendance?date=June", root, nil)
	if status != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", status)
	}
}

func TestApprovalsFlow(t *testing.T) {
	env := newTestEnv(t)
	env.addEmployee(t, employeeEmail, models.RoleUser)
	tok := env.login(t, employeeEmail, employeePass)
	root := env.login(t, rootEmail, rootPassword)

	submit := func(body map[string]any) (int, string) {
		t.Helper()
		status, resp := env.do(t, http.MethodPost, "/api/v1/approvals", tok, body)
		if status != http.StatusCreated {
			return status, ""
		}
		return status, resp["approval"].(map[string]any)["id"].(string)
	}

	sick := map[string]any{"type": "SICK_LEAVE", "date": "2025-06-03", "reason": "doctor says stay home"}
	status, sickID := submit(sick)
	if status != http.StatusCreated {
		t.Fatalf("submit sick leave = %d", status)
	}
	if status, _ := submit(sick); status != http.StatusConflict {
		t.Errorf("duplicate pending request = %d, want 409", status)
	}
	if status, _ := submit(map[string]any{"type": "ATTENDANCE_FIX", "date": monday, "reason": "badge reader outage"}); status != http.StatusBadRequest {
		t.Errorf("fix without clock_in = %d, want 400", status)
	}
	status, fixID := submit(map[string]any{"type": "ATTENDANCE_FIX", "date": monday, "reason": "badge reader outage", "clock_in": "10:00", "clock_out": "19:00"})
	if status != http.StatusCreated {
		t.Fatalf("submit fix = %d", status)
	}
	status, wfhID := submit(map[string]any{"type": "WFH", "date": "2025-06-04", "reason": "internet installer visit"})
	if status != http.StatusCreated {
		t.Fatalf("submit wfh = %d", status)
	}

	status, _ = env.do(t, http.MethodGet, "/api/v1/admin/approvals", tok, nil)
	if status != http.StatusForbidden {
		t.Errorf("employee listing all approvals = %d, want 403", status)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+fixID, tok, map[string]any{"status": "APPROVED"})
	if status != http.StatusForbidden {
		t.Errorf("employee deciding = %d, want 403", status)
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/admin/approvals?status=PENDING", root, nil)
	if status != http.StatusOK || body["total"].(float64) != 3 || body["pending"].(float64) != 3 {
		t.Fatalf("pending approvals = %d %v", status, body)
	}
	if row := body["approvals"].([]any)[0].(map[string]any); row["user_email"] != employeeEmail {
		t.Errorf("row = %v", row)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/admin/approvals?status=MAYBE", root, nil)
	if status != http.StatusBadRequest {
		t.Errorf("unknown status filter = %d, want 400", status)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+fixID, root, map[string]any{"status": "PENDING"})
	if status != http.StatusBadRequest {
		t.Errorf("decision PENDING = %d, want 400", status)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/approvals/665f1c2e8b3e4a0012345678", root, map[string]any{"status": "APPROVED"})
	if status != http.StatusNotFound {
		t.Errorf("missing request = %d, want 404", status)
	}

	status, body = env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+fixID, root, map[string]any{"status": "APPROVED", "note": "confirmed with security"})
	if status != http.StatusOK || body["approval"].(map[string]any)["status"] != "APPROVED" {
		t.Fatalf("approve fix = %d %v", status, body)
	}
	_, body = env.do(t, http.MethodGet, "/api/v1/attendance/today", tok, nil)
	rec := attendanceOf(t, body)
	if rec["status"] != "ON_TIME" || rec["work_hours"].(float64) != 9 || rec["is_corrected"] != true {
		t.Errorf("fixed record = %v", rec)
	}
	status, _ = env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+fixID, root, map[string]any{"status": "REJECTED"})
	if status != http.StatusConflict {
		t.Errorf("second decision = %d, want 409", status)
	}

	if status, _ := env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+sickID, root, map[string]any{"status": "APPROVED"}); status != http.StatusOK {
		t.Fatalf("approve sick leave = %d", status)
	}
	env.clock.set("2025-06-03", "09:00")
	_, body = env.do(t, http.MethodGet, "/api/v1/attendance/today", tok, nil)
	if rec := attendanceOf(t, body); rec["status"] != "SICK_LEAVE" {
		t.Errorf("sick day record = %v", rec)
	}

	env.settings.mu.Lock()
	env.settings.s.AllowRemoteClockIn = false
	env.settings.mu.Unlock()
	env.clock.set("2025-06-04", "09:30")
	status, _ = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusForbidden {
		t.Errorf("remote clock-in before approval = %d, want 403", status)
	}
	if status, _ := env.do(t, http.MethodPut, "/api/v1/admin/approvals/"+wfhID, root, map[string]any{"status": "APPROVED"}); status != http.StatusOK {
		t.Fatalf("approve wfh = %d", status)
	}
	status, body = env.do(t, http.MethodPost, "/api/v1/attendance/clock-in", tok, map[string]any{"mode": "REMOTE"})
	if status != http.StatusCreated || attendanceOf(t, body)["mode"] != "REMOTE" {
		t.Errorf("remote clock-in after approval = %d %v", status, body)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/approvals", tok, nil)
	if status != http.StatusOK || body["total"].(float64) != 3 {
		t.Errorf("my approvals = %d %v", status, body)
	}
	status, body = env.do(t, http.MethodGet, "/api/v1/admin/approvals", root, nil)
	if status != http.StatusOK || body["pending"].(float64) != 0 {
		t.Errorf("all approvals = %d %v", status, body)
	}
}

func TestPublicEndpoints(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/", "/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := env.app.Test(req, -1)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
	}
	status, _ := env.do(t, http.MethodGet, "/api/v1/attendance/today", "", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated today = %d, want 401", status)
	}
	status, _ = env.do(t, http.MethodGet, "/api/v1/no-such-route", "", nil)
	if status != http.StatusNotFound {
		t.Errorf("unknown api route = %d, want 404", status)
	}
}

func TestMetricsAfterMixedTraffic(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		env.do(t, http.MethodDelete, "/api/v1/admin/holidays/abc", "", nil)
		env.do(t, http.MethodGet, "/", "", nil)
		env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "Wrong1"})
		env.do(t, http.MethodPut, "/api/v1/admin/settings", "", map[string]any{})
		env.do(t, http.MethodGet, "/health", "", nil)
	}

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /metrics = %d: %s", resp.StatusCode, raw)
	}

	methods := regexp.MustCompile(`(?m)^http_request_duration_seconds_count\{method="([^"]*)"`)
	allowed := map[string]bool{http.MethodGet: true, http.MethodPost: true, http.MethodPut: true, http.MethodDelete: true}
	matches := methods.FindAllStringSubmatch(string(raw), -1)
	if len(matches) == 0 {
		t.Fatal("no request duration series exported")
	}
	for _, m := range matches {
		if !allowed[m[1]] {
			t.Errorf("unexpected method label %q", m[1])
		}
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := New(Dependencies{}); err == nil {
		t.Error("expected missing dependencies to fail")
	}
}
