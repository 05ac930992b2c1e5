package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-attendance/models"
	"employee-attendance/pkg/approval"
	"employee-attendance/pkg/attendance"
	"employee-attendance/repository"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repository.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetAllUsers(_ context.Context, filter bson.M, _, _ int64) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.User{}
	for _, u := range f.users {
		if role, ok := filter["role"]; ok && role != u.Role {
			continue
		}
		cp := *u
		cp.Password = ""
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.users, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeUsers) UpdateUserPassword(_ context.Context, id primitive.ObjectID, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Password = hashed
	return nil
}

func (f *fakeUsers) ListEmployeeIDs(context.Context) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []primitive.ObjectID
	for id, u := range f.users {
		if u.Role == models.RoleUser {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeAttendance struct {
	*attendance.MemoryStore
	users *fakeUsers
}

func (f *fakeAttendance) ListByDateWithUsers(ctx context.Context, date string) ([]models.AttendanceWithUser, error) {
	f.users.mu.Lock()
	users := make([]models.User, 0, len(f.users.users))
	for _, u := range f.users.users {
		users = append(users, *u)
	}
	f.users.mu.Unlock()

	var out []models.AttendanceWithUser
	for _, u := range users {
		rec, err := f.Get(ctx, u.ID, date)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		out = append(out, models.AttendanceWithUser{Attendance: *rec, UserName: u.Name, UserEmail: u.Email})
	}
	return out, nil
}

type fakeHolidays struct {
	mu     sync.Mutex
	byDate map[string]models.Holiday
}

func newFakeHolidays() *fakeHolidays {
	return &fakeHolidays{byDate: map[string]models.Holiday{}}
}

func (f *fakeHolidays) FindHolidayByDate(_ context.Context, date string) (*models.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h, ok := f.byDate[date]; ok {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeHolidays) ListHolidays(_ context.Context, from, to string) ([]models.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Holiday
	for d, h := range f.byDate {
		if d >= from && d <= to {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeHolidays) CreateHoliday(_ context.Context, h *models.Holiday) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byDate[h.Date]; ok {
		return repository.ErrHolidayExists
	}
	h.ID = primitive.NewObjectID()
	f.byDate[h.Date] = *h
	return nil
}

func (f *fakeHolidays) UpsertHolidays(_ context.Context, holidays []models.Holiday) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, h := range holidays {
		if _, ok := f.byDate[h.Date]; ok {
			continue
		}
		h.ID = primitive.NewObjectID()
		f.byDate[h.Date] = h
		n++
	}
	return n, nil
}

func (f *fakeHolidays) DeleteHoliday(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for d, h := range f.byDate {
		if h.ID == id {
			delete(f.byDate, d)
			return true, nil
		}
	}
	return false, nil
}

type fakeSettings struct {
	mu sync.Mutex
	s  models.Settings
}

func (f *fakeSettings) GetSettings(context.Context) (*models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := f.s
	return &cp, nil
}

func (f *fakeSettings) SaveSettings(_ context.Context, s *models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = models.SettingsID
	f.s = *s
	return nil
}

type fakeCodes struct {
	mu    sync.Mutex
	codes []models.OfficeCode
}

func (f *fakeCodes) CreateOfficeCode(_ context.Context, oc *models.OfficeCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	oc.ID = primitive.NewObjectID()
	f.codes = append(f.codes, *oc)
	return nil
}

func (f *fakeCodes) FindOfficeCode(_ context.Context, code string) (*models.OfficeCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, oc := range f.codes {
		if oc.Code == code {
			return &oc, nil
		}
	}
	return nil, nil
}

func (f *fakeCodes) FindActiveOfficeCode(_ context.Context, date string, now time.Time) (*models.OfficeCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.codes) - 1; i >= 0; i-- {
		if oc := f.codes[i]; oc.Date == date && now.Before(oc.ExpiresAt) {
			return &oc, nil
		}
	}
	return nil, nil
}

type fakeFeed struct {
	holidays []models.Holiday
	err      error
}

func (f *fakeFeed) Fetch(context.Context, int) ([]models.Holiday, error) {
	return f.holidays, f.err
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) set(day, hhmm string) {
	t, err := time.Parse("2006-01-02 15:04", day+" "+hhmm)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type fakeApprovals struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.ApprovalRequest
	users *fakeUsers
}

func newFakeApprovals(users *fakeUsers) *fakeApprovals {
	return &fakeApprovals{byID: map[primitive.ObjectID]models.ApprovalRequest{}, users: users}
}

func (f *fakeApprovals) CreateRequest(_ context.Context, req *models.ApprovalRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byID {
		if r.Status == models.ApprovalPending && r.UserID == req.UserID && r.Date == req.Date && r.Type == req.Type {
			return approval.ErrDuplicateRequest
		}
	}
	req.ID = primitive.NewObjectID()
	f.byID[req.ID] = *req
	return nil
}

func (f *fakeApprovals) FindRequestByID(_ context.Context, id primitive.ObjectID) (*models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.byID[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeApprovals) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.ApprovalRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ApprovalRequest{}
	for _, r := range f.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeApprovals) ListWithUsers(ctx context.Context, status models.ApprovalStatus) ([]models.ApprovalRequestWithUser, error) {
	f.mu.Lock()
	var reqs []models.ApprovalRequest
	for _, r := range f.byID {
		if status == "" || r.Status == status {
			reqs = append(reqs, r)
		}
	}
	f.mu.Unlock()

	out := []models.ApprovalRequestWithUser{}
	for _, r := range reqs {
		row := models.ApprovalRequestWithUser{ApprovalRequest: r}
		if u, _ := f.users.FindUserByID(ctx, r.UserID); u != nil {
			row.UserName, row.UserEmail = u.Name, u.Email
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeApprovals) Resolve(_ context.Context, id primitive.ObjectID, status models.ApprovalStatus, by, note string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok || r.Status != models.ApprovalPending {
		return false, nil
	}
	r.Status, r.ResolvedBy, r.ResolutionNote, r.ResolvedAt, r.UpdatedAt = status, by, note, &at, at
	f.byID[id] = r
	return true, nil
}

func (f *fakeApprovals) CountPending(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.byID {
		if r.Status == models.ApprovalPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeApprovals) HasApprovedRemote(_ context.Context, userID primitive.ObjectID, date string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byID {
		if r.UserID == userID && r.Date == date && r.Type == models.ApprovalWFH && r.Status == models.ApprovalApproved {
			return true, nil
		}
	}
	return false, nil
}
