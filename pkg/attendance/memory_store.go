package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-attendance/models"
)

// MemoryStore is an in-process RecordStore with the same conflict rules as
// the MongoDB repository. It backs tests and single-node demos.
type MemoryStore struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Attendance
	byDay map[string]primitive.ObjectID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:  make(map[primitive.ObjectID]models.Attendance),
		byDay: make(map[string]primitive.ObjectID),
	}
}

func dayKey(employeeID primitive.ObjectID, date string) string {
	return employeeID.Hex() + "|" + date
}

func (m *MemoryStore) Get(_ context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byDay[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	rec := m.byID[id]
	return &rec, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *MemoryStore) Put(_ context.Context, rec *models.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := dayKey(rec.UserID, rec.Date)
	if rec.Version == 0 {
		if _, exists := m.byDay[key]; exists {
			return fmt.Errorf("insert attendance %s: %w", key, ErrRecordConflict)
		}
		if rec.ID.IsZero() {
			rec.ID = primitive.NewObjectID()
		}
		rec.Version = 1
		m.byID[rec.ID] = *rec
		m.byDay[key] = rec.ID
		return nil
	}

	stored, ok := m.byID[rec.ID]
	if !ok || stored.Version != rec.Version {
		return fmt.Errorf("replace attendance %s: %w", rec.ID.Hex(), ErrRecordConflict)
	}
	if owner, taken := m.byDay[key]; taken && owner != rec.ID {
		return fmt.Errorf("replace attendance %s: %w", rec.ID.Hex(), ErrRecordConflict)
	}
	delete(m.byDay, dayKey(stored.UserID, stored.Date))
	rec.Version++
	m.byID[rec.ID] = *rec
	m.byDay[key] = rec.ID
	return nil
}

func (m *MemoryStore) ListRange(_ context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Attendance
	for _, rec := range m.byID {
		if rec.UserID == employeeID && rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
