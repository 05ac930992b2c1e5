package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-attendance/models"
)

var ErrHolidayExists = errors.New("a holiday already exists on that date")

type HolidayRepository interface {
	FindHolidayByDate(ctx context.Context, date string) (*models.Holiday, error)
	ListHolidays(ctx context.Context, from, to string) ([]models.Holiday, error)
	CreateHoliday(ctx context.Context, h *models.Holiday) error
	UpsertHolidays(ctx context.Context, holidays []models.Holiday) (int64, error)
	DeleteHoliday(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type holidayRepository struct {
	collection *mongo.Collection
}

func NewHolidayRepository(collection *mongo.Collection) HolidayRepository {
	return &holidayRepository{collection: collection}
}

func (r *holidayRepository) FindHolidayByDate(ctx context.Context, date string) (*models.Holiday, error) {
	var h models.Holiday
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&h)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find holiday: %w", err)
	}
	return &h, nil
}

func (r *holidayRepository) ListHolidays(ctx context.Context, from, to string) ([]models.Holiday, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer cursor.Close(ctx)

	holidays := []models.Holiday{}
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	return holidays, nil
}

func (r *holidayRepository) CreateHoliday(ctx context.Context, h *models.Holiday) error {
	h.ID = primitive.NewObjectID()
	h.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, h); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrHolidayExists
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

// UpsertHolidays inserts holidays whose date is not stored yet. Existing
// entries, including manual edits, are left alone. It returns how many were
// inserted.
func (r *holidayRepository) UpsertHolidays(ctx context.Context, holidays []models.Holiday) (int64, error) {
	if len(holidays) == 0 {
		return 0, nil
	}
	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(holidays))
	for _, h := range holidays {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"date": h.Date}).
			SetUpdate(bson.M{"$setOnInsert": bson.M{
				"date":       h.Date,
				"occasion":   h.Occasion,
				"type":       h.Type,
				"created_at": now,
			}}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to upsert holidays: %w", err)
	}
	return result.UpsertedCount, nil
}

func (r *holidayRepository) DeleteHoliday(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete holiday: %w", err)
	}
	return result.DeletedCount > 0, nil
}
