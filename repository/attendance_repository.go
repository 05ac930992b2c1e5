package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-attendance/config"
	"employee-attendance/models"
	"employee-attendance/pkg/attendance"
)

type AttendanceRepository interface {
	attendance.RecordStore
	ListByDateWithUsers(ctx context.Context, date string) ([]models.AttendanceWithUser, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(collection *mongo.Collection) AttendanceRepository {
	return &attendanceRepository{collection: collection}
}

func (r *attendanceRepository) findOne(ctx context.Context, filter bson.M) (*models.Attendance, error) {
	var rec models.Attendance
	err := r.collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance: %w", err)
	}
	return &rec, nil
}

func (r *attendanceRepository) Get(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	return r.findOne(ctx, bson.M{"user_id": employeeID, "date": date})
}

func (r *attendanceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// Put inserts new records and replaces existing ones only when the stored
// version still matches.
func (r *attendanceRepository) Put(ctx context.Context, rec *models.Attendance) error {
	if rec.Version == 0 {
		doc := *rec
		if doc.ID.IsZero() {
			doc.ID = primitive.NewObjectID()
		}
		doc.Version = 1
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return fmt.Errorf("insert attendance for %s on %s: %w", rec.UserID.Hex(), rec.Date, attendance.ErrRecordConflict)
			}
			return fmt.Errorf("failed to insert attendance: %w", err)
		}
		*rec = doc
		return nil
	}

	doc := *rec
	doc.Version = rec.Version + 1
	filter := bson.M{"_id": rec.ID, "version": rec.Version}
	result, err := r.collection.ReplaceOne(ctx, filter, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("replace attendance %s: %w", rec.ID.Hex(), attendance.ErrRecordConflict)
		}
		return fmt.Errorf("failed to replace attendance: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("replace attendance %s at version %d: %w", rec.ID.Hex(), rec.Version, attendance.ErrRecordConflict)
	}
	*rec = doc
	return nil
}

func (r *attendanceRepository) ListRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error) {
	filter := bson.M{
		"user_id": employeeID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}
	return records, nil
}

// ListByDateWithUsers joins every record of date with its user's profile.
func (r *attendanceRepository) ListByDateWithUsers(ctx context.Context, date string) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": date}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		// Records of deleted users stay listed without profile fields.
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$userDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$userDetails.name"},
			{Key: "user_email", Value: "$userDetails.email"},
			{Key: "user_position", Value: "$userDetails.position"},
			{Key: "user_department", Value: "$userDetails.department"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "user_name", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate attendance with users: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.AttendanceWithUser{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode attendance with users: %w", err)
	}
	return out, nil
}
