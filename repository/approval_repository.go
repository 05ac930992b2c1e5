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

	"employee-attendance/config"
	"employee-attendance/models"
	"employee-attendance/pkg/approval"
)

type ApprovalRepository interface {
	CreateRequest(ctx context.Context, req *models.ApprovalRequest) error
	FindRequestByID(ctx context.Context, id primitive.ObjectID) (*models.ApprovalRequest, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ApprovalRequest, error)
	ListWithUsers(ctx context.Context, status models.ApprovalStatus) ([]models.ApprovalRequestWithUser, error)
	Resolve(ctx context.Context, id primitive.ObjectID, status models.ApprovalStatus, by, note string, at time.Time) (bool, error)
	CountPending(ctx context.Context) (int64, error)
	HasApprovedRemote(ctx context.Context, userID primitive.ObjectID, date string) (bool, error)
}

type approvalRepository struct {
	collection *mongo.Collection
}

func NewApprovalRepository(collection *mongo.Collection) ApprovalRepository {
	return &approvalRepository{collection: collection}
}

func (r *approvalRepository) CreateRequest(ctx context.Context, req *models.ApprovalRequest) error {
	req.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return approval.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to create approval request: %w", err)
	}
	return nil
}

func (r *approvalRepository) FindRequestByID(ctx context.Context, id primitive.ObjectID) (*models.ApprovalRequest, error) {
	var req models.ApprovalRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approval request: %w", err)
	}
	return &req, nil
}

func (r *approvalRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.ApprovalRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.ApprovalRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode approval requests: %w", err)
	}
	return requests, nil
}

// ListWithUsers joins requests with the requester's name and email, newest
// first. Requests of deleted users are kept.
func (r *approvalRepository) ListWithUsers(ctx context.Context, status models.ApprovalStatus) ([]models.ApprovalRequestWithUser, error) {
	match := bson.M{}
	if status != "" {
		match["status"] = status
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user_info"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user_info"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$user_info.name"},
			{Key: "user_email", Value: "$user_info.email"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "user_info", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate approval requests with users: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.ApprovalRequestWithUser{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode approval requests with users: %w", err)
	}
	return out, nil
}

// Resolve sets the decision on a request that is still pending.
func (r *approvalRepository) Resolve(ctx context.Context, id primitive.ObjectID, status models.ApprovalStatus, by, note string, at time.Time) (bool, error) {
	filter := bson.M{"_id": id, "status": models.ApprovalPending}
	update := bson.M{"$set": bson.M{
		"status":          status,
		"resolved_at":     at,
		"resolved_by":     by,
		"resolution_note": note,
		"updated_at":      at,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to resolve approval request: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *approvalRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.ApprovalPending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending approval requests: %w", err)
	}
	return count, nil
}

func (r *approvalRepository) HasApprovedRemote(ctx context.Context, userID primitive.ObjectID, date string) (bool, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    date,
		"type":    models.ApprovalWFH,
		"status":  models.ApprovalApproved,
	}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up remote approval: %w", err)
	}
	return count > 0, nil
}
