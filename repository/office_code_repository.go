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

type OfficeCodeRepository interface {
	CreateOfficeCode(ctx context.Context, oc *models.OfficeCode) error
	FindOfficeCode(ctx context.Context, code string) (*models.OfficeCode, error)
	FindActiveOfficeCode(ctx context.Context, date string, now time.Time) (*models.OfficeCode, error)
}

type officeCodeRepository struct {
	collection *mongo.Collection
}

func NewOfficeCodeRepository(collection *mongo.Collection) OfficeCodeRepository {
	return &officeCodeRepository{collection: collection}
}

func (r *officeCodeRepository) CreateOfficeCode(ctx context.Context, oc *models.OfficeCode) error {
	oc.ID = primitive.NewObjectID()
	oc.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, oc); err != nil {
		return fmt.Errorf("failed to create office code: %w", err)
	}
	return nil
}

func (r *officeCodeRepository) FindOfficeCode(ctx context.Context, code string) (*models.OfficeCode, error) {
	var oc models.OfficeCode
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&oc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find office code: %w", err)
	}
	return &oc, nil
}

// FindActiveOfficeCode returns the newest unexpired code for date, or nil.
func (r *officeCodeRepository) FindActiveOfficeCode(ctx context.Context, date string, now time.Time) (*models.OfficeCode, error) {
	var oc models.OfficeCode
	filter := bson.M{
		"date":       date,
		"expires_at": bson.M{"$gt": now},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&oc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active office code: %w", err)
	}
	return &oc, nil
}
