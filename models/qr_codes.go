package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OfficeCode is a per-day code shown in the office as a QR image. Office
// clock-ins must present it when the organization requires it.
type OfficeCode struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Date      string             `json:"date" bson:"date"`
	ExpiresAt time.Time          `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ValidFor reports whether the code may be used on date at instant now.
func (o *OfficeCode) ValidFor(date string, now time.Time) bool {
	return o != nil && o.Date == date && now.Before(o.ExpiresAt)
}
