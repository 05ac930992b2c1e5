package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HolidayType string

const (
	HolidayPublic     HolidayType = "public"
	HolidayOptional   HolidayType = "optional"
	HolidayRestricted HolidayType = "restricted"
)

type Holiday struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date      string             `json:"date" bson:"date"`
	Occasion  string             `json:"occasion" bson:"occasion"`
	Type      HolidayType        `json:"type" bson:"type"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type HolidayCreatePayload struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Occasion string `json:"occasion" validate:"required,min=3,max=100"`
	Type     string `json:"type" validate:"required,oneof=public optional restricted"`
}
