package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientName string             `json:"patientName" bson:"patientName" validate:"notblank"`
	PatientID   string             `json:"patientId" bson:"patientId"`
	Date        string             `json:"date" bson:"date" validate:"notblank"`
	Time        string             `json:"time" bson:"time"`
	Doctor      string             `json:"doctor" bson:"doctor"`
	Reason      string             `json:"reason" bson:"reason"`
	Status      string             `json:"status" bson:"status"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
