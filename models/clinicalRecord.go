package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClinicalRecord struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientName string             `json:"patientName" bson:"patientName" validate:"notblank"`
	PatientID   string             `json:"patientId" bson:"patientId"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth"`
	Condition   string             `json:"condition" bson:"condition" validate:"notblank"`
	Treatment   string             `json:"treatment" bson:"treatment"`
	Medications string             `json:"medications" bson:"medications"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
