package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingEntry.Amount is a pointer so an explicit 0 is told apart from a
// missing amount.
type BillingEntry struct {
	ID                    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientName           string             `json:"patientName" bson:"patientName" validate:"notblank"`
	PatientID             string             `json:"patientId" bson:"patientId"`
	ServiceType           string             `json:"serviceType" bson:"serviceType"`
	Amount                *float64           `json:"amount" bson:"amount" validate:"required"`
	PaymentMethod         string             `json:"paymentMethod" bson:"paymentMethod" validate:"notblank"`
	InsuranceProvider     string             `json:"insuranceProvider" bson:"insuranceProvider"`
	InsurancePolicyNumber string             `json:"insurancePolicyNumber" bson:"insurancePolicyNumber"`
	BillingAddress        string             `json:"billingAddress" bson:"billingAddress"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func Amount(v float64) *float64 {
	return &v
}
