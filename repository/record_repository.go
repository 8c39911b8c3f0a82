package repository

import (
	"ClinicDesk/db"
	"ClinicDesk/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClinicalRecordRepository struct {
	client *db.Client
}

func NewClinicalRecordRepository(client *db.Client) *ClinicalRecordRepository {
	return &ClinicalRecordRepository{client: client}
}

func (r *ClinicalRecordRepository) Create(ctx context.Context, record *models.ClinicalRecord) error {
	coll, err := r.client.Collection(RecordsCollection)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	record.ID = primitive.NewObjectID()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err = db.CreateOne(ctx, coll, record)
	return err
}
