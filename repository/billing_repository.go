package repository

import (
	"ClinicDesk/db"
	"ClinicDesk/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillingRepository struct {
	client *db.Client
}

func NewBillingRepository(client *db.Client) *BillingRepository {
	return &BillingRepository{client: client}
}

func (r *BillingRepository) Create(ctx context.Context, entry *models.BillingEntry) error {
	coll, err := r.client.Collection(BillingsCollection)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err = db.CreateOne(ctx, coll, entry)
	return err
}
