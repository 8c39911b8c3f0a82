package repository

import (
	"ClinicDesk/db"
	"ClinicDesk/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentRepository struct {
	client *db.Client
}

func NewAppointmentRepository(client *db.Client) *AppointmentRepository {
	return &AppointmentRepository{client: client}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	coll, err := r.client.Collection(AppointmentsCollection)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	appointment.ID = primitive.NewObjectID()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err = db.CreateOne(ctx, coll, appointment)
	return err
}

// List returns every appointment in insertion order, unpaginated.
func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	coll, err := r.client.Collection(AppointmentsCollection)
	if err != nil {
		return nil, err
	}
	return db.FindAll[models.Appointment](ctx, coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}
