package repository

import (
	"ClinicDesk/db"
	"ClinicDesk/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountRepository struct {
	client *db.Client
}

func NewAccountRepository(client *db.Client) *AccountRepository {
	return &AccountRepository{client: client}
}

func (r *AccountRepository) Collection() (*mongo.Collection, error) {
	return r.client.Collection(UsersCollection)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

/*
* A miss is not an error: (nil, nil) means no such account
 */
func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	var account models.Account
	if err := db.FindOne(ctx, coll, filter, &account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts the account as-is; duplicate-key errors from the unique
// indexes are returned unwrapped for the conflict extractor.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	account.ID = primitive.NewObjectID()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err = db.CreateOne(ctx, coll, account)
	return err
}

func (r *AccountRepository) ListPublic(ctx context.Context) ([]models.PublicAccount, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	projection := options.Find().SetProjection(bson.M{"_id": 0, "username": 1, "email": 1})
	return db.FindAll[models.PublicAccount](ctx, coll, bson.M{}, projection)
}

/*
* Insert the account when its email is unknown
* An existing account keeps its password, only role is enforced
* Returns the account as it was before the update, nil when it was inserted
 */
func (r *AccountRepository) EnsureByEmail(ctx context.Context, account *models.Account) (*models.Account, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"username":  account.Username,
			"password":  account.PasswordHash,
			"createdAt": now,
		},
		"$set": bson.M{
			"role":      account.Role,
			"updatedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var previous models.Account
	err = coll.FindOneAndUpdate(ctx, bson.M{"email": account.Email}, update, opts).Decode(&previous)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &previous, nil
}
