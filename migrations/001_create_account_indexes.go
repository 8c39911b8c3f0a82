package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AccountEmailIndex    = "email_1"
	AccountUsernameIndex = "username_1"
)

func AccountIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(AccountEmailIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName(AccountUsernameIndex).SetUnique(true),
		},
	}
}

/*
* The unique indexes are what actually guarantee one account per email and username
* CreateMany is a no-op for indexes that already exist with the same keys and options
 */
func CreateAccountIndexes(ctx context.Context, coll *mongo.Collection) error {
	names, err := coll.Indexes().CreateMany(ctx, AccountIndexModels())
	if err != nil {
		return err
	}
	log.Printf("Migration applied: account indexes %v on %s\n", names, coll.Name())
	return nil
}
