package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Find a single document for the filter and decode it into result
* mongo.ErrNoDocuments is returned untouched so callers can tell a miss from a failure
 */
func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}, opts ...*options.FindOneOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	return coll.FindOne(ctx, filter, opts...).Decode(result)
}

// FindAll decodes every matching document. It returns an empty, non-nil
// slice when nothing matches so handlers encode `[]` rather than `null`.
func FindAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func CreateOne(ctx context.Context, coll *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, document)
}
