package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection   = "users"
	RecipesCollection = "recipes"

	mongoConnectTimeout = 10 * time.Second
)

// InitMongo connects to MongoDB, verifies the connection and makes sure the
// unique username index exists. The caller owns the returned client.
func InitMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	mdb := client.Database(database)
	if err := ensureIndexes(ctx, mdb); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, mdb, nil
}

func ensureIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users.username index: %w", err)
	}
	return nil
}
