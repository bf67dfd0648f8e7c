package repository

import (
	"context"
	"errors"
	"fmt"

	"recipes_api/internal/models"
	"recipes_api/internal/repository/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
}

func (d userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
	}
}

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(mdb *mongo.Database) *UserMongo {
	return &UserMongo{coll: mdb.Collection(db.UsersCollection)}
}

var _ Authorization = (*UserMongo)(nil)

func (r *UserMongo) Create(ctx context.Context, username, passwordHash string) (string, error) {
	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("insert user %q: %w", username, ErrUsernameTaken)
		}
		return "", fmt.Errorf("insert user %q: %w", username, err)
	}
	return doc.ID.Hex(), nil
}

// GetByUsername returns (nil, nil) if no such user exists.
func (r *UserMongo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return doc.toModel(), nil
}

func (r *UserMongo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("parse user id %q: %w", userID, err)
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{{Key: "password", Value: passwordHash}}}})
	if err != nil {
		return fmt.Errorf("update password for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update password for user %s: %w", userID, mongo.ErrNoDocuments)
	}
	return nil
}
