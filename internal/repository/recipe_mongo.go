package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipes_api/internal/models"
	"recipes_api/internal/repository/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recipeDocument is the BSON shape of a recipe.
type recipeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Difficulty *float64           `bson:"difficulty,omitempty"`
	Vegetarian *bool              `bson:"vegetarian,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d recipeDocument) toModel() models.Recipe {
	return models.Recipe{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Difficulty: d.Difficulty,
		Vegetarian: d.Vegetarian,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}

// patchToSet renders the $set document for a partial update.
func patchToSet(patch models.RecipePatch, now time.Time) bson.D {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Difficulty != nil {
		set = append(set, bson.E{Key: "difficulty", Value: *patch.Difficulty})
	}
	if patch.Vegetarian != nil {
		set = append(set, bson.E{Key: "vegetarian", Value: *patch.Vegetarian})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now})
}

type RecipeMongo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewRecipeMongo(mdb *mongo.Database) *RecipeMongo {
	return &RecipeMongo{
		coll: mdb.Collection(db.RecipesCollection),
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

var _ RecipeRepo = (*RecipeMongo)(nil)

func (r *RecipeMongo) Create(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	now := r.now()
	doc := recipeDocument{
		ID:         primitive.NewObjectID(),
		Name:       in.Name,
		Difficulty: in.Difficulty,
		Vegetarian: in.Vegetarian,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Recipe{}, fmt.Errorf("insert recipe %q: %w", in.Name, err)
	}
	return doc.toModel(), nil
}

func (r *RecipeMongo) List(ctx context.Context) ([]models.Recipe, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Recipe, 0, 16)
	for cur.Next(ctx) {
		var doc recipeDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		out = append(out, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

func (r *RecipeMongo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc recipeDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	rec := doc.toModel()
	return &rec, nil
}

func (r *RecipeMongo) Update(ctx context.Context, id string, patch models.RecipePatch) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: patchToSet(patch, r.now())}}

	var doc recipeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update recipe %s: %w", id, err)
	}
	rec := doc.toModel()
	return &rec, nil
}

func (r *RecipeMongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("delete recipe %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
