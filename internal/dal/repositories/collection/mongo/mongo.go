package collectionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/collection"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCollectionRepository struct {
	coll *mongo.Collection
}

func NewMongoCollectionRepository(db *mongo.Database) *MongoCollectionRepository {
	return &MongoCollectionRepository{
		coll: db.Collection("collections"),
	}
}

func (r *MongoCollectionRepository) Insert(ctx context.Context, c collection.Collection) (collection.Collection, error) {
	if c.Products == nil {
		c.Products = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return collection.Collection{}, fmt.Errorf("failed to insert collection: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID)

	return c, nil
}

func (r *MongoCollectionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*collection.Collection, error) {
	var c collection.Collection
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("collection %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return &c, nil
}

func (r *MongoCollectionRepository) GetByTitle(ctx context.Context, title string) (*collection.Collection, error) {
	var c collection.Collection
	err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("collection %q not found", title)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection by title: %w", err)
	}

	return &c, nil
}

func (r *MongoCollectionRepository) List(ctx context.Context) ([]collection.Collection, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}

	collections := []collection.Collection{}
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, fmt.Errorf("failed to decode collections: %w", err)
	}

	return collections, nil
}

func (r *MongoCollectionRepository) Update(
	ctx context.Context,
	id primitive.ObjectID,
	c collection.Collection,
) (*collection.Collection, error) {
	var updated collection.Collection
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":       c.Title,
			"description": c.Description,
			"image":       c.Image,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("collection %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return &updated, nil
}

func (r *MongoCollectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("collection %s not found", id.Hex())
	}

	return nil
}

func (r *MongoCollectionRepository) AddProduct(
	ctx context.Context,
	collectionIDs []primitive.ObjectID,
	productID primitive.ObjectID,
) error {
	if len(collectionIDs) == 0 {
		return nil
	}

	_, err := r.coll.UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": collectionIDs}},
		bson.M{"$addToSet": bson.M{"products": productID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add product to collections: %w", err)
	}

	return nil
}

func (r *MongoCollectionRepository) PullProduct(ctx context.Context, productID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(
		ctx,
		bson.M{"products": productID},
		bson.M{"$pull": bson.M{"products": productID}},
	)
	if err != nil {
		return fmt.Errorf("failed to pull product from collections: %w", err)
	}

	return nil
}
