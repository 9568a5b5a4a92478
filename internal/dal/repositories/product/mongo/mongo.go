package productrepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/aays-store/backend/internal/dal/interfaces/iproductrepo"
	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/product"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection("products"),
	}
}

func (r *MongoProductRepository) Insert(ctx context.Context, p product.Product) (product.Product, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	p.ID = res.InsertedID.(primitive.ObjectID)

	return p, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*product.Product, error) {
	var p product.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("product %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &p, nil
}

func (r *MongoProductRepository) List(ctx context.Context, filter iproductrepo.Filter) ([]product.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.SubCategory != "" {
		query["subCategory"] = filter.SubCategory
	}

	return r.find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoProductRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *MongoProductRepository) ListByCollection(ctx context.Context, collectionID primitive.ObjectID) ([]product.Product, error) {
	return r.find(ctx, bson.M{"collections": collectionID}, nil)
}

func (r *MongoProductRepository) ListByCategory(ctx context.Context, category, subCategory string) ([]product.Product, error) {
	return r.find(ctx, bson.M{
		"category":    exactInsensitive(category),
		"subCategory": exactInsensitive(subCategory),
	}, nil)
}

func (r *MongoProductRepository) Search(ctx context.Context, query string) ([]product.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	return r.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"category": pattern},
			bson.M{"tags": pattern},
		},
	}, nil)
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, p product.Product) (*product.Product, error) {
	set := bson.M{
		"title":       p.Title,
		"description": p.Description,
		"media":       p.Media,
		"category":    p.Category,
		"subCategory": p.SubCategory,
		"collections": p.Collections,
		"tags":        p.Tags,
		"sizes":       p.Sizes,
		"colors":      p.Colors,
		"price":       p.Price,
		"expense":     p.Expense,
		"updatedAt":   time.Now(),
	}

	var updated product.Product
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("product %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &updated, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("product %s not found", id.Hex())
	}

	return nil
}

func (r *MongoProductRepository) SetCollections(
	ctx context.Context,
	id primitive.ObjectID,
	collections []primitive.ObjectID,
) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"collections": collections, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set product collections: %w", err)
	}

	return nil
}

func (r *MongoProductRepository) PullCollection(ctx context.Context, collectionID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(
		ctx,
		bson.M{"collections": collectionID},
		bson.M{"$pull": bson.M{"collections": collectionID}},
	)
	if err != nil {
		return fmt.Errorf("failed to pull collection from products: %w", err)
	}

	return nil
}

func (r *MongoProductRepository) find(
	ctx context.Context,
	filter bson.M,
	opts *options.FindOptions,
) ([]product.Product, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := []product.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func exactInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}
