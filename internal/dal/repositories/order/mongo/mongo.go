package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		coll: db.Collection("orders"),
	}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	o.ID = res.InsertedID.(primitive.ObjectID)

	return o, nil
}

func (r *MongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*order.Order, error) {
	var o order.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("order %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &o, nil
}

func (r *MongoOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) ListByCustomer(ctx context.Context, clerkID string) ([]order.Order, error) {
	return r.find(ctx, bson.M{"customerClerkId": clerkID})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]order.Order, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := []order.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *MongoOrderRepository) AdvanceStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status order.Status,
	at time.Time,
) (*order.Order, error) {
	set := bson.M{"status": status}
	if field := status.TimestampField(); field != "" {
		set["statusTimestamps."+field] = at
	}

	var updated order.Order
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("order %s not found", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &updated, nil
}
