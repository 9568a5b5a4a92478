package mongodb

import (
	"context"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client wraps a Mongo connection. It is constructed once at startup,
// injected into repositories, and closed on shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Database returns the application database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close closes the connection for graceful shutdown.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// WithTransaction runs fn inside a single multi-document transaction. The
// context passed to fn carries the session; repository calls made with it
// join the transaction.
func (c *Client) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := c.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})

	return err
}

// MustNewClient creates a new Mongo client and ensures the unique indexes
// the schemas rely on.
func MustNewClient() *Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGODB_URL")))
	if err != nil {
		panic(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		panic(err)
	}

	db := client.Database(viper.GetString("mongo.database"))

	if err := ensureIndexes(ctx, db); err != nil {
		panic(err)
	}

	return &Client{
		client: client,
		db:     db,
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"orders":         {Keys: bson.D{{Key: "orderId", Value: 1}}, Options: unique},
		"customers":      {Keys: bson.D{{Key: "clerkId", Value: 1}}, Options: unique},
		"collections":    {Keys: bson.D{{Key: "title", Value: 1}}, Options: unique},
		"webhook_events": {Keys: bson.D{{Key: "eventId", Value: 1}}, Options: unique},
		"outbox":         {Keys: bson.D{{Key: "nextRetryAt", Value: 1}}},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}

	return nil
}
