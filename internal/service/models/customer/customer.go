package customer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is an accumulating index over one person's orders, keyed by the
// external auth identity. Orders is insertion-ordered and append-only.
type Customer struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	ClerkID   string               `bson:"clerkId"       json:"clerkId"`
	Name      string               `bson:"name"          json:"name"`
	Email     string               `bson:"email"         json:"email"`
	Orders    []primitive.ObjectID `bson:"orders"        json:"orders"`
	CreatedAt time.Time            `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"     json:"updatedAt"`
}
