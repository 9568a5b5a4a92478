package collection

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection groups products under a unique title. Products mirrors
// Product.Collections; both sides are updated together.
type Collection struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title       string               `bson:"title"         json:"title"`
	Description string               `bson:"description"   json:"description"`
	Image       string               `bson:"image"         json:"image"`
	Products    []primitive.ObjectID `bson:"products"      json:"products"`
}
