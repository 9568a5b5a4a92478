package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. The first media entry is conventionally the
// primary image. Collections is kept consistent with the referenced
// collections' product lists.
type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title       string               `bson:"title"         json:"title"`
	Description string               `bson:"description"   json:"description"`
	Media       []string             `bson:"media"         json:"media"`
	Category    string               `bson:"category"      json:"category"`
	SubCategory string               `bson:"subCategory"   json:"subCategory"`
	Collections []primitive.ObjectID `bson:"collections"   json:"collections"`
	Tags        []string             `bson:"tags"          json:"tags"`
	Sizes       []string             `bson:"sizes"         json:"sizes"`
	Colors      []string             `bson:"colors"        json:"colors"`
	Price       float64              `bson:"price"         json:"price"`
	Expense     float64              `bson:"expense"       json:"expense"`
	CreatedAt   time.Time            `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"     json:"updatedAt"`
}
