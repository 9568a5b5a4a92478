package iproductrepo

import (
	"context"

	"github.com/aays-store/backend/internal/service/models/product"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter narrows product listings. Empty fields match everything.
type Filter struct {
	Category    string
	SubCategory string
}

// IProductRepository defines the interface for product persistence.
type IProductRepository interface {
	Insert(ctx context.Context, p product.Product) (product.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*product.Product, error)
	List(ctx context.Context, filter Filter) ([]product.Product, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]product.Product, error)
	ListByCollection(ctx context.Context, collectionID primitive.ObjectID) ([]product.Product, error)

	// ListByCategory matches category and subcategory case-insensitively.
	ListByCategory(ctx context.Context, category, subCategory string) ([]product.Product, error)

	// Search matches the query case-insensitively against title, category
	// and tags.
	Search(ctx context.Context, query string) ([]product.Product, error)

	// Update applies the set fields and returns the updated product.
	Update(ctx context.Context, id primitive.ObjectID, p product.Product) (*product.Product, error)

	Delete(ctx context.Context, id primitive.ObjectID) error

	// SetCollections replaces the product's collection references.
	SetCollections(ctx context.Context, id primitive.ObjectID, collections []primitive.ObjectID) error

	// PullCollection removes a collection reference from every product.
	PullCollection(ctx context.Context, collectionID primitive.ObjectID) error
}
