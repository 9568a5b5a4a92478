package icollectionrepo

import (
	"context"

	"github.com/aays-store/backend/internal/service/models/collection"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ICollectionRepository defines the interface for collection persistence.
type ICollectionRepository interface {
	Insert(ctx context.Context, c collection.Collection) (collection.Collection, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*collection.Collection, error)
	GetByTitle(ctx context.Context, title string) (*collection.Collection, error)
	List(ctx context.Context) ([]collection.Collection, error)

	// Update applies the collection's mutable fields (title, description,
	// image) and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, c collection.Collection) (*collection.Collection, error)

	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddProduct adds a product reference to each listed collection.
	AddProduct(ctx context.Context, collectionIDs []primitive.ObjectID, productID primitive.ObjectID) error

	// PullProduct removes a product reference from every collection.
	PullProduct(ctx context.Context, productID primitive.ObjectID) error
}
