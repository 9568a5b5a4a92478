package collections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aays-store/backend/internal/service/models/collection"
	"github.com/aays-store/backend/internal/service/models/product"
	"github.com/aays-store/backend/internal/service/services/catalogsvc"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeService struct {
	CreateCollectionFunc   func(ctx context.Context, title, description, image string) (*collection.Collection, error)
	ListCollectionsFunc    func(ctx context.Context) ([]catalogsvc.CollectionDetails, error)
	GetCollectionFunc      func(ctx context.Context, collectionID string) (*catalogsvc.CollectionDetails, error)
	UpdateCollectionFunc   func(ctx context.Context, collectionID string, model catalogsvc.UpdateCollectionModel) (*collection.Collection, error)
	DeleteCollectionFunc   func(ctx context.Context, collectionID string) error
	CollectionProductsFunc func(ctx context.Context, collectionID string) ([]product.Product, error)
}

func (f *fakeService) CreateCollection(ctx context.Context, title, description, image string) (*collection.Collection, error) {
	return f.CreateCollectionFunc(ctx, title, description, image)
}

func (f *fakeService) ListCollections(ctx context.Context) ([]catalogsvc.CollectionDetails, error) {
	return f.ListCollectionsFunc(ctx)
}

func (f *fakeService) GetCollection(ctx context.Context, collectionID string) (*catalogsvc.CollectionDetails, error) {
	return f.GetCollectionFunc(ctx, collectionID)
}

func (f *fakeService) UpdateCollection(ctx context.Context, collectionID string, model catalogsvc.UpdateCollectionModel) (*collection.Collection, error) {
	return f.UpdateCollectionFunc(ctx, collectionID, model)
}

func (f *fakeService) DeleteCollection(ctx context.Context, collectionID string) error {
	return f.DeleteCollectionFunc(ctx, collectionID)
}

func (f *fakeService) CollectionProducts(ctx context.Context, collectionID string) ([]product.Product, error) {
	return f.CollectionProductsFunc(ctx, collectionID)
}

func TestCreateKeepsFirstImage(t *testing.T) {
	svc := &fakeService{
		CreateCollectionFunc: func(ctx context.Context, title, description, image string) (*collection.Collection, error) {
			assert.Equal(t, "Summer", title)
			assert.Equal(t, "https://img/1.png", image)

			return &collection.Collection{ID: primitive.NewObjectID(), Title: title, Image: image}, nil
		},
	}

	body := `{"title": "Summer", "image": ["https://img/1.png", "https://img/2.png"]}`
	req := httptest.NewRequest(http.MethodPost, "/collections", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Create(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Summer")
}

func TestCreateRequiresImage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/collections", strings.NewReader(`{"title": "Summer", "image": []}`))
	rec := httptest.NewRecorder()

	Create(rec, req, &fakeService{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one image")
}

func TestUpdatePassesProductReassignment(t *testing.T) {
	collectionID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	otherCollection := primitive.NewObjectID()

	svc := &fakeService{
		UpdateCollectionFunc: func(ctx context.Context, gotID string, model catalogsvc.UpdateCollectionModel) (*collection.Collection, error) {
			assert.Equal(t, collectionID.Hex(), gotID)
			assert.Equal(t, productID.Hex(), model.ProductID)
			assert.Equal(t, []string{otherCollection.Hex()}, model.Collections)

			return &collection.Collection{ID: collectionID, Title: model.Title}, nil
		},
	}

	router := chi.NewRouter()
	router.Put("/collections/{collectionId}", func(w http.ResponseWriter, r *http.Request) {
		Update(w, r, svc)
	})

	body := `{
		"title": "Summer",
		"image": "https://img/1.png",
		"productId": "` + productID.Hex() + `",
		"collections": ["` + otherCollection.Hex() + `"]
	}`
	req := httptest.NewRequest(http.MethodPut, "/collections/"+collectionID.Hex(), strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDelete(t *testing.T) {
	collectionID := primitive.NewObjectID()

	var deleted string
	svc := &fakeService{
		DeleteCollectionFunc: func(ctx context.Context, gotID string) error {
			deleted = gotID

			return nil
		},
	}

	router := chi.NewRouter()
	router.Delete("/collections/{collectionId}", func(w http.ResponseWriter, r *http.Request) {
		Delete(w, r, svc)
	})

	req := httptest.NewRequest(http.MethodDelete, "/collections/"+collectionID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, collectionID.Hex(), deleted)
	assert.Contains(t, rec.Body.String(), "Collection deleted")
}
