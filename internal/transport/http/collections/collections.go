package collections

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/collection"
	"github.com/aays-store/backend/internal/service/models/product"
	"github.com/aays-store/backend/internal/service/services/catalogsvc"
	"github.com/aays-store/backend/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateCollection(ctx context.Context, title, description, image string) (*collection.Collection, error)
	ListCollections(ctx context.Context) ([]catalogsvc.CollectionDetails, error)
	GetCollection(ctx context.Context, collectionID string) (*catalogsvc.CollectionDetails, error)
	UpdateCollection(ctx context.Context, collectionID string, model catalogsvc.UpdateCollectionModel) (*collection.Collection, error)
	DeleteCollection(ctx context.Context, collectionID string) error
	CollectionProducts(ctx context.Context, collectionID string) ([]product.Product, error)
}

// createCollectionRequest represents a create collection request.
type createCollectionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Image       []string `json:"image" validate:"required,min=1"`
}

// Create handles the create collection request. The first image is kept as
// the collection image.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := createCollectionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	if err := validator.New().Struct(&req); err != nil {
		respond.Error(w, r, errs.Validation("title and at least one image are required"))

		return
	}

	created, err := service.CreateCollection(r.Context(), req.Title, req.Description, req.Image[0])
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// List handles the collection listing request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	details, err := service.ListCollections(r.Context())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, details)
}

// Get handles the collection details request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	details, err := service.GetCollection(r.Context(), chi.URLParam(r, "collectionId"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, details)
}

// updateCollectionRequest represents a collection update. ProductID and
// Collections together reassign a product across collections.
type updateCollectionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"required"`
	ProductID   string   `json:"productId"`
	Collections []string `json:"collections"`
}

// Update handles the collection update request, including the optional
// product reassignment.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	req := updateCollectionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	if err := validator.New().Struct(&req); err != nil {
		respond.Error(w, r, errs.Validation("title and image are required"))

		return
	}

	updated, err := service.UpdateCollection(r.Context(), chi.URLParam(r, "collectionId"), catalogsvc.UpdateCollectionModel{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		ProductID:   req.ProductID,
		Collections: req.Collections,
	})
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the collection delete request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	if err := service.DeleteCollection(r.Context(), chi.URLParam(r, "collectionId")); err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Collection deleted"})
}

// Products handles the collection products request.
func Products(w http.ResponseWriter, r *http.Request, service service) {
	products, err := service.CollectionProducts(r.Context(), chi.URLParam(r, "collectionId"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, products)
}
