package products

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/product"
	"github.com/aays-store/backend/internal/service/services/catalogsvc"
	"github.com/aays-store/backend/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// service is an interface for the service layer.
type service interface {
	CreateProduct(ctx context.Context, model catalogsvc.CreateProductModel) (*product.Product, error)
	GetProduct(ctx context.Context, productID string) (*catalogsvc.ProductDetails, error)
	ListProducts(ctx context.Context, category, subCategory string) ([]product.Product, error)
	ProductsByCategory(ctx context.Context, category, subCategory string) ([]product.Product, error)
	Search(ctx context.Context, query string) ([]product.Product, error)
	UpdateProduct(ctx context.Context, productID string, model catalogsvc.CreateProductModel) (*product.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// productRequest represents a create or update product request.
type productRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Media       []string `json:"media"       validate:"required,min=1"`
	Category    string   `json:"category"    validate:"required"`
	SubCategory string   `json:"subCategory" validate:"required"`
	Collections []string `json:"collections"`
	Tags        []string `json:"tags"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Price       float64  `json:"price"       validate:"gt=0"`
	Expense     float64  `json:"expense"     validate:"gte=0"`
}

func (r *productRequest) toModel() catalogsvc.CreateProductModel {
	return catalogsvc.CreateProductModel{
		Title:       r.Title,
		Description: r.Description,
		Media:       r.Media,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Collections: r.Collections,
		Tags:        r.Tags,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Price:       r.Price,
		Expense:     r.Expense,
	}
}

func decodeProductRequest(r *http.Request) (*productRequest, error) {
	req := productRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errs.Validation("invalid request body: %v", err)
	}

	if err := validator.New().Struct(&req); err != nil {
		return nil, errs.Validation("missing required product fields: %v", err)
	}

	return &req, nil
}

// Create handles the create product request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req, err := decodeProductRequest(r)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	created, err := service.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// listProductsQuery narrows the product listing.
type listProductsQuery struct {
	Category    string `schema:"category,omitempty"`
	SubCategory string `schema:"subcategory,omitempty"`
}

// List handles the product listing request with optional category filters.
func List(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &listProductsQuery{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		respond.Error(w, r, errs.Validation("invalid query parameters: %v", err))

		return
	}

	products, err := service.ListProducts(r.Context(), query.Category, query.SubCategory)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, products)
}

// Get handles the product details request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	details, err := service.GetProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, details)
}

// Update handles the product update request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	req, err := decodeProductRequest(r)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	updated, err := service.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), req.toModel())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the product delete request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	if err := service.DeleteProduct(r.Context(), chi.URLParam(r, "productId")); err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// ByCategory handles the category browse request. The subcategory may span
// multiple path segments.
func ByCategory(w http.ResponseWriter, r *http.Request, service service) {
	category := chi.URLParam(r, "category")
	subCategory := chi.URLParam(r, "*")

	products, err := service.ProductsByCategory(r.Context(), category, subCategory)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, products)
}

// Search handles the storefront search request.
func Search(w http.ResponseWriter, r *http.Request, service service) {
	products, err := service.Search(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}
