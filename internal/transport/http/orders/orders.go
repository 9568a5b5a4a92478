package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/order"
	"github.com/aays-store/backend/internal/service/services/ordersvc"
	"github.com/aays-store/backend/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, model ordersvc.CreateOrderModel) (*order.Order, error)
	AdvanceStatus(ctx context.Context, orderID, newStatus string) (*order.Order, error)
	ListOrders(ctx context.Context) ([]ordersvc.Summary, error)
	GetOrder(ctx context.Context, orderID string) (*ordersvc.Details, error)
	ListCustomerOrders(ctx context.Context, clerkID string) ([]ordersvc.Details, error)
}

// lineItemRequest is one ordered product in a create order request.
type lineItemRequest struct {
	Product  string `json:"product"  validate:"required"`
	Color    string `json:"color"    validate:"required"`
	Size     string `json:"size"     validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type shippingAddressRequest struct {
	Street     string `json:"street"     validate:"required"`
	City       string `json:"city"       validate:"required"`
	State      string `json:"state"      validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country"    validate:"required"`
}

type customerRequest struct {
	ClerkID string `json:"clerkId" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// createOrderRequest represents an admin create order request.
type createOrderRequest struct {
	Customer        customerRequest        `json:"customer"        validate:"required"`
	Products        []lineItemRequest      `json:"products"        validate:"required,min=1,dive"`
	TotalAmount     float64                `json:"totalAmount"     validate:"gt=0"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress" validate:"required"`
	ShippingRate    string                 `json:"shippingRate"    validate:"required"`
}

func (r *createOrderRequest) toModel() (ordersvc.CreateOrderModel, error) {
	products := make([]order.LineItem, 0, len(r.Products))
	for _, item := range r.Products {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			return ordersvc.CreateOrderModel{}, errs.Validation("invalid product id %q", item.Product)
		}
		products = append(products, order.LineItem{
			Product:  productID,
			Color:    item.Color,
			Size:     item.Size,
			Quantity: item.Quantity,
		})
	}

	return ordersvc.CreateOrderModel{
		Customer: ordersvc.CustomerInfo{
			ClerkID: r.Customer.ClerkID,
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
		},
		Products:    products,
		TotalAmount: r.TotalAmount,
		ShippingAddress: order.ShippingAddress{
			Street:     r.ShippingAddress.Street,
			City:       r.ShippingAddress.City,
			State:      r.ShippingAddress.State,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
		},
		ShippingRate: r.ShippingRate,
	}, nil
}

// Create handles the admin create order request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	if err := validator.New().Struct(&req); err != nil {
		respond.Error(w, r, errs.Validation("missing required fields: %v", err))

		return
	}

	model, err := req.toModel()
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	created, err := service.CreateOrder(r.Context(), model)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// List handles the admin order listing request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	summaries, err := service.ListOrders(r.Context())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, summaries)
}

// Get handles the order details request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	details, err := service.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, details)
}

// updateStatusRequest represents a status transition request.
type updateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status"  validate:"required"`
}

// UpdateStatus handles the status transition request.
func UpdateStatus(w http.ResponseWriter, r *http.Request, service service) {
	req := updateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	if err := validator.New().Struct(&req); err != nil {
		respond.Error(w, r, errs.Validation("orderId and status are required"))

		return
	}

	updated, err := service.AdvanceStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   updated,
	})
}

// CustomerOrders handles the per-customer order history request.
func CustomerOrders(w http.ResponseWriter, r *http.Request, service service) {
	details, err := service.ListCustomerOrders(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  details,
	})
}
