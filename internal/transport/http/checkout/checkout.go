package checkout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/services/checkoutsvc"
	"github.com/aays-store/backend/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	BuildSession(ctx context.Context, cartItems []checkoutsvc.CartItem, cust checkoutsvc.Customer) (string, error)
}

// checkoutRequest represents a storefront checkout request.
type checkoutRequest struct {
	CartItems []checkoutsvc.CartItem `json:"cartItems"`
	Customer  checkoutsvc.Customer   `json:"customer"`
}

// Create handles the checkout request and returns the payment session URL.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := checkoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	url, err := service.BuildSession(r.Context(), req.CartItems, req.Customer)
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"url": url})
}
