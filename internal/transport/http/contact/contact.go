package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	contactmodel "github.com/aays-store/backend/internal/service/models/contact"
	"github.com/aays-store/backend/internal/transport/http/respond"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, name, email, message string) (*contactmodel.Contact, error)
	List(ctx context.Context) ([]contactmodel.Contact, error)
}

// contactRequest represents a storefront contact-form submission.
type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Create handles the contact-form submission.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := contactRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, errs.Validation("invalid request body: %v", err))

		return
	}

	if err := validator.New().Struct(&req); err != nil {
		respond.Error(w, r, errs.Validation("name, email and message are required"))

		return
	}

	if _, err := service.Create(r.Context(), req.Name, req.Email, req.Message); err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"message": "Message sent successfully"})
}

// List handles the admin contact-message listing request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	messages, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, messages)
}
