package checkoutsvc

import (
	"context"
	"math"

	"github.com/aays-store/backend/internal/errs"
	"github.com/spf13/viper"
	"github.com/stripe/stripe-go/v80"
)

// sessionCreator is the slice of the payment provider API the builder needs.
type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// CheckoutService translates a cart into a hosted payment session. The
// product id and chosen variant ride along as price metadata so the webhook
// handler can reconstruct the structured cart later.
type CheckoutService struct {
	sessions         sessionCreator
	storeURL         string
	currency         string
	allowedCountries []string
	shippingRates    []string
}

// option is a function that configures the CheckoutService.
type option func(*CheckoutService)

// MustNewCheckoutService creates a new CheckoutService.
func MustNewCheckoutService(opts ...option) *CheckoutService {
	s := &CheckoutService{
		storeURL:         viper.GetString("store.url"),
		currency:         viper.GetString("checkout.currency"),
		allowedCountries: viper.GetStringSlice("checkout.allowed_countries"),
		shippingRates:    viper.GetStringSlice("checkout.shipping_rates"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithSessionCreator(sessions sessionCreator) option {
	return func(s *CheckoutService) { s.sessions = sessions }
}

// CartProduct is the product slice of a cart entry.
type CartProduct struct {
	ID    string  `json:"_id"   validate:"required"`
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
}

// CartItem is one cart entry: a product plus quantity and optional variant.
type CartItem struct {
	Item     CartProduct `json:"item"     validate:"required"`
	Quantity int64       `json:"quantity" validate:"gt=0"`
	Size     string      `json:"size"`
	Color    string      `json:"color"`
}

// Customer identifies the purchaser for the session.
type Customer struct {
	ClerkID string `json:"clerkId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// BuildSession opens a hosted payment session for the cart and returns its
// redirect URL.
func (s *CheckoutService) BuildSession(ctx context.Context, cartItems []CartItem, cust Customer) (string, error) {
	if len(cartItems) == 0 || cust.ClerkID == "" || cust.Email == "" {
		return "", errs.Validation("not enough data to checkout")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cartItems))
	for _, cartItem := range cartItems {
		metadata := map[string]string{
			"productId": cartItem.Item.ID,
		}
		if cartItem.Size != "" {
			metadata["size"] = cartItem.Size
		}
		if cartItem.Color != "" {
			metadata["color"] = cartItem.Color
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(int64(math.Round(cartItem.Item.Price * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(cartItem.Item.Title),
					Metadata: metadata,
				},
			},
			Quantity: stripe.Int64(cartItem.Quantity),
		})
	}

	shippingOptions := make([]*stripe.CheckoutSessionShippingOptionParams, 0, len(s.shippingRates))
	for _, rate := range s.shippingRates {
		shippingOptions = append(shippingOptions, &stripe.CheckoutSessionShippingOptionParams{
			ShippingRate: stripe.String(rate),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(s.allowedCountries),
		},
		ShippingOptions:   shippingOptions,
		LineItems:         lineItems,
		ClientReferenceID: stripe.String(cust.ClerkID),
		CustomerEmail:     stripe.String(cust.Email),
		Metadata: map[string]string{
			"clerkId": cust.ClerkID,
			"name":    cust.Name,
		},
		SuccessURL: stripe.String(s.storeURL + "/payment_success"),
		CancelURL:  stripe.String(s.storeURL + "/cart"),
	}
	params.Context = ctx

	sess, err := s.sessions.New(params)
	if err != nil {
		return "", errs.Internal("failed to create checkout session", err)
	}

	return sess.URL, nil
}
