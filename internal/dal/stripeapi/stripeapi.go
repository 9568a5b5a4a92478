package stripeapi

import (
	"os"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// MustInit sets the process-wide Stripe API key.
func MustInit() {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		panic("STRIPE_SECRET_KEY is not set")
	}
	stripe.Key = key
}

// SessionClient is the production checkout-session API.
type SessionClient struct{}

func (SessionClient) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (SessionClient) Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.Get(id, params)
}

// WebhookVerifier checks event signatures against the shared signing secret.
type WebhookVerifier struct {
	secret string
}

func MustNewWebhookVerifier() WebhookVerifier {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		panic("STRIPE_WEBHOOK_SECRET is not set")
	}

	return WebhookVerifier{secret: secret}
}

func (v WebhookVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, v.secret)
}
