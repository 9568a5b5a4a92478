package iwebhookeventrepo

import "context"

// IWebhookEventRepository guards fulfillment against at-least-once webhook
// delivery by recording processed provider event ids.
type IWebhookEventRepository interface {
	// MarkProcessed records the event id. It returns false when the id was
	// already recorded, meaning this delivery is a retry.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)

	// Unmark removes the record so a failed fulfillment can be redelivered.
	Unmark(ctx context.Context, eventID string) error
}
