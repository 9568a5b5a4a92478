package icontactrepo

import (
	"context"

	"github.com/aays-store/backend/internal/service/models/contact"
)

// IContactRepository defines the interface for contact message persistence.
type IContactRepository interface {
	Insert(ctx context.Context, c contact.Contact) (contact.Contact, error)
	List(ctx context.Context) ([]contact.Contact, error)
}
