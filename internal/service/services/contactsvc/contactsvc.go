package contactsvc

import (
	"context"

	"github.com/aays-store/backend/internal/dal/interfaces/icontactrepo"
	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/contact"
)

// ContactService stores storefront contact-form messages.
type ContactService struct {
	contactRepo icontactrepo.IContactRepository
}

// option is a function that configures the ContactService.
type option func(*ContactService)

// MustNewContactService creates a new ContactService.
func MustNewContactService(opts ...option) *ContactService {
	s := &ContactService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithContactRepository(repo icontactrepo.IContactRepository) option {
	return func(s *ContactService) { s.contactRepo = repo }
}

// Create stores a new contact message.
func (s *ContactService) Create(ctx context.Context, name, email, message string) (*contact.Contact, error) {
	if name == "" || email == "" || message == "" {
		return nil, errs.Validation("name, email and message are required")
	}

	created, err := s.contactRepo.Insert(ctx, contact.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]contact.Contact, error) {
	return s.contactRepo.List(ctx)
}
