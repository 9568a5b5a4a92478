package contactsvc

import (
	"context"
	"testing"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeContactRepo struct {
	inserted []contact.Contact
}

func (f *fakeContactRepo) Insert(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	c.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, c)

	return c, nil
}

func (f *fakeContactRepo) List(ctx context.Context) ([]contact.Contact, error) {
	return f.inserted, nil
}

func TestCreate(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := MustNewContactService(WithContactRepository(repo))

	created, err := svc.Create(context.Background(), "Ada", "ada@example.com", "Where is my order?")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Where is my order?", created.Message)
	require.Len(t, repo.inserted, 1)
}

func TestCreateRequiresAllFields(t *testing.T) {
	svc := MustNewContactService(WithContactRepository(&fakeContactRepo{}))

	for _, tt := range []struct {
		name, email, message string
	}{
		{"", "ada@example.com", "hi"},
		{"Ada", "", "hi"},
		{"Ada", "ada@example.com", ""},
	} {
		_, err := svc.Create(context.Background(), tt.name, tt.email, tt.message)
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	}
}
