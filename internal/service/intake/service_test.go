package intake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

type fakeContactRepo struct {
	created *domain.ContactMessage
}

func (f *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.ID = 1
	f.created = msg
	return msg, nil
}

type fakeCorporateRepo struct {
	created *domain.CorporateEnquiry
}

func (f *fakeCorporateRepo) Create(_ context.Context, enquiry *domain.CorporateEnquiry) (*domain.CorporateEnquiry, error) {
	enquiry.ID = 1
	f.created = enquiry
	return enquiry, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeContactRepo, *fakeCorporateRepo) {
	contactRepo := &fakeContactRepo{}
	corporateRepo := &fakeCorporateRepo{}
	return NewService(contactRepo, corporateRepo, nopLogger{}), contactRepo, corporateRepo
}

func TestCreateContact(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.CreateContact(context.Background(), &models.CreateContactRequest{
		Name:    "Anna Keller",
		Email:   "anna@example.com",
		Message: "I would like to know more about group sessions.",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.DefaultPreferredChannel, resp.PreferredChannel)
	require.NotNil(t, repo.created)
}

func TestCreateContact_ExplicitChannel(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateContact(context.Background(), &models.CreateContactRequest{
		Name:             "Anna Keller",
		Email:            "anna@example.com",
		Message:          "Please call me back.",
		PreferredChannel: "phone",
	})

	require.NoError(t, err)
	assert.Equal(t, "phone", resp.PreferredChannel)
}

func TestCreateContact_Validation(t *testing.T) {
	svc, repo, _ := newTestService()

	tests := []struct {
		name string
		req  *models.CreateContactRequest
	}{
		{"missing name", &models.CreateContactRequest{Email: "a@b.c", Message: "hi"}},
		{"missing email", &models.CreateContactRequest{Name: "A", Message: "hi"}},
		{"missing message", &models.CreateContactRequest{Name: "A", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContact(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Nil(t, repo.created)
}

func TestCreateCorporate(t *testing.T) {
	svc, _, repo := newTestService()

	resp, err := svc.CreateCorporate(context.Background(), &models.CreateCorporateRequest{
		OrganizationName: "Acme GmbH",
		ContactPerson:    "Jordan Blake",
		Email:            "hr@acme.example",
		GroupSize:        "10-20",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "10-20", resp.GroupSize)
	require.NotNil(t, repo.created)
}

func TestCreateCorporate_Validation(t *testing.T) {
	svc, _, repo := newTestService()

	tests := []struct {
		name string
		req  *models.CreateCorporateRequest
	}{
		{"missing organization", &models.CreateCorporateRequest{ContactPerson: "J", Email: "a@b.c"}},
		{"missing contact person", &models.CreateCorporateRequest{OrganizationName: "Acme", Email: "a@b.c"}},
		{"missing email", &models.CreateCorporateRequest{OrganizationName: "Acme", ContactPerson: "J"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCorporate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Nil(t, repo.created)
}
