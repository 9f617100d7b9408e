package models

import (
	"time"

	"github.com/mindsettler/booking-backend/internal/domain"
)

// Request модели

// CreateContactRequest запрос контактной формы
type CreateContactRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	PreferredChannel string `json:"preferredChannel,omitempty"`
	Message          string `json:"message"`
}

// CreateCorporateRequest запрос корпоративной формы
type CreateCorporateRequest struct {
	OrganizationName string `json:"organizationName"`
	ContactPerson    string `json:"contactPerson"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Requirements     string `json:"requirements,omitempty"`
	GroupSize        string `json:"groupSize,omitempty"`
}

// Response модели

// ContactResponse ответ с сохранённым сообщением
type ContactResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	PreferredChannel string    `json:"preferredChannel"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CorporateResponse ответ с сохранённой заявкой
type CorporateResponse struct {
	ID               int64     `json:"id"`
	OrganizationName string    `json:"organizationName"`
	ContactPerson    string    `json:"contactPerson"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Requirements     string    `json:"requirements,omitempty"`
	GroupSize        string    `json:"groupSize,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromDomainContact конвертирует domain модель в response
func FromDomainContact(m *domain.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		PreferredChannel: m.PreferredChannel,
		Message:          m.Message,
		CreatedAt:        m.CreatedAt,
	}
}

// FromDomainCorporate конвертирует domain модель в response
func FromDomainCorporate(e *domain.CorporateEnquiry) *CorporateResponse {
	return &CorporateResponse{
		ID:               e.ID,
		OrganizationName: e.OrganizationName,
		ContactPerson:    e.ContactPerson,
		Email:            e.Email,
		Phone:            e.Phone,
		Requirements:     e.Requirements,
		GroupSize:        e.GroupSize,
		CreatedAt:        e.CreatedAt,
	}
}
