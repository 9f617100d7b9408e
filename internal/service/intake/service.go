package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindsettler/booking-backend/internal/domain"
	"github.com/mindsettler/booking-backend/internal/service/intake/models"
)

// Service сервис приёма обращений: контактная форма и корпоративные заявки
type Service struct {
	contactRepo   ContactRepository
	corporateRepo CorporateRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(
	contactRepo ContactRepository,
	corporateRepo CorporateRepository,
	logger Logger,
) *Service {
	return &Service{
		contactRepo:   contactRepo,
		corporateRepo: corporateRepo,
		logger:        logger,
	}
}

// CreateContact сохраняет сообщение контактной формы
func (s *Service) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.ContactResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	channel := req.PreferredChannel
	if strings.TrimSpace(channel) == "" {
		channel = domain.DefaultPreferredChannel
	}

	msg := &domain.ContactMessage{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredChannel: channel,
		Message:          req.Message,
	}

	created, err := s.contactRepo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("CreateContact: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateContact: message id=%d from %s", created.ID, created.Email)
	return models.FromDomainContact(created), nil
}

// CreateCorporate сохраняет корпоративную заявку
func (s *Service) CreateCorporate(ctx context.Context, req *models.CreateCorporateRequest) (*models.CorporateResponse, error) {
	if strings.TrimSpace(req.OrganizationName) == "" {
		return nil, fmt.Errorf("%w: organizationName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ContactPerson) == "" {
		return nil, fmt.Errorf("%w: contactPerson is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	enquiry := &domain.CorporateEnquiry{
		OrganizationName: req.OrganizationName,
		ContactPerson:    req.ContactPerson,
		Email:            req.Email,
		Phone:            req.Phone,
		Requirements:     req.Requirements,
		GroupSize:        req.GroupSize,
	}

	created, err := s.corporateRepo.Create(ctx, enquiry)
	if err != nil {
		s.logger.Error("CreateCorporate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCorporate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCorporate: enquiry id=%d from %s", created.ID, created.OrganizationName)
	return models.FromDomainCorporate(created), nil
}
