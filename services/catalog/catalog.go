package catalog

import (
	"errors"
	"fmt"
	"time"

	"legalsahyog/models"

	catalogRepo "legalsahyog/database/repository/catalog"

	"github.com/google/uuid"
)

// ErrInvalidPrice rejects catalog writes with a non-positive price.
var ErrInvalidPrice = errors.New("service price must be positive")

// CatalogService manages the bookable service catalog.
type CatalogService interface {
	GetServiceByID(id string) (*models.Service, error)
	GetAllServices() ([]models.Service, error)
	GetAvailableServices() ([]models.Service, error)
	GetServicesByProvider(providerID string) ([]models.Service, error)
	GetServicesByCategory(category string) ([]models.Service, error)
	GetServicesByPriceRange(min, max float64) ([]models.Service, error)
	SearchServices(keyword string) ([]models.Service, error)
	// CreateService validates and persists a new catalog entry for a provider.
	CreateService(service *models.Service) (*models.Service, error)
	// UpdateService validates and persists changes to an existing entry.
	UpdateService(service *models.Service) (*models.Service, error)
	// SetAvailability toggles whether the service can be booked.
	SetAvailability(id string, available bool) error
	DeleteService(id string) error
}

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Services catalogRepo.ServiceRepository
}

var _ CatalogService = (*DefaultCatalogService)(nil)

func NewCatalogService(services catalogRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Services: services}
}

func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.Services.GetByID(id)
}

func (s *DefaultCatalogService) GetAllServices() ([]models.Service, error) {
	return s.Services.GetAll()
}

func (s *DefaultCatalogService) GetAvailableServices() ([]models.Service, error) {
	return s.Services.GetAvailable()
}

func (s *DefaultCatalogService) GetServicesByProvider(providerID string) ([]models.Service, error) {
	return s.Services.GetByProvider(providerID)
}

func (s *DefaultCatalogService) GetServicesByCategory(category string) ([]models.Service, error) {
	return s.Services.GetByCategory(category)
}

func (s *DefaultCatalogService) GetServicesByPriceRange(min, max float64) ([]models.Service, error) {
	return s.Services.GetByPriceRange(min, max)
}

func (s *DefaultCatalogService) SearchServices(keyword string) ([]models.Service, error) {
	return s.Services.Search(keyword)
}

func (s *DefaultCatalogService) CreateService(service *models.Service) (*models.Service, error) {
	if service.Title == "" || service.ProviderID == "" {
		return nil, fmt.Errorf("title and provider are required")
	}
	if service.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if service.Category == "" {
		service.Category = "General"
	}
	service.ID = uuid.New().String()
	service.IsAvailable = true
	service.CreatedAt = time.Now()
	if err := s.Services.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

func (s *DefaultCatalogService) UpdateService(service *models.Service) (*models.Service, error) {
	if service.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if service.Category == "" {
		service.Category = "General"
	}
	if err := s.Services.Update(service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

func (s *DefaultCatalogService) SetAvailability(id string, available bool) error {
	service, err := s.Services.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to resolve service: %w", err)
	}
	service.IsAvailable = available
	if err := s.Services.Update(service); err != nil {
		return fmt.Errorf("failed to update service availability: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Services.Delete(id)
}
