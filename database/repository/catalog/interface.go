package catalogRepo

import "legalsahyog/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services.
	GetAll() ([]models.Service, error)
	// GetAvailable retrieves services currently open for booking.
	GetAvailable() ([]models.Service, error)
	// GetByProvider retrieves a provider's available services.
	GetByProvider(providerID string) ([]models.Service, error)
	// GetByCategory retrieves available services in a category.
	GetByCategory(category string) ([]models.Service, error)
	// GetByPriceRange retrieves available services priced within [min, max].
	GetByPriceRange(min, max float64) ([]models.Service, error)
	// Search retrieves available services whose title or description matches
	// the keyword (case-insensitive).
	Search(keyword string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// Update modifies an existing service record.
	Update(service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
