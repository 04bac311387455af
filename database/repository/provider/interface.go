package providerRepo

import "legalsahyog/models"

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address.
	GetByEmail(email string) (*models.Provider, error)
	// ExistsByEmail reports whether a provider with the email exists.
	ExistsByEmail(email string) (bool, error)
	// ExistsByBarCouncilNumber reports whether the bar council number is taken.
	ExistsByBarCouncilNumber(number string) (bool, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// GetVerified retrieves verified, active providers.
	GetVerified() ([]models.Provider, error)
	// GetPendingVerification retrieves active providers awaiting verification.
	GetPendingVerification() ([]models.Provider, error)
	// GetByCity retrieves verified providers in a city (case-insensitive).
	GetByCity(city string) ([]models.Provider, error)
	// GetByState retrieves verified providers in a state (case-insensitive).
	GetByState(state string) ([]models.Provider, error)
	// GetByPracticeArea retrieves verified providers for a practice area.
	GetByPracticeArea(area string) ([]models.Provider, error)
	// GetTopRated retrieves verified providers ordered by rating, up to limit.
	GetTopRated(limit int) ([]models.Provider, error)
	// GetMostExperienced retrieves verified providers ordered by experience.
	GetMostExperienced(limit int) ([]models.Provider, error)
	// Count returns the total number of providers.
	Count() (int64, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Update modifies an existing provider record.
	Update(provider *models.Provider) error
	// UpdateSet patches selected provider fields.
	UpdateSet(id string, fields map[string]interface{}) error
	// IncrementCompletedSessions adds 1 to the provider's completed-session
	// counter. Applied as an atomic increment at the store.
	IncrementCompletedSessions(id string) error
	// AddEarnings adds the amount to the provider's cumulative earnings.
	// Applied as an atomic increment at the store.
	AddEarnings(id string, amount float64) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
}
