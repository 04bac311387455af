package provider

import (
	"fmt"

	"legalsahyog/models"

	providerRepo "legalsahyog/database/repository/provider"
)

// ProviderService exposes provider profile, discovery and moderation
// operations.
type ProviderService interface {
	GetProviderByID(id string) (*models.Provider, error)
	GetAllProviders() ([]models.Provider, error)
	// GetVerifiedProviders lists providers visible to clients.
	GetVerifiedProviders() ([]models.Provider, error)
	// GetPendingVerification lists providers awaiting admin review.
	GetPendingVerification() ([]models.Provider, error)
	GetProvidersByCity(city string) ([]models.Provider, error)
	GetProvidersByState(state string) ([]models.Provider, error)
	GetProvidersByPracticeArea(area string) ([]models.Provider, error)
	GetTopRatedProviders(limit int) ([]models.Provider, error)
	GetMostExperiencedProviders(limit int) ([]models.Provider, error)
	// UpdateProfile patches the mutable profile fields of a provider.
	UpdateProfile(id string, fields map[string]interface{}) (*models.Provider, error)
	// SetVerified marks the outcome of an admin verification review.
	SetVerified(id string, verified bool) error
	// SetActive toggles the provider's active flag.
	SetActive(id string, active bool) error
	// SetFCMToken stores the provider's device token for push delivery.
	SetFCMToken(id, token string) error
}

// DefaultProviderService is the production implementation of ProviderService.
type DefaultProviderService struct {
	Providers providerRepo.ProviderRepository
}

var _ ProviderService = (*DefaultProviderService)(nil)

func NewProviderService(providers providerRepo.ProviderRepository) *DefaultProviderService {
	return &DefaultProviderService{Providers: providers}
}

func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	return s.Providers.GetByID(id)
}

func (s *DefaultProviderService) GetAllProviders() ([]models.Provider, error) {
	return s.Providers.GetAll()
}

func (s *DefaultProviderService) GetVerifiedProviders() ([]models.Provider, error) {
	return s.Providers.GetVerified()
}

func (s *DefaultProviderService) GetPendingVerification() ([]models.Provider, error) {
	return s.Providers.GetPendingVerification()
}

func (s *DefaultProviderService) GetProvidersByCity(city string) ([]models.Provider, error) {
	return s.Providers.GetByCity(city)
}

func (s *DefaultProviderService) GetProvidersByState(state string) ([]models.Provider, error) {
	return s.Providers.GetByState(state)
}

func (s *DefaultProviderService) GetProvidersByPracticeArea(area string) ([]models.Provider, error) {
	return s.Providers.GetByPracticeArea(area)
}

func (s *DefaultProviderService) GetTopRatedProviders(limit int) ([]models.Provider, error) {
	return s.Providers.GetTopRated(limit)
}

func (s *DefaultProviderService) GetMostExperiencedProviders(limit int) ([]models.Provider, error) {
	return s.Providers.GetMostExperienced(limit)
}

// profileFields are the provider fields a caller may patch through
// UpdateProfile. Verification and counters are never patchable here.
var profileFields = map[string]bool{
	"firstName":       true,
	"lastName":        true,
	"phone":           true,
	"practiceArea":    true,
	"experienceYears": true,
	"qualification":   true,
	"bio":             true,
	"address":         true,
	"city":            true,
	"state":           true,
	"pincode":         true,
	"consultationFee": true,
}

func (s *DefaultProviderService) UpdateProfile(id string, fields map[string]interface{}) (*models.Provider, error) {
	patch := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if profileFields[k] {
			patch[k] = v
		}
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("no updatable fields in request")
	}
	if fee, ok := patch["consultationFee"].(float64); ok && fee < 0 {
		return nil, fmt.Errorf("consultation fee cannot be negative")
	}
	if err := s.Providers.UpdateSet(id, patch); err != nil {
		return nil, fmt.Errorf("failed to update provider profile: %w", err)
	}
	return s.Providers.GetByID(id)
}

func (s *DefaultProviderService) SetVerified(id string, verified bool) error {
	return s.Providers.UpdateSet(id, map[string]interface{}{"isVerified": verified})
}

func (s *DefaultProviderService) SetActive(id string, active bool) error {
	return s.Providers.UpdateSet(id, map[string]interface{}{"isActive": active})
}

func (s *DefaultProviderService) SetFCMToken(id, token string) error {
	return s.Providers.UpdateSet(id, map[string]interface{}{"fcmToken": token})
}
