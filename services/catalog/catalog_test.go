package catalog

import (
	"testing"

	"legalsahyog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type memServiceRepo struct{ services map[string]*models.Service }

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memServiceRepo) GetAll() ([]models.Service, error)       { return nil, nil }
func (r *memServiceRepo) GetAvailable() ([]models.Service, error) { return nil, nil }
func (r *memServiceRepo) GetByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *memServiceRepo) GetByCategory(string) ([]models.Service, error) { return nil, nil }
func (r *memServiceRepo) GetByPriceRange(_, _ float64) ([]models.Service, error) {
	return nil, nil
}
func (r *memServiceRepo) Search(string) ([]models.Service, error) { return nil, nil }
func (r *memServiceRepo) Create(s *models.Service) error {
	r.services[s.ID] = s
	return nil
}
func (r *memServiceRepo) Update(s *models.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.services[s.ID] = s
	return nil
}
func (r *memServiceRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

func newTestCatalog() (*DefaultCatalogService, *memServiceRepo) {
	repo := &memServiceRepo{services: make(map[string]*models.Service)}
	return NewCatalogService(repo), repo
}

func TestCreateServiceDefaults(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService(&models.Service{
		ProviderID: "prov-1", Title: "Contract Review", Price: 1500,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "General", created.Category)
	assert.True(t, created.IsAvailable)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateServiceRejectsBadInput(t *testing.T) {
	svc, repo := newTestCatalog()

	_, err := svc.CreateService(&models.Service{ProviderID: "prov-1", Title: "Free Advice", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.CreateService(&models.Service{ProviderID: "prov-1", Title: "Negative", Price: -10})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.CreateService(&models.Service{ProviderID: "prov-1", Price: 100})
	assert.Error(t, err)

	assert.Empty(t, repo.services)
}

func TestUpdateServiceValidatesPrice(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService(&models.Service{
		ProviderID: "prov-1", Title: "Contract Review", Price: 1500, Category: "Corporate",
	})
	require.NoError(t, err)

	created.Price = 0
	_, err = svc.UpdateService(created)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	created.Price = 2000
	updated, err := svc.UpdateService(created)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.Price)
	assert.Equal(t, "Corporate", updated.Category)
}

func TestSetAvailability(t *testing.T) {
	svc, repo := newTestCatalog()

	created, err := svc.CreateService(&models.Service{
		ProviderID: "prov-1", Title: "Contract Review", Price: 1500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetAvailability(created.ID, false))
	assert.False(t, repo.services[created.ID].IsAvailable)

	assert.Error(t, svc.SetAvailability("ghost", true))
}
