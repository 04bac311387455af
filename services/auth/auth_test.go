package auth

import (
	"testing"

	"legalsahyog/models"
	"legalsahyog/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct{ users map[string]*models.User }

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}
func (r *memUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *memUserRepo) Count() (int64, error)          { return int64(len(r.users)), nil }
func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) Update(u *models.User) error                          { return nil }
func (r *memUserRepo) UpdateSet(string, map[string]interface{}) error       { return nil }
func (r *memUserRepo) Delete(id string) error                               { delete(r.users, id); return nil }

type memProviderRepo struct{ providers map[string]*models.Provider }

func (r *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	if p, ok := r.providers[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memProviderRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}
func (r *memProviderRepo) ExistsByBarCouncilNumber(number string) (bool, error) {
	for _, p := range r.providers {
		if p.BarCouncilNumber == number {
			return true, nil
		}
	}
	return false, nil
}
func (r *memProviderRepo) GetAll() ([]models.Provider, error)                 { return nil, nil }
func (r *memProviderRepo) GetVerified() ([]models.Provider, error)            { return nil, nil }
func (r *memProviderRepo) GetPendingVerification() ([]models.Provider, error) { return nil, nil }
func (r *memProviderRepo) GetByCity(string) ([]models.Provider, error)        { return nil, nil }
func (r *memProviderRepo) GetByState(string) ([]models.Provider, error)       { return nil, nil }
func (r *memProviderRepo) GetByPracticeArea(string) ([]models.Provider, error) {
	return nil, nil
}
func (r *memProviderRepo) GetTopRated(int) ([]models.Provider, error)        { return nil, nil }
func (r *memProviderRepo) GetMostExperienced(int) ([]models.Provider, error) { return nil, nil }
func (r *memProviderRepo) Count() (int64, error)                             { return 0, nil }
func (r *memProviderRepo) Create(p *models.Provider) error {
	r.providers[p.ID] = p
	return nil
}
func (r *memProviderRepo) Update(p *models.Provider) error                    { return nil }
func (r *memProviderRepo) UpdateSet(string, map[string]interface{}) error     { return nil }
func (r *memProviderRepo) IncrementCompletedSessions(string) error            { return nil }
func (r *memProviderRepo) AddEarnings(string, float64) error                  { return nil }
func (r *memProviderRepo) Delete(id string) error                             { return nil }

type memAdminRepo struct{ admins []*models.Admin }

func (r *memAdminRepo) GetByID(id string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (r *memAdminRepo) GetAll() ([]models.Admin, error)    { return nil, nil }
func (r *memAdminRepo) GetActive() ([]models.Admin, error) { return nil, nil }
func (r *memAdminRepo) Count() (int64, error)              { return int64(len(r.admins)), nil }
func (r *memAdminRepo) Create(a *models.Admin) error {
	r.admins = append(r.admins, a)
	return nil
}
func (r *memAdminRepo) Update(a *models.Admin) error { return nil }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuth(t *testing.T) *DefaultAuthService {
	t.Helper()
	users := &memUserRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "asha@example.com", PasswordHash: hashOf(t, "user-pass"), IsActive: true},
	}}
	providers := &memProviderRepo{providers: map[string]*models.Provider{
		"prov-1": {ID: "prov-1", Email: "ravi@example.com", PasswordHash: hashOf(t, "prov-pass"), BarCouncilNumber: "BCI-100"},
	}}
	admins := &memAdminRepo{admins: []*models.Admin{
		{ID: "admin-1", Email: "root@example.com", PasswordHash: hashOf(t, "admin-pass"), IsActive: true},
		{ID: "admin-2", Email: "retired@example.com", PasswordHash: hashOf(t, "old-pass"), IsActive: false},
	}}
	return NewAuthService(users, providers, admins)
}

func TestRegisterUserHashesPassword(t *testing.T) {
	svc := newTestAuth(t)

	created, err := svc.RegisterUser(&models.User{
		Email: "New@Example.com", Password: "secret123", FirstName: "New", LastName: "Client",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new@example.com", created.Email)
	assert.Empty(t, created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	assert.True(t, created.IsActive)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := newTestAuth(t)
	_, err := svc.RegisterUser(&models.User{Email: "asha@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterProviderUniqueness(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.RegisterProvider(&models.Provider{
		Email: "ravi@example.com", Password: "x", BarCouncilNumber: "BCI-200",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.RegisterProvider(&models.Provider{
		Email: "other@example.com", Password: "x", BarCouncilNumber: "BCI-100",
	})
	assert.ErrorIs(t, err, ErrBarNumberTaken)

	created, err := svc.RegisterProvider(&models.Provider{
		Email: "other@example.com", Password: "x", BarCouncilNumber: "BCI-200",
	})
	require.NoError(t, err)
	assert.False(t, created.IsVerified)
	assert.True(t, created.IsActive)
}

func TestLoginResolvesRoles(t *testing.T) {
	svc := newTestAuth(t)

	tests := []struct {
		email    string
		password string
		wantRole string
	}{
		{"root@example.com", "admin-pass", RoleAdmin},
		{"ravi@example.com", "prov-pass", RoleProvider},
		{"asha@example.com", "user-pass", RoleUser},
	}
	for _, tt := range tests {
		result, err := svc.Login(tt.email, tt.password)
		require.NoError(t, err, tt.email)
		assert.Equal(t, tt.wantRole, result.Role)
		require.NotEmpty(t, result.Token)

		claims, err := utils.ExtractClaims(result.Token)
		require.NoError(t, err)
		assert.Equal(t, tt.wantRole, claims.Role)
		assert.Equal(t, tt.email, claims.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveAdmin(t *testing.T) {
	svc := newTestAuth(t)
	_, err := svc.Login("retired@example.com", "old-pass")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestResolve(t *testing.T) {
	svc := newTestAuth(t)

	result, err := svc.Resolve("user-1", RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.User.Email)

	_, err = svc.Resolve("user-1", "ROLE_UNKNOWN")
	assert.Error(t, err)
}
