package auth

import (
	"errors"

	"legalsahyog/models"

	adminRepo "legalsahyog/database/repository/admin"
	providerRepo "legalsahyog/database/repository/provider"
	userRepo "legalsahyog/database/repository/user"
)

// Role claims issued on login tokens.
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleProvider = "ROLE_PROVIDER"
	RoleUser     = "ROLE_USER"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrBarNumberTaken     = errors.New("bar council number is already registered")
	ErrAccountInactive    = errors.New("account is deactivated")
)

// LoginResult is what a successful login yields: a signed token, the role it
// carries and the authenticated account (exactly one of the three pointers).
type LoginResult struct {
	Token    string           `json:"token"`
	Role     string           `json:"role"`
	User     *models.User     `json:"user,omitempty"`
	Provider *models.Provider `json:"provider,omitempty"`
	Admin    *models.Admin    `json:"admin,omitempty"`
}

// AuthService registers accounts and authenticates the three account types
// against a single login endpoint.
type AuthService interface {
	// RegisterUser creates a user account. The plaintext password on the
	// model is hashed and discarded.
	RegisterUser(user *models.User) (*models.User, error)
	// RegisterProvider creates a provider account, unverified and active.
	RegisterProvider(provider *models.Provider) (*models.Provider, error)
	// Login authenticates an email/password pair, trying admins first, then
	// providers, then users, and issues a role-scoped token.
	Login(email, password string) (*LoginResult, error)
	// Resolve returns the account behind a validated token's subject and role.
	Resolve(subject, role string) (*LoginResult, error)
}

// DefaultAuthService is the production implementation of AuthService.
type DefaultAuthService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Admins    adminRepo.AdminRepository
}

var _ AuthService = (*DefaultAuthService)(nil)

// NewAuthService wires an AuthService from its repositories.
func NewAuthService(
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
	admins adminRepo.AdminRepository,
) *DefaultAuthService {
	return &DefaultAuthService{Users: users, Providers: providers, Admins: admins}
}
