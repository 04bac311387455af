package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"legalsahyog/models"
	"legalsahyog/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAuthService) RegisterUser(user *models.User) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	taken, err := s.Users.ExistsByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = uuid.New().String()
	user.PasswordHash = string(hash)
	user.Password = ""
	user.IsActive = true
	user.CreatedAt = time.Now()

	if err := s.Users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *DefaultAuthService) RegisterProvider(provider *models.Provider) (*models.Provider, error) {
	provider.Email = strings.ToLower(strings.TrimSpace(provider.Email))
	if provider.Email == "" || provider.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if provider.BarCouncilNumber == "" {
		return nil, fmt.Errorf("bar council number is required")
	}

	emailTaken, err := s.Providers.ExistsByEmail(provider.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if emailTaken {
		return nil, ErrEmailTaken
	}
	barTaken, err := s.Providers.ExistsByBarCouncilNumber(provider.BarCouncilNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check bar council number availability: %w", err)
	}
	if barTaken {
		return nil, ErrBarNumberTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(provider.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	provider.ID = uuid.New().String()
	provider.PasswordHash = string(hash)
	provider.Password = ""
	provider.IsVerified = false
	provider.IsActive = true
	provider.CreatedAt = time.Now()

	if err := s.Providers.Create(provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	return provider, nil
}

// Login tries the three account collections in a fixed order. Admin accounts
// win on email collisions, then providers, then users.
func (s *DefaultAuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if admin, err := s.Admins.GetByEmail(email); err == nil {
		if !admin.IsActive {
			return nil, ErrAccountInactive
		}
		if !checkPassword(admin.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(admin.ID, admin.Email, RoleAdmin, utils.AuthTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		return &LoginResult{Token: token, Role: RoleAdmin, Admin: admin}, nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if provider, err := s.Providers.GetByEmail(email); err == nil {
		if !checkPassword(provider.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(provider.ID, provider.Email, RoleProvider, utils.AuthTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		return &LoginResult{Token: token, Role: RoleProvider, Provider: provider}, nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}

	if user, err := s.Users.GetByEmail(email); err == nil {
		if !checkPassword(user.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(user.ID, user.Email, RoleUser, utils.AuthTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		return &LoginResult{Token: token, Role: RoleUser, User: user}, nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return nil, ErrInvalidCredentials
}

func (s *DefaultAuthService) Resolve(subject, role string) (*LoginResult, error) {
	switch role {
	case RoleAdmin:
		admin, err := s.Admins.GetByID(subject)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve admin: %w", err)
		}
		return &LoginResult{Role: role, Admin: admin}, nil
	case RoleProvider:
		provider, err := s.Providers.GetByID(subject)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve provider: %w", err)
		}
		return &LoginResult{Role: role, Provider: provider}, nil
	case RoleUser:
		user, err := s.Users.GetByID(subject)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user: %w", err)
		}
		return &LoginResult{Role: role, User: user}, nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
