package user

import (
	"fmt"

	"legalsahyog/models"

	userRepo "legalsahyog/database/repository/user"
)

// UserService exposes user profile operations.
type UserService interface {
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	// UpdateProfile patches the mutable profile fields of a user.
	UpdateProfile(id string, fields map[string]interface{}) (*models.User, error)
	// SetActive toggles the user's active flag.
	SetActive(id string, active bool) error
	// SetFCMToken stores the user's device token for push delivery.
	SetFCMToken(id, token string) error
	DeleteUser(id string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Users userRepo.UserRepository
}

var _ UserService = (*DefaultUserService)(nil)

func NewUserService(users userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Users: users}
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Users.GetByID(id)
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Users.GetByEmail(email)
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Users.GetAll()
}

// profileFields are the user fields a caller may patch through UpdateProfile.
var profileFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"phone":     true,
	"address":   true,
	"city":      true,
	"state":     true,
	"pincode":   true,
}

func (s *DefaultUserService) UpdateProfile(id string, fields map[string]interface{}) (*models.User, error) {
	patch := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if profileFields[k] {
			patch[k] = v
		}
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("no updatable fields in request")
	}
	if err := s.Users.UpdateSet(id, patch); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return s.Users.GetByID(id)
}

func (s *DefaultUserService) SetActive(id string, active bool) error {
	return s.Users.UpdateSet(id, map[string]interface{}{"isActive": active})
}

func (s *DefaultUserService) SetFCMToken(id, token string) error {
	return s.Users.UpdateSet(id, map[string]interface{}{"fcmToken": token})
}

func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Users.Delete(id)
}
