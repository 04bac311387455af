package userRepo

import "legalsahyog/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// ExistsByEmail reports whether a user with the email exists.
	ExistsByEmail(email string) (bool, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Count returns the total number of users.
	Count() (int64, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSet patches selected user fields.
	UpdateSet(id string, fields map[string]interface{}) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
