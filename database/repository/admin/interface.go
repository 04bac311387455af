package adminRepo

import "legalsahyog/models"

// AdminRepository defines methods for admin data access.
type AdminRepository interface {
	// GetByID retrieves an admin by its unique ID.
	GetByID(id string) (*models.Admin, error)
	// GetByEmail retrieves an admin by its email address.
	GetByEmail(email string) (*models.Admin, error)
	// GetAll retrieves all admins.
	GetAll() ([]models.Admin, error)
	// GetActive retrieves admins whose account is active.
	GetActive() ([]models.Admin, error)
	// Count returns the total number of admins.
	Count() (int64, error)
	// Create inserts a new admin record.
	Create(admin *models.Admin) error
	// Update modifies an existing admin record.
	Update(admin *models.Admin) error
}
