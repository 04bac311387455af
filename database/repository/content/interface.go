package contentRepo

import "legalsahyog/models"

// ContentRepository defines methods for legal content data access.
type ContentRepository interface {
	// GetByID retrieves a content entry by its unique ID.
	GetByID(id string) (*models.LegalContent, error)
	// GetAll retrieves all content entries, newest first.
	GetAll() ([]models.LegalContent, error)
	// GetPublished retrieves published entries, newest first.
	GetPublished() ([]models.LegalContent, error)
	// GetPublishedByType retrieves published entries of a content type.
	GetPublishedByType(contentType models.ContentType) ([]models.LegalContent, error)
	// GetPublishedByCategory retrieves published entries in a category.
	GetPublishedByCategory(category string) ([]models.LegalContent, error)
	// GetFeatured retrieves published featured entries.
	GetFeatured() ([]models.LegalContent, error)
	// GetPopular retrieves published entries ordered by view count.
	GetPopular() ([]models.LegalContent, error)
	// Search retrieves published entries matching the keyword.
	Search(keyword string) ([]models.LegalContent, error)
	// DistinctCategories lists all categories in use.
	DistinctCategories() ([]string, error)
	// DistinctTags lists all tags in use.
	DistinctTags() ([]string, error)
	// Create inserts a new content record.
	Create(content *models.LegalContent) error
	// Update modifies an existing content record.
	Update(content *models.LegalContent) error
	// IncrementViewCount bumps the view counter by one, atomically.
	IncrementViewCount(id string) error
	// SetStatus changes the publishing status.
	SetStatus(id string, status models.ContentStatus) error
	// Delete removes a content record by its ID.
	Delete(id string) error
}
