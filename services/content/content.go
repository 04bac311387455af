package content

import (
	"fmt"
	"time"

	"legalsahyog/models"
	"legalsahyog/utils"

	contentRepo "legalsahyog/database/repository/content"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService manages the legal knowledge base: articles, guides and FAQs
// with a draft/published lifecycle.
type ContentService interface {
	// GetContent returns a published entry and bumps its view counter.
	GetContent(id string) (*models.LegalContent, error)
	GetAllContent() ([]models.LegalContent, error)
	GetPublishedContent() ([]models.LegalContent, error)
	GetContentByType(contentType models.ContentType) ([]models.LegalContent, error)
	GetContentByCategory(category string) ([]models.LegalContent, error)
	GetFeaturedContent() ([]models.LegalContent, error)
	GetPopularContent() ([]models.LegalContent, error)
	SearchContent(keyword string) ([]models.LegalContent, error)
	GetCategories() ([]string, error)
	GetTags() ([]string, error)
	// CreateContent persists a new entry as DRAFT.
	CreateContent(content *models.LegalContent) (*models.LegalContent, error)
	UpdateContent(content *models.LegalContent) (*models.LegalContent, error)
	// Publish makes an entry publicly visible.
	Publish(id string) error
	// Unpublish moves an entry back to DRAFT.
	Unpublish(id string) error
	DeleteContent(id string) error
}

// DefaultContentService is the production implementation of ContentService.
type DefaultContentService struct {
	Content contentRepo.ContentRepository
}

var _ ContentService = (*DefaultContentService)(nil)

func NewContentService(content contentRepo.ContentRepository) *DefaultContentService {
	return &DefaultContentService{Content: content}
}

func (s *DefaultContentService) GetContent(id string) (*models.LegalContent, error) {
	entry, err := s.Content.GetByID(id)
	if err != nil {
		return nil, err
	}
	// View counting is best-effort; a read never fails over it.
	if err := s.Content.IncrementViewCount(id); err != nil {
		utils.GetLogger().Warn("failed to count content view", zap.String("contentID", id), zap.Error(err))
	} else {
		entry.ViewCount++
	}
	return entry, nil
}

func (s *DefaultContentService) GetAllContent() ([]models.LegalContent, error) {
	return s.Content.GetAll()
}

func (s *DefaultContentService) GetPublishedContent() ([]models.LegalContent, error) {
	return s.Content.GetPublished()
}

func (s *DefaultContentService) GetContentByType(contentType models.ContentType) ([]models.LegalContent, error) {
	return s.Content.GetPublishedByType(contentType)
}

func (s *DefaultContentService) GetContentByCategory(category string) ([]models.LegalContent, error) {
	return s.Content.GetPublishedByCategory(category)
}

func (s *DefaultContentService) GetFeaturedContent() ([]models.LegalContent, error) {
	return s.Content.GetFeatured()
}

func (s *DefaultContentService) GetPopularContent() ([]models.LegalContent, error) {
	return s.Content.GetPopular()
}

func (s *DefaultContentService) SearchContent(keyword string) ([]models.LegalContent, error) {
	return s.Content.Search(keyword)
}

func (s *DefaultContentService) GetCategories() ([]string, error) {
	return s.Content.DistinctCategories()
}

func (s *DefaultContentService) GetTags() ([]string, error) {
	return s.Content.DistinctTags()
}

func (s *DefaultContentService) CreateContent(content *models.LegalContent) (*models.LegalContent, error) {
	if content.Title == "" || content.Content == "" {
		return nil, fmt.Errorf("title and content are required")
	}
	switch content.ContentType {
	case models.ContentArticle, models.ContentGuide, models.ContentFAQ:
	case "":
		content.ContentType = models.ContentArticle
	default:
		return nil, fmt.Errorf("unknown content type %q", content.ContentType)
	}
	content.ID = uuid.New().String()
	content.Status = models.ContentDraft
	content.ViewCount = 0
	content.CreatedAt = time.Now()
	content.UpdatedAt = content.CreatedAt
	if err := s.Content.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return content, nil
}

func (s *DefaultContentService) UpdateContent(content *models.LegalContent) (*models.LegalContent, error) {
	if content.Title == "" || content.Content == "" {
		return nil, fmt.Errorf("title and content are required")
	}
	content.UpdatedAt = time.Now()
	if err := s.Content.Update(content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return content, nil
}

func (s *DefaultContentService) Publish(id string) error {
	return s.Content.SetStatus(id, models.ContentPublished)
}

func (s *DefaultContentService) Unpublish(id string) error {
	return s.Content.SetStatus(id, models.ContentDraft)
}

func (s *DefaultContentService) DeleteContent(id string) error {
	return s.Content.Delete(id)
}
