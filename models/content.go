package models

import "time"

// ContentType distinguishes the kinds of published legal content.
type ContentType string

const (
	ContentArticle ContentType = "ARTICLE"
	ContentGuide   ContentType = "GUIDE"
	ContentFAQ     ContentType = "FAQ"
)

// ContentStatus is the publishing state of a legal content entry.
type ContentStatus string

const (
	ContentDraft     ContentStatus = "DRAFT"
	ContentPublished ContentStatus = "PUBLISHED"
)

// LegalContent is an article, guide or FAQ published on the platform.
type LegalContent struct {
	ID          string        `bson:"id" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Content     string        `bson:"content" json:"content"`
	Summary     string        `bson:"summary" json:"summary,omitempty"`
	Category    string        `bson:"category" json:"category,omitempty"`
	Tags        []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	ContentType ContentType   `bson:"contentType" json:"contentType"`
	Status      ContentStatus `bson:"status" json:"status"`
	IsFeatured  bool          `bson:"isFeatured" json:"isFeatured"`
	ViewCount   int           `bson:"viewCount" json:"viewCount"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
