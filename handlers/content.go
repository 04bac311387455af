package handlers

import (
	"net/http"
	"strings"

	"legalsahyog/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListContentHandler returns published content, optionally filtered by
// ?type=, ?category= or ?q= (keyword). ?featured=true and ?popular=true
// select the curated views.
func (hb *HandlerBundle) ListContentHandler(c *gin.Context) {
	var (
		entries []models.LegalContent
		err     error
	)
	switch {
	case c.Query("q") != "":
		entries, err = hb.Content.SearchContent(c.Query("q"))
	case c.Query("type") != "":
		entries, err = hb.Content.GetContentByType(models.ContentType(strings.ToUpper(c.Query("type"))))
	case c.Query("category") != "":
		entries, err = hb.Content.GetContentByCategory(c.Query("category"))
	case c.Query("featured") == "true":
		entries, err = hb.Content.GetFeaturedContent()
	case c.Query("popular") == "true":
		entries, err = hb.Content.GetPopularContent()
	default:
		entries, err = hb.Content.GetPublishedContent()
	}
	if err != nil {
		getLogger(c).Error("failed to list content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve content"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetContentHandler returns one published entry and counts the view.
func (hb *HandlerBundle) GetContentHandler(c *gin.Context) {
	entry, err := hb.Content.GetContent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ContentCategoriesHandler lists the categories in use.
func (hb *HandlerBundle) ContentCategoriesHandler(c *gin.Context) {
	categories, err := hb.Content.GetCategories()
	if err != nil {
		getLogger(c).Error("failed to list content categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ContentTagsHandler lists the tags in use.
func (hb *HandlerBundle) ContentTagsHandler(c *gin.Context) {
	tags, err := hb.Content.GetTags()
	if err != nil {
		getLogger(c).Error("failed to list content tags", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateContentHandler creates a draft entry (admin).
func (hb *HandlerBundle) CreateContentHandler(c *gin.Context) {
	var req models.LegalContent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := hb.Content.CreateContent(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateContentHandler updates an entry (admin).
func (hb *HandlerBundle) UpdateContentHandler(c *gin.Context) {
	var req models.LegalContent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")
	updated, err := hb.Content.UpdateContent(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PublishContentHandler makes an entry publicly visible (admin).
func (hb *HandlerBundle) PublishContentHandler(c *gin.Context) {
	if err := hb.Content.Publish(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "published"})
}

// UnpublishContentHandler moves an entry back to draft (admin).
func (hb *HandlerBundle) UnpublishContentHandler(c *gin.Context) {
	if err := hb.Content.Unpublish(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "draft"})
}

// DeleteContentHandler removes an entry (admin).
func (hb *HandlerBundle) DeleteContentHandler(c *gin.Context) {
	if err := hb.Content.DeleteContent(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
