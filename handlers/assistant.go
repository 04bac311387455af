package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AskAssistantHandler answers a legal question with the AI assistant.
func (hb *HandlerBundle) AskAssistantHandler(c *gin.Context) {
	if hb.Assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
		return
	}
	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	answer, err := hb.Assistant.Ask(c.Request.Context(), req.Question)
	if err != nil {
		getLogger(c).Error("assistant request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate an answer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": req.Question, "answer": answer})
}
