package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"legalsahyog/utils"

	"go.uber.org/zap"
)

const systemPreamble = `You are a legal information assistant for an Indian legal-services platform.
Answer questions about Indian law in plain language. Always remind the user that
your answers are general information, not legal advice, and that they should
consult a qualified advocate for their specific situation. If a question is not
about legal matters, politely decline.`

// TextGenerator is the model behind the assistant.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService answers legal questions with a model-backed assistant.
type AssistantService interface {
	// Ask returns the assistant's answer to a question. Recent answers are
	// served from cache.
	Ask(ctx context.Context, question string) (string, error)
}

// DefaultAssistantService is the production implementation of AssistantService.
type DefaultAssistantService struct {
	Generator TextGenerator
}

var _ AssistantService = (*DefaultAssistantService)(nil)

func NewAssistantService(generator TextGenerator) *DefaultAssistantService {
	return &DefaultAssistantService{Generator: generator}
}

func (s *DefaultAssistantService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is required")
	}

	key := cacheKey(question)
	if answer, ok := s.cachedAnswer(ctx, key); ok {
		return answer, nil
	}

	prompt := systemPreamble + "\n\nQuestion: " + question
	answer, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	s.cacheAnswer(ctx, key, answer)
	return answer, nil
}

func cacheKey(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(question)))
	return utils.AssistCachePrefix + hex.EncodeToString(sum[:16])
}

func (s *DefaultAssistantService) cachedAnswer(ctx context.Context, key string) (string, bool) {
	if utils.AssistCacheClient == nil {
		return "", false
	}
	answer, err := utils.AssistCacheClient.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return answer, true
}

func (s *DefaultAssistantService) cacheAnswer(ctx context.Context, key, answer string) {
	if utils.AssistCacheClient == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := utils.AssistCacheClient.Set(cctx, key, answer, utils.AssistCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("failed to cache assistant answer", zap.String("key", key), zap.Error(err))
	}
}
