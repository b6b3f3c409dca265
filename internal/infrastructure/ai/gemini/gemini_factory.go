package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
)

// GeminiProviderFactory implements registry.AIProviderFactory for Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory creates a new factory for Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateCodeAnalyzer creates the Gemini syntax analyzer
func (f *GeminiProviderFactory) CreateCodeAnalyzer(
	ctx context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.CodeAnalyzer, error) {
	return NewCodeAnalyzer(ctx, cfg, trans)
}

// ValidateConfig checks that a Gemini credential can be resolved
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	if config.ResolveAPIKey(cfg, config.AIGemini) == "" {
		return apperrors.ErrAPIKeyMissing.
			WithContext("provider", "gemini").
			WithContext("env_var", config.EnvVarForAI(config.AIGemini))
	}
	return nil
}

// Name returns the provider name
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}
