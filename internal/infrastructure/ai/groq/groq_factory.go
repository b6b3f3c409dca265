package groq

import (
	"context"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
)

// GroqProviderFactory implements registry.AIProviderFactory for Groq
type GroqProviderFactory struct{}

// NewGroqProviderFactory creates a new factory for Groq
func NewGroqProviderFactory() *GroqProviderFactory {
	return &GroqProviderFactory{}
}

// CreateCodeAnalyzer creates the Groq syntax analyzer
func (f *GroqProviderFactory) CreateCodeAnalyzer(
	_ context.Context,
	cfg *config.Config,
	trans *i18n.Translations,
) (ports.CodeAnalyzer, error) {
	return NewCodeAnalyzer(cfg, trans, nil)
}

// ValidateConfig checks that a Groq credential can be resolved
func (f *GroqProviderFactory) ValidateConfig(cfg *config.Config) error {
	if config.ResolveAPIKey(cfg, config.AIGroq) == "" {
		return apperrors.ErrAPIKeyMissing.
			WithContext("provider", "groq").
			WithContext("env_var", config.EnvVarForAI(config.AIGroq))
	}
	return nil
}

// Name returns the provider name
func (f *GroqProviderFactory) Name() string {
	return "groq"
}
