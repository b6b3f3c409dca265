package di

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateScan/internal/scanner"
	"github.com/Tomas-vilte/MateScan/internal/services"
)

// Container wires the application dependencies
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	aiRegistry *registry.AIProviderRegistry

	// Services (lazy initialized)
	fileSource  ports.FileSource
	scanService *services.ScanService
}

// NewContainer creates a new dependency container
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   registry.NewAIProviderRegistry(),
		fileSource:   scanner.NewScanner(),
	}
}

// RegisterAIProvider registers an AI provider factory
func (c *Container) RegisterAIProvider(name string, factory registry.AIProviderFactory) error {
	return c.aiRegistry.Register(name, factory)
}

// GetAIRegistry returns the AI provider registry
func (c *Container) GetAIRegistry() *registry.AIProviderRegistry {
	return c.aiRegistry
}

// GetFileSource returns the file enumerator
func (c *Container) GetFileSource() ports.FileSource {
	return c.fileSource
}

// SetFileSource overrides the file enumerator. Used in tests.
func (c *Container) SetFileSource(source ports.FileSource) {
	c.fileSource = source
}

// GetCodeAnalyzer builds the analyzer for the active AI provider
func (c *Container) GetCodeAnalyzer(ctx context.Context) (ports.CodeAnalyzer, error) {
	activeAI := c.config.AIConfig.ActiveAI
	if activeAI == "" {
		return nil, apperrors.ErrConfigMissing.
			WithError(fmt.Errorf("no active AI provider configured"))
	}

	factory, err := c.aiRegistry.Get(string(activeAI))
	if err != nil {
		return nil, apperrors.ErrProviderUnknown.
			WithError(err).
			WithContext("provider", string(activeAI))
	}

	// Fail on credentials before constructing any client.
	if err := factory.ValidateConfig(c.config); err != nil {
		return nil, err
	}

	analyzer, err := factory.CreateCodeAnalyzer(ctx, c.config, c.translations)
	if err != nil {
		return nil, fmt.Errorf("error creating the analyzer for '%s': %w", activeAI, err)
	}

	return analyzer, nil
}

// GetScanService returns the scan pipeline (lazy initialization)
func (c *Container) GetScanService(ctx context.Context) (*services.ScanService, error) {
	if c.scanService != nil {
		return c.scanService, nil
	}

	analyzer, err := c.GetCodeAnalyzer(ctx)
	if err != nil {
		return nil, err
	}

	c.scanService = services.NewScanService(c.fileSource, analyzer, c.config, c.translations)

	return c.scanService, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations returns the translations
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
