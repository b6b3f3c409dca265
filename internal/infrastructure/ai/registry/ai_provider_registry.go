package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
)

// AIProviderFactory creates the analyzer for one hosted model vendor.
type AIProviderFactory interface {
	// CreateCodeAnalyzer builds the analyzer used to judge file syntax
	CreateCodeAnalyzer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.CodeAnalyzer, error)

	// ValidateConfig checks the configuration for this provider
	ValidateConfig(cfg *config.Config) error

	// Name returns the provider name
	Name() string
}

// AIProviderRegistry manages the registered AI providers
type AIProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]AIProviderFactory
}

// NewAIProviderRegistry creates a new AI provider registry
func NewAIProviderRegistry() *AIProviderRegistry {
	return &AIProviderRegistry{
		factories: make(map[string]AIProviderFactory),
	}
}

// Register registers a new AI provider
func (r *AIProviderRegistry) Register(name string, factory AIProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("AI provider '%s' is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Get returns a factory by name
func (r *AIProviderRegistry) Get(name string) (AIProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("AI provider '%s' not found in the registry", name)
	}

	return factory, nil
}

// List returns the registered provider names
func (r *AIProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered reports whether a provider is registered
func (r *AIProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}
