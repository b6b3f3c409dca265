package gemini

import (
	"google.golang.org/genai"
)

// GeminiProvider is a shared base for Gemini-backed services.
type GeminiProvider struct {
	Client *genai.Client
	model  string
}

// NewGeminiProvider creates a new instance of GeminiProvider
func NewGeminiProvider(client *genai.Client, model string) *GeminiProvider {
	return &GeminiProvider{
		Client: client,
		model:  model,
	}
}

// GetModelName returns the configured model name
func (g *GeminiProvider) GetModelName() string {
	return g.model
}

// GetProviderName returns the provider name
func (g *GeminiProvider) GetProviderName() string {
	return "gemini"
}
