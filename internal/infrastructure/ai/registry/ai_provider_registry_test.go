package registry

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFactory struct {
	name string
}

func (f *stubFactory) CreateCodeAnalyzer(_ context.Context, _ *config.Config, _ *i18n.Translations) (ports.CodeAnalyzer, error) {
	return nil, nil
}

func (f *stubFactory) ValidateConfig(_ *config.Config) error {
	return nil
}

func (f *stubFactory) Name() string {
	return f.name
}

func TestAIProviderRegistry(t *testing.T) {
	t.Run("register and get a provider", func(t *testing.T) {
		r := NewAIProviderRegistry()
		factory := &stubFactory{name: "gemini"}

		require.NoError(t, r.Register("gemini", factory))

		got, err := r.Get("gemini")
		require.NoError(t, err)
		assert.Equal(t, "gemini", got.Name())
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		r := NewAIProviderRegistry()
		require.NoError(t, r.Register("gemini", &stubFactory{name: "gemini"}))

		err := r.Register("gemini", &stubFactory{name: "gemini"})
		assert.Error(t, err)
	})

	t.Run("unknown provider is not found", func(t *testing.T) {
		r := NewAIProviderRegistry()

		_, err := r.Get("missing")
		assert.Error(t, err)
	})

	t.Run("list and membership", func(t *testing.T) {
		r := NewAIProviderRegistry()
		require.NoError(t, r.Register("gemini", &stubFactory{name: "gemini"}))
		require.NoError(t, r.Register("groq", &stubFactory{name: "groq"}))

		assert.ElementsMatch(t, []string{"gemini", "groq"}, r.List())
		assert.True(t, r.IsRegistered("groq"))
		assert.False(t, r.IsRegistered("openai"))
	})
}
