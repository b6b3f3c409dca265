package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	return cfg
}

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func runConfigCommand(t *testing.T, cfg *config.Config, args ...string) error {
	t.Helper()
	trans := newTestTranslations(t)
	factory := NewConfigCommandFactory()

	app := &cli.Command{
		Name:     "matescan",
		Commands: []*cli.Command{factory.CreateCommand(trans, cfg)},
	}
	return app.Run(context.Background(), append([]string{"matescan", "config"}, args...))
}

func TestSetAICommand(t *testing.T) {
	t.Run("switches the active provider", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-ai", "groq")

		require.NoError(t, err)
		assert.Equal(t, config.AIGroq, cfg.AIConfig.ActiveAI)

		reloaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, config.AIGroq, reloaded.AIConfig.ActiveAI)
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-ai", "skynet")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "skynet")
		assert.Equal(t, config.AIGemini, cfg.AIConfig.ActiveAI)
	})
}

func TestSetModelCommand(t *testing.T) {
	t.Run("sets a model valid for the active provider", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-model", string(config.ModelGeminiV25Pro))

		require.NoError(t, err)
		assert.Equal(t, config.ModelGeminiV25Pro, cfg.AIConfig.Models[config.AIGemini])
	})

	t.Run("rejects a model from another provider", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-model", string(config.ModelLlama3V70B))

		require.Error(t, err)
		assert.Equal(t, config.DefaultModelForAI(config.AIGemini), cfg.AIConfig.Models[config.AIGemini])
	})
}

func TestSetAPIKeyCommand(t *testing.T) {
	t.Run("stores the key for the given provider", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-api-key", "gemini", "test-key-123")

		require.NoError(t, err)
		assert.Equal(t, "test-key-123", cfg.AIProviders["gemini"].APIKey)
	})

	t.Run("fails without a key argument", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-api-key", "gemini")

		require.Error(t, err)
	})
}

func TestSetLangCommand(t *testing.T) {
	t.Run("accepts a supported language", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-lang", "es")

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
	})

	t.Run("rejects an unsupported language", func(t *testing.T) {
		cfg := newTestConfig(t)

		err := runConfigCommand(t, cfg, "set-lang", "fr")

		require.Error(t, err)
		assert.Equal(t, "en", cfg.Language)
	})
}
