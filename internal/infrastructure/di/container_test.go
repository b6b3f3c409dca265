package di

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAIFactory struct {
	mock.Mock
}

func (m *mockAIFactory) CreateCodeAnalyzer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.CodeAnalyzer, error) {
	args := m.Called(ctx, cfg, trans)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.CodeAnalyzer), args.Error(1)
}

func (m *mockAIFactory) ValidateConfig(cfg *config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *mockAIFactory) Name() string {
	return "mock"
}

type stubAnalyzer struct{}

func (s *stubAnalyzer) AnalyzeFile(ctx context.Context, path, content string) (*models.AnalysisResult, error) {
	return &models.AnalysisResult{}, nil
}

func newTestContainer(t *testing.T) (*Container, *config.Config) {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg := &config.Config{
		Language: "en",
		AIConfig: config.AIConfig{
			ActiveAI: config.AIGemini,
		},
	}
	return NewContainer(cfg, trans), cfg
}

func TestContainer_GetCodeAnalyzer(t *testing.T) {
	t.Run("builds the analyzer for the active provider", func(t *testing.T) {
		container, cfg := newTestContainer(t)

		factory := new(mockAIFactory)
		factory.On("ValidateConfig", cfg).Return(nil)
		factory.On("CreateCodeAnalyzer", mock.Anything, cfg, mock.Anything).
			Return(&stubAnalyzer{}, nil)
		require.NoError(t, container.RegisterAIProvider("gemini", factory))

		analyzer, err := container.GetCodeAnalyzer(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, analyzer)
		factory.AssertExpectations(t)
	})

	t.Run("credential validation failure aborts before client construction", func(t *testing.T) {
		container, cfg := newTestContainer(t)

		factory := new(mockAIFactory)
		factory.On("ValidateConfig", cfg).Return(apperrors.ErrAPIKeyMissing)
		require.NoError(t, container.RegisterAIProvider("gemini", factory))

		analyzer, err := container.GetCodeAnalyzer(context.Background())

		require.Error(t, err)
		assert.Nil(t, analyzer)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeConfiguration, appErr.Type)
		factory.AssertNotCalled(t, "CreateCodeAnalyzer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fails when the active provider is not registered", func(t *testing.T) {
		container, _ := newTestContainer(t)

		analyzer, err := container.GetCodeAnalyzer(context.Background())

		require.Error(t, err)
		assert.Nil(t, analyzer)
		assert.Contains(t, err.Error(), "gemini")
	})

	t.Run("fails when no provider is configured", func(t *testing.T) {
		container, cfg := newTestContainer(t)
		cfg.AIConfig.ActiveAI = ""

		_, err := container.GetCodeAnalyzer(context.Background())

		require.Error(t, err)
	})
}

func TestContainer_GetScanService(t *testing.T) {
	t.Run("is lazily initialized and cached", func(t *testing.T) {
		container, cfg := newTestContainer(t)

		factory := new(mockAIFactory)
		factory.On("ValidateConfig", cfg).Return(nil).Once()
		factory.On("CreateCodeAnalyzer", mock.Anything, cfg, mock.Anything).
			Return(&stubAnalyzer{}, nil).
			Once()
		require.NoError(t, container.RegisterAIProvider("gemini", factory))

		first, err := container.GetScanService(context.Background())
		require.NoError(t, err)

		second, err := container.GetScanService(context.Background())
		require.NoError(t, err)

		assert.Same(t, first, second)
		factory.AssertExpectations(t)
	})
}
