package gemini

import (
	"context"
	"errors"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/ai"
	"google.golang.org/genai"
)

var _ ports.CodeAnalyzer = (*CodeAnalyzer)(nil)

// CodeAnalyzer asks Gemini whether a file's syntax is out of date.
type CodeAnalyzer struct {
	*GeminiProvider
	trans *i18n.Translations
}

func NewCodeAnalyzer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*CodeAnalyzer, error) {
	apiKey := config.ResolveAPIKey(cfg, config.AIGemini)
	if apiKey == "" {
		suggestion := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{
			"Provider": "gemini",
			"EnvVar":   config.EnvVarForAI(config.AIGemini),
		})
		return nil, apperrors.ErrAPIKeyMissing.
			WithContext("provider", "gemini").
			WithSuggestion(suggestion)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		msg := trans.GetMessage("error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, apperrors.NewAppError(apperrors.TypeAI, msg, err)
	}

	modelName := string(cfg.AIConfig.Models[config.AIGemini])
	if modelName == "" {
		modelName = string(config.DefaultModelForAI(config.AIGemini))
	}

	return &CodeAnalyzer{
		GeminiProvider: NewGeminiProvider(client, modelName),
		trans:          trans,
	}, nil
}

func (a *CodeAnalyzer) AnalyzeFile(ctx context.Context, path string, content string) (*models.AnalysisResult, error) {
	prompt := ai.BuildAnalysisPrompt(ai.SchemaFull, content)

	resp, err := a.Client.Models.GenerateContent(ctx, a.GetModelName(), genai.Text(prompt), getGenerateConfig())
	if err != nil {
		return nil, apperrors.ErrAIGeneration.WithError(err).WithContext("path", path)
	}

	text := responseText(resp)
	if text == "" {
		return nil, apperrors.ErrAIGeneration.
			WithError(errors.New(a.trans.GetMessage("error_no_ai_response", 0, nil))).
			WithContext("path", path)
	}

	record, modern, err := ai.ParseVerdict(ai.ExtractJSON(text), ai.SchemaFull)
	if err != nil {
		return nil, apperrors.ErrInvalidAIOutput.WithError(err).WithContext("path", path)
	}

	result := &models.AnalysisResult{Usage: extractUsage(resp)}
	if !modern {
		result.Record = record
	}
	return result, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	content := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		content += part.Text
	}
	return content
}
