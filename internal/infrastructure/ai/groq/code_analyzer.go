package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateScan/internal/infrastructure/httpclient"
)

const defaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"

var _ ports.CodeAnalyzer = (*CodeAnalyzer)(nil)

// CodeAnalyzer asks Groq's OpenAI-compatible chat completions endpoint
// whether a file's syntax is out of date.
type CodeAnalyzer struct {
	client   httpclient.HTTPClient
	apiKey   string
	model    string
	endpoint string
	trans    *i18n.Translations
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *formatSpec   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type formatSpec struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func NewCodeAnalyzer(cfg *config.Config, trans *i18n.Translations, client httpclient.HTTPClient) (*CodeAnalyzer, error) {
	apiKey := config.ResolveAPIKey(cfg, config.AIGroq)
	if apiKey == "" {
		suggestion := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{
			"Provider": "groq",
			"EnvVar":   config.EnvVarForAI(config.AIGroq),
		})
		return nil, apperrors.ErrAPIKeyMissing.
			WithContext("provider", "groq").
			WithSuggestion(suggestion)
	}

	if client == nil {
		client = httpclient.NewDefaultHTTPClient()
	}

	modelName := string(cfg.AIConfig.Models[config.AIGroq])
	if modelName == "" {
		modelName = string(config.DefaultModelForAI(config.AIGroq))
	}

	return &CodeAnalyzer{
		client:   client,
		apiKey:   apiKey,
		model:    modelName,
		endpoint: defaultEndpoint,
		trans:    trans,
	}, nil
}

// SetEndpoint overrides the chat completions URL. Used in tests.
func (a *CodeAnalyzer) SetEndpoint(url string) {
	a.endpoint = url
}

func (a *CodeAnalyzer) AnalyzeFile(ctx context.Context, path string, content string) (*models.AnalysisResult, error) {
	prompt := ai.BuildAnalysisPrompt(ai.SchemaCompact, content)

	body, err := json.Marshal(chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature:    0.1,
		ResponseFormat: &formatSpec{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building groq request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrAIGeneration.WithError(err).WithContext("path", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading groq response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding groq response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("status %d", resp.StatusCode)
		if parsed.Error != nil {
			apiErr = fmt.Errorf("status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, apperrors.ErrQuotaExceeded.WithError(apiErr).WithContext("path", path)
		}
		return nil, apperrors.ErrAIGeneration.WithError(apiErr).WithContext("path", path)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, apperrors.ErrAIGeneration.
			WithError(errors.New(a.trans.GetMessage("error_no_ai_response", 0, nil))).
			WithContext("path", path)
	}

	text := parsed.Choices[0].Message.Content
	record, modern, err := ai.ParseVerdict(ai.ExtractJSON(text), ai.SchemaCompact)
	if err != nil {
		return nil, apperrors.ErrInvalidAIOutput.WithError(err).WithContext("path", path)
	}

	result := &models.AnalysisResult{
		Usage: &models.TokenUsage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
	}
	if !modern {
		result.Record = record
	}
	return result, nil
}
