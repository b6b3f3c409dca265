package gemini

import (
	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"google.golang.org/genai"
)

// extractUsage extracts usage metadata from the Gemini response
func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}

// getGenerateConfig returns the generation settings for syntax analysis:
// low temperature and structured JSON output.
func getGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      float32Ptr(0.1),
		MaxOutputTokens:  int32(10000),
		ResponseMIMEType: "application/json",
	}
}

func float32Ptr(f float32) *float32 {
	return &f
}
