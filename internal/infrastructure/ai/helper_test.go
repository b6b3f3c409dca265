package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON object passes through",
			input: `{"modern": true}`,
			want:  `{"modern": true}`,
		},
		{
			name:  "strips markdown json fence",
			input: "```json\n{\"path\": \"a.py\", \"reason\": \"old\"}\n```",
			want:  `{"path": "a.py", "reason": "old"}`,
		},
		{
			name:  "strips bare fence",
			input: "```\n{\"modern\": true}\n```",
			want:  `{"modern": true}`,
		},
		{
			name:  "picks the JSON block out of surrounding prose",
			input: "Sure! Here is my verdict:\n{\"modern\": true}\nLet me know if you need more.",
			want:  `{"modern": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}

	t.Run("text without JSON returns sanitized input", func(t *testing.T) {
		got := ExtractJSON("no json here")
		assert.Equal(t, "no json here", got)
	})
}

func TestSanitizeJSON(t *testing.T) {
	t.Run("escapes raw newlines inside string literals", func(t *testing.T) {
		input := "{\"reason\": \"line one\nline two\"}"
		got := SanitizeJSON(input)

		assert.True(t, json.Valid([]byte(got)), "sanitized output should be valid JSON: %s", got)
		assert.Contains(t, got, `\n`)
	})

	t.Run("leaves valid JSON untouched", func(t *testing.T) {
		input := `{"reason": "all on one line"}`
		assert.Equal(t, input, SanitizeJSON(input))
	})
}
