package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrWalkFailed.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeScan {
		t.Errorf("Expected type %s, got %s", TypeScan, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrAIGeneration.WithContext("provider", "gemini").WithContext("path", "main.py")

	if appErr.Context["provider"] != "gemini" {
		t.Errorf("Expected provider context 'gemini', got %v", appErr.Context["provider"])
	}

	if appErr.Context["path"] != "main.py" {
		t.Errorf("Expected path context 'main.py', got %v", appErr.Context["path"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrAPIKeyMissing,
			contains: []string{
				"CONFIGURATION",
				"AI API key is missing",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrDirNotFound.WithError(errors.New("no such file or directory")),
			contains: []string{
				"SCAN",
				"Directory not found",
				"no such file or directory",
			},
		},
		{
			name: "Error with path context",
			err: ErrInvalidAIOutput.WithError(errors.New("unexpected end of JSON input")).
				WithContext("path", "src/app.js"),
			contains: []string{
				"AI",
				"invalid AI output format",
				"unexpected end of JSON input",
				"src/app.js",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Expected error message to contain %q, got %q", want, msg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("boom")
	appErr := ErrAIGeneration.WithError(baseErr)

	if !errors.Is(appErr, baseErr) {
		t.Errorf("Expected errors.Is to match the wrapped error")
	}
}

func TestAppError_WithSuggestion(t *testing.T) {
	appErr := NewAppError(TypeAI, "something failed", nil).WithSuggestion("try again")

	if appErr.Suggestion != "try again" {
		t.Errorf("Expected suggestion 'try again', got %q", appErr.Suggestion)
	}
}
