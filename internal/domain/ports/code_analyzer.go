package ports

import (
	"context"

	"github.com/Tomas-vilte/MateScan/internal/domain/models"
)

// CodeAnalyzer asks a hosted model whether one file's content uses outdated
// syntax. Implementations own their prompt and response schema.
type CodeAnalyzer interface {
	// AnalyzeFile returns a result whose Record is nil when the file is
	// already modern. Schema violations and malformed responses are errors.
	AnalyzeFile(ctx context.Context, path string, content string) (*models.AnalysisResult, error)
}

// FileSource enumerates the eligible files under a root directory and reads
// their contents with lenient text decoding.
type FileSource interface {
	Walk(root string) ([]string, error)
	ReadFileText(path string) (string, error)
}
