package services

import (
	"context"

	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockFileSource struct {
		mock.Mock
	}

	MockCodeAnalyzer struct {
		mock.Mock
	}
)

func (m *MockFileSource) Walk(root string) ([]string, error) {
	args := m.Called(root)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSource) ReadFileText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockCodeAnalyzer) AnalyzeFile(ctx context.Context, path string, content string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, path, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}
