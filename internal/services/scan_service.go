package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tomas-vilte/MateScan/internal/config"
	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/logger"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is invoked before each file is sent for analysis.
type ProgressFunc func(path string)

// ScanService runs the pipeline: enumerate, filter, analyze, validate,
// collect. Per-file failures are diagnostics, never fatal.
type ScanService struct {
	source   ports.FileSource
	analyzer ports.CodeAnalyzer
	cfg      *config.Config
	trans    *i18n.Translations
	progress ProgressFunc
}

func NewScanService(source ports.FileSource, analyzer ports.CodeAnalyzer, cfg *config.Config, trans *i18n.Translations) *ScanService {
	return &ScanService{
		source:   source,
		analyzer: analyzer,
		cfg:      cfg,
		trans:    trans,
	}
}

// SetProgress registers a callback fired as each file starts analysis.
func (s *ScanService) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// Scan analyzes every eligible file under root. An unreadable root aborts the
// run; everything per-file is logged and skipped.
func (s *ScanService) Scan(ctx context.Context, root string) (*models.ScanSummary, error) {
	files, err := s.source.Walk(root)
	if err != nil {
		return nil, err
	}

	summary := &models.ScanSummary{Directory: root}

	concurrency := s.cfg.ScanConfig.Concurrency
	if concurrency <= 1 {
		for _, path := range files {
			s.analyzeOne(ctx, path, summary, nil)
		}
		return summary, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, path := range files {
		g.Go(func() error {
			s.analyzeOne(gctx, path, summary, &mu)
			return nil
		})
	}
	_ = g.Wait()

	// Completion order is nondeterministic; restore a stable order.
	sort.Slice(summary.Records, func(i, j int) bool {
		return summary.Records[i].Path < summary.Records[j].Path
	})

	return summary, nil
}

func (s *ScanService) analyzeOne(ctx context.Context, path string, summary *models.ScanSummary, mu *sync.Mutex) {
	if s.progress != nil {
		s.progress(path)
	}

	content, err := s.source.ReadFileText(path)
	if err != nil {
		logger.Warn(ctx, s.trans.GetMessage("error_reading_file", 0, map[string]interface{}{
			"Path":  path,
			"Error": err,
		}))
		s.record(summary, mu, func() { summary.FilesSkipped++ })
		return
	}

	if maxBytes := s.cfg.ScanConfig.MaxFileBytes; maxBytes > 0 && int64(len(content)) > maxBytes {
		logger.Warn(ctx, s.trans.GetMessage("file_too_large", 0, map[string]interface{}{
			"Path":     path,
			"MaxBytes": maxBytes,
		}))
		s.record(summary, mu, func() { summary.FilesSkipped++ })
		return
	}

	callCtx := ctx
	if timeout := s.cfg.ScanConfig.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	result, err := s.analyzer.AnalyzeFile(callCtx, path, content)
	if err != nil {
		logger.Warn(ctx, s.trans.GetMessage("error_analyzing_file", 0, map[string]interface{}{
			"Path":  path,
			"Error": err,
		}))
		s.record(summary, mu, func() { summary.FilesScanned++ })
		return
	}

	s.record(summary, mu, func() {
		summary.FilesScanned++
		summary.AddUsage(result.Usage)
		if result.Record != nil {
			// The walked path is authoritative; the model's echo is not.
			record := *result.Record
			record.Path = path
			summary.Records = append(summary.Records, record)
		}
	})
}

func (s *ScanService) record(summary *models.ScanSummary, mu *sync.Mutex, fn func()) {
	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	fn()
}
