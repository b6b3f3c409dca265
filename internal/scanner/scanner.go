package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/MateScan/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
)

var _ ports.FileSource = (*Scanner)(nil)

// excludedSuffixes are file endings that never contain source worth
// analyzing: styles, data, markup, images, icons, module scripts, and
// ignore/env/lock files.
var excludedSuffixes = []string{
	".css",
	".json",
	".md",
	".svg",
	".ico",
	".mjs",
	".gitignore",
	".env",
	".lock",
}

// skippedDirs are subtrees never worth walking into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Scanner enumerates the files under a directory that are eligible for
// analysis.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Walk returns the eligible file paths under root, in traversal order.
// An unreadable root or directory aborts the walk.
func (s *Scanner) Walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, apperrors.ErrDirNotFound.WithError(err).WithContext("path", root)
	}
	if !info.IsDir() {
		return nil, apperrors.ErrNotADirectory.WithContext("path", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if Excluded(path) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, apperrors.ErrWalkFailed.WithError(err).WithContext("path", root)
	}

	return files, nil
}

// Excluded reports whether a file path is filtered out of analysis.
func Excluded(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}

	for _, suffix := range excludedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	normalized := filepath.ToSlash(path)
	if strings.Contains(normalized, "/.git/") || strings.Contains(normalized, "/node_modules/") ||
		strings.HasPrefix(normalized, ".git/") || strings.HasPrefix(normalized, "node_modules/") {
		return true
	}

	return false
}

// ReadFileText reads a file as text, replacing invalid UTF-8 sequences
// instead of failing on them.
func (s *Scanner) ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
