package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanner_Walk(t *testing.T) {
	t.Run("includes eligible files and excludes filtered ones", func(t *testing.T) {
		tmpDir := t.TempDir()

		included := []string{
			writeFile(t, tmpDir, "a.py", "print('hi')"),
			writeFile(t, tmpDir, "src/old.js", "var x = 1"),
			writeFile(t, tmpDir, "Makefile", "all:"),
		}
		writeFile(t, tmpDir, "style.css", "body {}")
		writeFile(t, tmpDir, "data.json", "{}")
		writeFile(t, tmpDir, "README.md", "# readme")
		writeFile(t, tmpDir, "logo.svg", "<svg/>")
		writeFile(t, tmpDir, "favicon.ico", "")
		writeFile(t, tmpDir, "index.mjs", "export {}")
		writeFile(t, tmpDir, "Gemfile.lock", "")
		writeFile(t, tmpDir, ".hidden", "secret")
		writeFile(t, tmpDir, ".git/config", "[core]")
		writeFile(t, tmpDir, "node_modules/pkg/index.js", "var y = 2")

		s := NewScanner()
		files, err := s.Walk(tmpDir)

		require.NoError(t, err)
		assert.ElementsMatch(t, included, files)
	})

	t.Run("each eligible file appears exactly once", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeFile(t, tmpDir, "one.go", "package one")
		writeFile(t, tmpDir, "sub/two.go", "package two")

		s := NewScanner()
		files, err := s.Walk(tmpDir)

		require.NoError(t, err)
		seen := map[string]int{}
		for _, f := range files {
			seen[f]++
		}
		for f, n := range seen {
			assert.Equal(t, 1, n, "path %s appeared %d times", f, n)
		}
		assert.Len(t, files, 2)
	})

	t.Run("missing directory is fatal", func(t *testing.T) {
		s := NewScanner()
		_, err := s.Walk(filepath.Join(t.TempDir(), "does-not-exist"))
		assert.Error(t, err)
	})

	t.Run("a plain file is not a directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeFile(t, tmpDir, "file.go", "package main")

		s := NewScanner()
		_, err := s.Walk(path)
		assert.Error(t, err)
	})
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excluded bool
	}{
		{"python source", "src/main.py", false},
		{"javascript source", "app/index.js", false},
		{"extensionless file", "Dockerfile", false},
		{"stylesheet", "assets/style.css", true},
		{"json data", "config/settings.json", true},
		{"markdown", "docs/guide.md", true},
		{"vector image", "img/logo.svg", true},
		{"icon", "favicon.ico", true},
		{"module script", "lib/util.mjs", true},
		{"gitignore", "project/.gitignore", true},
		{"env file", "deploy/prod.env", true},
		{"lock file", "yarn.lock", true},
		{"hidden file", "src/.secrets", true},
		{"under git metadata", ".git/HEAD", true},
		{"nested git metadata", "repo/.git/hooks/pre-commit", true},
		{"under node_modules", "node_modules/left-pad/index.js", true},
		{"nested node_modules", "web/node_modules/a/b.js", true},
		{"dotfile-like name inside path only", "dot.files/main.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.excluded, Excluded(tt.path))
		})
	}
}

func TestScanner_ReadFileText(t *testing.T) {
	t.Run("reads plain text", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeFile(t, tmpDir, "a.py", "print('hi')")

		s := NewScanner()
		content, err := s.ReadFileText(path)

		require.NoError(t, err)
		assert.Equal(t, "print('hi')", content)
	})

	t.Run("replaces invalid utf-8 instead of failing", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "bin.dat")
		require.NoError(t, os.WriteFile(path, []byte{0x68, 0x69, 0xff, 0xfe, 0x21}, 0644))

		s := NewScanner()
		content, err := s.ReadFileText(path)

		require.NoError(t, err)
		assert.Contains(t, content, "hi")
		assert.Contains(t, content, "�")
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		s := NewScanner()
		_, err := s.ReadFileText(filepath.Join(t.TempDir(), "nope.go"))
		assert.Error(t, err)
	})
}
