package ui

import (
	"bytes"
	"testing"

	apperrors "github.com/Tomas-vilte/MateScan/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestSmartSpinner(t *testing.T) {
	t.Run("update changes the displayed message", func(t *testing.T) {
		s := NewSmartSpinner("starting")
		assert.Contains(t, s.spinner.Suffix, "starting")

		s.UpdateMessage("analyzing old.js")
		assert.Contains(t, s.spinner.Suffix, "analyzing old.js")
	})

	t.Run("start and stop are safe to call", func(t *testing.T) {
		s := NewSmartSpinner("working")
		s.Start()
		s.UpdateMessage("still working")
		s.Stop()
	})
}

func TestPrintHelpers(t *testing.T) {
	t.Run("success message reaches the writer", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSuccess(&buf, "all done")
		assert.Contains(t, buf.String(), "all done")
	})

	t.Run("error message reaches the writer", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, "something broke")
		assert.Contains(t, buf.String(), "something broke")
	})
}

func TestHandleAppError(t *testing.T) {
	t.Run("nil error is a no-op", func(t *testing.T) {
		HandleAppError(nil)
	})

	t.Run("renders typed errors with their suggestion", func(t *testing.T) {
		err := apperrors.ErrAPIKeyMissing.WithContext("provider", "gemini")
		HandleAppError(err)
	})

	t.Run("plain errors fall back to a generic line", func(t *testing.T) {
		HandleAppError(assert.AnError)
	})
}
