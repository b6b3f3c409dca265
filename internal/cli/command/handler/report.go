package handler

import (
	"fmt"
	"io"

	"github.com/Tomas-vilte/MateScan/internal/domain/models"
	"github.com/Tomas-vilte/MateScan/internal/i18n"
	"github.com/Tomas-vilte/MateScan/internal/ui"
)

// ReportHandler turns a scan summary into the human-readable report.
type ReportHandler struct {
	w io.Writer
	t *i18n.Translations
}

func NewReportHandler(w io.Writer, t *i18n.Translations) *ReportHandler {
	return &ReportHandler{
		w: w,
		t: t,
	}
}

func (h *ReportHandler) HandleSummary(summary *models.ScanSummary) error {
	scanned := h.t.GetMessage("scanned_files_count", summary.FilesScanned, map[string]interface{}{
		"Count": summary.FilesScanned,
	})
	_, _ = fmt.Fprintf(h.w, "\n%s\n", ui.Dim.Sprint(scanned))

	if len(summary.Records) == 0 {
		_, _ = fmt.Fprintf(h.w, "%s %s\n", ui.SuccessEmoji, h.t.GetMessage("no_outdated_files", 0, nil))
		return nil
	}

	header := h.t.GetMessage("outdated_files_header", 0, nil)
	_, _ = fmt.Fprintf(h.w, "\n%s\n", ui.Accent.Sprintf("📝 %s", header))

	for _, record := range summary.Records {
		_, _ = fmt.Fprintf(h.w, "\n%s %s\n", ui.FileEmoji, h.t.GetMessage("outdated_file_path", 0, map[string]interface{}{
			"Path": record.Path,
		}))
		_, _ = fmt.Fprintf(h.w, "%s %s\n", ui.ReasonEmoji, h.t.GetMessage("outdated_file_reason", 0, map[string]interface{}{
			"Reason": record.Reason,
		}))
	}

	total := h.t.GetMessage("total_outdated_files", len(summary.Records), map[string]interface{}{
		"Count": len(summary.Records),
	})
	_, _ = fmt.Fprintf(h.w, "\n%s %s\n", ui.SuccessEmoji, total)

	return nil
}
