package models

// ChangeRecord is the structured verdict for one analyzed file: where it
// lives, what it looked like, what it should look like, and why.
type ChangeRecord struct {
	Path       string `json:"path"`
	OldContent string `json:"old_content"`
	NewContent string `json:"new_content"`
	Reason     string `json:"reason"`
}

// TokenUsage mirrors the usage metadata some providers attach to a response.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// AnalysisResult is the outcome of one remote analysis call.
// Record is nil when the model judged the file modern.
type AnalysisResult struct {
	Record *ChangeRecord
	Usage  *TokenUsage
}

// ScanSummary aggregates a whole run over a directory.
type ScanSummary struct {
	Directory    string
	FilesScanned int
	FilesSkipped int
	Records      []ChangeRecord
	Usage        TokenUsage
}

// Add accumulates usage from a single call into the summary total.
func (s *ScanSummary) AddUsage(u *TokenUsage) {
	if u == nil {
		return
	}
	s.Usage.InputTokens += u.InputTokens
	s.Usage.OutputTokens += u.OutputTokens
	s.Usage.TotalTokens += u.TotalTokens
}
