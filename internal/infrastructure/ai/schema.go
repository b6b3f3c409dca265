package ai

import (
	"encoding/json"
	"fmt"

	"github.com/Tomas-vilte/MateScan/internal/domain/models"
)

// Schema selects the JSON field layout a provider's prompt requests.
type Schema int

const (
	// SchemaFull expects path, old_content, new_content and reason.
	SchemaFull Schema = iota
	// SchemaCompact expects path, content and reason. The content field is
	// the rewritten file, mapped into NewContent.
	SchemaCompact
)

func (s Schema) requiredFields() []string {
	switch s {
	case SchemaCompact:
		return []string{"path", "content", "reason"}
	default:
		return []string{"path", "old_content", "new_content", "reason"}
	}
}

// ParseVerdict validates a model response against the schema and builds a
// ChangeRecord from it. The second return is true when the model answered
// with the "modern" sentinel, meaning no change is needed.
func ParseVerdict(raw string, schema Schema) (*models.ChangeRecord, bool, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false, fmt.Errorf("response is not a JSON object: %w", err)
	}

	if sentinel, ok := payload["modern"]; ok {
		var modern bool
		if err := json.Unmarshal(sentinel, &modern); err == nil && modern {
			return nil, true, nil
		}
	}

	fields := make(map[string]string, 4)
	for _, name := range schema.requiredFields() {
		rawField, ok := payload[name]
		if !ok {
			return nil, false, fmt.Errorf("missing required field %q", name)
		}
		var value string
		if err := json.Unmarshal(rawField, &value); err != nil {
			return nil, false, fmt.Errorf("field %q is not a string: %w", name, err)
		}
		fields[name] = value
	}

	record := &models.ChangeRecord{
		Path:   fields["path"],
		Reason: fields["reason"],
	}
	if schema == SchemaCompact {
		record.NewContent = fields["content"]
	} else {
		record.OldContent = fields["old_content"]
		record.NewContent = fields["new_content"]
	}

	return record, false, nil
}
