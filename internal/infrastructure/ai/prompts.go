package ai

import "fmt"

// Prompt templates for syntax analysis. Each template fixes the exact JSON
// shape the provider is asked to return; the parser in schema.go must stay in
// sync with these.
const (
	analysisPromptFull = `Analyze the following code and determine if the syntax is out of date.
If it is out of date, respond with a JSON object in this exact format:

{
  "path": "relative/file/path",
  "old_content": "The entire content of the file, before any changes are made.",
  "new_content": "The updated content with modern syntax.",
  "reason": "A short explanation of why the code is out of date."
}

If the code is already modern and up to date, respond with: {"modern": true}

Code to analyze:

%s`

	analysisPromptCompact = `Analyze the following code and determine if the syntax is out of date.
If it is out of date, respond with a JSON object in this exact format:

{
  "path": "relative/file/path",
  "content": "The updated content with modern syntax.",
  "reason": "A short explanation of why the code is out of date."
}

If the code is already modern and up to date, respond with: {"modern": true}

Respond with JSON only, no surrounding prose.

Code to analyze:

%s`
)

// BuildAnalysisPrompt embeds the file content into the prompt matching the
// given response schema.
func BuildAnalysisPrompt(schema Schema, content string) string {
	switch schema {
	case SchemaCompact:
		return fmt.Sprintf(analysisPromptCompact, content)
	default:
		return fmt.Sprintf(analysisPromptFull, content)
	}
}
