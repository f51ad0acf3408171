package ai

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MediaType tells providers how to render an attachment.
type MediaType string

const (
	MediaTypeJSON MediaType = "json"
	MediaTypeText MediaType = "text"
)

// Attachment is a named file sent along with a prompt. For MediaTypeJSON the
// Content must be a valid JSON document.
type Attachment struct {
	Name      string    `json:"name"`
	MediaType MediaType `json:"media_type"`
	Content   string    `json:"content"`
}

// AttachedFilesHeading opens the block produced by FormatAttachments.
const AttachedFilesHeading = "## Attached Files:"

// FormatAttachments renders attachments as a markdown block suitable for
// appending to a user message:
//
//	## Attached Files:
//
//	### report.json
//	```json
//	{
//	  "key": "value"
//	}
//	```
//
// JSON attachments are re-indented with two spaces; content that fails to
// indent is written unchanged. It returns "" for an empty slice.
func FormatAttachments(attachments []Attachment) string {
	if len(attachments) == 0 {
		return ""
	}

	parts := []string{AttachedFilesHeading}
	for _, a := range attachments {
		parts = append(parts, "\n### "+a.Name)

		if a.MediaType == MediaTypeJSON {
			parts = append(parts, "```json", indentJSON(a.Content), "```")
			continue
		}
		parts = append(parts, "```", a.Content, "```")
	}

	return strings.Join(parts, "\n")
}

func indentJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", "  "); err != nil {
		return content
	}
	return buf.String()
}
