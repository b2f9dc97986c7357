package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportFormat represents the format for exporting a transcript
type ExportFormat string

const (
	ExportFormatMarkdown ExportFormat = "markdown"
	ExportFormatJSON     ExportFormat = "json"
)

// ParseExportFormat validates a user supplied format name
func ParseExportFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "md", "markdown":
		return ExportFormatMarkdown, nil
	case "json":
		return ExportFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", name)
	}
}

// ExportMarkdown renders the history as a Markdown transcript
func (s *Store) ExportMarkdown(title string) string {
	var sb strings.Builder

	// Header
	if title == "" {
		title = "Conversation"
	}
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("**Exchanges:** %d\n", len(s.exchanges)))
	sb.WriteString("\n---\n\n")

	for i, e := range s.exchanges {
		sb.WriteString("## User\n\n")
		sb.WriteString(e.Query)
		sb.WriteString("\n\n## LLM\n\n")
		sb.WriteString(e.Response)
		sb.WriteString("\n")

		// Separator between exchanges (except last)
		if i < len(s.exchanges)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

// exportDocument is the JSON export layout
type exportDocument struct {
	ExportedAt time.Time  `json:"exported_at"`
	Count      int        `json:"count"`
	Exchanges  []Exchange `json:"exchanges"`
}

// ExportJSON renders the history as indented JSON
func (s *Store) ExportJSON() ([]byte, error) {
	doc := exportDocument{
		ExportedAt: time.Now().UTC(),
		Count:      len(s.exchanges),
		Exchanges:  s.Exchanges(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return data, nil
}

// Export renders the history in the given format
func (s *Store) Export(format ExportFormat, title string) (string, error) {
	switch format {
	case ExportFormatMarkdown:
		return s.ExportMarkdown(title), nil
	case ExportFormatJSON:
		data, err := s.ExportJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}
