package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/ollamachat/internal/errors"
	"github.com/diogo/ollamachat/internal/render"
)

// outputStyles holds the lipgloss styles for decorated one-shot output
type outputStyles struct {
	label   lipgloss.Style
	bubble  lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
}

func newOutputStyles(p render.Palette) outputStyles {
	return outputStyles{
		label: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		bubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Foreground(p.Text).
			Padding(0, 1).
			MarginBottom(1),
		success: lipgloss.NewStyle().Foreground(p.Success),
		err:     lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(p.TextDim),
	}
}

// defaultStyles is used where no config has been loaded, e.g. in Execute
var defaultStyles = newOutputStyles(render.TokyoNightPalette)

// formatErrorMessage formats an error with a prefix and a hint for known kinds
func formatErrorMessage(err error, prefix string) string {
	var sb strings.Builder
	sb.WriteString(defaultStyles.err.Render(fmt.Sprintf("✗ %s: %v", prefix, err)))

	if hint := apierrors.Hint(err); hint != "" {
		sb.WriteString("\n")
		sb.WriteString(defaultStyles.dim.Render("  Hint: " + hint))
	}
	return sb.String()
}

// decorateResponse renders a response as a labeled, bordered markdown bubble
func decorateResponse(styles outputStyles, model, response string, opts render.Options) string {
	rendered := render.MarkdownOrPlain(response, opts)

	label := styles.label.Render("✦ " + model)
	bubble := styles.bubble.Render(rendered)
	return label + "\n" + bubble
}
