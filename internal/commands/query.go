package commands

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/render"
)

// runQuery executes a single query and outputs the response
func runQuery(deps *Dependencies, opts *rootOptions, prompt string) error {
	a, err := newApp(deps, opts, false)
	if err != nil {
		return err
	}
	defer a.close()

	session := a.newSession()

	// Surrounding whitespace (trailing newline from files and pipes) is not part of the query
	ex, err := session.Submit(strings.TrimSpace(prompt))
	if err != nil {
		return err
	}

	switch {
	case opts.jsonOut:
		data, err := session.History().ExportJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))

	case opts.raw || !deps.StdoutIsTerminal():
		fmt.Fprintln(deps.Stdout, ex.Response)

	default:
		palette, _ := render.PaletteByName(a.cfg.TUITheme)
		width := deps.TerminalWidth()
		if width <= 0 || width > 120 {
			width = 80
		}
		renderOpts := render.OptionsFromConfig(a.cfg).WithWidth(width - 4)
		fmt.Fprintln(deps.Stdout, decorateResponse(newOutputStyles(palette), a.model, ex.Response, renderOpts))
	}

	// Save to file if requested
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(ex.Response), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		a.logger.Debug("response saved", zap.String("path", opts.output))
		if !opts.raw && !opts.jsonOut {
			fmt.Fprintln(deps.Stderr, defaultStyles.success.Render("✓ Saved to "+opts.output))
		}
	}

	// Copy to clipboard if enabled in config
	if a.cfg.CopyToClipboard {
		if err := deps.CopyToClipboard(ex.Response); err != nil {
			a.logger.Warn("clipboard write failed", zap.Error(err))
			fmt.Fprintf(deps.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}
