package commands

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/ollamachat/internal/api"
	"github.com/diogo/ollamachat/internal/chat"
	"github.com/diogo/ollamachat/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(session *chat.Session, opts tui.Options) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// NewClient builds the query client for a model.
	NewClient func(model string, logger *zap.Logger) api.QueryClient

	// TUI is the terminal user interface.
	TUI TUIInterface

	// StdinIsTerminal and StdoutIsTerminal report whether the streams are TTYs.
	StdinIsTerminal  func() bool
	StdoutIsTerminal func() bool

	// TerminalWidth returns the width of stdout, or 0 when unknown.
	TerminalWidth func() int

	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(string) error
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(session *chat.Session, opts tui.Options) error {
	return tui.RunChat(session, opts)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewClient: func(model string, logger *zap.Logger) api.QueryClient {
			return api.NewClient(api.WithModel(model), api.WithLogger(logger))
		},
		TUI:              &DefaultTUI{},
		StdinIsTerminal:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		StdoutIsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		TerminalWidth: func() int {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 0
			}
			return w
		},
		CopyToClipboard: clipboard.WriteAll,
	}
}
