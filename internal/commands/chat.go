package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/chat"
	apierrors "github.com/diogo/ollamachat/internal/errors"
	"github.com/diogo/ollamachat/internal/history"
	"github.com/diogo/ollamachat/internal/render"
	"github.com/diogo/ollamachat/internal/tui"
)

const historyHeading = "Conversation History"

func newChatCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session.

Every exchange is kept in the session history and shown after each message.
The history lives only as long as the session.

Commands inside the chat:
  /reset                 Clear the conversation history (Ctrl+R in the TUI)
  /copy                  Copy the last response to the clipboard (TUI only)
  /export [md|json]      Export the transcript (clipboard in the TUI, stdout in --plain)
  /quit, /exit           End the session (also Esc or Ctrl+C in the TUI, EOF in --plain)

Any other input, including a bare "exit" or "quit", is sent as a message.

When stdin or stdout is not a terminal, or with --plain, a line-based
chat is used instead of the full-screen interface.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usePlain := plain || !deps.StdinIsTerminal() || !deps.StdoutIsTerminal()
			return runChat(deps, opts, usePlain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Use the line-based chat instead of the full-screen UI")
	return cmd
}

func runChat(deps *Dependencies, opts *rootOptions, plain bool) error {
	// The TUI owns the terminal, so logs go to a file
	a, err := newApp(deps, opts, !plain)
	if err != nil {
		return err
	}
	defer a.close()

	session := a.newSession()

	if plain {
		repl := &plainChat{
			session: session,
			in:      deps.Stdin,
			out:     deps.Stdout,
			errOut:  deps.Stderr,
			prompt:  deps.StdinIsTerminal(),
		}
		return repl.run()
	}

	palette, ok := render.PaletteByName(a.cfg.TUITheme)
	if !ok {
		a.logger.Warn("unknown tui theme, using default", zap.String("theme", a.cfg.TUITheme))
	}

	return deps.TUI.RunChat(session, tui.Options{
		Render:  render.OptionsFromConfig(a.cfg),
		Palette: palette,
		Logger:  a.logger.Named("tui"),
	})
}

// plainChat is a line-oriented chat loop over arbitrary streams
type plainChat struct {
	session *chat.Session
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	prompt  bool
}

func (p *plainChat) run() error {
	scanner := bufio.NewScanner(p.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p.showPrompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		command, arg, _ := strings.Cut(line, " ")
		if !strings.HasPrefix(command, "/") {
			command = ""
		}

		switch command {
		case "/exit", "/quit":
			return nil
		case "/reset":
			p.session.Reset()
			fmt.Fprintln(p.out, "Conversation cleared")
		case "/export":
			if err := p.export(strings.TrimSpace(arg)); err != nil {
				p.reportError(err)
			}
		default:
			if _, err := p.session.Submit(line); err != nil {
				p.reportError(err)
			} else {
				p.showHistory()
			}
		}
		p.showPrompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (p *plainChat) showPrompt() {
	if p.prompt {
		fmt.Fprint(p.out, "You: ")
	}
}

func (p *plainChat) showHistory() {
	rendered := p.session.Render()
	if rendered == "" {
		return
	}
	fmt.Fprintf(p.out, "%s\n%s\n%s\n", historyHeading, strings.Repeat("-", len(historyHeading)), rendered)
}

// export prints the transcript in the requested format
func (p *plainChat) export(formatName string) error {
	format, err := history.ParseExportFormat(formatName)
	if err != nil {
		return err
	}
	transcript, err := p.session.History().Export(format, "Chat with "+p.session.ModelName())
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, transcript)
	return nil
}

func (p *plainChat) reportError(err error) {
	fmt.Fprintf(p.errOut, "Error: %v\n", err)
	if hint := apierrors.Hint(err); hint != "" {
		fmt.Fprintf(p.errOut, "Hint: %s\n", hint)
	}
}
