package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/chat"
	"github.com/diogo/ollamachat/internal/history"
	"github.com/diogo/ollamachat/internal/render"
)

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// Slash commands understood by the input box
const (
	cmdReset  = "/reset"
	cmdCopy   = "/copy"
	cmdExport = "/export"
	cmdExit   = "/exit"
	cmdQuit   = "/quit"
)

// splitCommand separates a slash command from its argument.
// Input that is not a slash command returns an empty command.
func splitCommand(input string) (command, arg string) {
	if !strings.HasPrefix(input, "/") {
		return "", ""
	}
	command, arg, _ = strings.Cut(input, " ")
	return command, strings.TrimSpace(arg)
}

// Options configures the chat TUI
type Options struct {
	Render  render.Options
	Palette render.Palette
	Logger  *zap.Logger
}

// Model represents the TUI state
type Model struct {
	session    *chat.Session
	renderOpts render.Options
	logger     *zap.Logger

	// UI components
	viewport viewport.Model
	textarea textarea.Model

	// State
	ready  bool
	err    error
	notice string

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model around an existing session
func NewChatModel(session *chat.Session, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask something... (/reset, /copy, /export [md|json], /quit)"
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		session:    session,
		renderOpts: opts.Render,
		logger:     logger,
		textarea:   ta,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 2 // Status bar + notice line
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.reset()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			return m.handleInput(input)
		}
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleInput dispatches a submitted line to a slash command or the session
func (m Model) handleInput(input string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""

	command, arg := splitCommand(input)
	switch command {
	case cmdExit, cmdQuit:
		return m, tea.Quit
	case cmdReset:
		m.reset()
		return m, nil
	case cmdCopy:
		m.copyLastResponse()
		return m, nil
	case cmdExport:
		m.copyTranscript(arg)
		return m, nil
	}

	if _, err := m.session.Submit(input); err != nil {
		m.err = err
		return m, nil
	}

	m.updateViewport()
	m.viewport.GotoBottom()
	return m, nil
}

func (m *Model) reset() {
	m.session.Reset()
	m.err = nil
	m.notice = "Conversation cleared"
	m.updateViewport()
}

func (m *Model) copyLastResponse() {
	last, ok := m.session.History().Last()
	if !ok {
		m.notice = "Nothing to copy yet"
		return
	}
	if err := clipboardWrite(last.Response); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
		return
	}
	m.notice = "Last response copied to clipboard"
}

func (m *Model) copyTranscript(formatName string) {
	format, err := history.ParseExportFormat(formatName)
	if err != nil {
		m.err = err
		return
	}
	if m.session.History().Len() == 0 {
		m.notice = "Nothing to export yet"
		return
	}

	transcript, err := m.session.History().Export(format, "Chat with "+m.session.ModelName())
	if err != nil {
		m.err = err
		return
	}
	if err := clipboardWrite(transcript); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
		return
	}
	m.notice = fmt.Sprintf("Transcript copied to clipboard as %s", format)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return hintStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	count := m.session.History().Len()
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("✦ Ollama Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.session.ModelName()),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(fmt.Sprintf("%d exchanges", count)),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages
	messagesContent := m.viewport.View()
	if count == 0 {
		messagesContent = m.renderWelcome()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Input
	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	} else if m.notice != "" {
		sections = append(sections, noticeStyle.Render("✓ "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when the history is empty
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		welcomeIconStyle.Width(width).Render("✦"),
		"",
		welcomeTitleStyle.Width(width).Render("Welcome to Ollama Chat"),
		"",
		welcomeStyle.Width(width).Render("Type a message below and press Enter"),
		"",
	)

	topPadding := (m.viewport.Height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+R", "Reset"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// updateViewport re-renders the history panel from the session's store
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}
	opts := m.renderOpts.WithWidth(bubbleWidth - 4)

	for i, ex := range m.session.History().Exchanges() {
		if i > 0 {
			content.WriteString("\n")
		}

		content.WriteString(userLabelStyle.Render("⬤ You"))
		content.WriteString("\n")
		content.WriteString(userBubbleStyle.Width(bubbleWidth).Render(ex.Query))
		content.WriteString("\n")

		content.WriteString(assistantLabelStyle.Render("✦ " + m.session.ModelName()))
		content.WriteString("\n")
		rendered := render.MarkdownOrPlain(ex.Response, opts)
		content.WriteString(assistantBubbleStyle.Width(bubbleWidth).Render(rendered))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI for the given session
func RunChat(session *chat.Session, opts Options) error {
	if opts.Palette.Name != "" {
		ApplyPalette(opts.Palette)
	}

	p := tea.NewProgram(
		NewChatModel(session, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
