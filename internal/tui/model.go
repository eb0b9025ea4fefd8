package tui

import (
	"fmt"
	"strings"

	"MiniCheck/internal/checker"
	"MiniCheck/internal/config"
	l "MiniCheck/internal/logger"
	"MiniCheck/internal/report"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// checkMsg carries the outcome of checking the editor contents, along with
// the exact source that was checked.
type checkMsg struct {
	src        string
	result     checker.Result
	showTokens bool
}

func checkCmd(src string, showTokens bool) tea.Cmd {
	return func() tea.Msg {
		return checkMsg{src: src, result: checker.Analyze(src), showTokens: showTokens}
	}
}

type keyMap struct {
	Check  key.Binding
	Tokens key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Check: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "check program"),
		),
		Tokens: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show tokens"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Check, k.Tokens, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Check, k.Tokens},
		{k.Quit},
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type model struct {
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	logger   *l.Logger
	status   string
	checking bool
	valid    bool
	width    int
	height   int
}

func newModel(cfg config.TUIConfig, logger *l.Logger) model {
	ta := textarea.New()
	ta.Placeholder = cfg.Placeholder
	ta.Focus()
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = true

	vp := viewport.New(80, 10)
	vp.SetContent(subtle.Render("Press ctrl+s to check the program."))

	return model{
		input:    ta,
		viewport: vp,
		help:     help.New(),
		keys:     newKeyMap(),
		logger:   logger,
		status:   "Ready",
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		// title, blank, two labels, two blanks, status, help and the
		// borders of both boxes
		const chromeLines = 12
		available := max(m.height-chromeLines, 2)
		inputHeight := max(available*2/3, 1)

		m.input.SetWidth(max(m.width-6, 10))
		m.input.SetHeight(inputHeight)
		m.viewport.Width = max(m.width-6, 10)
		m.viewport.Height = max(available-inputHeight, 1)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Check), key.Matches(msg, m.keys.Tokens):
			m.checking = true
			m.status = "Checking..."
			showTokens := key.Matches(msg, m.keys.Tokens)
			m.logger.Debug("Check requested (tokens=%v)", showTokens)
			return m, checkCmd(m.input.Value(), showTokens)
		}
	case checkMsg:
		m.checking = false
		m.valid = msg.result.Valid
		m.viewport.SetContent(m.renderResult(msg))
		m.viewport.GotoTop()
		if msg.result.Valid {
			m.status = "Parsing completed successfully. No errors found."
			m.logger.Info("Program accepted")
		} else {
			m.status = "Parsing error"
			m.logger.Info("Program rejected: %s", msg.result.Message)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) renderResult(msg checkMsg) string {
	var sb strings.Builder
	if msg.result.Valid {
		sb.WriteString(successStyle.Render(fmt.Sprintf("Valid program (%d tokens)", len(msg.result.Tokens))))
	} else {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("%s error: %s", msg.result.Stage, msg.result.Message)))
		if msg.result.Line > 0 {
			sb.WriteString("\n")
			sb.WriteString(sourceContext(msg.src, msg.result.Line, msg.result.Column))
		}
	}
	if msg.showTokens && len(msg.result.Tokens) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(report.TokenTable(msg.result.Tokens))
	}
	return sb.String()
}

// sourceContext quotes line of src with a caret under column.
func sourceContext(src string, line, column int) string {
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return ""
	}
	return fmt.Sprintf("%4d | %s\n     | %s^", line, lines[line-1], strings.Repeat(" ", max(column-1, 0)))
}

// View draws the entire interface.
func (m model) View() string {
	title := titleStyle.Render("MiniCheck") + " " + subtle.Render("syntax checker")

	status := m.status
	if m.checking {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if !m.checking && m.status != "Ready" && !m.valid {
		statusLine = errorStyle.Render(status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"Program:",
		boxStyle.Render(m.input.View()),
		"",
		"Result:",
		boxStyle.Render(m.viewport.View()),
		"",
		statusLine,
		m.help.View(m.keys),
	)
}

// Run starts the editor and blocks until the user quits.
func Run(cfg config.TUIConfig, logger *l.Logger) error {
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("Starting TUI session")
	p := tea.NewProgram(newModel(cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI failed: %v", err)
		return fmt.Errorf("error running TUI: %w", err)
	}
	logger.Info("TUI session ended")
	return nil
}
