package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/session"
)

// hudRows is the number of rows around the field: title/score on top, hint and help below.
const hudRows = 3

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model hosting one game session.
// The session is shared by pointer, so value copies of the model drive the same engine.
type Model struct {
	session  *session.Session
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	status   string // Transient message, e.g. where a screenshot went
	quitting bool
}

// NewModel creates a model for an existing session.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		session: s,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// FieldSize returns the field dimensions that fit a terminal of the given size.
func FieldSize(width, height int) (int, int) {
	return max(width, 1), max(height-hudRows, 1)
}

// Init starts the engine and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// A click acts like the jump key: start when idle, jump when running.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.session.Handle(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.session.Resize(FieldSize(msg.Width, msg.Height))
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.session.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.session.Screenshot()
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.session.Handle(m.keys.Action(msg)) {
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	}
	return m, nil
}

// View renders the HUD around the field.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.session.Screen()))
	b.WriteString("\n")

	hint := m.session.Instructions()
	if m.status != "" {
		hint = m.status
	}
	b.WriteString(hintStyle.Render(hint))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// headerLine shows the title and score on the left and the best score on the right.
func (m Model) headerLine() string {
	left := titleStyle.Render("Dino Game") + "  " + scoreStyle.Render(fmt.Sprintf("Score: %d", m.session.Score()))
	right := bestStyle.Render(fmt.Sprintf("HI %05d", m.session.Best()))

	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a Bubble Tea program for the session and blocks until it exits.
func Run(s *session.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	s.Stop()
	return err
}
