// Package tui renders a puzzle session in the terminal. It consumes
// the engine's plain-data snapshots and owns no puzzle logic.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tatianab/pitch-puzzle/internal/config"
	"github.com/tatianab/pitch-puzzle/internal/engine"
	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/progress"
	"github.com/tatianab/pitch-puzzle/internal/puzzles"
)

const (
	pitchCols = 24
	pitchRows = 14
	cellWidth = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	pitchStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#2E7D32"))

	homeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF"))
	awayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
	Clear  key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// Right is bound for input but shares the Left entry's "←/→" help
// text, so only Left appears in the help views.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Submit, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Submit}, {k.Clear, k.Reset, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/→", "select player"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("", ""),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "dismiss feedback"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	session  *engine.Session
	snap     engine.Snapshot
	keys     keyMap
	help     help.Model
	selected int
	width    int
	err      error
}

type advancedMsg struct{}

func NewModel(session *engine.Session) model {
	m := model{
		session: session,
		snap:    session.Snapshot(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.syncKeys()
	return m
}

func (m model) Init() tea.Cmd {
	return waitForAdvance(m.session)
}

func waitForAdvance(s *engine.Session) tea.Cmd {
	return func() tea.Msg {
		<-s.Advanced()
		return advancedMsg{}
	}
}

// syncKeys enables only the bindings that apply in the current state,
// so the help line tracks what the user can actually do.
func (m *model) syncKeys() {
	playing := m.snap.State == models.StatePlaying
	m.keys.Left.SetEnabled(playing)
	m.keys.Right.SetEnabled(playing)
	m.keys.Submit.SetEnabled(playing)
	m.keys.Clear.SetEnabled(playing && m.snap.Feedback != nil)
	m.keys.Reset.SetEnabled(m.snap.State != models.StateChainTransition)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.session.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Left):
			m.selected = m.cycle(-1)

		case key.Matches(msg, m.keys.Right):
			m.selected = m.cycle(1)

		case key.Matches(msg, m.keys.Submit):
			if len(m.snap.Move.Players) > 0 {
				snap, err := m.session.Submit(context.Background(), m.snap.Move.Players[m.selected].ID)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.snap = snap
			}

		case key.Matches(msg, m.keys.Clear):
			m.session.ClearFeedback()
			m.snap = m.session.Snapshot()

		case key.Matches(msg, m.keys.Reset):
			if err := m.session.Reset(context.Background()); err != nil {
				m.err = err
				return m, nil
			}
			m.snap = m.session.Snapshot()
			m.selected = 0
		}
		m.syncKeys()

	case advancedMsg:
		m.snap = m.session.Snapshot()
		m.selected = 0
		m.syncKeys()
		return m, waitForAdvance(m.session)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m model) cycle(dir int) int {
	n := len(m.snap.Move.Players)
	if n == 0 {
		return 0
	}
	return ((m.selected+dir)%n + n) % n
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\nPress q to quit.\n", m.err)
	}

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Daily Football Puzzle") + "  " + m.snap.Puzzle.Date)
	if m.snap.Puzzle.IsChain() {
		b.WriteString(fmt.Sprintf("   Move %d of %d", m.snap.MoveNumber, m.snap.MoveCount))
	}
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render(m.snap.Move.Question) + "\n")
	b.WriteString(descStyle.Render(wrap(m.snap.Move.Description, 72)) + "\n\n")

	b.WriteString(m.renderPitch() + "\n")

	switch m.snap.State {
	case models.StatePlaying:
		sel := m.snap.Move.Players[m.selected]
		b.WriteString(fmt.Sprintf("Selected: %s (#%d %s, %s)\n",
			sel.Name, sel.Number, sel.Position.Abbreviation, sel.Team))
		if m.snap.Attempts > 0 {
			b.WriteString(fmt.Sprintf("Attempts: %d/%d\n", m.snap.Attempts, engine.MaxAttempts))
		}
	case models.StateChainTransition:
		b.WriteString("Moving to next position...\n")
	case models.StateCompleted:
		b.WriteString(fmt.Sprintf("Attempts: %d/%d\n", m.snap.Attempts, engine.MaxAttempts))
	}

	if fb := m.snap.Feedback; fb != nil {
		style := successStyle
		if fb.Kind == engine.FeedbackError {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(fb.Message) + "\n")
		if fb.Explanation != "" {
			b.WriteString(descStyle.Render(wrap("Explanation: "+fb.Explanation, 72)) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// renderPitch draws the field as a fixed character grid; each player
// occupies one cell showing their shirt number, the ball carrier
// marked with a dot.
func (m model) renderPitch() string {
	grid := make([][]string, pitchRows)
	for r := range grid {
		grid[r] = make([]string, pitchCols)
		for c := range grid[r] {
			cell := strings.Repeat(" ", cellWidth)
			if c == pitchCols/2 {
				cell = " ┊ "
			}
			grid[r][c] = cell
		}
	}

	for i, p := range m.snap.Move.Players {
		r := int(p.Position.Y / 100 * float64(pitchRows-1))
		c := int(p.Position.X / 100 * float64(pitchCols-1))
		label := fmt.Sprintf("%2d", p.Number)
		if p.IsActivePlayer {
			label += "•"
		} else {
			label += " "
		}

		style := homeStyle
		if p.Team == models.TeamAway {
			style = awayStyle
		}
		if p.IsActivePlayer {
			style = activeStyle
		}
		if m.snap.State == models.StatePlaying && i == m.selected {
			style = selectedStyle
		}
		grid[r][c] = style.Render(label)
	}

	rows := make([]string, pitchRows)
	for r := range grid {
		rows[r] = strings.Join(grid[r], "")
	}
	return pitchStyle.Render(strings.Join(rows, "\n"))
}

func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}

// Run drives the TUI over an existing session.
func Run(session *engine.Session) error {
	p := tea.NewProgram(NewModel(session))
	_, err := p.Run()
	return err
}

// Start wires up the default application (config, catalog, progress
// store, today's puzzle) and runs the TUI.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	extra, err := puzzles.LoadDir(cfg.PuzzleDir())
	if err != nil {
		return err
	}
	repo := puzzles.NewRepository(extra...)

	store, err := progress.OpenSQLite(cfg.ProgressDB())
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := engine.NewSession(context.Background(), repo.TodaysPuzzle(), store,
		engine.WithDelays(cfg.TransitionDelay, cfg.MovementDelay),
		engine.WithLogger(zap.NewNop()))
	if err != nil {
		return err
	}
	defer session.Close()

	return Run(session)
}
