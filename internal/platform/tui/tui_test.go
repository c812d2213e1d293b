package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/session"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

type noImages struct{}

func (noImages) Poll() ([]assets.Result, bool) { return nil, true }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{" ", core.ActionJump},
		{"up", core.ActionJump},
		{"w", core.ActionJump},
		{"down", core.ActionDuck},
		{"s", core.ActionDuck},
		{"r", core.ActionRestart},
		{"enter", core.ActionRestart},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.Action(keyMsg(tc.key)); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorPink)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "xyz", core.ColorDarkGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	// Styling may be stripped when no color profile is detected; widths are stable.
	if lipgloss.Width(lines[0]) != 6 || lipgloss.Width(lines[1]) != 6 {
		t.Errorf("line widths = %d, %d, expected 6", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "xyz") {
		t.Errorf("text missing from %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range core.Palette() {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cols, rows := FieldSize(80, 24)
	s, err := session.New(cols, rows, session.Options{Images: noImages{}, Seed: 3, ScreenshotDir: t.TempDir()})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	m := NewModel(s, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.Init()
	t.Cleanup(s.Stop)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsAndJumps(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.View(), "Press SPACE to start") {
		t.Error("start hint missing")
	}

	m, _ = update(t, m, keyMsg(" "))
	if !m.session.Engine().IsRunning() {
		t.Fatal("space did not start the run")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}

	m, _ = update(t, m, keyMsg(" "))
	if !m.session.Engine().State().Player.Jumping {
		t.Error("space did not jump during the run")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("score missing from the header")
	}
}

func TestModelClickStartsRun(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.session.Engine().Phase() != dino.PhaseRunning {
		t.Errorf("phase = %v after click, expected Running", m.session.Engine().Phase())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keyMsg("q"))

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	scr := m.session.Screen()
	if scr.Width() != 100 || scr.Height() != 30-hudRows {
		t.Errorf("field = %dx%d, expected 100x%d", scr.Width(), scr.Height(), 30-hudRows)
	}
}

func TestModelScreenshotStatus(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q, expected a saved path", m.status)
	}
	if !strings.Contains(m.View(), m.status) {
		t.Error("status not shown in the view")
	}
}

func TestScoreboardLists(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	for _, r := range []storage.Run{{Player: "rex", Score: 30}, {Player: "ptera", Score: 90}, {Player: "rex", Score: 60}} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "rex", 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 90 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("title missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || len(m.runs) != 2 || m.runs[0].Score != 60 {
		t.Errorf("recent view = %v %+v, expected rex's runs newest first", m.view, m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS - rex") {
		t.Error("recent title missing")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "rex", 80, 24)

	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty message missing")
	}
}
