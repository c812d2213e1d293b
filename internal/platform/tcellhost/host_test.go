package tcellhost

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/session"
)

type noImages struct{}

func (noImages) Poll() ([]assets.Result, bool) { return nil, true }

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cols, rows := FieldSize(80, 24)
	s, err := session.New(cols, rows, session.Options{Images: noImages{}, Seed: 5, ScreenshotDir: t.TempDir()})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	t.Cleanup(s.Stop)
	return New(screen, s, 60), screen
}

func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := range width {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestAction(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected core.Action
	}{
		{"space", tcell.KeyRune, ' ', core.ActionJump},
		{"up", tcell.KeyUp, 0, core.ActionJump},
		{"w", tcell.KeyRune, 'w', core.ActionJump},
		{"down", tcell.KeyDown, 0, core.ActionDuck},
		{"s", tcell.KeyRune, 's', core.ActionDuck},
		{"r", tcell.KeyRune, 'r', core.ActionRestart},
		{"enter", tcell.KeyEnter, 0, core.ActionRestart},
		{"q", tcell.KeyRune, 'q', core.ActionQuit},
		{"esc", tcell.KeyEscape, 0, core.ActionQuit},
		{"ctrl+c", tcell.KeyCtrlC, 0, core.ActionQuit},
		{"other", tcell.KeyRune, 'x', core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
			if got := Action(ev); got != tc.expected {
				t.Errorf("Action = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	for _, c := range core.Palette() {
		if _, ok := cellStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestHandleEventStartsAndQuits(t *testing.T) {
	h, _ := newSimHost(t)
	h.session.Start()

	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space reported quit")
	}
	if !h.session.Engine().IsRunning() {
		t.Fatal("space did not start the run")
	}
	if !h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape did not quit")
	}
}

func TestMouseActsOnPressOnly(t *testing.T) {
	h, _ := newSimHost(t)
	h.session.Start()
	mouse := func(b tcell.ButtonMask) {
		h.handleEvent(tcell.NewEventMouse(10, 5, b, tcell.ModNone))
	}

	mouse(tcell.Button1)
	if !h.session.Engine().IsRunning() {
		t.Fatal("click did not start the run")
	}

	// A drag reports Button1 on every motion event.
	for range 5 {
		mouse(tcell.Button1)
	}
	if h.session.Engine().State().Player.Jumping {
		t.Fatal("drag with the button held counted as a click")
	}

	mouse(tcell.ButtonNone)
	mouse(tcell.Button1)
	if !h.session.Engine().State().Player.Jumping {
		t.Error("click after release did not jump")
	}
}

func TestHandleEventResize(t *testing.T) {
	h, screen := newSimHost(t)

	screen.SetSize(100, 30)
	h.handleEvent(tcell.NewEventResize(100, 30))

	scr := h.session.Screen()
	if scr.Width() != 100 || scr.Height() != 30-hudRows {
		t.Errorf("field = %dx%d, expected 100x%d", scr.Width(), scr.Height(), 30-hudRows)
	}
}

func TestHandleEventScreenshot(t *testing.T) {
	h, _ := newSimHost(t)

	h.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone))

	if !strings.HasPrefix(h.status, "saved ") {
		t.Errorf("status = %q, expected a saved path", h.status)
	}
}

func TestDrawLayout(t *testing.T) {
	h, screen := newSimHost(t)
	h.session.Start()
	h.session.Tick()

	h.draw()

	header := rowText(screen, 0)
	if !strings.HasPrefix(header, "Dino Game  Score: 0") || !strings.HasSuffix(header, "HI 00000") {
		t.Errorf("header = %q", header)
	}
	if hint := rowText(screen, 23); !strings.HasPrefix(hint, "Press SPACE to start") {
		t.Errorf("hint = %q", hint)
	}

	var field strings.Builder
	for y := 1; y < 23; y++ {
		field.WriteString(rowText(screen, y))
	}
	if !strings.Contains(field.String(), "DINO GAME") {
		t.Error("start box missing from the field")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	h, screen := newSimHost(t)

	errc := make(chan error, 1)
	go func() { errc <- h.Run() }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
