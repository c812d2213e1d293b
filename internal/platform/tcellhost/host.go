// Package tcellhost runs a game session directly on a tcell screen,
// without the Bubble Tea runtime.
package tcellhost

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/session"
)

// hudRows is the header row above the field plus the hint row below it.
const hudRows = 2

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(229)).Bold(true)
	bestStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	hintStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(241)).Italic(true)
)

// cellStyles maps each palette color to a tcell style.
var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]tcell.Style {
	styles := map[core.Color]tcell.Style{
		core.ColorDefault: tcell.StyleDefault,
	}
	for _, c := range core.Palette() {
		code, err := strconv.Atoi(c.ANSI())
		if err != nil {
			styles[c] = tcell.StyleDefault.Foreground(tcell.GetColor(c.Hex()))
			continue
		}
		styles[c] = tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
	}
	return styles
}

// FieldSize returns the field dimensions that fit a terminal of the given size.
func FieldSize(width, height int) (int, int) {
	return max(width, 1), max(height-hudRows, 1)
}

// Host drives a session from tcell events and a frame ticker.
type Host struct {
	screen   tcell.Screen
	session  *session.Session
	tickRate int
	status   string
	buttons  tcell.ButtonMask // Mouse buttons held at the last mouse event
}

// New creates a host for an initialized screen.
// The caller owns the screen and finalizes it after Run returns.
func New(screen tcell.Screen, s *session.Session, tickRate int) *Host {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Host{screen: screen, session: s, tickRate: tickRate}
}

// Run plays until the user quits.
func (h *Host) Run() error {
	h.session.Resize(FieldSize(h.screen.Size()))
	h.session.Start()
	defer h.session.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.session.Tick()
			h.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlS {
			path, err := h.session.Screenshot()
			if err != nil {
				h.status = err.Error()
			} else {
				h.status = "saved " + path
			}
			return false
		}
		return h.session.Handle(Action(ev))

	case *tcell.EventMouse:
		// Drags repeat the held mask; only the press itself is a click.
		pressed := ev.Buttons() &^ h.buttons
		h.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			h.session.Handle(core.ActionJump)
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.session.Resize(FieldSize(ev.Size()))
	}
	return false
}

// Action translates a key event to a game action.
func Action(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyDown:
		return core.ActionDuck
	case tcell.KeyEnter:
		return core.ActionRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionJump
		case 's':
			return core.ActionDuck
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// draw shows the header, the field and the hint line.
func (h *Host) draw() {
	h.screen.Clear()
	width, _ := h.screen.Size()

	h.drawText(0, 0, fmt.Sprintf("Dino Game  Score: %d", h.session.Score()), headerStyle)
	best := fmt.Sprintf("HI %05d", h.session.Best())
	h.drawText(max(width-len(best), 0), 0, best, bestStyle)

	scr := h.session.Screen()
	for y := range scr.Height() {
		for x := range scr.Width() {
			cell := scr.GetCell(x, y)
			style, ok := cellStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			h.screen.SetContent(x, y+1, cell.Rune, nil, style)
		}
	}

	hint := h.session.Instructions()
	if h.status != "" {
		hint = h.status
	}
	h.drawText(0, scr.Height()+1, hint, hintStyle)

	h.screen.Show()
}

func (h *Host) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
