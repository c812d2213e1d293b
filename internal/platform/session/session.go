// Package session wires one dino engine to a terminal canvas, run storage
// and sound. Terminal hosts feed it actions and ticks from their event loop
// and display its screen.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/canvas"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// groundMargin is extra field height below the ground so the ground line
// gets a row of its own.
const groundMargin = 10

// Options configures a Session. Store, Sound and Logger may be nil.
type Options struct {
	Config        config.DinoConfig
	AssetPath     string
	Images        dino.ImageSource
	Seed          int64
	TickRate      int // Host frames per second; defaults to core.DefaultConfig
	Player        string
	Store         *storage.Store
	Sound         *sound.Player
	Logger        *log.Logger
	ScreenshotDir string
}

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	engine  *dino.Engine
	queue   *dino.FrameQueue
	canvas  *canvas.Canvas
	player  string
	seed    int64
	store   *storage.Store
	sound   *sound.Player
	logger  *log.Logger
	shotDir string

	score int
	best  int

	duckRelease int // Frames a duck lasts without a repeated key
	duckLeft    int
}

// New creates a session drawing into a cols x rows field.
func New(cols, rows int, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg.Field.Width == 0 && cfg.Field.Height == 0 {
		cfg = config.DefaultDinoConfig()
	}

	s := &Session{
		queue:       dino.NewFrameQueue(),
		player:      opts.Player,
		seed:        opts.Seed,
		store:       opts.Store,
		sound:       opts.Sound,
		logger:      opts.Logger,
		shotDir:     opts.ScreenshotDir,
		duckRelease: releaseTicks(cfg.Controls.DuckReleaseMs, opts.TickRate),
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	if s.player == "" {
		s.player = "player"
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.store != nil {
		best, err := s.store.HighScore()
		if err != nil {
			s.logger.Warn("cannot read high score", "error", err)
		}
		s.best = best
	}

	s.canvas = canvas.New(core.NewScreen(max(cols, 1), max(rows, 1)), cfg.Field.Width, cfg.Field.Height+groundMargin)

	engine, err := dino.New(s.canvas, dino.Options{
		Config:        cfg,
		AssetPath:     opts.AssetPath,
		Images:        opts.Images,
		Scheduler:     s.queue,
		Seed:          s.seed,
		Logger:        s.logger,
		OnScoreChange: s.onScoreChange,
		OnGameOver:    s.onGameOver,
	})
	if err != nil {
		return nil, fmt.Errorf("session: cannot create engine: %w", err)
	}
	s.engine = engine
	return s, nil
}

// releaseTicks converts a hold duration to host frames, rounding up.
func releaseTicks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return max((ms*tickRate+999)/1000, 1)
}

func (s *Session) onScoreChange(score int) {
	s.score = score
	if s.sound != nil {
		s.sound.OnScore(score)
	}
}

// onGameOver records the run. It fires once per run.
func (s *Session) onGameOver(final int) {
	s.score = final
	s.best = max(s.best, final)
	s.duckLeft = 0
	if s.sound != nil {
		s.sound.OnGameOver()
	}

	frames := s.engine.State().Frame
	s.logger.Info("run finished", "player", s.player, "score", final, "frames", frames)

	if s.store == nil {
		return
	}
	run := storage.Run{Player: s.player, Score: final, Frames: frames, Seed: s.seed}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("cannot save run", "error", err)
	}
}

// Start begins the engine loop. The first frame is drawn immediately.
func (s *Session) Start() {
	s.engine.Start()
	s.drawOverlay()
}

// Stop halts the engine loop.
func (s *Session) Stop() {
	s.engine.Stop()
}

// Tick advances one host frame: it releases an expired duck and flushes the
// engine's pending frame.
func (s *Session) Tick() {
	if s.duckLeft > 0 {
		s.duckLeft--
		if s.duckLeft == 0 {
			s.engine.StopDuck()
		}
	}
	s.queue.Flush()
	s.drawOverlay()
}

// Handle applies an action and reports whether it asks to quit.
func (s *Session) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		if !s.engine.IsRunning() {
			s.engine.Reset()
			return false
		}
		s.engine.Jump()
	case core.ActionDuck:
		s.engine.Duck()
		if s.engine.State().Player.Ducking {
			s.duckLeft = s.duckRelease
		}
	case core.ActionStopDuck:
		s.engine.StopDuck()
		s.duckLeft = 0
	case core.ActionRestart:
		if !s.engine.IsRunning() {
			s.engine.Reset()
		}
	case core.ActionQuit:
		return true
	}
	return false
}

// Resize changes the field resolution.
func (s *Session) Resize(cols, rows int) {
	s.canvas.Resize(max(cols, 1), max(rows, 1))
}

// Screen returns the field as last drawn, overlay included.
func (s *Session) Screen() *core.Screen {
	return s.canvas.Screen()
}

// Engine returns the hosted engine.
func (s *Session) Engine() *dino.Engine {
	return s.engine
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score known to this session.
func (s *Session) Best() int {
	return s.best
}

// Player returns the name runs are saved under.
func (s *Session) Player() string {
	return s.player
}

// Instructions returns the hint line for the current phase.
func (s *Session) Instructions() string {
	switch s.engine.Phase() {
	case dino.PhaseNotStarted:
		return "Press SPACE to start"
	case dino.PhaseGameOver:
		return "GAME OVER - Press SPACE to try again"
	default:
		return "SPACE or ↑: Jump | ↓: Duck | ESC: Close"
	}
}

// drawOverlay boxes a message over the field when no run is in progress.
func (s *Session) drawOverlay() {
	var lines []string
	switch s.engine.Phase() {
	case dino.PhaseNotStarted:
		lines = []string{"DINO GAME", "", "Press SPACE to start"}
	case dino.PhaseGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", s.score), "Press SPACE to try again"}
	default:
		return
	}
	drawMessageBox(s.canvas.Screen(), lines)
}

// drawMessageBox draws lines centered inside a bordered box in the middle of scr.
func drawMessageBox(scr *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, scr.Width())
	boxH := min(len(lines)+2, scr.Height())
	box := core.NewRect((scr.Width()-boxW)/2, (scr.Height()-boxH)/2, boxW, boxH)

	scr.ClearRect(box)
	scr.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		scr.DrawTextColor(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

// Screenshot writes the field and score line to a text file and returns its path.
func (s *Session) Screenshot() (string, error) {
	dir := s.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("session: cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".dino", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("session: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("dino_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	content := fmt.Sprintf("Score: %d  HI: %d\n%s\n", s.score, s.best, s.Screen().String())
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("session: cannot write screenshot: %w", err)
	}
	return path, nil
}
