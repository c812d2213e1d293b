package dino

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/config"
)

// ErrNoSurface is returned by New when no drawing surface is supplied.
var ErrNoSurface = errors.New("dino: drawing surface is required")

// ImageSource delivers sprite load results to the engine goroutine.
// *assets.Batch implements it.
type ImageSource interface {
	// Poll returns results settled since the last call and whether loading is done.
	Poll() ([]assets.Result, bool)
}

// Options configures a new Engine. Every field is optional.
type Options struct {
	// Config holds the engine tunables. The zero value selects the defaults.
	Config config.DinoConfig

	// AssetPath overrides Config.Assets.BasePath.
	AssetPath string

	// Images replaces the disk loader started by Start.
	Images ImageSource

	// Scheduler paces frames. Defaults to a FrameQueue the caller never
	// flushes, which leaves Tick as the only way to advance.
	Scheduler FrameScheduler

	// Seed feeds the obstacle spawner. Zero selects a time-based seed.
	Seed int64

	// Logger receives asset warnings. Defaults to a discarding logger.
	Logger *log.Logger

	OnScoreChange func(score int)
	OnGameOver    func(finalScore int)
}

// Engine runs the game: it owns the state, applies commands, and on every
// frame renders and steps the simulation.
//
// Engine is not safe for concurrent use. Commands, Tick and the scheduler's
// callbacks must all run on one goroutine, the host's event loop.
type Engine struct {
	state    State
	rules    Rules
	assets   config.AssetsConfig
	rng      Spawner
	renderer *Renderer
	images   ImageSource
	sched    FrameScheduler
	logger   *log.Logger

	onScoreChange func(int)
	onGameOver    func(int)

	started bool
	inFrame bool // A frame is running; Start leaves rescheduling to it
	pending FrameID
}

// New creates an engine drawing onto surface. It fails when the surface is
// missing or the configuration is invalid; nothing else in the engine errors.
func New(surface Surface, opts Options) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	cfg := opts.Config
	if cfg.Field.Width == 0 && cfg.Field.Height == 0 {
		cfg = config.DefaultDinoConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("dino: invalid config: %w", err)
	}
	if opts.AssetPath != "" {
		cfg.Assets.BasePath = opts.AssetPath
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = NewFrameQueue()
	}

	rules := NewRules(cfg)
	e := &Engine{
		state:         NewState(rules),
		rules:         rules,
		assets:        cfg.Assets,
		rng:           rand.New(rand.NewSource(seed)),
		renderer:      NewRenderer(surface, rules),
		images:        opts.Images,
		sched:         sched,
		logger:        logger,
		onScoreChange: opts.OnScoreChange,
		onGameOver:    opts.OnGameOver,
	}
	if e.onScoreChange == nil {
		e.onScoreChange = func(int) {}
	}
	if e.onGameOver == nil {
		e.onGameOver = func(int) {}
	}
	return e, nil
}

// Jump starts a jump. Ignored unless running, grounded, standing and not latched.
func (e *Engine) Jump() {
	e.state.Jump(e.rules)
}

// Duck switches to the ducking hitbox. Ignored while airborne or not running.
func (e *Engine) Duck() {
	e.state.Duck()
}

// StopDuck returns to the standing hitbox.
func (e *Engine) StopDuck() {
	e.state.StopDuck()
}

// Reset starts a new run from any phase and reports a zero score.
func (e *Engine) Reset() {
	e.state.Reset(e.rules)
	e.onScoreChange(0)
}

// Start begins sprite loading (once) and the per-frame loop. The first frame
// runs immediately; each frame requests the next from the scheduler.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true

	if e.images == nil {
		entries := assets.EntriesFromMap(e.assets.Files)
		e.logger.Debug("loading sprites", "path", e.assets.BasePath, "count", len(entries))
		e.images = assets.LoadDir(context.Background(), e.assets.BasePath, entries)
	}

	if e.inFrame {
		return
	}
	e.frame()
}

// Stop cancels the pending frame. Safe to call any number of times.
func (e *Engine) Stop() {
	e.started = false
	if e.pending != 0 {
		e.sched.CancelFrame(e.pending)
		e.pending = 0
	}
}

// frame is the scheduled loop body.
func (e *Engine) frame() {
	e.pending = 0
	e.inFrame = true
	e.Tick()
	e.inFrame = false
	// A callback fired during the tick may have stopped or restarted the engine.
	if e.started && e.pending == 0 {
		e.pending = e.sched.RequestFrame(e.frame)
	}
}

// Tick renders and simulates exactly one frame, independent of wall-clock time.
func (e *Engine) Tick() {
	e.pollImages()
	e.state.Frame++

	e.renderer.DrawBackground()
	e.renderer.DrawPlayer(e.state)

	var events []Event
	e.state, events = Step(e.state, e.rules, e.rng)

	e.renderer.DrawObstacles(e.state.Obstacles)
	e.dispatch(events)
}

// pollImages moves settled sprite loads into the renderer.
func (e *Engine) pollImages() {
	if e.images == nil || e.renderer.Settled() {
		return
	}

	results, done := e.images.Poll()
	for _, r := range results {
		if r.Err != nil {
			e.logger.Warn("sprite unavailable", "key", r.Key, "file", r.File, "error", r.Err)
		}
	}
	e.renderer.Accept(results)
	if done {
		e.renderer.MarkSettled()
	}
}

// dispatch translates tick events into host callbacks.
func (e *Engine) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventScoreChanged:
			e.onScoreChange(ev.Score)
		case EventGameOver:
			e.logger.Debug("game over", "score", ev.Score, "frame", e.state.Frame)
			e.onGameOver(ev.Score)
		}
	}
}

// IsRunning reports whether a run is in progress.
func (e *Engine) IsRunning() bool {
	return e.state.Phase == PhaseRunning
}

// Score returns the score of the current or last run.
func (e *Engine) Score() int {
	return e.state.Score
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// State returns a copy of the simulation state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Rules returns the resolved engine tunables.
func (e *Engine) Rules() Rules {
	return e.rules
}
