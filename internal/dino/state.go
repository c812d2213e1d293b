// Package dino implements a Chrome Dino-style endless runner engine.
//
// The simulation is a pure step function over an explicit State value:
// Step takes the state by value and returns the next one plus the events
// the tick produced. Engine wraps that core with the command surface,
// frame scheduling, rendering onto a Surface, and host callbacks.
package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota // Before the first Reset; draws the idle pose
	PhaseRunning                 // Simulation active
	PhaseGameOver                // Simulation frozen on the last frame
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the runner. X never changes; Y is the top edge of the standing box.
type Player struct {
	X         float64
	Y         float64
	VelocityY float64
	Jumping   bool
	Ducking   bool
}

// ObstacleKind separates obstacles the player jumps over from those it ducks under.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindAerial
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == KindAerial {
		return "aerial"
	}
	return "ground"
}

// GroundVariant selects the shape of a ground obstacle.
type GroundVariant int

const (
	VariantBig GroundVariant = iota
	VariantRound
	VariantSmall
	VariantBigAndSmall

	groundVariantCount = 4
)

// String returns the variant name used in configuration files.
func (v GroundVariant) String() string {
	switch v {
	case VariantBig:
		return config.VariantBig
	case VariantRound:
		return config.VariantRound
	case VariantSmall:
		return config.VariantSmall
	case VariantBigAndSmall:
		return config.VariantBigAndSmall
	default:
		return "unknown"
	}
}

// Obstacle is one entry of the obstacle stream. Its box is resolved once at
// spawn time, so neither collision nor rendering re-derives dimensions.
type Obstacle struct {
	Kind    ObstacleKind
	Variant GroundVariant // Meaningful only for KindGround
	Box     core.Box
}

// State is the complete simulation state of one engine.
type State struct {
	Phase       Phase
	Player      Player
	Obstacles   []Obstacle
	SpawnTimer  int
	Score       int
	Frame       int  // Animation counter, advanced once per rendered frame
	JumpLatched bool // Set by a jump, released on landing
}

// Rules are the tunables the step function reads, resolved from a DinoConfig.
type Rules struct {
	FieldWidth   float64
	FieldHeight  float64
	GroundY      float64
	Speed        float64
	PlayerX      float64
	PlayerWidth  float64
	PlayerHeight float64
	DuckWidth    float64
	DuckHeight   float64
	Gravity      float64
	JumpPower    float64
	SpawnEvery   int
	AerialChance float64
	AerialOffset float64
	ScoreAward   int
	AnimPeriod   int

	aerialSize  config.Size
	groundSizes [groundVariantCount]config.Size
}

// NewRules resolves a validated configuration into step rules.
func NewRules(cfg config.DinoConfig) Rules {
	r := Rules{
		FieldWidth:   cfg.Field.Width,
		FieldHeight:  cfg.Field.Height,
		GroundY:      cfg.Ground.Y,
		Speed:        cfg.Ground.Speed,
		PlayerX:      cfg.Player.X,
		PlayerWidth:  cfg.Player.Width,
		PlayerHeight: cfg.Player.Height,
		DuckWidth:    cfg.Player.DuckWidth,
		DuckHeight:   cfg.Player.DuckHeight,
		Gravity:      cfg.Physics.Gravity,
		JumpPower:    cfg.Physics.JumpPower,
		SpawnEvery:   cfg.Spawn.Interval,
		AerialChance: cfg.Spawn.AerialChance,
		AerialOffset: cfg.Spawn.AerialOffset,
		ScoreAward:   cfg.Spawn.ScoreAward,
		AnimPeriod:   cfg.Animation.Period,
		aerialSize:   cfg.Obstacles.Aerial,
	}
	for v := GroundVariant(0); v < groundVariantCount; v++ {
		r.groundSizes[v] = cfg.Obstacles.Ground[v.String()]
	}
	return r
}

// RestY is the y of the grounded, standing player and the landing threshold.
func (r Rules) RestY() float64 {
	return r.GroundY - r.PlayerHeight
}

// GroundSize returns the size of a ground variant.
func (r Rules) GroundSize(v GroundVariant) config.Size {
	return r.groundSizes[v]
}

// NewState returns the state of an engine that has not started yet.
func NewState(r Rules) State {
	return State{
		Phase:  PhaseNotStarted,
		Player: baselinePlayer(r),
	}
}

// baselinePlayer is the grounded, idle player.
func baselinePlayer(r Rules) Player {
	return Player{
		X: r.PlayerX,
		Y: r.RestY(),
	}
}

// Clone returns a deep copy, safe to hand out while the engine keeps running.
func (s State) Clone() State {
	c := s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return c
}
