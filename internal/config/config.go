// Package config provides YAML-based configuration loading for the
// Dino Runner engine and its hosts.
package config

// DinoConfig contains all tunables of the Dino Runner engine.
// Every value is expressed per tick, not per second: the simulation is
// fixed-step-per-frame, so the host frame rate directly sets game speed.
type DinoConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Ground    GroundConfig    `yaml:"ground"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Controls  ControlsConfig  `yaml:"controls"`
}

// FieldConfig is the logical size of the drawing surface.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundConfig defines the ground line and the shared scroll speed.
type GroundConfig struct {
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// PlayerConfig defines the player position and its two box profiles.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckWidth  float64 `yaml:"duck_width"`
	DuckHeight float64 `yaml:"duck_height"`
}

// RestY returns the y of the grounded, standing player.
func (c DinoConfig) RestY() float64 {
	return c.Ground.Y - c.Player.Height
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jump_power"` // Negative: up is -y
}

// SpawnConfig defines the obstacle spawn policy and scoring.
type SpawnConfig struct {
	Interval     int     `yaml:"interval"`      // Spawn once the timer exceeds this many ticks
	AerialChance float64 `yaml:"aerial_chance"` // Probability in [0, 1]
	AerialOffset float64 `yaml:"aerial_offset"` // Aerial obstacle y = ground.y - offset
	ScoreAward   int     `yaml:"score_award"`   // Points per obstacle leaving the field
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig holds the size table of every obstacle shape.
type ObstacleConfig struct {
	Aerial Size            `yaml:"aerial"`
	Ground map[string]Size `yaml:"ground"` // Keyed by variant name
}

// AnimationConfig defines the two-frame pose cycle.
type AnimationConfig struct {
	Period int `yaml:"period"` // Frames per full cycle; first half shows frame A
}

// AssetsConfig locates sprite images. Files maps sprite keys to file names
// relative to BasePath.
type AssetsConfig struct {
	BasePath string            `yaml:"base_path"`
	Files    map[string]string `yaml:"files"`
}

// ControlsConfig tunes host input handling.
type ControlsConfig struct {
	// DuckReleaseMs is how long a duck stays held after the last duck key
	// event. Terminals report no key release, so hosts synthesize it. It must
	// exceed the key-repeat delay or a held key stands the player up.
	DuckReleaseMs int `yaml:"duck_release_ms"`
}

// Ground obstacle variant names, in the order the spawner draws from.
const (
	VariantBig         = "big"
	VariantRound       = "round"
	VariantSmall       = "small"
	VariantBigAndSmall = "big_and_small"
)

// GroundVariants lists every required ground variant name.
var GroundVariants = []string{VariantBig, VariantRound, VariantSmall, VariantBigAndSmall}
