package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// Sprite keys understood by the renderer.
const (
	SpriteIdle              = "idle"
	SpriteRunRight          = "run_right"
	SpriteRunLeft           = "run_left"
	SpriteDuckRight         = "duck_right"
	SpriteDuckLeft          = "duck_left"
	SpriteBird              = "bird"
	SpriteCactusBig         = "cactus_big"
	SpriteCactusRound       = "cactus_round"
	SpriteCactusSmall       = "cactus_small"
	SpriteCactusBigAndSmall = "cactus_big_and_small"
)

// DefaultDinoConfig returns the default Dino Runner configuration.
// It mirrors defaults/dino.yaml and is used when the embedded YAML cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 200,
		},
		Ground: GroundConfig{
			Y:     200,
			Speed: 5,
		},
		Player: PlayerConfig{
			X:          50,
			Width:      50,
			Height:     50,
			DuckWidth:  60,
			DuckHeight: 25,
		},
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpPower: -12,
		},
		Spawn: SpawnConfig{
			Interval:     100,
			AerialChance: 0.3,
			AerialOffset: 70,
			ScoreAward:   10,
		},
		Obstacles: ObstacleConfig{
			Aerial: Size{Width: 35, Height: 25},
			Ground: map[string]Size{
				VariantBig:         {Width: 40, Height: 60},
				VariantRound:       {Width: 35, Height: 45},
				VariantSmall:       {Width: 28, Height: 42},
				VariantBigAndSmall: {Width: 45, Height: 60},
			},
		},
		Animation: AnimationConfig{
			Period: 14,
		},
		Assets: AssetsConfig{
			BasePath: "./assets/dino",
			Files: map[string]string{
				SpriteIdle:              "DinoStart.png",
				SpriteRunRight:          "DinoRightUp.png",
				SpriteRunLeft:           "DinoLeftUp.png",
				SpriteDuckRight:         "DinoDuckRightUp.png",
				SpriteDuckLeft:          "DinoDuckLeftUp.png",
				SpriteBird:              "bird.png",
				SpriteCactusBig:         "cactusBig.png",
				SpriteCactusRound:       "cactusRound.png",
				SpriteCactusSmall:       "cactusSmall.png",
				SpriteCactusBigAndSmall: "cactiBigAndSmall.png",
			},
		},
		Controls: ControlsConfig{
			DuckReleaseMs: 650,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
