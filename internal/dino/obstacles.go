package dino

import (
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Spawner is the random source of the obstacle stream.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Spawner interface {
	Float64() float64
	Intn(n int) int
}

// AdvanceObstacles scrolls every obstacle left by speed and prunes those whose
// trailing edge has left the field. Each removal adds award to score and
// yields one score event, in removal order. The scan runs from the last index
// down so removing in place never skips an element.
func AdvanceObstacles(obstacles []Obstacle, speed float64, score, award int) ([]Obstacle, int, []Event) {
	var events []Event
	for i := len(obstacles) - 1; i >= 0; i-- {
		obstacles[i].Box.X -= speed

		if obstacles[i].Box.Right() < 0 {
			obstacles = append(obstacles[:i], obstacles[i+1:]...)
			score += award
			events = append(events, Event{Kind: EventScoreChanged, Score: score})
		}
	}
	return obstacles, score, events
}

// MaybeSpawn advances the spawn timer and, once it exceeds the interval,
// appends a new obstacle at the right edge of the field and restarts the timer.
func MaybeSpawn(s State, r Rules, rng Spawner) State {
	s.SpawnTimer++
	if s.SpawnTimer > r.SpawnEvery {
		s.Obstacles = append(s.Obstacles, r.NewObstacle(rng))
		s.SpawnTimer = 0
	}
	return s
}

// NewObstacle draws the kind and variant of a fresh obstacle placed at the
// right edge of the field. Ground obstacles sit on the ground line; aerial ones
// float at a fixed offset above it.
func (r Rules) NewObstacle(rng Spawner) Obstacle {
	if rng.Float64() < r.AerialChance {
		size := r.aerialSize
		return Obstacle{
			Kind: KindAerial,
			Box:  core.NewBox(r.FieldWidth, r.GroundY-r.AerialOffset, size.Width, size.Height),
		}
	}

	variant := GroundVariant(rng.Intn(groundVariantCount))
	size := r.groundSizes[variant]
	return Obstacle{
		Kind:    KindGround,
		Variant: variant,
		Box:     core.NewBox(r.FieldWidth, r.GroundY-size.Height, size.Width, size.Height),
	}
}
