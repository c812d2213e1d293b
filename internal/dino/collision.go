package dino

import (
	"github.com/vovakirdan/dino-runner/internal/core"
)

// PlayerBox returns the hitbox of the player. A ducking player uses the wide,
// low profile pinned to the ground line regardless of its y.
func (r Rules) PlayerBox(p Player) core.Box {
	if p.Ducking {
		return core.NewBox(p.X, r.GroundY-r.DuckHeight, r.DuckWidth, r.DuckHeight)
	}
	return core.NewBox(p.X, p.Y, r.PlayerWidth, r.PlayerHeight)
}

// Collides reports whether the player box overlaps any obstacle.
// It stops at the first overlap and does not say which obstacle it was.
func Collides(player core.Box, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if player.Overlaps(o.Box) {
			return true
		}
	}
	return false
}
