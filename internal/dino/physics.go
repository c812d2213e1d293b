package dino

// ApplyGravity integrates one tick of the jump arc: velocity first, then position.
// Crossing or reaching restY lands the player: y is clamped, velocity zeroed and
// the jumping flag cleared. Call it only while the player is jumping.
func ApplyGravity(p Player, gravity, restY float64) Player {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y >= restY {
		p.Y = restY
		p.VelocityY = 0
		p.Jumping = false
	}
	return p
}
