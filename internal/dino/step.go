package dino

// EventKind tags what a tick reported to the host.
type EventKind int

const (
	EventScoreChanged EventKind = iota // An obstacle cleared the field; Score is the new total
	EventGameOver                      // The player collided; Score is the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a side effect of a tick, translated into callbacks by the Engine.
type Event struct {
	Kind  EventKind
	Score int
}

// Step advances a running simulation by one tick: jump physics, obstacle
// scroll and pruning, spawning, then collision. States that are not running
// come back unchanged. The caller hands over s and must use the returned
// state from then on, since the obstacle slice is updated in place.
func Step(s State, r Rules, rng Spawner) (State, []Event) {
	if s.Phase != PhaseRunning {
		return s, nil
	}

	if s.Player.Jumping {
		s.Player = ApplyGravity(s.Player, r.Gravity, r.RestY())
		if !s.Player.Jumping {
			s.JumpLatched = false
		}
	}

	var events []Event
	s.Obstacles, s.Score, events = AdvanceObstacles(s.Obstacles, r.Speed, s.Score, r.ScoreAward)
	s = MaybeSpawn(s, r, rng)

	if Collides(r.PlayerBox(s.Player), s.Obstacles) {
		s.Phase = PhaseGameOver
		events = append(events, Event{Kind: EventGameOver, Score: s.Score})
	}

	return s, events
}

// Jump starts a jump if the player may jump, and reports whether it did.
// A held key cannot re-trigger: the latch stays set until the player lands.
func (s *State) Jump(r Rules) bool {
	if s.Phase != PhaseRunning || s.Player.Jumping || s.Player.Ducking || s.JumpLatched {
		return false
	}
	s.JumpLatched = true
	s.Player.Jumping = true
	s.Player.VelocityY = r.JumpPower
	return true
}

// Duck switches to the ducking profile. Ducking mid-air is refused, not queued.
func (s *State) Duck() bool {
	if s.Phase != PhaseRunning || s.Player.Jumping {
		return false
	}
	s.Player.Ducking = true
	return true
}

// StopDuck returns to the standing profile. It is idempotent.
func (s *State) StopDuck() {
	s.Player.Ducking = false
}

// Reset restores the baseline player, clears obstacles, timer, score and
// animation counter, and starts a new run.
func (s *State) Reset(r Rules) {
	s.Player = baselinePlayer(r)
	s.JumpLatched = false
	s.Obstacles = s.Obstacles[:0]
	s.SpawnTimer = 0
	s.Score = 0
	s.Frame = 0
	s.Phase = PhaseRunning
}
