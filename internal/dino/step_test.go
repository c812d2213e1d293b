package dino

import (
	"testing"
)

func TestStepIgnoredUnlessRunning(t *testing.T) {
	r := defaultRules()

	for _, phase := range []Phase{PhaseNotStarted, PhaseGameOver} {
		t.Run(phase.String(), func(t *testing.T) {
			s := NewState(r)
			s.Phase = phase
			s.Obstacles = []Obstacle{groundObstacle(r, VariantBig, 400)}
			s.SpawnTimer = 42

			next, events := Step(s, r, alwaysAerial())

			if len(events) != 0 {
				t.Errorf("events = %+v, expected none", events)
			}
			if next.Obstacles[0].Box.X != 400 || next.SpawnTimer != 42 || next.Phase != phase {
				t.Errorf("state changed while %v: %+v", phase, next)
			}
		})
	}
}

func TestJumpRules(t *testing.T) {
	r := defaultRules()

	tests := []struct {
		name     string
		setup    func(s *State)
		expected bool
	}{
		{"grounded and running", func(s *State) {}, true},
		{"not started", func(s *State) { s.Phase = PhaseNotStarted }, false},
		{"game over", func(s *State) { s.Phase = PhaseGameOver }, false},
		{"ducking", func(s *State) { s.Player.Ducking = true }, false},
		{"airborne", func(s *State) { s.Player.Jumping = true }, false},
		{"latched", func(s *State) { s.JumpLatched = true }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := runningState(r)
			tc.setup(&s)
			vy := s.Player.VelocityY

			got := s.Jump(r)

			if got != tc.expected {
				t.Fatalf("Jump() = %v, expected %v", got, tc.expected)
			}
			if got && (s.Player.VelocityY != r.JumpPower || !s.Player.Jumping || !s.JumpLatched) {
				t.Errorf("jump did not take effect: %+v latched=%v", s.Player, s.JumpLatched)
			}
			if !got && s.Player.VelocityY != vy {
				t.Errorf("refused jump changed velocity to %v", s.Player.VelocityY)
			}
		})
	}
}

func TestJumpLatchReleasedOnLanding(t *testing.T) {
	r := defaultRules()
	r.SpawnEvery = 1 << 30
	s := runningState(r)
	rng := alwaysAerial()

	if !s.Jump(r) {
		t.Fatal("first jump refused")
	}

	var events []Event
	ticks := 0
	for s.Player.Jumping {
		// Holding the key re-sends jumps; none may restart the arc.
		vy := s.Player.VelocityY
		if s.Jump(r) {
			t.Fatalf("tick %d: repeated jump accepted", ticks)
		}
		if s.Player.VelocityY != vy {
			t.Fatalf("tick %d: repeated jump changed velocity", ticks)
		}

		s, events = Step(s, r, rng)
		if len(events) != 0 {
			t.Fatalf("tick %d: unexpected events %+v", ticks, events)
		}
		ticks++
		if ticks > 100 {
			t.Fatal("player never landed")
		}
	}

	if s.JumpLatched {
		t.Error("latch still set after landing")
	}
	if s.Player.Y != r.RestY() {
		t.Errorf("landed at y=%v, expected %v", s.Player.Y, r.RestY())
	}
	if !s.Jump(r) {
		t.Error("jump refused after landing")
	}
}

func TestDuckRefusedMidAir(t *testing.T) {
	r := defaultRules()
	s := runningState(r)
	s.Jump(r)

	if s.Duck() {
		t.Error("duck accepted mid-air")
	}
	if s.Player.Ducking {
		t.Error("ducking flag set mid-air")
	}
}

func TestDuckRefusedUnlessRunning(t *testing.T) {
	r := defaultRules()
	s := NewState(r)

	if s.Duck() {
		t.Error("duck accepted before the run started")
	}
}

func TestStepCollisionEndsRun(t *testing.T) {
	r := defaultRules()
	s := runningState(r)
	s.Score = 30
	// After this tick's scroll the cactus sits at x=95, inside the player.
	s.Obstacles = []Obstacle{groundObstacle(r, VariantBig, 100)}

	s, events := Step(s, r, alwaysAerial())

	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver", s.Phase)
	}
	if len(events) != 1 || events[0] != (Event{Kind: EventGameOver, Score: 30}) {
		t.Errorf("events = %+v, expected one GameOver(30)", events)
	}

	frozen := s.Clone()
	s, events = Step(s, r, alwaysAerial())
	if len(events) != 0 {
		t.Errorf("frozen run produced events %+v", events)
	}
	if s.Obstacles[0].Box != frozen.Obstacles[0].Box {
		t.Error("obstacles moved after game over")
	}
}

func TestStepScoreBeforeGameOver(t *testing.T) {
	r := defaultRules()
	s := runningState(r)
	s.Obstacles = []Obstacle{
		groundObstacle(r, VariantBig, -36), // leaves the field this tick
		groundObstacle(r, VariantBig, 100), // hits the player this tick
	}

	s, events := Step(s, r, alwaysAerial())

	if len(events) != 2 {
		t.Fatalf("events = %+v, expected two", events)
	}
	if events[0] != (Event{Kind: EventScoreChanged, Score: 10}) {
		t.Errorf("first event = %+v, expected ScoreChanged(10)", events[0])
	}
	if events[1] != (Event{Kind: EventGameOver, Score: 10}) {
		t.Errorf("second event = %+v, expected GameOver(10)", events[1])
	}
}

func TestStepDuckingRunClearsAerialObstacle(t *testing.T) {
	r := defaultRules()
	s := runningState(r)
	s.Duck()
	s.Obstacles = []Obstacle{aerialObstacle(r, r.FieldWidth)}
	rng := alwaysAerial()

	// Aerial width 35 at x=800: x+width first drops below zero on tick 168.
	var events []Event
	scored := 0
	for tick := 1; tick <= 168; tick++ {
		s, events = Step(s, r, rng)
		if s.Phase != PhaseRunning {
			t.Fatalf("tick %d: run ended while ducking under aerial obstacles", tick)
		}
		for _, ev := range events {
			if ev.Kind == EventScoreChanged {
				scored++
			}
		}
	}

	if scored != 1 || s.Score != 10 {
		t.Errorf("scored %d times, score %d; expected one award of 10", scored, s.Score)
	}
	// The spawner added one more aerial obstacle on tick 101.
	if len(s.Obstacles) != 1 {
		t.Errorf("obstacles = %d, expected 1", len(s.Obstacles))
	}
}

func TestResetFromGameOver(t *testing.T) {
	r := defaultRules()
	s := runningState(r)
	s.Phase = PhaseGameOver
	s.Score = 120
	s.SpawnTimer = 33
	s.Frame = 77
	s.JumpLatched = true
	s.Player.Ducking = true
	s.Obstacles = []Obstacle{groundObstacle(r, VariantBig, 300), aerialObstacle(r, 500)}

	s.Reset(r)

	if s.Phase != PhaseRunning {
		t.Errorf("phase = %v, expected Running", s.Phase)
	}
	if len(s.Obstacles) != 0 || s.Score != 0 || s.SpawnTimer != 0 || s.Frame != 0 {
		t.Errorf("state not cleared: obstacles=%d score=%d timer=%d frame=%d",
			len(s.Obstacles), s.Score, s.SpawnTimer, s.Frame)
	}
	if s.JumpLatched {
		t.Error("latch survived reset")
	}
	if s.Player != baselinePlayer(r) {
		t.Errorf("player = %+v, expected baseline", s.Player)
	}
}
