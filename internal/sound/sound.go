// Package sound plays short synthesized cues for score milestones and game over.
// Audio is optional: every method is a safe no-op until Init succeeds.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// MilestoneStep is the score interval that triggers a milestone cue.
const MilestoneStep = 100

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastScore   int

	// Guard mixer access against the speaker goroutine once it is running.
	lock   func()
	unlock func()
}

// New creates a player that stays silent until Init.
func New() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

// Init opens the audio device. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.initialized = true
	return nil
}

// Close silences every queued cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.initialized = false
}

// OnScore plays the milestone cue when score crosses a multiple of
// MilestoneStep. A score lower than the previous one marks a new run.
func (p *Player) OnScore(score int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	crossed := crossedMilestone(p.lastScore, score)
	p.lastScore = score
	if crossed {
		p.play(milestoneCue())
	}
}

// OnGameOver plays the game over cue.
func (p *Player) OnGameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.play(gameOverCue())
}

func (p *Player) play(s beep.Streamer) {
	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// crossedMilestone reports whether going from prev to score passed a multiple of MilestoneStep.
func crossedMilestone(prev, score int) bool {
	if score <= prev {
		return false
	}
	return score/MilestoneStep > prev/MilestoneStep
}

// milestoneCue is two short rising notes.
func milestoneCue() beep.Streamer {
	return beep.Seq(
		newTone(880, 70*time.Millisecond),
		newTone(1320, 110*time.Millisecond),
	)
}

// gameOverCue is a low falling pair.
func gameOverCue() beep.Streamer {
	return beep.Seq(
		newTone(330, 120*time.Millisecond),
		newTone(220, 220*time.Millisecond),
	)
}

// tone is a sine wave with a linear fade at both ends to avoid clicks.
type tone struct {
	freq  float64
	pos   int
	total int
	fade  int
}

const toneVolume = 0.25

func newTone(freq float64, d time.Duration) *tone {
	total := sampleRate.N(d)
	return &tone{
		freq:  freq,
		total: total,
		fade:  min(sampleRate.N(5*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		vol := toneVolume
		if t.fade > 0 {
			if t.pos < t.fade {
				vol *= float64(t.pos) / float64(t.fade)
			} else if rem := t.total - t.pos; rem < t.fade {
				vol *= float64(rem) / float64(t.fade)
			}
		}

		v := vol * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(sampleRate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
