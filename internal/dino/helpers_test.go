package dino

import (
	"image"
	"image/color"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// drawCall is one recorded Surface operation.
type drawCall struct {
	op         string
	x, y, w, h float64
	c          color.Color
	img        image.Image
}

// recordingSurface records every draw call of the current frame.
type recordingSurface struct {
	width, height float64
	calls         []drawCall
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 800, height: 200}
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) Clear(x, y, w, h float64) {
	// A full clear starts a new frame.
	s.calls = s.calls[:0]
	s.calls = append(s.calls, drawCall{op: "clear", x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "fill", x: x, y: y, w: w, h: h, c: c})
}

func (s *recordingSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{op: "image", x: x, y: y, w: w, h: h, img: img})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.calls = append(s.calls, drawCall{op: "line", x: x0, y: y0, w: x1 - x0, h: width, c: c})
}

// ops returns the calls with the given op.
func (s *recordingSurface) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// stubImages is an ImageSource that settles on its first poll.
type stubImages struct {
	results []assets.Result
	polled  bool
}

func (s *stubImages) Poll() ([]assets.Result, bool) {
	if s.polled {
		return nil, true
	}
	s.polled = true
	return s.results, true
}

// pendingImages never settles.
type pendingImages struct{}

func (pendingImages) Poll() ([]assets.Result, bool) { return nil, false }

// scriptedSpawner replays fixed random values, cycling when exhausted.
type scriptedSpawner struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSpawner) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSpawner) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

// alwaysAerial spawns only aerial obstacles.
func alwaysAerial() *scriptedSpawner {
	return &scriptedSpawner{floats: []float64{0}, ints: []int{0}}
}

// alwaysGround spawns only ground obstacles of the given variant.
func alwaysGround(v GroundVariant) *scriptedSpawner {
	return &scriptedSpawner{floats: []float64{0.99}, ints: []int{int(v)}}
}

func defaultRules() Rules {
	return NewRules(config.DefaultDinoConfig())
}

func runningState(r Rules) State {
	s := NewState(r)
	s.Reset(r)
	return s
}

func groundObstacle(r Rules, v GroundVariant, x float64) Obstacle {
	size := r.GroundSize(v)
	return Obstacle{
		Kind:    KindGround,
		Variant: v,
		Box:     core.NewBox(x, r.GroundY-size.Height, size.Width, size.Height),
	}
}

func aerialObstacle(r Rules, x float64) Obstacle {
	return Obstacle{
		Kind: KindAerial,
		Box:  core.NewBox(x, r.GroundY-r.AerialOffset, r.aerialSize.Width, r.aerialSize.Height),
	}
}

// solidImage returns a distinct image per call so tests can compare identity.
func solidImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
