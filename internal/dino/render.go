package dino

import (
	"image"
	"image/color"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Surface is the drawing target of the renderer. Coordinates are field units;
// implementations scale them to whatever their output resolution is.
type Surface interface {
	Size() (width, height float64)
	Clear(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	DrawImage(img image.Image, x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Flat colors used when a sprite is unavailable.
var (
	PlayerColor   = color.RGBA{R: 0xff, G: 0x8d, B: 0xa1, A: 0xff}
	ObstacleColor = color.RGBA{R: 0x53, G: 0x53, B: 0x53, A: 0xff}
	GroundColor   = ObstacleColor
)

const groundLineWidth = 2

// Aerial fallback shape: a full-width body bar over a narrower lower bar.
const (
	aerialBodyHeight = 15
	aerialWingInset  = 5
	aerialWingHeight = 10
)

// Renderer draws engine state onto a Surface.
type Renderer struct {
	surface Surface
	rules   Rules
	images  map[string]image.Image
	settled bool // Every sprite load finished, successfully or not
}

// NewRenderer creates a renderer with no sprites; everything draws as flat shapes.
func NewRenderer(s Surface, r Rules) *Renderer {
	return &Renderer{
		surface: s,
		rules:   r,
		images:  make(map[string]image.Image),
	}
}

// Accept stores the successful results of a sprite batch.
func (rd *Renderer) Accept(results []assets.Result) {
	for _, res := range results {
		if res.Err == nil && res.Image != nil {
			rd.images[res.Key] = res.Image
		}
	}
}

// MarkSettled records that no more sprites will arrive.
func (rd *Renderer) MarkSettled() {
	rd.settled = true
}

// Settled reports whether sprite loading has finished.
func (rd *Renderer) Settled() bool {
	return rd.settled
}

// DrawBackground clears the surface and strokes the ground line.
func (rd *Renderer) DrawBackground() {
	w, h := rd.surface.Size()
	rd.surface.Clear(0, 0, w, h)
	rd.surface.StrokeLine(0, rd.rules.GroundY, w, rd.rules.GroundY, groundLineWidth, GroundColor)
}

// DrawPlayer draws the player pose for the current phase and animation frame.
// Until sprite loading settles the player is a flat standing rectangle.
func (rd *Renderer) DrawPlayer(s State) {
	p := s.Player
	if !rd.settled {
		rd.surface.FillRect(p.X, p.Y, rd.rules.PlayerWidth, rd.rules.PlayerHeight, PlayerColor)
		return
	}

	key, box := rd.pose(s)
	if img := rd.images[key]; img != nil {
		rd.surface.DrawImage(img, box.X, box.Y, box.W, box.H)
		return
	}
	rd.surface.FillRect(box.X, box.Y, box.W, box.H, PlayerColor)
}

// pose selects the sprite key and drawing box of the player.
// The two-frame pairs alternate every half period of the animation counter.
func (rd *Renderer) pose(s State) (string, core.Box) {
	p := s.Player
	standing := core.NewBox(p.X, p.Y, rd.rules.PlayerWidth, rd.rules.PlayerHeight)
	firstHalf := s.Frame%rd.rules.AnimPeriod < rd.rules.AnimPeriod/2

	switch {
	case s.Phase == PhaseNotStarted:
		return config.SpriteIdle, standing
	case p.Ducking:
		box := rd.rules.PlayerBox(p)
		if firstHalf {
			return config.SpriteDuckRight, box
		}
		return config.SpriteDuckLeft, box
	case p.Jumping:
		return config.SpriteRunRight, standing
	case firstHalf:
		return config.SpriteRunRight, standing
	default:
		return config.SpriteRunLeft, standing
	}
}

// DrawObstacles draws every obstacle, using its sprite when one has loaded.
func (rd *Renderer) DrawObstacles(obstacles []Obstacle) {
	for _, o := range obstacles {
		rd.drawObstacle(o)
	}
}

func (rd *Renderer) drawObstacle(o Obstacle) {
	b := o.Box
	if img := rd.images[obstacleSprite(o)]; img != nil {
		rd.surface.DrawImage(img, b.X, b.Y, b.W, b.H)
		return
	}

	if o.Kind == KindAerial {
		rd.surface.FillRect(b.X, b.Y, b.W, aerialBodyHeight, ObstacleColor)
		rd.surface.FillRect(b.X+aerialWingInset, b.Y+aerialBodyHeight, b.W-2*aerialWingInset, aerialWingHeight, ObstacleColor)
		return
	}
	rd.surface.FillRect(b.X, b.Y, b.W, b.H, ObstacleColor)
}

// obstacleSprite maps an obstacle to its sprite key.
func obstacleSprite(o Obstacle) string {
	if o.Kind == KindAerial {
		return config.SpriteBird
	}
	switch o.Variant {
	case VariantRound:
		return config.SpriteCactusRound
	case VariantSmall:
		return config.SpriteCactusSmall
	case VariantBigAndSmall:
		return config.SpriteCactusBigAndSmall
	default:
		return config.SpriteCactusBig
	}
}
