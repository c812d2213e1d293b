// Package canvas draws engine frames into a terminal cell buffer.
//
// Canvas implements dino.Surface on top of core.Screen. Field coordinates are
// scaled to cells, and every RGBA color is snapped to the nearest entry of the
// terminal palette.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Glyphs used for the different primitives.
const (
	FillRune  = '█'
	HLineRune = '─'
	VLineRune = '│'
	DotRune   = '•'
)

// minAlpha is the alpha below which a sprite pixel counts as transparent.
const minAlpha = 0x8000

// Canvas is a scaled drawing surface over a screen buffer.
type Canvas struct {
	screen *core.Screen

	// Scaling from logical to cell coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	palette []paletteEntry
	cache   map[color.RGBA]core.Color
}

type paletteEntry struct {
	color core.Color
	lab   colorful.Color
}

// New creates a canvas mapping a logicalWidth x logicalHeight field onto screen.
func New(screen *core.Screen, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		screen:        screen,
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		cache:         make(map[color.RGBA]core.Color),
	}
	for _, pc := range core.Palette() {
		cf, err := colorful.Hex(pc.Hex())
		if err != nil {
			continue
		}
		c.palette = append(c.palette, paletteEntry{color: pc, lab: cf})
	}
	c.rescale()
	return c
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the cell resolution while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.rescale()
}

func (c *Canvas) rescale() {
	c.scaleX = float64(c.screen.Width()) / c.logicalWidth
	c.scaleY = float64(c.screen.Height()) / c.logicalHeight
}

// Size returns the logical size of the canvas.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// Clear blanks the cells covering a logical rectangle.
func (c *Canvas) Clear(x, y, w, h float64) {
	c.screen.ClearRect(c.cellRect(x, y, w, h))
}

// FillRect fills the cells covering a logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.screen.FillRect(c.cellRect(x, y, w, h), FillRune, c.Quantize(col))
}

// DrawImage stretches img over a logical rectangle. Each cell samples the
// image pixel under its center; transparent pixels leave the cell untouched.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	r := c.cellRect(x, y, w, h)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()

	for cy := r.Y; cy < r.Bottom(); cy++ {
		py := b.Min.Y + int((float64(cy-r.Y)+0.5)*float64(b.Dy())/float64(r.H))
		for cx := r.X; cx < r.Right(); cx++ {
			px := b.Min.X + int((float64(cx-r.X)+0.5)*float64(b.Dx())/float64(r.W))
			pixel := img.At(px, py)
			if _, _, _, a := pixel.RGBA(); a < minAlpha {
				continue
			}
			c.screen.SetCell(cx, cy, FillRune, c.Quantize(pixel))
		}
	}
}

// StrokeLine draws a line one cell thick. The logical width is ignored since
// a cell is already thicker than any line the engine draws.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col color.Color) {
	cc := c.Quantize(col)
	cx0, cy0 := c.toCell(x0, y0)
	cx1, cy1 := c.toCell(x1, y1)

	switch {
	case cy0 == cy1:
		if cx1 < cx0 {
			cx0, cx1 = cx1, cx0
		}
		c.screen.DrawHLine(cx0, cy0, cx1-cx0, HLineRune, cc)
	case cx0 == cx1:
		if cy1 < cy0 {
			cy0, cy1 = cy1, cy0
		}
		for cy := cy0; cy < cy1; cy++ {
			c.screen.SetCell(cx0, cy, VLineRune, cc)
		}
	default:
		c.bresenham(cx0, cy0, cx1, cy1, cc)
	}
}

// bresenham plots a diagonal line in cell space.
func (c *Canvas) bresenham(x0, y0, x1, y1 int, cc core.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.screen.SetCell(x0, y0, DotRune, cc)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toCell maps a logical point to a cell, clamped into the screen so that a
// line on the field's bottom edge stays visible.
func (c *Canvas) toCell(x, y float64) (int, int) {
	cx := core.Clamp(int(math.Round(x*c.scaleX)), 0, c.screen.Width())
	cy := core.Clamp(int(math.Floor(y*c.scaleY)), 0, c.screen.Height()-1)
	return cx, cy
}

// cellRect maps a logical rectangle to the cells it covers. A non-empty
// rectangle always covers at least one cell.
func (c *Canvas) cellRect(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	if w > 0 && x1 == x0 {
		x1++
	}
	if h > 0 && y1 == y0 {
		y1++
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Quantize returns the palette color closest to col in CIE Lab space.
// Fully transparent colors map to the terminal default.
func (c *Canvas) Quantize(col color.Color) core.Color {
	key := color.RGBAModel.Convert(col).(color.RGBA)
	if cc, ok := c.cache[key]; ok {
		return cc
	}

	target, ok := colorful.MakeColor(col)
	if !ok {
		return core.ColorDefault
	}

	best := core.ColorDefault
	bestDist := math.Inf(1)
	for _, p := range c.palette {
		if d := target.DistanceLab(p.lab); d < bestDist {
			best, bestDist = p.color, d
		}
	}
	c.cache[key] = best
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
