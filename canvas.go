package beautify

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center of the rectangle.
func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Scale multiplies position and size by k.
func (r Rect) Scale(k float64) Rect { return Rect{r.X * k, r.Y * k, r.W * k, r.H * k} }

// Offset moves the rectangle by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect { return Rect{r.X + dx, r.Y + dy, r.W, r.H} }

// Inset shrinks the rectangle by d on every side; negative d grows it.
func (r Rect) Inset(d float64) Rect { return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d} }

// Union is the smallest rectangle holding both.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := math.Min(r.X, o.X), math.Min(r.Y, o.Y)
	x1, y1 := math.Max(r.X+r.W, o.X+o.W), math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersect is the overlap of r and o. It has no area when they don't meet.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := math.Max(r.X, o.X), math.Max(r.Y, o.Y)
	x1, y1 := math.Min(r.X+r.W, o.X+o.W), math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{x0, y0, math.Max(x1-x0, 0), math.Max(y1-y0, 0)}
}

// Pixels is the smallest pixel rectangle covering r.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

func rectOf(p image.Rectangle) Rect {
	return Rect{float64(p.Min.X), float64(p.Min.Y), float64(p.Dx()), float64(p.Dy())}
}

func clampRadius(r Rect, radius float64) float64 {
	return math.Min(math.Max(radius, 0), math.Min(r.W, r.H)/2)
}

// fillShape fills the rounded rect r on dc. Geometry further than the
// corner radius beyond limit is trimmed off first, so nothing far outside
// the raster reaches the rasterizer's fixed-point range.
func fillShape(dc *gg.Context, r Rect, radius float64, limit Rect) {
	radius = clampRadius(r, radius)
	r = r.Intersect(limit.Inset(-2*radius - 2))
	if r.W <= 0 || r.H <= 0 {
		return
	}
	roundedRect(dc, r, radius)
	dc.Fill()
}

// roundedRect adds r to dc's path. The radius is clamped to half the
// shorter side, as CSS does, and a zero radius gives a plain rectangle.
func roundedRect(dc *gg.Context, r Rect, radius float64) {
	radius = clampRadius(r, radius)
	if radius <= 0 {
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		return
	}
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
}

// canvas wraps the offscreen gg.Context of one export. Nothing else holds a
// reference to it, so concurrent exports never share pixels.
//
// The clip is tracked here rather than left to gg: every save records the
// clip in effect and every restore puts it back explicitly.
type canvas struct {
	dc    *gg.Context
	clip  *image.Alpha   // nil means unclipped
	stack []*image.Alpha // clip at each open save
}

// newCanvas allocates a transparent w×h canvas.
func newCanvas(w, h int) *canvas {
	return &canvas{dc: gg.NewContext(w, h)}
}

// depth is the number of open saves.
func (c *canvas) depth() int { return len(c.stack) }

// save pushes the matrix, clip and paint state.
func (c *canvas) save() {
	c.dc.Push()
	c.stack = append(c.stack, c.clip)
}

// restore pops what the matching save pushed. Unbalanced calls are ignored.
func (c *canvas) restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.dc.Pop()
	c.setClip(c.stack[n-1])
	c.stack = c.stack[:n-1]
}

// restoreAll unwinds every open save.
func (c *canvas) restoreAll() {
	for c.depth() > 0 {
		c.restore()
	}
}

// clipRoundedRect intersects the clip with r, given in device pixels.
func (c *canvas) clipRoundedRect(r Rect, radius float64) {
	shape := gg.NewContext(c.Width(), c.Height())
	shape.SetColor(white)
	roundedRect(shape, r, radius)
	shape.Fill()
	m := shape.AsMask()
	if c.clip != nil {
		m = intersectMasks(c.clip, m)
	}
	c.setClip(m)
}

// resetClip removes the clip until the next restore.
func (c *canvas) resetClip() { c.setClip(nil) }

func (c *canvas) setClip(m *image.Alpha) {
	c.clip = m
	if m == nil {
		c.dc.ResetClip()
		return
	}
	// sizes always match: masks are built at canvas size
	_ = c.dc.SetMask(m)
}

// scoped runs fn between a save and a restore. The restore happens even if
// fn fails or panics; a panic is turned into an error.
func (c *canvas) scoped(fn func() error) (err error) {
	c.save()
	depth := c.depth()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw: %v", r)
		}
		for c.depth() >= depth {
			c.restore()
		}
	}()
	return fn()
}

// Image returns the backing pixels.
func (c *canvas) Image() image.Image { return c.dc.Image() }

// Width in pixels.
func (c *canvas) Width() int { return c.dc.Width() }

// Height in pixels.
func (c *canvas) Height() int { return c.dc.Height() }

// intersectMasks multiplies two same-sized masks.
func intersectMasks(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Bounds())
	for i := range out.Pix {
		out.Pix[i] = uint8(uint16(a.Pix[i]) * uint16(b.Pix[i]) / 255)
	}
	return out
}
