package beautify

import (
	"context"
	"image"
	"image/color"
)

// Operation records the draw calls of one export. Nothing touches pixels
// until Do is called.
type Operation interface {
	SetFill(p Pattern)
	FillCanvas()

	Save()
	Restore()
	ClipRoundedRect(r Rect, radius float64)

	// DrawImage draws img centered on r's center after applying t, then
	// scaling by k. The current clip applies.
	DrawImage(img image.Image, r Rect, t TransformChain, k float64)

	StrokeRoundedRect(r Rect, radius, width float64, c color.Color)

	// DrawShadow paints one shadow layer outside the rounded rect r, with no
	// clip and no transform.
	DrawShadow(r Rect, radius float64, sh Shadow)

	// Bounds is the area touched by the recorded calls, clamped to the canvas.
	// Do renders shadow layers only within it.
	Bounds() image.Rectangle

	// Do replays every recorded call, in order, on a fresh canvas and
	// returns its pixels. Saves left open by the recording are unwound, so
	// clip and matrix state never leak out of a scope.
	Do(ctx context.Context) (image.Image, error)

	// SetRoutines sets how many shadow layers are rendered concurrently.
	SetRoutines(i int)
}
