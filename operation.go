package beautify

import (
	"context"
	"image"
	"image/color"
	"math"
	"sync"
)

// deferedFuncID is the id of some function we will call on Do() call(s)
type deferedFuncID int

const (
	setFill deferedFuncID = iota
	fillCanvas
	save
	restore
	clipRoundedRect
	drawImage
	strokeRoundedRect
	drawShadow
)

var funcNames = map[deferedFuncID]string{
	setFill:           "setFill",
	fillCanvas:        "fillCanvas",
	save:              "save",
	restore:           "restore",
	clipRoundedRect:   "clipRoundedRect",
	drawImage:         "drawImage",
	strokeRoundedRect: "strokeRoundedRect",
	drawShadow:        "drawShadow",
}

func (d deferedFuncID) String() string { return funcNames[d] }

// deferredFunc is a function & arguments to be called on Do()
type deferredFunc struct {
	Func deferedFuncID
	Args []interface{}
}

// newDefFunc returns a deferredFunc struct
func newDefFunc(id deferedFuncID, args ...interface{}) *deferredFunc {
	return &deferredFunc{Func: id, Args: args}
}

// shadowJob is a shadow layer rendered ahead of the replay.
type shadowJob struct {
	tile   *image.NRGBA
	origin image.Point
}

// operation is the queue of draw calls for one export canvas.
type operation struct {
	width, height int
	queue         []*deferredFunc

	minX         float64
	minY         float64
	maxX         float64
	maxY         float64
	maxlineWidth float64

	routines int
}

// newOperation returns a new empty operation for a w×h pixel canvas.
func newOperation(w, h int) *operation {
	return &operation{
		width:    w,
		height:   h,
		queue:    []*deferredFunc{},
		minX:     float64(w) + 1,
		minY:     float64(h) + 1,
		routines: 2,
	}
}

// Names lists the recorded calls in order.
func (o *operation) Names() []string {
	out := make([]string, len(o.queue))
	for i, q := range o.queue {
		out[i] = q.Func.String()
	}
	return out
}

// Bounds returns the area touched so far.
func (o *operation) Bounds() image.Rectangle {
	if o.maxX < o.minX || o.maxY < o.minY {
		return image.Rectangle{}
	}
	w, h := float64(o.width), float64(o.height)
	return image.Rect(
		int(math.Floor(clamp(o.minX-o.maxlineWidth, 0, w))),
		int(math.Floor(clamp(o.minY-o.maxlineWidth, 0, h))),
		int(math.Ceil(clamp(o.maxX+o.maxlineWidth, 0, w))),
		int(math.Ceil(clamp(o.maxY+o.maxlineWidth, 0, h))),
	)
}

// Do replays the queue onto a new canvas.
func (o *operation) Do(ctx context.Context) (image.Image, error) {
	shadows, err := o.renderShadows(ctx)
	if err != nil {
		return nil, err
	}

	c := newCanvas(o.width, o.height)
	defer c.restoreAll()

	for i, action := range o.queue {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := o.apply(c, i, action, shadows); err != nil {
			return nil, err
		}
	}
	c.restoreAll()
	return c.Image(), nil
}

// renderShadows builds every shadow tile up front; they don't depend on the
// canvas so they fan out across routines.
func (o *operation) renderShadows(ctx context.Context) (map[int]shadowJob, error) {
	work := make(chan int)
	go func() {
		defer close(work)
		for i, action := range o.queue {
			if action.Func == drawShadow {
				work <- i
			}
		}
	}()

	// tiles are cut to the touched area, which never exceeds the canvas
	area := o.Bounds()
	out := map[int]shadowJob{}
	lock := &sync.Mutex{}
	errs := make(chan error)
	wg := &sync.WaitGroup{}

	for i := 0; i < o.routines; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for idx := range work {
				if err := ctx.Err(); err != nil {
					errs <- err
					continue
				}
				args := o.queue[idx].Args
				tile, origin := shadowTile(args[0].(Rect), args[1].(float64), args[2].(Shadow), area)
				lock.Lock()
				out[idx] = shadowJob{tile: tile, origin: origin}
				lock.Unlock()
			}
		}()
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	return out, checkErrors(errs)
}

// apply one recorded call to the canvas.
func (o *operation) apply(c *canvas, idx int, action *deferredFunc, shadows map[int]shadowJob) error {
	dc := c.dc
	switch action.Func {
	case setFill:
		dc.SetFillStyle(action.Args[0].(Pattern))
	case fillCanvas:
		dc.DrawRectangle(0, 0, float64(o.width), float64(o.height))
		dc.Fill()
	case save:
		c.save()
	case restore:
		c.restore()
	case clipRoundedRect:
		c.clipRoundedRect(action.Args[0].(Rect), action.Args[1].(float64))
	case drawImage:
		img := action.Args[0].(image.Image)
		r := action.Args[1].(Rect)
		t := action.Args[2].(TransformChain)
		k := action.Args[3].(float64)
		return c.scoped(func() error {
			b := img.Bounds()
			cx, cy := r.Center()
			dc.Translate(cx, cy)
			t.apply(dc)
			dc.Scale(k, k)
			dc.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
			dc.DrawImage(img, -b.Min.X, -b.Min.Y)
			return nil
		})
	case strokeRoundedRect:
		return c.scoped(func() error {
			dc.SetColor(action.Args[3].(color.Color))
			dc.SetLineWidth(action.Args[2].(float64))
			roundedRect(dc, action.Args[0].(Rect), action.Args[1].(float64))
			dc.Stroke()
			return nil
		})
	case drawShadow:
		job := shadows[idx]
		if job.tile == nil {
			return nil
		}
		return c.scoped(func() error {
			c.resetClip()
			dc.Identity()
			dc.DrawImage(job.tile, job.origin.X, job.origin.Y)
			return nil
		})
	}
	return nil
}

// SetRoutines that will be used for this operation
func (o *operation) SetRoutines(i int) {
	if i < 1 {
		i = 1
	}
	o.routines = i
}

// SetFill sets the paint used by FillCanvas.
func (o *operation) SetFill(p Pattern) {
	o.queue = append(o.queue, newDefFunc(setFill, p))
}

// FillCanvas paints the whole canvas with the current fill.
func (o *operation) FillCanvas() {
	o.minMax(0, 0)
	o.minMax(float64(o.width), float64(o.height))
	o.queue = append(o.queue, newDefFunc(fillCanvas))
}

// Save pushes the clip and matrix.
func (o *operation) Save() {
	o.queue = append(o.queue, newDefFunc(save))
}

// Restore pops what the last Save pushed.
func (o *operation) Restore() {
	o.queue = append(o.queue, newDefFunc(restore))
}

// ClipRoundedRect intersects the clip with a rounded rectangle.
func (o *operation) ClipRoundedRect(r Rect, radius float64) {
	o.queue = append(o.queue, newDefFunc(clipRoundedRect, r, radius))
}

// DrawImage queues img for drawing about r's center.
func (o *operation) DrawImage(img image.Image, r Rect, t TransformChain, k float64) {
	b := img.Bounds()
	cx, cy := r.Center()
	// a rotated image fits in the circle through its corners
	half := math.Hypot(float64(b.Dx()), float64(b.Dy())) / 2 * math.Abs(k*t.Scale())
	o.minMax(cx-half, cy-half)
	o.minMax(cx+half, cy+half)
	o.queue = append(o.queue, newDefFunc(drawImage, img, r, t, k))
}

// StrokeRoundedRect outlines r with a line of the given width and color.
func (o *operation) StrokeRoundedRect(r Rect, radius, width float64, c color.Color) {
	o.maxlineWidth = math.Max(o.maxlineWidth, width/2)
	o.minMax(r.X, r.Y)
	o.minMax(r.X+r.W, r.Y+r.H)
	o.queue = append(o.queue, newDefFunc(strokeRoundedRect, r, radius, width, c))
}

// DrawShadow queues one shadow layer for r.
func (o *operation) DrawShadow(r Rect, radius float64, sh Shadow) {
	reach := math.Ceil(3*sh.Blur/2) + 1
	b := r.Union(r.Offset(sh.OffsetX, sh.OffsetY)).Inset(-reach)
	o.minMax(b.X, b.Y)
	o.minMax(b.X+b.W, b.Y+b.H)
	o.queue = append(o.queue, newDefFunc(drawShadow, r, radius, sh))
}

// minMax sets internal min & max x & y values
func (o *operation) minMax(x, y float64) {
	o.minX = math.Min(o.minX, x)
	o.maxX = math.Max(o.maxX, x)
	o.minY = math.Min(o.minY, y)
	o.maxY = math.Max(o.maxY, y)
}
