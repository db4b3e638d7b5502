package beautify

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/google/uuid"
)

// ExportState is a step of the export pipeline.
type ExportState int

const (
	ExportIdle ExportState = iota
	ExportLoading
	ExportSized
	ExportComposited
	ExportEncoded
	ExportDone
	ExportFailed
)

func (s ExportState) String() string {
	switch s {
	case ExportIdle:
		return "idle"
	case ExportLoading:
		return "loading"
	case ExportSized:
		return "sized"
	case ExportComposited:
		return "composited"
	case ExportEncoded:
		return "encoded"
	case ExportDone:
		return "done"
	case ExportFailed:
		return "failed"
	}
	return fmt.Sprintf("ExportState(%d)", int(s))
}

// EncodedBuffer is a finished export.
type EncodedBuffer struct {
	Format   Format
	MIMEType string
	Data     []byte
	Filename string
	Width    int // pixels
	Height   int
}

// Exporter bakes a style into a standalone image. It holds no per-export
// state and may be used from several goroutines at once.
type Exporter struct {
	cfg *config
}

// ExportRenderer is the Renderer name for Exporter.
type ExportRenderer = Exporter

// NewExporter returns an Exporter configured by opts.
func NewExporter(opts ...Option) (*Exporter, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Exporter{cfg: cfg}, nil
}

// ExportImage runs one export with default options.
func ExportImage(ctx context.Context, s StyleState, src *SourceImage) (*EncodedBuffer, error) {
	return (&Exporter{cfg: defaultConfig()}).Export(ctx, s, src)
}

// Render implements Renderer.
func (e *Exporter) Render(ctx context.Context, s StyleState, src *SourceImage) (*EncodedBuffer, error) {
	return e.Export(ctx, s, src)
}

// Export decodes src, composites it under s and encodes the result in
// s.Format. s and src are read once; later changes to either don't affect a
// running export.
func (e *Exporter) Export(ctx context.Context, s StyleState, src *SourceImage) (*EncodedBuffer, error) {
	start := e.cfg.now()
	logger := e.cfg.logger.With("request", uuid.New().String())

	state := ExportIdle
	move := func(to ExportState) {
		state = to
		logger.Debug("export", "state", to)
		if e.cfg.hook != nil {
			e.cfg.hook(to)
		}
	}
	fail := func(err error) (*EncodedBuffer, error) {
		logger.Error("export failed", "state", state, "err", err)
		move(ExportFailed)
		return nil, err
	}

	s = Sanitize(s)

	move(ExportLoading)
	if src == nil {
		return fail(newError(ErrCodeDecode, "no image to export"))
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	img, err := src.decode()
	if err != nil {
		return fail(err)
	}

	b := img.Bounds()
	scale := float64(clampInt(s.OutputScale, 1, e.cfg.maxScale))
	plan := compose(s, b.Dx(), b.Dy(), e.cfg.padding)
	px := plan.Scaled(scale)
	w, h := px.PixelSize()
	move(ExportSized)
	logger.Debug("canvas", "width", w, "height", h, "scale", scale)

	op := newOperation(w, h)
	op.SetRoutines(e.cfg.routines)
	record(op, plan, px, img, scale)
	out, err := op.Do(ctx)
	if err != nil {
		return fail(err)
	}
	move(ExportComposited)

	data, err := encode(out, s.Format, s.Quality)
	if err != nil {
		return fail(err)
	}
	move(ExportEncoded)

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	buf := &EncodedBuffer{
		Format:   s.Format,
		MIMEType: s.Format.MIMEType(),
		Data:     data,
		Filename: fmt.Sprintf("beautified-%d.%s", start.UnixMilli(), s.Format.Extension()),
		Width:    w,
		Height:   h,
	}
	move(ExportDone)
	logger.Info("exported",
		"format", buf.Format,
		"width", w,
		"height", h,
		"bytes", len(data),
		"elapsed", e.cfg.now().Sub(start).Round(time.Millisecond),
	)
	return buf, nil
}

// record queues the draw calls for plan. plan holds the logical values
// (filters act on source pixels); px is the same plan in canvas pixels.
func record(op Operation, plan, px Composition, img image.Image, scale float64) {
	op.SetFill(px.Fill.Pattern(px.CanvasW, px.CanvasH))
	op.FillCanvas()

	if !plan.Transform.degenerate() && plan.Opacity > 0 {
		pixels := applyOpacity(plan.Filters.Apply(img), plan.Opacity)
		op.Save()
		op.ClipRoundedRect(px.Frame, px.Radius)
		op.DrawImage(pixels, px.Frame, px.Transform, scale)
		op.Restore()
	}

	// a stroke twice the diagonal wide already covers the whole canvas
	border := math.Min(px.Border.Width, 2*math.Hypot(px.CanvasW, px.CanvasH))
	if border > 0 {
		op.StrokeRoundedRect(px.Frame, px.Radius, border, px.Border.Color)
	}

	// the shadow stays clear of the outer half of the border
	occluder := px.Frame.Inset(-border / 2)
	radius := px.Radius
	if border > 0 {
		radius += border / 2
	}
	for _, sh := range px.Shadows {
		if sh.Alpha <= 0 || sh.Color.A == 0 {
			continue
		}
		op.DrawShadow(occluder, math.Max(radius, 0), sh)
	}
}
