package beautify

import (
	"context"
	"image"
	"image/color"
	"reflect"
	"testing"
)

func recorded(s StyleState) *operation {
	plan := Compose(s, 100, 100)
	px := plan.Scaled(1)
	w, h := px.PixelSize()
	op := newOperation(w, h)
	record(op, plan, px, solid(100, 100, red), 1)
	return op
}

func TestRecordOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StyleState)
		want   []string
	}{
		{
			name:   "defaults",
			mutate: func(*StyleState) {},
			want:   []string{"setFill", "fillCanvas", "save", "clipRoundedRect", "drawImage", "restore", "drawShadow"},
		},
		{
			name:   "frame and no shadow",
			mutate: func(s *StyleState) { *s = ApplyFramePreset(*s, "modern"); s.ShadowIntensity = 0 },
			want:   []string{"setFill", "fillCanvas", "save", "clipRoundedRect", "drawImage", "restore", "strokeRoundedRect"},
		},
		{
			name:   "invisible image",
			mutate: func(s *StyleState) { s.OpacityPct = 0; s.ShadowIntensity = 0 },
			want:   []string{"setFill", "fillCanvas"},
		},
		{
			name:   "transparent shadow color skipped",
			mutate: func(s *StyleState) { s.ShadowIntensity = 0; s.ShadowOffsetX = 3; s.ShadowColor = "transparent" },
			want:   []string{"setFill", "fillCanvas", "save", "clipRoundedRect", "drawImage", "restore"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			if got := recorded(s).Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperationBounds(t *testing.T) {
	op := newOperation(100, 100)
	if got := op.Bounds(); !got.Empty() {
		t.Errorf("empty Bounds() = %v, want empty", got)
	}

	op.StrokeRoundedRect(Rect{10, 10, 20, 20}, 0, 4, color.Black)
	if got, want := op.Bounds(), image.Rect(8, 8, 32, 32); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	op.FillCanvas()
	if got, want := op.Bounds(), image.Rect(0, 0, 100, 100); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestOperationBoundsExtreme(t *testing.T) {
	op := newOperation(100, 100)
	op.DrawShadow(Rect{10, 10, 20, 20}, 0, Shadow{OffsetX: 1e300, OffsetY: -1e300, Blur: 1e300})
	if got, want := op.Bounds(), image.Rect(0, 0, 100, 100); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	far := newOperation(100, 100)
	far.StrokeRoundedRect(Rect{500, 500, 10, 10}, 0, 1, color.Black)
	if got := far.Bounds(); !got.Empty() {
		t.Errorf("off-canvas Bounds() = %v, want empty", got)
	}
}

func TestOperationDoUnwindsSaves(t *testing.T) {
	op := newOperation(20, 20)
	op.Save()
	op.ClipRoundedRect(Rect{0, 0, 5, 5}, 0)
	op.Save()

	img, err := op.Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Errorf("width = %d, want 20", img.Bounds().Dx())
	}
}

func TestOperationDoFresh(t *testing.T) {
	op := recorded(DefaultStyle())
	a, err := op.Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	b, err := op.Do(context.Background())
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if a == b {
		t.Error("Do() reused its canvas")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Do() output differs between runs")
	}
}

func TestOperationDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := recorded(DefaultStyle())
	op.SetRoutines(3)
	if _, err := op.Do(ctx); err != context.Canceled {
		t.Errorf("Do() error = %v, want %v", err, context.Canceled)
	}
}
