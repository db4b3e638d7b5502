package beautify

import "testing"

func TestCompose(t *testing.T) {
	c := Compose(DefaultStyle(), 400, 300)

	if c.CanvasW != 600 || c.CanvasH != 500 {
		t.Errorf("canvas = %vx%v, want 600x500", c.CanvasW, c.CanvasH)
	}
	if want := (Rect{X: 100, Y: 100, W: 400, H: 300}); c.Frame != want {
		t.Errorf("Frame = %+v, want %+v", c.Frame, want)
	}
	if c.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", c.Opacity)
	}
	if len(c.Shadows) != 1 {
		t.Errorf("len(Shadows) = %d, want 1", len(c.Shadows))
	}
}

func TestCompositionScaled(t *testing.T) {
	s := DefaultStyle()
	s.BlurPx = 2
	s.BrightnessPct = 120
	s.BorderWidth = 3
	c := Compose(s, 100, 100).Scaled(2)

	if c.CanvasW != 600 {
		t.Errorf("CanvasW = %v, want 600", c.CanvasW)
	}
	if c.Frame.X != 200 || c.Frame.W != 200 {
		t.Errorf("Frame = %+v, want X=200 W=200", c.Frame)
	}
	if c.Radius != 40 || c.Border.Width != 6 {
		t.Errorf("Radius, Border = %v, %v; want 40, 6", c.Radius, c.Border.Width)
	}
	if c.Shadows[0].Blur != 100 {
		t.Errorf("shadow blur = %v, want 100", c.Shadows[0].Blur)
	}
	for _, f := range c.Filters {
		switch f.Kind {
		case FilterBlur:
			if f.Amount != 4 {
				t.Errorf("blur = %v, want 4", f.Amount)
			}
		case FilterBrightness:
			if f.Amount != 1.2 {
				t.Errorf("brightness = %v, want 1.2 (unscaled)", f.Amount)
			}
		}
	}
	if c.Transform.Scale() != 1 {
		t.Errorf("transform scale = %v, want 1", c.Transform.Scale())
	}
}

func TestComposeDoesNotAlias(t *testing.T) {
	c := Compose(DefaultStyle(), 10, 10)
	scaled := c.Scaled(3)
	scaled.Shadows[0].Blur = -1
	scaled.Filters[0].Amount = -1

	if c.Shadows[0].Blur == -1 || c.Filters[0].Amount == -1 {
		t.Error("Scaled() shares slices with its receiver")
	}
}
