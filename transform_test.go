package beautify

import "testing"

func TestTransformChain(t *testing.T) {
	s := DefaultStyle()
	s.RotationDeg = 90
	s.ScalePct = 50
	c := NewTransformChain(s)

	if got, want := c.CSS(), "rotate(90deg) scale(0.5)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got := c.Scale(); got != 0.5 {
		t.Errorf("Scale() = %v, want 0.5", got)
	}
	if c.degenerate() {
		t.Error("degenerate() = true, want false")
	}

	s.ScalePct = 0
	if !NewTransformChain(s).degenerate() {
		t.Error("zero scale not degenerate")
	}
}
