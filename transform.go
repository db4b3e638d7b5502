package beautify

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// TransformKind is one stage of the image transform chain.
type TransformKind int

const (
	TransformRotate TransformKind = iota
	TransformScale
)

// Transform is a single stage: degrees for rotate, a factor for scale.
type Transform struct {
	Kind  TransformKind
	Value float64
}

// TransformChain applies rotate then scale about the image center.
type TransformChain []Transform

// NewTransformChain builds the chain from s. The order is fixed.
func NewTransformChain(s StyleState) TransformChain {
	return TransformChain{
		{Kind: TransformRotate, Value: s.RotationDeg},
		{Kind: TransformScale, Value: s.ScalePct / 100},
	}
}

// CSS renders the chain as a CSS transform value.
func (c TransformChain) CSS() string {
	parts := make([]string, 0, len(c))
	for _, t := range c {
		switch t.Kind {
		case TransformRotate:
			parts = append(parts, fmt.Sprintf("rotate(%sdeg)", num(t.Value)))
		case TransformScale:
			parts = append(parts, fmt.Sprintf("scale(%s)", num(t.Value)))
		}
	}
	return strings.Join(parts, " ")
}

// Scale is the product of every scale stage.
func (c TransformChain) Scale() float64 {
	k := 1.0
	for _, t := range c {
		if t.Kind == TransformScale {
			k *= t.Value
		}
	}
	return k
}

// apply multiplies the stages onto dc's current matrix in chain order, the
// way CSS composes a transform list: the last stage is applied to the
// drawing first.
func (c TransformChain) apply(dc *gg.Context) {
	for _, t := range c {
		switch t.Kind {
		case TransformRotate:
			dc.Rotate(gg.Radians(t.Value))
		case TransformScale:
			dc.Scale(t.Value, t.Value)
		}
	}
}

// degenerate reports whether the chain collapses the image to nothing.
func (c TransformChain) degenerate() bool {
	k := c.Scale()
	return k <= 0 || math.IsNaN(k) || math.IsInf(k, 0)
}
