// Package window holds the gain envelopes applied over a whole render.
//
// Every curve is evaluated against d = totalSamples - 1 so that sample 0
// lands on the curve's starting endpoint and the last sample on its final
// endpoint.
package window

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCurve marks a non-finite curve parameter.
var ErrInvalidCurve = errors.New("invalid window curve")

// Window is a resolved shape bound to a render length and curve parameter.
type Window struct {
	curve Curve
	k     float64
	d     float64
}

// New resolves name for a render of totalSamples samples.
func New(name string, k float64, totalSamples int) (*Window, error) {
	shape, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewShape(shape, k, totalSamples), nil
}

// NewShape is New for an already resolved Shape.
func NewShape(shape Shape, k float64, totalSamples int) *Window {
	w := &Window{
		k: k,
		d: float64(totalSamples) - 1,
	}
	if shape.Family != Flat {
		w.curve = curves[shape.Family][shape.Direction]
	}
	return w
}

// Gain returns the envelope value at sample t.
func (w *Window) Gain(t int) float64 {
	if w.curve == nil {
		return 1
	}
	return w.curve(w.d, float64(t), w.k)
}

// Eval is the stateless form of Window.Gain: the gain of shape at sample x
// of a fade lasting d samples.
func Eval(shape Shape, k, d, x float64) float64 {
	if shape.Family == Flat {
		return 1
	}
	return curves[shape.Family][shape.Direction](d, x, k)
}

// Validate checks the curve parameter for shapes that use one.
func Validate(shape Shape, k float64) error {
	if shape.Family < 0 || shape.Family >= numFamilies || shape.Direction < 0 || shape.Direction >= numDirections {
		return fmt.Errorf("%w: %v", ErrUnknownName, shape)
	}
	if shape.UsesCurve() && (math.IsNaN(k) || math.IsInf(k, 0)) {
		return fmt.Errorf("%w: %s needs a finite curve, got %v", ErrInvalidCurve, shape, k)
	}
	if shape.Family == Exp3 && k == 0 {
		return fmt.Errorf("%w: %s is undefined for curve 0", ErrInvalidCurve, shape)
	}
	return nil
}
