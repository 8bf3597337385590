package homados

import (
	"fmt"
	"math"

	"github.com/homados/homados-go/internal/generator"
	"github.com/homados/homados-go/internal/window"
)

// Sink receives quantised mono codes in sample order, one call per sample.
// Spreading a code across channels is the sink's job.
type Sink interface {
	WriteSample(code int) error
}

// Stats summarises a finished render.
type Stats struct {
	Samples int
	Clipped int // samples hard limited to full scale
	Peak    int // largest code magnitude written
}

// RandSource replaces the noise generators' random primitive.
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	NormFloat64() float64
}

type RenderOption func(*renderOptions)

type renderOptions struct {
	genOpts []generator.Option
}

// WithRandSource makes noise output reproducible.
func WithRandSource(src RandSource) RenderOption {
	return func(o *renderOptions) {
		o.genOpts = append(o.genOpts, generator.WithSource(src))
	}
}

// Quantize hard limits v to +/-full and rounds it to the nearest code. The
// second result reports whether the limiter engaged. NaN maps to code 0.
func Quantize(v, full float64) (int, bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	clipped := false
	if math.Abs(v) > full {
		v = math.Copysign(full, v)
		clipped = true
	}
	return int(math.Round(v)), clipped
}

// Render validates spec, then evaluates generator and window once per sample
// and writes each quantised code to sink. The generator state lives only for
// this call.
func Render(spec RenderSpec, sink Sink, opts ...RenderOption) (Stats, error) {
	if err := Validate(spec); err != nil {
		return Stats{}, err
	}
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	gen, err := generator.New(spec.Sound, spec.Params, spec.TotalSamples, o.genOpts...)
	if err != nil {
		return Stats{}, classify(err)
	}
	win, err := window.New(spec.Window, spec.WindowCurve, spec.TotalSamples)
	if err != nil {
		return Stats{}, classify(err)
	}
	full := spec.Format.FullScale()

	var st Stats
	for t := 0; t < spec.TotalSamples; t++ {
		raw := gen.Sample(t)
		env := win.Gain(t)
		code, clipped := Quantize(spec.Gain*env*raw*full, full)
		if clipped {
			st.Clipped++
		}
		if a := abs(code); a > st.Peak {
			st.Peak = a
		}
		if err := sink.WriteSample(code); err != nil {
			return st, fmt.Errorf("write sample %d: %w", t, err)
		}
		st.Samples++
	}
	return st, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Tee forwards every code to each sink in turn.
type Tee []Sink

func (t Tee) WriteSample(code int) error {
	for _, s := range t {
		if err := s.WriteSample(code); err != nil {
			return err
		}
	}
	return nil
}

// CodeBuffer is an in-memory Sink.
type CodeBuffer struct {
	Codes []int
}

func (b *CodeBuffer) WriteSample(code int) error {
	b.Codes = append(b.Codes, code)
	return nil
}

// Float32 returns the codes normalised by full.
func (b *CodeBuffer) Float32(full float64) []float32 {
	out := make([]float32, len(b.Codes))
	for i, c := range b.Codes {
		out[i] = float32(float64(c) / full)
	}
	return out
}

// RenderSamples renders spec into memory and returns the codes normalised to
// [-1, 1].
func RenderSamples(spec RenderSpec, opts ...RenderOption) ([]float32, Stats, error) {
	buf := &CodeBuffer{Codes: make([]int, 0, max(spec.TotalSamples, 0))}
	st, err := Render(spec, buf, opts...)
	if err != nil {
		return nil, st, err
	}
	return buf.Float32(spec.Format.FullScale()), st, nil
}
