package homados

import (
	"fmt"
	"math"

	"github.com/homados/homados-go/internal/generator"
	"github.com/homados/homados-go/internal/window"
)

// GeneratorParams configures the waveform of a render.
type GeneratorParams = generator.Params

// Format describes the output stream handed to a Sink.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// FullScale is the largest code magnitude at this bit depth, 2^(bits-1)-1.
// It is both the quantisation scale and the clip limit.
func (f Format) FullScale() float64 {
	return math.Pow(2, float64(f.BitDepth)-1) - 1
}

func (f Format) validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidFormat, f.SampleRate)
	}
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d not one of 8, 16, 24, 32", ErrInvalidFormat, f.BitDepth)
	}
	if f.Channels < 1 || f.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidFormat, f.Channels)
	}
	return nil
}

// RenderSpec is the immutable, sample based description of one render.
type RenderSpec struct {
	Format       Format
	TotalSamples int
	Sound        string
	Window       string
	WindowCurve  float64
	Gain         float64
	Params       GeneratorParams
}

// Validate checks every name and parameter of spec without rendering, so a
// bad configuration is rejected before any output exists.
func Validate(spec RenderSpec) error {
	if err := spec.Format.validate(); err != nil {
		return err
	}
	if spec.TotalSamples < 0 {
		return fmt.Errorf("%w: total samples %d", ErrInvalidDomainParameter, spec.TotalSamples)
	}
	if math.IsNaN(spec.Gain) || math.IsInf(spec.Gain, 0) {
		return fmt.Errorf("%w: gain %v must be finite", ErrInvalidDomainParameter, spec.Gain)
	}
	if spec.Params.SampleRate != float64(spec.Format.SampleRate) {
		return fmt.Errorf("%w: generator sample rate %v differs from format %d",
			ErrInvalidDomainParameter, spec.Params.SampleRate, spec.Format.SampleRate)
	}
	kind, err := generator.Lookup(spec.Sound)
	if err != nil {
		return classify(err)
	}
	shape, err := window.Lookup(spec.Window)
	if err != nil {
		return classify(err)
	}
	if err := generator.Validate(kind, spec.Params); err != nil {
		return classify(err)
	}
	return classify(window.Validate(shape, spec.WindowCurve))
}

// SoundNames lists every accepted sound type.
func SoundNames() []string { return generator.Names() }

// SoundGroups lists the accepted names of each sound type, one group per
// type with the canonical name first.
func SoundGroups() [][]string {
	kinds := generator.Kinds()
	out := make([][]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Aliases()
	}
	return out
}

// WindowNames lists every accepted window type.
func WindowNames() []string { return window.Names() }
