package homados

import (
	"fmt"
	"math"
)

// Config is the user facing description of one render, in seconds and
// decibels where that is how people think about it.
type Config struct {
	SampleRate int
	BitDepth   int
	Channels   int

	Sound    string
	Duration float64 // seconds

	Frequency    float64
	FrequencyMin float64
	FrequencyMax float64
	Offset       float64 // seconds

	Param1   float64
	Param1DB float64 // overrides Param1 when non-zero
	Param2   float64
	Param2DB float64 // overrides Param2 when non-zero

	Window      string
	WindowCurve float64

	Gain   float64
	GainDB float64 // overrides Gain when non-zero
}

func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		BitDepth:     24,
		Channels:     1,
		Sound:        "white",
		Duration:     10,
		Frequency:    440,
		FrequencyMin: 20,
		FrequencyMax: 20000,
		Param1:       1,
		Window:       "def",
		WindowCurve:  2,
		Gain:         1,
	}
}

// DBToAmp converts dBFS to linear amplitude.
func DBToAmp(db float64) float64 {
	return math.Pow(10, db/20)
}

func pickDB(linear, db float64) float64 {
	if db != 0 {
		return DBToAmp(db)
	}
	return linear
}

// EffectiveGain is the linear gain after the dB override.
func (c Config) EffectiveGain() float64 { return pickDB(c.Gain, c.GainDB) }

// RenderSpec converts c to samples and validates the result.
func (c Config) RenderSpec() (RenderSpec, error) {
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) || c.Duration < 0 {
		return RenderSpec{}, fmt.Errorf("%w: duration %v s must be finite and non-negative", ErrInvalidDomainParameter, c.Duration)
	}
	rate := float64(c.SampleRate)
	spec := RenderSpec{
		Format: Format{
			SampleRate: c.SampleRate,
			BitDepth:   c.BitDepth,
			Channels:   c.Channels,
		},
		TotalSamples: int(rate * c.Duration),
		Sound:        c.Sound,
		Window:       c.Window,
		WindowCurve:  c.WindowCurve,
		Gain:         c.EffectiveGain(),
		Params: GeneratorParams{
			SampleRate:    rate,
			Frequency:     c.Frequency,
			FrequencyMin:  c.FrequencyMin,
			FrequencyMax:  c.FrequencyMax,
			OffsetSamples: rate * c.Offset,
			Param1:        pickDB(c.Param1, c.Param1DB),
			Param2:        pickDB(c.Param2, c.Param2DB),
		},
	}
	if err := Validate(spec); err != nil {
		return RenderSpec{}, err
	}
	return spec, nil
}
