package generator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam marks a configuration outside a generator's domain.
var ErrInvalidParam = errors.New("invalid generator parameter")

// Validate checks p against the preconditions of kind without rendering
// anything.
func Validate(kind Kind, p Params) error {
	if kind < 0 || kind >= numKinds {
		return fmt.Errorf("%w: %v", ErrUnknownName, kind)
	}
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v must be positive", ErrInvalidParam, p.SampleRate)
	}
	switch kind {
	case Sine, Cosine, ClipSine, QuantSine, Saw, Square, Triangle, Pulse, PulseSweep, Sharktooth, DiracComb:
		if !finite(p.Frequency) {
			return fmt.Errorf("%w: %s frequency %v must be finite", ErrInvalidParam, kind, p.Frequency)
		}
	case SweepLinear, SweepExp:
		if !finite(p.FrequencyMin) || !finite(p.FrequencyMax) {
			return fmt.Errorf("%w: %s frequency bounds %v and %v must be finite",
				ErrInvalidParam, kind, p.FrequencyMin, p.FrequencyMax)
		}
	}
	switch kind {
	case QuantSine:
		if !finite(p.Param1) || math.Round(math.Pow(2, p.Param1-1)) == 0 {
			return fmt.Errorf("%w: %s bit depth %v leaves no quantisation levels", ErrInvalidParam, kind, p.Param1)
		}
	case SweepExp:
		if !(p.FrequencyMin > 0) || !(p.FrequencyMax > 0) {
			return fmt.Errorf("%w: %s needs positive min and max frequency, got %v and %v",
				ErrInvalidParam, kind, p.FrequencyMin, p.FrequencyMax)
		}
	case WhiteGaussian:
		if !(p.Param1 >= 0) || math.IsInf(p.Param1, 0) {
			return fmt.Errorf("%w: %s sigma %v must be finite and non-negative", ErrInvalidParam, kind, p.Param1)
		}
	case Brown:
		if err := checkEMA(kind, brownCutoffHz, p.SampleRate); err != nil {
			return err
		}
	case BlueEcon, BlueRefined, Violet:
		if err := checkEMA(kind, blueCutoffHz, p.SampleRate); err != nil {
			return err
		}
	}
	return nil
}

// checkEMA rejects sample rates where the one-pole feedback term 1-a
// reaches magnitude 1.
func checkEMA(kind Kind, cutoffHz, sampleRate float64) error {
	a := cutoffHz / (sampleRate * 0.5)
	if math.Abs(1-a) >= 1 {
		return fmt.Errorf("%w: %s needs a sample rate above %v Hz, got %v",
			ErrInvalidParam, kind, cutoffHz, sampleRate)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
