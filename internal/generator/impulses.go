package generator

import "math"

// unitImpulse fires once, when x equals OffsetSamples exactly. An offset
// that does not land on a sample index never fires.
func unitImpulse(s *State, x float64) float64 {
	if x == s.params.OffsetSamples {
		return 1
	}
	return 0
}

// diracComb fires on the sample in which the phase accumulator wrapped.
func diracComb(s *State, _ float64) float64 {
	inc := s.params.Frequency / s.params.SampleRate
	phase := s.advance(inc)
	if phase-math.Floor(phase) < inc {
		return 1
	}
	return 0
}
