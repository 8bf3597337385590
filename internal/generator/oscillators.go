package generator

import "math"

const twoPi = math.Pi * 2

func silence(*State, float64) float64 { return 0 }

func dc(*State, float64) float64 { return 1 }

// step advances by the constant base frequency.
func (s *State) step() float64 {
	return s.advance(s.params.Frequency / s.params.SampleRate)
}

// progress is x scaled to [0, 1] over the render.
func (s *State) progress(x float64) float64 {
	return x / s.duration
}

func sine(s *State, _ float64) float64 {
	return math.Sin(s.step() * twoPi)
}

func cosine(s *State, _ float64) float64 {
	return math.Cos(s.step() * twoPi)
}

// sweepLinear interpolates the instantaneous frequency linearly between
// FrequencyMin and FrequencyMax.
func sweepLinear(s *State, x float64) float64 {
	p := s.params
	f := p.FrequencyMin + (p.FrequencyMax-p.FrequencyMin)*s.progress(x)
	return math.Sin(s.advance(f/p.SampleRate) * twoPi)
}

// sweepExp interpolates linearly in log10 frequency. Both bounds must be
// positive.
func sweepExp(s *State, x float64) float64 {
	p := s.params
	lo := math.Log10(p.FrequencyMin)
	hi := math.Log10(p.FrequencyMax)
	f := math.Pow(10, lo+(hi-lo)*s.progress(x))
	return math.Sin(s.advance(f/p.SampleRate) * twoPi)
}

// clipSine hard clips the sine to +/-Param1.
func clipSine(s *State, _ float64) float64 {
	out := math.Sin(s.step() * twoPi)
	if math.Abs(out) > s.params.Param1 {
		return s.params.Param1 * sign(out)
	}
	return out
}

// quantSine rounds the sine to 2^(Param1-1) levels. Param1 is a virtual
// bit depth and need not be integral.
func quantSine(s *State, _ float64) float64 {
	a := math.Sin(s.step() * twoPi)
	levels := math.Pow(2, s.params.Param1-1)
	return math.Round(a*levels) / math.Round(levels)
}

func saw(s *State, _ float64) float64 {
	phase := s.step()
	return 2 * (phase - math.Floor(0.5+phase))
}

func square(s *State, _ float64) float64 {
	phase := s.step()
	return math.Pow(-1, math.Floor(2*phase))
}

func triangle(s *State, _ float64) float64 {
	a := 0.25 + s.step()
	return 4*math.Abs(a-math.Floor(a+0.5)) - 1
}

// pulse is high while the phase is below the duty cycle Param1.
func pulse(s *State, _ float64) float64 {
	return pulseAt(s.step(), s.params.Param1)
}

// pulseSweep moves the duty cycle linearly from Param1 to Param2.
func pulseSweep(s *State, x float64) float64 {
	p := s.params
	duty := p.Param1 + (p.Param2-p.Param1)*s.progress(x)
	return pulseAt(s.step(), duty)
}

func pulseAt(phase, duty float64) float64 {
	if phase-math.Floor(phase) < duty {
		return 1
	}
	return -1
}

func sharktooth(s *State, _ float64) float64 {
	phase := s.step()
	a := 0.25 + phase
	return 3*math.Abs(a-math.Floor(a+0.5)) + 0.5*math.Floor(2*phase+0.5) - phase - 0.75
}

// sign is signum without a zero case, matching the limiter and velvet
// collapse: +0 maps to 1, -0 to -1.
func sign(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
