package generator

import "math"

// Output normalisation, measured against reference renders.
const (
	gainWhiteUniform    = 0.21646117788
	gainWhiteGaussian   = 0.12499856588
	gainWhiteTriangular = 0.30616465062
	gainWhiteBinary     = 0.25
	gainPinkEcon        = 0.07263870048
	gainPinkRefined     = 0.07093071735
	gainBrown           = 10.6143507417
	gainBlueEcon        = 5.36339784311
	gainBlueRefined     = 0.74195281187
	gainViolet          = 0.99206475709

	// the econ pink stage inside blue noise is pre-scaled before the
	// high pass
	blueEconStageGain = 0.14

	brownCutoffHz = 20.0
	blueCutoffHz  = 20000.0
)

func random(s *State, _ float64) float64 {
	return s.uniform()
}

func whiteUniform(s *State, _ float64) float64 {
	return gainWhiteUniform * s.uniform()
}

// whiteGaussian is normal noise with sigma Param1.
func whiteGaussian(s *State, _ float64) float64 {
	return gainWhiteGaussian * s.params.Param1 * s.rng.NormFloat64()
}

// whiteTriangular samples the triangular distribution on [-1, 1] with mode 0
// by inverting its CDF.
func whiteTriangular(s *State, _ float64) float64 {
	u := s.rng.Float64()
	var v float64
	if u < 0.5 {
		v = -1 + math.Sqrt(2*u)
	} else {
		v = 1 - math.Sqrt(2*(1-u))
	}
	return gainWhiteTriangular * v
}

// whiteBinary centres a fair coin flip on zero before scaling.
func whiteBinary(s *State, _ float64) float64 {
	var bit float64
	if s.rng.Float64() < 0.5 {
		bit = 1
	}
	return gainWhiteBinary * (bit - 0.5)
}

// Kellet's economy pink filter, three poles in taps 0..2. Returns the
// unscaled filter sum.
func (s *State) kelletEcon(white float64) float64 {
	t := &s.Taps
	t[0] = 0.99765*t[0] + white*0.0990460
	t[1] = 0.96300*t[1] + white*0.2965164
	t[2] = 0.57000*t[2] + white*1.0526913
	return t[0] + t[1] + t[2] + white*0.1848
}

// Kellet's refined pink filter in taps 0..6. Tap 6 is read before it is
// written: it feeds the previous sample's white value into this sum.
func (s *State) kelletRefined(white float64) float64 {
	t := &s.Taps
	t[0] = 0.99886*t[0] + white*0.0555179
	t[1] = 0.99332*t[1] + white*0.0750759
	t[2] = 0.96900*t[2] + white*0.1538520
	t[3] = 0.86650*t[3] + white*0.3104856
	t[4] = 0.55000*t[4] + white*0.5329522
	t[5] = -0.7616*t[5] - white*0.0168980
	sum := t[0] + t[1] + t[2] + t[3] + t[4] + t[5] + t[6] + white*0.5362
	t[6] = white * 0.115926
	return sum
}

// emaCoeff is the one-pole coefficient for cutoffHz at the render's sample
// rate.
func (s *State) emaCoeff(cutoffHz float64) float64 {
	return cutoffHz / (s.params.SampleRate * 0.5)
}

// lowPass runs the one-pole EMA in tap i and returns its new value.
func (s *State) lowPass(i int, a, x float64) float64 {
	s.Taps[i] = a*x + (1-a)*s.Taps[i]
	return s.Taps[i]
}

func pinkEcon(s *State, _ float64) float64 {
	return gainPinkEcon * s.kelletEcon(s.uniform())
}

func pinkRefined(s *State, _ float64) float64 {
	return gainPinkRefined * s.kelletRefined(s.uniform())
}

func brown(s *State, _ float64) float64 {
	a := s.emaCoeff(brownCutoffHz)
	return gainBrown * s.lowPass(0, a, s.uniform())
}

// blueEcon high passes economy pink noise: the signal minus its low passed
// copy in tap 4.
func blueEcon(s *State, _ float64) float64 {
	a := s.emaCoeff(blueCutoffHz)
	pke := blueEconStageGain * s.kelletEcon(s.uniform())
	return gainBlueEcon * (pke - s.lowPass(4, a, pke))
}

// blueRefined high passes refined pink noise through tap 7.
func blueRefined(s *State, _ float64) float64 {
	a := s.emaCoeff(blueCutoffHz)
	pk3 := s.kelletRefined(s.uniform())
	return gainBlueRefined * (pk3 - s.lowPass(7, a, pk3))
}

func violet(s *State, _ float64) float64 {
	a := s.emaCoeff(blueCutoffHz)
	white := s.uniform()
	return gainViolet * (white - s.lowPass(0, a, white))
}

// pseudoVelvet zeroes draws with magnitude below Param1 and collapses the
// rest to their sign.
func pseudoVelvet(s *State, _ float64) float64 {
	r := s.uniform()
	if math.Abs(r) < s.params.Param1 {
		return 0
	}
	return sign(r)
}
