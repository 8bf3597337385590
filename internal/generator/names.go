package generator

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownName is returned by Lookup for a sound type that has no entry in
// the alias table.
var ErrUnknownName = errors.New("unrecognized sound type")

type Kind int

const (
	Silence Kind = iota
	DC
	Sine
	Cosine
	SweepLinear
	SweepExp
	ClipSine
	QuantSine
	Saw
	Square
	Triangle
	Pulse
	PulseSweep
	Sharktooth
	UnitImpulse
	DiracComb
	Random
	WhiteUniform
	WhiteGaussian
	WhiteTriangular
	WhiteBinary
	PinkEcon
	PinkRefined
	Brown
	BlueEcon
	BlueRefined
	Violet
	PseudoVelvet
	numKinds
)

// aliases lists every accepted spelling per kind. The first entry is the
// canonical name. Names are case sensitive.
var aliases = [numKinds][]string{
	Silence:         {"silence", "silent", "zero", "null"},
	DC:              {"dc", "dc_offset", "offset", "constant", "const"},
	Sine:            {"sine", "sin", "sine_wave", "sinusoid"},
	Cosine:          {"cosine", "cos", "cosine_wave"},
	SweepLinear:     {"sweep_lin", "sweep_lin_sin", "sweep_linear", "chirp_lin", "chirp_linear", "lss"},
	SweepExp:        {"sweep", "sweep_log", "sweep_sin", "sweep_log_sin", "chirp", "chirp_log", "chirp_exp", "ess", "sweep_exp", "sweep_exp_sin", "log_sweep", "exp_sweep"},
	ClipSine:        {"clip_sine", "clipped_sine", "hardclip_sine", "hard_clip_sine", "hardclipped_sine", "hard_clipped_sine"},
	QuantSine:       {"quantized_sine", "quantized_sin", "quant_sine", "quant_sin"},
	Saw:             {"saw", "sawtooth", "saw_wave"},
	Square:          {"square", "sqr", "square_wave"},
	Triangle:        {"triangle", "tri", "triangle_wave"},
	Pulse:           {"pulse", "pwm", "pulse_wave"},
	PulseSweep:      {"pulse_sweep", "pwm_sweep", "pulse_width_sweep", "pws"},
	Sharktooth:      {"sharktooth", "shark", "sharktooth_wave"},
	UnitImpulse:     {"unit_impulse", "dirac", "delta", "kronecker", "dirac_delta", "kronecker_delta", "click"},
	DiracComb:       {"dirac_comb", "impulse_train", "needle", "comb", "needle_pulse", "sha"},
	Random:          {"random", "noise", "random_noise"},
	WhiteUniform:    {"white", "white_random", "white_uniform", "white_noise"},
	WhiteGaussian:   {"white_gaussian", "white_normal", "white_random_normal", "white_random_gaussian", "white_gauss", "gaussian_noise"},
	WhiteTriangular: {"white_triangular", "white_tri", "white_triangle", "triangular_noise"},
	WhiteBinary:     {"white_binary", "white_bin", "white_bernoulli", "binary_noise", "bernoulli_noise"},
	PinkEcon:        {"pink", "pink_kellet_econ", "pke", "pink_noise"},
	PinkRefined:     {"pink_ref", "pink_kellet_ref", "pk3"},
	Brown:           {"brown", "red", "brownian", "brown_ema", "brown_noise"},
	BlueEcon:        {"blue", "azure", "blue_pke", "blue_pke_ema", "blue_noise"},
	BlueRefined:     {"blue_ref", "blue_pk3", "blue_pk3_ema", "blue_ref_ema"},
	Violet:          {"violet", "purple", "violet_ema", "violet_noise", "purple_noise"},
	PseudoVelvet:    {"pseudo_velvet", "pseudo_velvet_noise", "pseudo_velvet_consecutive"},
}

var funcs = [numKinds]Func{
	Silence:         silence,
	DC:              dc,
	Sine:            sine,
	Cosine:          cosine,
	SweepLinear:     sweepLinear,
	SweepExp:        sweepExp,
	ClipSine:        clipSine,
	QuantSine:       quantSine,
	Saw:             saw,
	Square:          square,
	Triangle:        triangle,
	Pulse:           pulse,
	PulseSweep:      pulseSweep,
	Sharktooth:      sharktooth,
	UnitImpulse:     unitImpulse,
	DiracComb:       diracComb,
	Random:          random,
	WhiteUniform:    whiteUniform,
	WhiteGaussian:   whiteGaussian,
	WhiteTriangular: whiteTriangular,
	WhiteBinary:     whiteBinary,
	PinkEcon:        pinkEcon,
	PinkRefined:     pinkRefined,
	Brown:           brown,
	BlueEcon:        blueEcon,
	BlueRefined:     blueRefined,
	Violet:          violet,
	PseudoVelvet:    pseudoVelvet,
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind)
	for k, names := range aliases {
		for _, n := range names {
			if _, dup := m[n]; dup {
				panic("generator: duplicate alias " + n)
			}
			m[n] = Kind(k)
		}
	}
	return m
}()

// Lookup resolves a sound type name or alias.
func Lookup(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownName, name)
	}
	return k, nil
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return aliases[k][0]
}

// Aliases returns every accepted spelling of k, canonical name first.
func (k Kind) Aliases() []string {
	if k < 0 || k >= numKinds {
		return nil
	}
	return append([]string(nil), aliases[k]...)
}

// Kinds returns all generator kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Names returns every accepted name, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
