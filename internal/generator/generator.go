package generator

import (
	"math"
	"math/rand"
)

// NumTaps is the number of recursive filter cells carried by a State.
const NumTaps = 8

// Params is the per-render generator configuration. It is captured when a
// Generator is built and never changes afterwards.
type Params struct {
	SampleRate    float64
	Frequency     float64
	FrequencyMin  float64
	FrequencyMax  float64
	OffsetSamples float64 // sample index of the unit impulse
	Param1        float64
	Param2        float64
}

// DefaultParams mirrors the command line defaults.
func DefaultParams() Params {
	return Params{
		SampleRate:   48000,
		Frequency:    440,
		FrequencyMin: 20,
		FrequencyMax: 20000,
		Param1:       1,
	}
}

// Source is the random primitive behind every noise generator.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// State is the mutable memory of one render. It must not be shared between
// renders.
type State struct {
	Phase float64 // [0, 1)
	Taps  [NumTaps]float64

	params   Params
	duration float64 // total samples - 1
	rng      Source
}

// advance moves the phase accumulator by inc cycles and returns the phase
// held before the move.
func (s *State) advance(inc float64) float64 {
	phase := s.Phase
	p := math.Mod(s.Phase+inc, 1)
	if p < 0 {
		p++
	}
	if p >= 1 {
		p = 0
	}
	s.Phase = p
	return phase
}

// uniform draws from [-1, 1).
func (s *State) uniform() float64 {
	return 2*s.rng.Float64() - 1
}

// Func computes one raw sample at index x, mutating st.
type Func func(st *State, x float64) float64

type Option func(*State)

// WithSource replaces the random primitive, typically with a seeded
// *rand.Rand for reproducible output.
func WithSource(src Source) Option {
	return func(s *State) {
		if src != nil {
			s.rng = src
		}
	}
}

// Generator couples a resolved waveform with the state of one render.
type Generator struct {
	fn    Func
	state State
}

// New resolves name and prepares a fresh zeroed state for a render of
// totalSamples samples.
func New(name string, params Params, totalSamples int, opts ...Option) (*Generator, error) {
	kind, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewKind(kind, params, totalSamples, opts...), nil
}

// NewKind is New for an already resolved Kind.
func NewKind(kind Kind, params Params, totalSamples int, opts ...Option) *Generator {
	g := &Generator{
		fn:    funcs[kind],
		state: State{
			params:   params,
			duration: float64(totalSamples) - 1,
			rng:      globalSource{},
		},
	}
	for _, opt := range opts {
		opt(&g.state)
	}
	return g
}

// State exposes the live state, mainly for inspection in tests.
func (g *Generator) State() *State { return &g.state }

// Sample returns the raw value at sample index t. Calls must be made in
// increasing t order, once per sample.
func (g *Generator) Sample(t int) float64 {
	return g.fn(&g.state, float64(t))
}
