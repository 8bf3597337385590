package window

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownName is returned by Lookup for a window that has no entry in the
// alias table.
var ErrUnknownName = errors.New("unrecognized window type")

type Family int

const (
	Flat Family = iota
	Linear
	Exp1 // logistic halves
	Exp2 // Gaussian bell
	Exp3 // base e with contour
	Exp4 // power function
	Exp5 // audio taper, piecewise linear
	Log1 // base 10 log
	Log2 // anti-log taper, piecewise linear
	EqualPower1
	EqualPower2
	SCurve1
	SCurve2
	SCurve3
	SCurve4
	Hermite
	HermiteGeneral
	Crossfade
	Tetration
	SuperLog
	numFamilies
)

type Direction int

const (
	Out   Direction = iota // 1 -> 0
	In                     // 0 -> 1
	InOut                  // 0 -> 1 -> 0
	OutIn                  // 1 -> 0 -> 1
	numDirections
)

var directionSuffix = [numDirections]string{
	Out:   "out",
	In:    "in",
	InOut: "io",
	OutIn: "oi",
}

func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionSuffix[d]
}

// Shape selects one curve. Direction is ignored for Flat.
type Shape struct {
	Family    Family
	Direction Direction
}

func (s Shape) String() string {
	if s.Family == Flat {
		return flatAliases[0]
	}
	if s.Family < 0 || s.Family >= numFamilies {
		return fmt.Sprintf("Family(%d)_%v", int(s.Family), s.Direction)
	}
	return familyPrefixes[s.Family][0] + "_" + s.Direction.String()
}

var flatAliases = []string{"default", "def", "flat", "unity", "full", "none", "constant", "const"}

// familyPrefixes are the accepted spellings of each family; a window name is
// a prefix joined to a direction suffix, e.g. "s_io". The first prefix is
// canonical.
var familyPrefixes = [numFamilies][]string{
	Linear:         {"linear", "lin"},
	Exp1:           {"exp1", "exp"},
	Exp2:           {"exp2"},
	Exp3:           {"exp3"},
	Exp4:           {"exp4"},
	Exp5:           {"exp5"},
	Log1:           {"log1", "log"},
	Log2:           {"log2"},
	EqualPower1:    {"eqp1", "eqp"},
	EqualPower2:    {"eqp2"},
	SCurve1:        {"sc1", "sc", "s1", "s"},
	SCurve2:        {"sc2", "s2"},
	SCurve3:        {"sc3", "s3"},
	SCurve4:        {"sc4", "s4"},
	Hermite:        {"chs", "smoothstep"},
	HermiteGeneral: {"chsg"},
	Crossfade:      {"sscf"},
	Tetration:      {"tet"},
	SuperLog:       {"slg"},
}

// byName is the complete alias table, built once from the lists above.
var byName = func() map[string]Shape {
	m := make(map[string]Shape)
	add := func(name string, s Shape) {
		if _, dup := m[name]; dup {
			panic("window: duplicate alias " + name)
		}
		m[name] = s
	}
	for _, n := range flatAliases {
		add(n, Shape{Family: Flat})
	}
	for f := Linear; f < numFamilies; f++ {
		for _, prefix := range familyPrefixes[f] {
			for d := Out; d < numDirections; d++ {
				add(prefix+"_"+d.String(), Shape{Family: f, Direction: d})
			}
		}
	}
	return m
}()

// Lookup resolves a window name or alias.
func Lookup(name string) (Shape, error) {
	s, ok := byName[name]
	if !ok {
		return Shape{}, fmt.Errorf("%w %q", ErrUnknownName, name)
	}
	return s, nil
}

// Names returns every accepted window name, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Shapes returns the flat window followed by every family and direction.
func Shapes() []Shape {
	out := []Shape{{Family: Flat}}
	for f := Linear; f < numFamilies; f++ {
		for d := Out; d < numDirections; d++ {
			out = append(out, Shape{Family: f, Direction: d})
		}
	}
	return out
}

// UsesCurve reports whether the shape reads the curve parameter k.
func (s Shape) UsesCurve() bool {
	switch s.Family {
	case Exp1, Exp3, Exp4, SCurve2, SCurve3, HermiteGeneral:
		return true
	}
	return false
}
