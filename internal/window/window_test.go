package window

import (
	"errors"
	"math"
	"testing"
)

// families whose endpoints only approach the ideal values
var approximateEndpoints = map[Shape]bool{
	{Family: EqualPower1, Direction: OutIn}: true, // ends on cos(pi) = -1
}

func init() {
	for d := Out; d < numDirections; d++ {
		approximateEndpoints[Shape{Family: Tetration, Direction: d}] = true
		approximateEndpoints[Shape{Family: SuperLog, Direction: d}] = true
	}
}

func TestEndpoints(t *testing.T) {
	const (
		d   = 1000.0
		k   = 2.0
		tol = 1e-9
	)
	want := map[Direction][3]float64{
		Out:   {1, 0.5, 0},
		In:    {0, 0.5, 1},
		InOut: {0, 1, 0},
		OutIn: {1, 0, 1},
	}
	for _, shape := range Shapes() {
		if shape.Family == Flat || approximateEndpoints[shape] {
			continue
		}
		t.Run(shape.String(), func(t *testing.T) {
			w := want[shape.Direction]
			if got := Eval(shape, k, d, 0); math.Abs(got-w[0]) > tol {
				t.Errorf("gain(0) = %v, want %v", got, w[0])
			}
			if got := Eval(shape, k, d, d); math.Abs(got-w[2]) > tol {
				t.Errorf("gain(d) = %v, want %v", got, w[2])
			}
			if shape.Direction == InOut || shape.Direction == OutIn {
				if got := Eval(shape, k, d, d/2); math.Abs(got-w[1]) > tol {
					t.Errorf("gain(d/2) = %v, want %v", got, w[1])
				}
			}
		})
	}
}

func TestLinearEndpointsExact(t *testing.T) {
	w := NewShape(Shape{Family: Linear, Direction: Out}, 2, 48000)
	if got := w.Gain(0); got != 1 {
		t.Fatalf("first gain = %v, want 1", got)
	}
	if got := w.Gain(47999); got != 0 {
		t.Fatalf("last gain = %v, want 0", got)
	}
}

func TestFlatIsUnity(t *testing.T) {
	w, err := New("def", 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if got := w.Gain(i); got != 1 {
			t.Fatalf("gain(%d) = %v, want 1", i, got)
		}
	}
}

func TestMidpointBelongsToFirstHalf(t *testing.T) {
	// slg io/oi are discontinuous at the midpoint, which exposes the branch.
	if got := Eval(Shape{Family: SuperLog, Direction: InOut}, 0, 10, 5); math.Abs(got-0.975) > 1e-12 {
		t.Errorf("slg_io(5) = %v, want 0.975", got)
	}
	if got := Eval(Shape{Family: SuperLog, Direction: OutIn}, 0, 10, 5); math.Abs(got-0.025) > 1e-12 {
		t.Errorf("slg_oi(5) = %v, want 0.025", got)
	}
	if got := Eval(Shape{Family: SuperLog, Direction: InOut}, 0, 10, 6); math.Abs(got-(1-math.Pow(2, 0.2)/10)) > 1e-12 {
		t.Errorf("slg_io(6) = %v", got)
	}
}

func TestSpotValues(t *testing.T) {
	cases := []struct {
		name string
		k    float64
		d, x float64
		want float64
	}{
		{"exp5_io", 0, 10, 3, 0.28},
		{"exp5_io", 0, 10, 4, 0.6400000000000001},
		{"exp5_io", 0, 10, 7, 0.2799999999999998},
		{"sscf_in", 0, 10, 5, 0.7033547889062499},
		{"log1_in", 0, 10, 5, 0.7403626894942439},
		{"exp3_in", 2, 10, 5, 0.2689414213699951},
		{"lin_io", 0, 10, 5, 1},
		{"eqp_io", 0, 10, 5, 1},
		{"s_in", 0, 10, 5, 0.5},
		{"tet_out", 0, 10, 10, 0.025},
		{"exp2_out", 0, 10, 10, 3.110359192426415e-15},
	}
	for _, tc := range cases {
		shape, err := Lookup(tc.name)
		if err != nil {
			t.Fatal(err)
		}
		if got := Eval(shape, tc.k, tc.d, tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", tc.name, tc.x, got, tc.want)
		}
	}
}

func TestLookupAliases(t *testing.T) {
	cases := map[string]Shape{
		"def":            {Family: Flat},
		"unity":          {Family: Flat},
		"lin_out":        {Family: Linear, Direction: Out},
		"exp_oi":         {Family: Exp1, Direction: OutIn},
		"exp1_oi":        {Family: Exp1, Direction: OutIn},
		"log_in":         {Family: Log1, Direction: In},
		"eqp_io":         {Family: EqualPower1, Direction: InOut},
		"s_io":           {Family: SCurve1, Direction: InOut},
		"sc_io":          {Family: SCurve1, Direction: InOut},
		"s4_out":         {Family: SCurve4, Direction: Out},
		"smoothstep_out": {Family: Hermite, Direction: Out},
		"chsg_in":        {Family: HermiteGeneral, Direction: In},
	}
	for name, want := range cases {
		got, err := Lookup(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	for _, bad := range []string{"Linear_out", "exp6_in", "lin", "slg_", "", "linear_up"} {
		if _, err := Lookup(bad); !errors.Is(err, ErrUnknownName) {
			t.Errorf("%q: err = %v, want ErrUnknownName", bad, err)
		}
	}
	if got := len(Names()); got != 128 {
		t.Errorf("len(Names()) = %d, want 128", got)
	}
}

func TestShapeStringRoundTrips(t *testing.T) {
	for _, s := range Shapes() {
		got, err := Lookup(s.String())
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if got.Family != s.Family || (s.Family != Flat && got.Direction != s.Direction) {
			t.Errorf("%v resolved to %v", s, got)
		}
	}
}

func TestValidateCurve(t *testing.T) {
	if err := Validate(Shape{Family: Exp3, Direction: In}, math.Inf(1)); !errors.Is(err, ErrInvalidCurve) {
		t.Fatalf("err = %v, want ErrInvalidCurve", err)
	}
	if err := Validate(Shape{Family: Linear, Direction: In}, math.NaN()); err != nil {
		t.Fatalf("linear ignores k, got %v", err)
	}
}

func TestValidateExp3ZeroCurve(t *testing.T) {
	for d := Direction(0); d < numDirections; d++ {
		s := Shape{Family: Exp3, Direction: d}
		if err := Validate(s, 0); !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("%v: err = %v, want ErrInvalidCurve", s, err)
		}
		if v := Eval(s, 0, 10, 5); !math.IsNaN(v) {
			t.Errorf("%v at k=0 = %v, expected the undefined 0/0", s, v)
		}
		if err := Validate(s, 0.5); err != nil {
			t.Errorf("%v: k=0.5 rejected: %v", s, err)
		}
	}
	if err := Validate(Shape{Family: Exp4, Direction: In}, 0); err != nil {
		t.Errorf("exp4 at k=0 is a flat gain, got %v", err)
	}
}
