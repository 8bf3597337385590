package homados

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func testSpec(sound, win string, samples int) RenderSpec {
	cfg := DefaultConfig()
	cfg.Sound = sound
	cfg.Window = win
	cfg.BitDepth = 16
	cfg.Duration = 0
	spec, err := cfg.RenderSpec()
	if err != nil {
		panic(err)
	}
	spec.TotalSamples = samples
	return spec
}

func TestRenderSineLinearOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sound = "sine"
	cfg.Frequency = 440
	cfg.Window = "linear_out"
	cfg.Duration = 1
	spec, err := cfg.RenderSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.TotalSamples != 48000 {
		t.Fatalf("total samples = %d, want 48000", spec.TotalSamples)
	}
	buf := &CodeBuffer{}
	st, err := Render(spec, buf)
	if err != nil {
		t.Fatal(err)
	}
	if st.Samples != 48000 || len(buf.Codes) != 48000 {
		t.Fatalf("wrote %d/%d samples", st.Samples, len(buf.Codes))
	}
	if buf.Codes[0] != 0 {
		t.Errorf("first code = %d, want 0", buf.Codes[0])
	}
	if last := buf.Codes[47999]; last != 0 {
		t.Errorf("last code = %d, want 0", last)
	}
	full := spec.Format.FullScale()
	// quarter period of 440 Hz at 48 kHz is not on a sample, so compare to
	// the composed value directly
	want := int(math.Round((1 - 12.0/47999) * math.Sin(2*math.Pi*12*440/48000) * full))
	if got := buf.Codes[12]; abs(got-want) > 1 {
		t.Errorf("code 12 = %d, want %d", got, want)
	}
	if st.Clipped != 0 {
		t.Errorf("clipped = %d, want 0", st.Clipped)
	}
}

func TestRenderClipsToFullScale(t *testing.T) {
	for _, gain := range []float64{1.5, -4} {
		spec := testSpec("dc", "def", 100)
		spec.Gain = gain
		buf := &CodeBuffer{}
		st, err := Render(spec, buf)
		if err != nil {
			t.Fatal(err)
		}
		want := 32767
		if gain < 0 {
			want = -32767
		}
		for i, c := range buf.Codes {
			if c != want {
				t.Fatalf("gain %v: code %d = %d, want %d", gain, i, c, want)
			}
		}
		if st.Clipped != 100 || st.Peak != 32767 {
			t.Fatalf("gain %v: stats = %+v", gain, st)
		}
	}
}

func TestQuantize(t *testing.T) {
	const full = 127
	cases := []struct {
		in      float64
		want    int
		clipped bool
	}{
		{0, 0, false},
		{126.5, 127, false},
		{-126.5, -127, false},
		{127, 127, false},
		{127.2, 127, true},
		{-1e9, -127, true},
		{math.Inf(1), 127, true},
		{math.NaN(), 0, false},
		{0.49, 0, false},
	}
	for _, tc := range cases {
		got, clipped := Quantize(tc.in, full)
		if got != tc.want || clipped != tc.clipped {
			t.Errorf("Quantize(%v) = %d, %v; want %d, %v", tc.in, got, clipped, tc.want, tc.clipped)
		}
	}
}

func TestFullScale(t *testing.T) {
	cases := map[int]float64{8: 127, 16: 32767, 24: 8388607, 32: 2147483647}
	for bits, want := range cases {
		if got := (Format{BitDepth: bits}).FullScale(); got != want {
			t.Errorf("FullScale(%d) = %v, want %v", bits, got, want)
		}
	}
}

func TestRenderUnitImpulse(t *testing.T) {
	spec := testSpec("click", "flat", 32)
	buf := &CodeBuffer{}
	if _, err := Render(spec, buf); err != nil {
		t.Fatal(err)
	}
	for i, c := range buf.Codes {
		want := 0
		if i == 0 {
			want = 32767
		}
		if c != want {
			t.Fatalf("code %d = %d, want %d", i, c, want)
		}
	}
}

func TestRenderSeededNoiseIsReproducible(t *testing.T) {
	spec := testSpec("pink", "def", 2048)
	a := &CodeBuffer{}
	b := &CodeBuffer{}
	if _, err := Render(spec, a, WithRandSource(rand.New(rand.NewSource(42)))); err != nil {
		t.Fatal(err)
	}
	if _, err := Render(spec, b, WithRandSource(rand.New(rand.NewSource(42)))); err != nil {
		t.Fatal(err)
	}
	for i := range a.Codes {
		if a.Codes[i] != b.Codes[i] {
			t.Fatalf("renders diverge at %d", i)
		}
	}
}

func TestRenderHasFreshStatePerCall(t *testing.T) {
	spec := testSpec("sine", "def", 300)
	first := &CodeBuffer{}
	second := &CodeBuffer{}
	Render(spec, first)
	Render(spec, second)
	for i := range first.Codes {
		if first.Codes[i] != second.Codes[i] {
			t.Fatalf("phase leaked between renders at %d", i)
		}
	}
}

func TestRenderSingleSample(t *testing.T) {
	// d = 0 makes every position 0/0; the render must still finish.
	for _, sound := range []string{"sweep", "sweep_lin", "pws", "sine"} {
		spec := testSpec(sound, "lin_out", 1)
		buf := &CodeBuffer{}
		if _, err := Render(spec, buf); err != nil {
			t.Fatalf("%s: %v", sound, err)
		}
		if len(buf.Codes) != 1 || buf.Codes[0] != 0 {
			t.Fatalf("%s: codes = %v, want [0]", sound, buf.Codes)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	spec := testSpec("white", "def", 0)
	st, err := Render(spec, &CodeBuffer{})
	if err != nil || st.Samples != 0 {
		t.Fatalf("stats = %+v, err = %v", st, err)
	}
}

type failingSink struct{ left int }

var errDiskFull = errors.New("disk full")

func (f *failingSink) WriteSample(int) error {
	if f.left == 0 {
		return errDiskFull
	}
	f.left--
	return nil
}

func TestRenderStopsOnSinkError(t *testing.T) {
	spec := testSpec("sine", "def", 10)
	st, err := Render(spec, &failingSink{left: 3})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("err = %v, want disk full", err)
	}
	if st.Samples != 3 {
		t.Fatalf("samples = %d, want 3", st.Samples)
	}
}

func TestRenderRejectsBeforeWriting(t *testing.T) {
	spec := testSpec("sine", "def", 10)
	spec.Sound = "sinee"
	sink := &CodeBuffer{}
	_, err := Render(spec, sink)
	if !errors.Is(err, ErrUnrecognizedIdentifier) {
		t.Fatalf("err = %v, want ErrUnrecognizedIdentifier", err)
	}
	if len(sink.Codes) != 0 {
		t.Fatal("nothing may reach the sink on a bad name")
	}
}

func TestRenderSamplesNormalises(t *testing.T) {
	spec := testSpec("dc", "def", 4)
	out, _, err := RenderSamples(spec)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != 1 {
			t.Fatalf("sample %d = %v, want 1", i, v)
		}
	}
}

func TestTee(t *testing.T) {
	a, b := &CodeBuffer{}, &CodeBuffer{}
	if _, err := Render(testSpec("dc", "def", 3), Tee{a, b}); err != nil {
		t.Fatal(err)
	}
	if len(a.Codes) != 3 || len(b.Codes) != 3 {
		t.Fatalf("tee lengths %d and %d", len(a.Codes), len(b.Codes))
	}
}

func BenchmarkRenderPinkNoise(b *testing.B) {
	spec := testSpec("pink", "sc_io", 48000)
	buf := &CodeBuffer{Codes: make([]int, 0, 48000)}
	for i := 0; i < b.N; i++ {
		buf.Codes = buf.Codes[:0]
		Render(spec, buf)
	}
}
