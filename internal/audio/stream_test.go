package audio

import (
	"encoding/binary"
	"io"
	"math"
	"strings"
	"testing"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

func TestBufferSourceDuplicatesChannels(t *testing.T) {
	src := NewBufferSource([]float32{0.5, -0.25})
	dst := make([]float32, 6)
	src.Process(dst)
	want := []float32{0.5, 0.5, -0.25, -0.25, 0, 0}
	for i, w := range want {
		if dst[i] != w {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
	if !src.Finished() {
		t.Fatal("source should be finished")
	}
}

func TestStreamReaderEncodesAndEnds(t *testing.T) {
	r := NewStreamReader(NewBufferSource([]float32{1, 0.5, 0.25}))
	p := make([]byte, 16) // two stereo frames
	n, err := r.Read(p)
	if err != nil || n != 16 {
		t.Fatalf("first read n=%d err=%v", n, err)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(p[8:])); got != 0.5 {
		t.Fatalf("second frame left = %v, want 0.5", got)
	}
	n, err = r.Read(p)
	if n != 16 || err != io.EOF {
		t.Fatalf("second read n=%d err=%v, want EOF", n, err)
	}
}

func TestStreamReaderShortBuffer(t *testing.T) {
	r := NewStreamReader(NewBufferSource([]float32{1}))
	if n, err := r.Read(make([]byte, 7)); n != 0 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestOpenContextReportsCreationFailure(t *testing.T) {
	_, err := openContext(48000, func(int) *ebitaudio.Context {
		panic("audio: context is already created")
	})
	if err == nil || !strings.Contains(err.Error(), "already created") {
		t.Fatalf("err = %v, want the creation failure", err)
	}
	ctx, err := openContext(48000, func(int) *ebitaudio.Context { return nil })
	if err != nil || ctx != nil {
		t.Fatalf("ctx, err = %v, %v", ctx, err)
	}
}

func TestPreviewEmptyBufferIsNoop(t *testing.T) {
	if err := Preview(48000, nil); err != nil {
		t.Fatalf("err = %v", err)
	}
}
