// Package audio plays an already rendered buffer through the system audio
// device.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleSource fills interleaved stereo float32 frames.
type SampleSource interface {
	Process(dst []float32)
}

// FinishingSource is a SampleSource that can signal when playback has ended.
// When Finished returns true, the stream will return io.EOF on the next Read.
type FinishingSource interface {
	SampleSource
	Finished() bool
}

// BufferSource replays a mono buffer on both stereo channels, then silence.
type BufferSource struct {
	mono []float32
	pos  int
}

func NewBufferSource(mono []float32) *BufferSource {
	return &BufferSource{mono: mono}
}

func (b *BufferSource) Process(dst []float32) {
	for i := 0; i+1 < len(dst); i += 2 {
		var v float32
		if b.pos < len(b.mono) {
			v = b.mono[b.pos]
			b.pos++
		}
		dst[i], dst[i+1] = v, v
	}
}

func (b *BufferSource) Finished() bool { return b.pos >= len(b.mono) }

type StreamReader struct {
	mu     sync.Mutex
	source SampleSource
	buf    []float32
}

func NewStreamReader(source SampleSource) *StreamReader {
	return &StreamReader{source: source}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i := 0; i < need; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(r.buf[i]))
	}
	n := frames * 8
	if fs, ok := r.source.(FinishingSource); ok && fs.Finished() {
		return n, io.EOF
	}
	return n, nil
}

func (r *StreamReader) Close() error { return nil }

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioContextErr  error
	audioSampleRate  int
)

func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext, audioContextErr = openContext(sampleRate, ebitaudio.NewContext)
	})
	if audioContextErr != nil {
		return nil, audioContextErr
	}
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// openContext turns a panic from create, such as a context that already
// exists elsewhere in the process, into an error.
func openContext(sampleRate int, create func(int) *ebitaudio.Context) (ctx *ebitaudio.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create audio context at %d Hz: %v", sampleRate, r)
		}
	}()
	return create(sampleRate), nil
}

// Preview plays mono at sampleRate and blocks until playback finishes.
func Preview(sampleRate int, mono []float32) error {
	if len(mono) == 0 {
		return nil
	}
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return err
	}
	pl, err := ctx.NewPlayerF32(NewStreamReader(NewBufferSource(mono)))
	if err != nil {
		return err
	}
	defer pl.Close()
	pl.Play()
	length := time.Duration(len(mono)) * time.Second / time.Duration(sampleRate)
	deadline := time.Now().Add(length + time.Second)
	for pl.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}
