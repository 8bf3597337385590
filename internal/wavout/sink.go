// Package wavout writes rendered sample codes to integer PCM WAV files.
package wavout

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	formatPCM   = 1
	chunkFrames = 4096
)

var ErrBitDepth = errors.New("unsupported bit depth")

// Sink encodes a mono code stream into a WAV file, copying every code into
// each channel of its frame.
type Sink struct {
	file     *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	channels int
	bias     int
	started  bool
	closed   bool
}

// New wraps an open file. The sink owns f from here on.
func New(f *os.File, sampleRate, bitDepth, channels int) (*Sink, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}
	if channels < 1 {
		return nil, fmt.Errorf("channel count %d must be at least 1", channels)
	}
	s := &Sink{
		file:     f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, channels, formatPCM),
		channels: channels,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
			Data:           make([]int, 0, chunkFrames*channels),
			SourceBitDepth: bitDepth,
		},
	}
	// 8-bit WAV stores unsigned samples centred on 128
	if bitDepth == 8 {
		s.bias = 128
	}
	return s, nil
}

// Create makes a new file at path, failing if it already exists.
func Create(path string, sampleRate, bitDepth, channels int) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	s, err := New(f, sampleRate, bitDepth, channels)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return s, nil
}

// Path is the file being written.
func (s *Sink) Path() string { return s.file.Name() }

// WriteSample appends one frame holding code on every channel.
func (s *Sink) WriteSample(code int) error {
	if s.closed {
		return os.ErrClosed
	}
	v := code + s.bias
	for c := 0; c < s.channels; c++ {
		s.buf.Data = append(s.buf.Data, v)
	}
	if len(s.buf.Data) >= chunkFrames*s.channels {
		return s.flush()
	}
	return nil
}

// flush hands buffered frames to the encoder. The first call always reaches
// the encoder so that an empty render still gets a header and data chunk.
func (s *Sink) flush() error {
	if len(s.buf.Data) == 0 && s.started {
		return nil
	}
	s.started = true
	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	s.buf.Data = s.buf.Data[:0]
	return nil
}

// Close flushes pending frames, finalises the header and closes the file.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.flush()
	if cerr := s.enc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("finalise wav: %w", cerr)
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Abort closes the sink and removes the partial file.
func (s *Sink) Abort() error {
	s.closed = true
	s.file.Close()
	return os.Remove(s.file.Name())
}
