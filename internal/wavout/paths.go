package wavout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-homedir"
)

const ext = ".wav"

// maxSuffix bounds the " (n)" search.
const maxSuffix = 100000

// PrepareDir expands a leading ~ in dir and creates the directory tree.
func PrepareDir(dir string) (string, error) {
	p, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", dir, err)
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return p, nil
}

// Candidate is the n-th file name tried for base: base.wav, then
// "base (1).wav", "base (2).wav" and so on.
func Candidate(base string, n int) string {
	if n == 0 {
		return base + ext
	}
	return base + " (" + strconv.Itoa(n) + ")" + ext
}

// CreateUnique creates dir/name.wav, stepping through Candidate names while
// the file already exists. Creation is exclusive so concurrent callers never
// share a file.
func CreateUnique(dir, name string, sampleRate, bitDepth, channels int) (*Sink, error) {
	base := filepath.Join(dir, name)
	for n := 0; n < maxSuffix; n++ {
		s, err := Create(Candidate(base, n), sampleRate, bitDepth, channels)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		return s, err
	}
	return nil, fmt.Errorf("no free file name for %q", base+ext)
}
