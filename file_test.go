package homados

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderFileWritesWav(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	spec := testSpec("sine", "sc_io", 480)
	spec.Format.Channels = 2
	preview := &CodeBuffer{}
	res, err := RenderFile(FileJob{Spec: spec, Dir: dir, Name: "tone", Also: preview})
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != filepath.Join(dir, "tone.wav") {
		t.Errorf("path = %q", res.Path)
	}
	fi, err := os.Stat(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	// 44 byte header plus 480 stereo 16 bit frames
	if fi.Size() < 480*2*2 {
		t.Errorf("file size = %d", fi.Size())
	}
	if res.Stats.Samples != 480 || len(preview.Codes) != 480 {
		t.Errorf("samples = %d, preview = %d", res.Stats.Samples, len(preview.Codes))
	}
}

func TestRenderFileBadNameLeavesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	spec := testSpec("sine", "def", 10)
	spec.Window = "fade"
	_, err := RenderFile(FileJob{Spec: spec, Dir: dir, Name: "x"})
	if !errors.Is(err, ErrUnrecognizedIdentifier) {
		t.Fatalf("err = %v, want ErrUnrecognizedIdentifier", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("output directory must not be created on a bad name")
	}
}

func TestRenderFileRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	spec := testSpec("sine", "def", 10)
	_, err := RenderFile(FileJob{Spec: spec, Dir: dir, Name: "x", Also: &failingSink{left: 2}})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.wav")); !os.IsNotExist(err) {
		t.Fatal("partial file must be removed")
	}
}

func TestRenderFilesConcurrent(t *testing.T) {
	dir := t.TempDir()
	var jobs []FileJob
	for _, sound := range []string{"pink", "brown", "sine", "saw"} {
		jobs = append(jobs, FileJob{Spec: testSpec(sound, "lin_in", 4800), Dir: dir, Name: "batch"})
	}
	results, err := RenderFiles(context.Background(), jobs)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, r := range results {
		if seen[r.Path] {
			t.Fatalf("two jobs wrote %s", r.Path)
		}
		seen[r.Path] = true
		if r.Stats.Samples != 4800 {
			t.Errorf("%s: samples = %d", r.Path, r.Stats.Samples)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("got %d files, want 4", len(seen))
	}
}

func TestRenderFilesValidatesAllFirst(t *testing.T) {
	dir := t.TempDir()
	bad := testSpec("sine", "def", 10)
	bad.Sound = "nope"
	jobs := []FileJob{
		{Spec: testSpec("sine", "def", 10), Dir: dir, Name: "good"},
		{Spec: bad, Dir: dir, Name: "bad"},
	}
	if _, err := RenderFiles(context.Background(), jobs); !errors.Is(err, ErrUnrecognizedIdentifier) {
		t.Fatalf("err = %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("%d files written despite invalid job", len(entries))
	}
}
