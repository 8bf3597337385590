package homados

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/homados/homados-go/internal/wavout"
)

// FileJob renders one spec to Dir/Name.wav, or "Name (n).wav" when that
// file already exists.
type FileJob struct {
	Spec    RenderSpec
	Dir     string
	Name    string
	Options []RenderOption
	Also    Sink // optional second destination, e.g. a CodeBuffer for preview
}

type FileResult struct {
	Path  string
	Stats Stats
}

// RenderFile validates the job before touching the file system, so an
// invalid spec never leaves an empty or partial file behind. A render that
// fails midway removes its file.
func RenderFile(job FileJob) (FileResult, error) {
	if err := Validate(job.Spec); err != nil {
		return FileResult{}, err
	}
	if job.Name == "" {
		return FileResult{}, fmt.Errorf("output name is empty")
	}
	dir, err := wavout.PrepareDir(job.Dir)
	if err != nil {
		return FileResult{}, err
	}
	f := job.Spec.Format
	sink, err := wavout.CreateUnique(dir, job.Name, f.SampleRate, f.BitDepth, f.Channels)
	if err != nil {
		return FileResult{}, err
	}
	res := FileResult{Path: sink.Path()}

	var dst Sink = sink
	if job.Also != nil {
		dst = Tee{sink, job.Also}
	}
	res.Stats, err = Render(job.Spec, dst, job.Options...)
	if err != nil {
		sink.Abort()
		return res, err
	}
	if err := sink.Close(); err != nil {
		os.Remove(res.Path)
		return res, fmt.Errorf("close %s: %w", res.Path, err)
	}
	return res, nil
}

// RenderFiles renders jobs concurrently, each with its own generator state.
// Every job is validated before the first file is created. On failure the
// remaining jobs are skipped and the first error is returned.
func RenderFiles(ctx context.Context, jobs []FileJob) ([]FileResult, error) {
	for i, job := range jobs {
		if err := Validate(job.Spec); err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i, job.Name, err)
		}
	}
	results := make([]FileResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RenderFile(job)
			if err != nil {
				return fmt.Errorf("job %d (%s): %w", i, job.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
