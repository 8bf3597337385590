package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/homados/homados-go"
	intaudio "github.com/homados/homados-go/internal/audio"
)

const (
	defaultDir  = "./homados Output"
	defaultName = "homados_output"
)

type options struct {
	cfg     homados.Config
	dir     string
	name    string
	verbose bool
	preview bool
	list    bool
}

func main() {
	log.SetFlags(0)
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if opts.list {
		listNames(os.Stdout)
		return
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	o := options{cfg: homados.DefaultConfig()}
	c := &o.cfg

	intVar := func(p *int, short, long string, usage string) {
		if short != "" {
			fs.IntVar(p, short, *p, usage)
		}
		fs.IntVar(p, long, *p, usage)
	}
	floatVar := func(p *float64, short, long string, usage string) {
		if short != "" {
			fs.Float64Var(p, short, *p, usage)
		}
		fs.Float64Var(p, long, *p, usage)
	}
	stringVar := func(p *string, short, long string, usage string) {
		fs.StringVar(p, short, *p, usage)
		fs.StringVar(p, long, *p, usage)
	}

	intVar(&c.SampleRate, "s", "sample-rate", "sample rate in Hz")
	intVar(&c.BitDepth, "b", "bit-depth", "bits per sample: 8|16|24|32")
	intVar(&c.Channels, "c", "channels", "channel count")
	stringVar(&c.Sound, "t", "sound", "sound type (see -list)")
	floatVar(&c.Duration, "d", "duration", "duration in seconds")
	floatVar(&c.Frequency, "f", "freq", "base frequency in Hz")
	floatVar(&c.FrequencyMin, "", "freq-min", "sweep start frequency in Hz")
	floatVar(&c.FrequencyMax, "", "freq-max", "sweep end frequency in Hz")
	floatVar(&c.Offset, "o", "offset", "impulse time offset in seconds")
	floatVar(&c.Param1, "p", "param1", "generator parameter 1")
	floatVar(&c.Param1DB, "", "param1-db", "generator parameter 1 in dBFS (overrides -param1)")
	floatVar(&c.Param2, "", "param2", "generator parameter 2")
	floatVar(&c.Param2DB, "", "param2-db", "generator parameter 2 in dBFS (overrides -param2)")
	stringVar(&c.Window, "w", "window", "gain window shape (see -list)")
	floatVar(&c.WindowCurve, "", "window-curve", "window curve modifier")
	floatVar(&c.Gain, "g", "gain", "gain scalar")
	floatVar(&c.GainDB, "", "gain-db", "gain in dBFS (overrides -gain)")
	fs.BoolVar(&o.verbose, "v", false, "verbose output")
	fs.BoolVar(&o.verbose, "verbose", false, "verbose output")
	fs.BoolVar(&o.preview, "preview", false, "play the result after rendering")
	fs.BoolVar(&o.list, "list", false, "list sound and window names")

	// flag stops at the first positional; keep parsing after each one so
	// options may follow the path and name.
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return o, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
	if len(pos) > 2 {
		return o, fmt.Errorf("unexpected arguments %q (expected [path] [name])", pos[2:])
	}
	o.dir, o.name = defaultDir, defaultName
	if len(pos) > 0 {
		o.dir = pos[0]
	}
	if len(pos) > 1 {
		o.name = pos[1]
	}
	return o, nil
}

func run(o options, stdout io.Writer) error {
	spec, err := o.cfg.RenderSpec()
	if err != nil {
		return err
	}
	warnGain(spec.Gain)

	job := homados.FileJob{Spec: spec, Dir: o.dir, Name: o.name}
	var buf *homados.CodeBuffer
	if o.preview {
		buf = &homados.CodeBuffer{Codes: make([]int, 0, spec.TotalSamples)}
		job.Also = buf
	}
	res, err := homados.RenderFile(job)
	if err != nil {
		return err
	}
	if res.Stats.Clipped > 0 {
		log.Printf("warning: %d of %d samples clipped", res.Stats.Clipped, res.Stats.Samples)
	}
	if o.verbose {
		printSummary(stdout, o.cfg, spec, res, isTerminal(stdout))
	}
	if o.preview {
		if err := intaudio.Preview(spec.Format.SampleRate, buf.Float32(spec.Format.FullScale())); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}

func warnGain(gain float64) {
	if math.Abs(gain) > 1 {
		log.Print("warning: |gain| > 1.0, this may cause the output to clip")
	}
	if gain < 0 {
		log.Print("warning: gain < 0.0, this will flip the signal polarity")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printSummary(w io.Writer, cfg homados.Config, spec homados.RenderSpec, res homados.FileResult, tty bool) {
	if tty {
		fmt.Fprint(w, "\n\U0001F388\U0001F388\U0001F388 !!!!! YAY !!!!! \U0001F388\U0001F388\U0001F388\n\n")
	}
	fmt.Fprintf(w, "Sound Type: \t%s\n", spec.Sound)
	fmt.Fprintf(w, "Channels: \t%d\n", spec.Format.Channels)
	fmt.Fprintf(w, "Sample Rate: \t%d\n", spec.Format.SampleRate)
	fmt.Fprintf(w, "Bit Depth: \t%d\n", spec.Format.BitDepth)
	fmt.Fprintf(w, "Duration:\n    Seconds:    %g\n    Samples:    %d\n", cfg.Duration, spec.TotalSamples)
	fmt.Fprintf(w, "Gain Window: \t%s\n", spec.Window)
	fmt.Fprintf(w, "Gain Scalar: \t%.1f\n", spec.Gain)
	fmt.Fprintf(w, "Clipped: \t%d\n", res.Stats.Clipped)
	if tty {
		fmt.Fprintf(w, "\nFile Successfully created at:\nfile://%s\n", res.Path)
	} else {
		fmt.Fprintf(w, "Output: \t%s\n", res.Path)
	}
}

func listNames(w io.Writer) {
	fmt.Fprintln(w, "sounds:")
	for _, names := range homados.SoundGroups() {
		fmt.Fprintf(w, "  %-20s %s\n", names[0], strings.Join(names[1:], " "))
	}
	fmt.Fprintf(w, "windows:\n  %s\n", strings.Join(homados.WindowNames(), " "))
}
