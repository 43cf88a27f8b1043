// Command pingpong streams a generated test tone through a double buffer and
// prints level and spectral statistics for every drained block.
//
// Usage:
//
//	pingpong [flags]
//
// The tone is written in chunks of -chunk samples, the way a receiver would
// deliver it. Every completed block is analyzed as soon as the buffer swaps;
// the trailing partial block is flushed at end of stream.
//
// Examples:
//
//	pingpong
//	pingpong -size 512 -freq 440 -samples 4800
//	pingpong -size 1024 -chunk 300 -window blackman -pad
//	pingpong -freq 1500 -noise 0.01 -seed 7
//	pingpong -size 256 -bin 8
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pingpong/dsp/analyzer"
	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/signal"
	"github.com/cwbudde/algo-pingpong/dsp/stream"
	"github.com/cwbudde/algo-pingpong/dsp/window"
)

func main() {
	size := flag.Int("size", 1024, "slot capacity in samples (power of two)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 1000, "test tone frequency in Hz")
	bin := flag.Int("bin", 0, "place the tone on this FFT bin instead of -freq (0 = off)")
	amp := flag.Float64("amp", 0.5, "test tone amplitude")
	noise := flag.Float64("noise", 0, "white noise amplitude mixed into the tone")
	seed := flag.Int64("seed", 1, "noise seed")
	samples := flag.Int("samples", 48000, "number of samples to stream")
	chunk := flag.Int("chunk", 256, "samples per write")
	winName := flag.String("window", "hann", "analysis window (rectangular, hann, hamming, blackman)")
	pad := flag.Bool("pad", false, "deliver the trailing block zero-padded to full size")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pingpong [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams a test tone through a double buffer and analyzes each drained block.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pingpong -size 512 -freq 440 -samples 4800\n")
		fmt.Fprintf(os.Stderr, "  pingpong -size 1024 -chunk 300 -window blackman -pad\n")
		fmt.Fprintf(os.Stderr, "  pingpong -size 256 -bin 8\n")
	}
	flag.Parse()

	winType, err := window.Parse(strings.ToLower(strings.TrimSpace(*winName)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(*rate),
		core.WithBlockSize(*size),
	}

	sig, err := generate(coreOpts, tone{
		freq:    *freq,
		bin:     *bin,
		amp:     *amp,
		noise:   *noise,
		seed:    *seed,
		samples: *samples,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, sig, *chunk, *pad, winType, coreOpts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// tone describes the generated test signal.
type tone struct {
	freq    float64
	bin     int // overrides freq when > 0
	amp     float64
	noise   float64
	seed    int64
	samples int
}

func generate(coreOpts []core.ProcessorOption, t tone) ([]float64, error) {
	g := signal.NewGenerator(coreOpts, signal.WithSeed(t.seed))

	freq := t.freq
	if t.bin > 0 {
		freq = g.BinFrequency(t.bin)
	}

	sig, err := g.Sine(freq, t.amp, t.samples)
	if err != nil {
		return nil, err
	}

	if t.noise > 0 {
		n, err := g.WhiteNoise(t.noise, t.samples)
		if err != nil {
			return nil, err
		}
		signal.MixInto(sig, n)
	}

	return sig, nil
}

func run(w io.Writer, sig []float64, chunk int, pad bool, winType window.Type, coreOpts []core.ProcessorOption) error {
	an, err := analyzer.New(winType, coreOpts...)
	if err != nil {
		return err
	}

	blockTime := an.Config().BlockDuration()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Block\tCount\tTime [s]\tRMS [dBFS]\tPeak [Hz]\tPeak [dBFS]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t--------\t----------\t---------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	var writeErr error

	p, err := stream.NewProcessor(an.Handler(func(f analyzer.Frame) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.2f\t%.2f\t%.2f\n",
			f.Index,
			f.Count,
			float64(f.Index)*blockTime,
			f.RMSDB,
			f.PeakHz,
			f.PeakDB,
		)
	}), stream.WithConfig(coreOpts...), stream.WithPadding(pad))
	if err != nil {
		return err
	}

	if err := signal.WriteChunks(p, sig, chunk); err != nil {
		return err
	}

	if err := p.Close(); err != nil {
		return err
	}

	if writeErr != nil {
		return fmt.Errorf("failed to write output row: %w", writeErr)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	st := p.Stats()
	_, err = fmt.Fprintf(w, "\n%d blocks (%d partial), %d samples, peak %.2f dBFS\n",
		st.Blocks, st.Partial, st.Samples, core.FloorDB(core.LinearToDB(st.Peak), analyzer.FloorDB))

	return err
}
