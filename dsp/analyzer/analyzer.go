package analyzer

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/stream"
	"github.com/cwbudde/algo-pingpong/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// FloorDB is the level reported for silent blocks and bins.
const FloorDB = -200.0

const minBlockSize = 4

// ErrBlockSize is returned by Process for blocks longer than the FFT size.
var ErrBlockSize = errors.New("analyzer: block longer than FFT size")

// Frame holds the statistics of one analyzed block.
type Frame struct {
	// Index is the zero-based block sequence number.
	Index int
	// Count is the number of valid samples in the block.
	Count int
	// RMS is the root-mean-square level of the valid samples.
	RMS float64
	// RMSDB is RMS in dBFS, floored at FloorDB.
	RMSDB float64
	// PeakBin is the strongest bin in [1, size/2].
	PeakBin int
	// PeakHz is the centre frequency of PeakBin.
	PeakHz float64
	// PeakDB is the sine-equivalent amplitude of PeakBin in dBFS.
	PeakDB float64
}

// Analyzer turns blocks into Frames. It keeps its FFT plan and scratch
// buffers between calls and is not safe for concurrent use.
type Analyzer struct {
	cfg    core.ProcessorConfig
	win    window.Type
	coeffs []float64
	scale  float64
	plan   *algofft.Plan[complex128]
	frame  []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	power  []float64
	index  int
}

// New returns an Analyzer for blocks of cfg.BlockSize samples, which must be
// a power of two.
func New(win window.Type, opts ...core.ProcessorOption) (*Analyzer, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	size := cfg.BlockSize
	if size < minBlockSize || size&(size-1) != 0 {
		return nil, fmt.Errorf("analyzer block size must be a power of two >= %d: %d", minBlockSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analyzer: failed to create FFT plan: %w", err)
	}

	coeffs := window.Generate(win, size, window.WithPeriodic())

	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	// Maps |X[k]|^2 of a bin-centred sine to its squared amplitude.
	norm := 2 / (float64(size) * gain)

	bins := size/2 + 1

	return &Analyzer{
		cfg:    cfg,
		win:    win,
		coeffs: coeffs,
		scale:  norm * norm,
		plan:   plan,
		frame:  make([]float64, size),
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		power:  make([]float64, bins),
	}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() core.ProcessorConfig {
	return a.cfg
}

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type {
	return a.win
}

// Spectrum returns the normalized power spectrum of the last processed block.
// The slice is overwritten by the next call to Process.
func (a *Analyzer) Spectrum() []float64 {
	return a.power
}

// Process analyzes block. Blocks shorter than the FFT size are zero-padded;
// longer ones are rejected with ErrBlockSize.
func (a *Analyzer) Process(block []float64) (Frame, error) {
	size := len(a.frame)
	if len(block) > size {
		return Frame{}, fmt.Errorf("%w: %d > %d", ErrBlockSize, len(block), size)
	}

	n := core.CopyInto(a.frame, block)
	core.Zero(a.frame[n:])

	f := Frame{
		Index: a.index,
		Count: n,
	}
	a.index++

	if n > 0 {
		sumSq := 0.0
		for _, v := range a.frame[:n] {
			sumSq += v * v
		}
		f.RMS = math.Sqrt(sumSq / float64(n))
	}
	f.RMSDB = core.FloorDB(core.LinearToDB(f.RMS), FloorDB)

	if err := window.ApplyCoefficientsInPlace(a.frame, a.coeffs); err != nil {
		return Frame{}, fmt.Errorf("analyzer: %w", err)
	}

	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Frame{}, fmt.Errorf("analyzer: forward FFT: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Power(a.power, a.re, a.im)
	vecmath.ScaleBlock(a.power, a.power, a.scale)

	peak := 1
	for k := 2; k < len(a.power); k++ {
		if a.power[k] > a.power[peak] {
			peak = k
		}
	}

	f.PeakBin = peak
	f.PeakHz = float64(peak) * a.cfg.SampleRate / float64(size)
	f.PeakDB = core.FloorDB(core.LinearPowerToDB(a.power[peak]), FloorDB)

	return f, nil
}

// Reset restarts frame numbering.
func (a *Analyzer) Reset() {
	a.index = 0
}

// Handler adapts the analyzer to a stream.BlockFunc that passes every
// frame to fn.
func (a *Analyzer) Handler(fn func(Frame)) stream.BlockFunc {
	return func(block []float64, _ bool) error {
		f, err := a.Process(block)
		if err != nil {
			return err
		}
		if fn != nil {
			fn(f)
		}
		return nil
	}
}
