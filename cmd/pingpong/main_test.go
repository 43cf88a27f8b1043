package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/window"
)

func TestRun(t *testing.T) {
	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
	}

	// Bin 8 of a 256-point block at 48 kHz is 1500 Hz.
	sig, err := generate(coreOpts, tone{bin: 8, amp: 0.5, seed: 1, samples: 1000})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out, sig, 100, false, window.TypeHann, coreOpts); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	// Header, separator, 4 blocks, blank line, summary.
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out.String())
	}

	if !strings.Contains(lines[2], "1500.00") {
		t.Fatalf("first block row %q does not report the 1500 Hz peak", lines[2])
	}

	fields := strings.Fields(lines[5])
	if len(fields) < 3 || fields[0] != "3" || fields[1] != "232" {
		t.Fatalf("trailing block row = %q, want index 3 with 232 samples", lines[5])
	}

	// Block 3 starts 3*256 samples into the stream.
	if fields[2] != "0.0160" {
		t.Fatalf("trailing block time = %q, want 0.0160", fields[2])
	}

	if !strings.HasPrefix(lines[7], "4 blocks (1 partial), 1000 samples") {
		t.Fatalf("summary = %q", lines[7])
	}
}

func TestGenerateWithNoise(t *testing.T) {
	coreOpts := []core.ProcessorOption{core.WithSampleRate(48000)}

	clean, err := generate(coreOpts, tone{freq: 1000, amp: 0.5, seed: 1, samples: 64})
	if err != nil {
		t.Fatal(err)
	}
	noisy, err := generate(coreOpts, tone{freq: 1000, amp: 0.5, noise: 0.1, seed: 1, samples: 64})
	if err != nil {
		t.Fatal(err)
	}

	differs := false
	for i := range clean {
		if clean[i] != noisy[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("noise was not mixed into the tone")
	}

	if _, err := generate(coreOpts, tone{freq: 1000, amp: 0.5, seed: 1}); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestGenerateBinOverridesFrequency(t *testing.T) {
	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
	}

	onBin, err := generate(coreOpts, tone{freq: 440, bin: 8, amp: 0.5, samples: 256})
	if err != nil {
		t.Fatal(err)
	}
	direct, err := generate(coreOpts, tone{freq: 1500, amp: 0.5, samples: 256})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(direct, onBin); diff != "" {
		t.Fatalf("bin 8 tone mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRejectsBadChunk(t *testing.T) {
	coreOpts := []core.ProcessorOption{core.WithBlockSize(64)}

	var out bytes.Buffer
	if err := run(&out, make([]float64, 10), 0, false, window.TypeHann, coreOpts); err == nil {
		t.Fatal("expected error for zero chunk size")
	}
}
