package core

import "fmt"

// ProcessorConfig defines common block processing settings.
// BlockSize is the slot capacity of the double buffer feeding a processor.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and streaming use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid field of cfg.
// Configs built by ApplyProcessorOptions are always valid; literals may not be.
func (cfg ProcessorConfig) Validate() error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.BlockSize <= 0 {
		return fmt.Errorf("block size must be > 0: %d", cfg.BlockSize)
	}
	return nil
}

// BlockDuration returns the length of one block in seconds.
func (cfg ProcessorConfig) BlockDuration() float64 {
	if cfg.SampleRate <= 0 {
		return 0
	}
	return float64(cfg.BlockSize) / cfg.SampleRate
}
