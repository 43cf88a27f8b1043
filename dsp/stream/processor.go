package stream

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pingpong/dsp/buffer"
	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("stream: processor closed")

// BlockFunc consumes one drained block. full is false only for the trailing
// partial block delivered by Flush. The slice is reused after the call
// returns and must not be retained.
type BlockFunc func(block []float64, full bool) error

// Stats summarizes the blocks the handler accepted so far. A block whose
// handler call returned an error is not counted.
type Stats struct {
	// Blocks counts accepted blocks, including partial ones.
	Blocks int
	// Samples counts valid samples in accepted blocks.
	Samples int
	// Partial counts accepted blocks delivered by Flush.
	Partial int
	// Peak is the largest absolute sample value seen.
	Peak float64
}

// Processor feeds a sample stream through a pingpong.Buffer and hands every
// completed batch to a BlockFunc.
//
// Write never lets the buffer refuse a swap: the reserve is drained before
// the active slot can fill, and input is split so no Append exceeds the
// combined slot capacity.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	cfg     core.ProcessorConfig
	buf     *pingpong.Buffer[float64]
	handler BlockFunc
	pool    *buffer.Pool[float64]
	pad     bool
	closed  bool
	stats   Stats
}

// Option configures a Processor.
type Option func(*Processor)

// WithConfig applies processor options; BlockSize sets the slot capacity.
func WithConfig(opts ...core.ProcessorOption) Option {
	return func(p *Processor) {
		for _, opt := range opts {
			if opt != nil {
				opt(&p.cfg)
			}
		}
	}
}

// WithPool sets the pool that supplies drain blocks. Its block length must
// match the configured block size, otherwise NewProcessor fails.
func WithPool(pool *buffer.Pool[float64]) Option {
	return func(p *Processor) {
		p.pool = pool
	}
}

// WithPadding makes Flush hand the full zero-padded block to the handler
// instead of only the valid prefix.
func WithPadding(pad bool) Option {
	return func(p *Processor) {
		p.pad = pad
	}
}

// NewProcessor returns a Processor delivering blocks to handler.
func NewProcessor(handler BlockFunc, opts ...Option) (*Processor, error) {
	if handler == nil {
		return nil, errors.New("stream: handler must not be nil")
	}

	p := &Processor{
		cfg:     core.DefaultProcessorConfig(),
		handler: handler,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	if p.pool == nil {
		p.pool = buffer.NewPool[float64](p.cfg.BlockSize)
	} else if p.pool.Len() != p.cfg.BlockSize {
		return nil, fmt.Errorf("stream: pool block length %d does not match block size %d", p.pool.Len(), p.cfg.BlockSize)
	}

	buf, err := pingpong.New[float64](p.cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	p.buf = buf

	return p, nil
}

// Config returns the processor configuration.
func (p *Processor) Config() core.ProcessorConfig {
	return p.cfg
}

// Stats returns delivery statistics.
func (p *Processor) Stats() Stats {
	return p.stats
}

// Pending returns the number of buffered samples not yet delivered.
func (p *Processor) Pending() int {
	n := p.buf.Position()
	if p.buf.IsReserveFull() {
		n += p.buf.Cap()
	}
	return n
}

// Push writes a single sample.
func (p *Processor) Push(sample float64) error {
	return p.Write([]float64{sample})
}

// Write buffers samples and delivers every batch that completes.
// A handler error stops the write and is returned wrapped with the block
// index. The failing block is not redelivered and samples not yet appended
// are discarded.
func (p *Processor) Write(samples []float64) error {
	if p.closed {
		return ErrClosed
	}

	size := p.buf.Cap()

	for len(samples) > 0 {
		if err := p.drain(); err != nil {
			return err
		}

		n := min(len(samples), 2*size-p.buf.Position())

		swapped, err := p.buf.Append(samples[:n])
		if err != nil {
			return fmt.Errorf("stream: append: %w", err)
		}
		samples = samples[n:]

		if swapped {
			if err := p.drain(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Flush delivers the pending reserve batch, if any, and then the partial
// active slot. The handler is not called for an empty active slot.
func (p *Processor) Flush() error {
	if err := p.drain(); err != nil {
		return err
	}

	// A full active slot still owes its swap.
	if p.buf.Position() == p.buf.Cap() {
		if _, err := p.buf.Append(nil); err != nil {
			return fmt.Errorf("stream: append: %w", err)
		}
		if err := p.drain(); err != nil {
			return err
		}
	}

	if p.buf.IsEmpty() {
		return nil
	}

	blk := p.pool.Get()
	defer p.pool.Put(blk)

	blk.SetValid(p.buf.FlushInto(blk.Samples()))

	out := blk.Data()
	if p.pad {
		out = blk.Samples()
	}

	return p.deliver(out, blk.Valid(), false)
}

// Close flushes pending samples and rejects further writes.
func (p *Processor) Close() error {
	if p.closed {
		return nil
	}

	err := p.Flush()
	p.closed = true

	return err
}

// Reset discards buffered samples and statistics and reopens the processor.
func (p *Processor) Reset() {
	p.buf.Clear()
	p.stats = Stats{}
	p.closed = false
}

func (p *Processor) drain() error {
	if !p.buf.IsReserveFull() {
		return nil
	}

	blk := p.pool.Get()
	defer p.pool.Put(blk)

	p.buf.ReadInto(blk.Samples())
	blk.SetValid(blk.Len())

	return p.deliver(blk.Samples(), blk.Valid(), true)
}

func (p *Processor) deliver(block []float64, valid int, full bool) error {
	if err := p.handler(block, full); err != nil {
		return fmt.Errorf("stream: block %d: %w", p.stats.Blocks, err)
	}

	p.stats.Blocks++
	p.stats.Samples += valid
	if !full {
		p.stats.Partial++
	}

	for _, v := range block[:valid] {
		if a := math.Abs(v); a > p.stats.Peak {
			p.stats.Peak = a
		}
	}

	return nil
}
