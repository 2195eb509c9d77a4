// SPDX-License-Identifier: MPL-2.0

// Package runs collapses a line stream into runs of adjacent identical lines.
//
// A Collapser keeps at most one open run. Each line either extends the open
// run or closes it (emitting it to a Sink) and opens a new one. End of input
// flushes the open run. A read failure is returned unchanged and the open run
// is discarded, so no partial output results from a failed read.
package runs

import (
	"errors"
	"io"
	"math"

	"github.com/invowk/textkit/internal/lines"
)

// ErrCountOverflow is returned when a run would exceed the maximum count.
var ErrCountOverflow = errors.New("run count overflow")

type (
	// Run is a maximal sequence of consecutive equal lines.
	// Line is the first member of the run; Count is always >= 1.
	Run struct {
		Line  lines.Line
		Count uint64
	}

	// Sink receives completed runs in input order.
	Sink interface {
		Emit(run Run) error
	}

	// SinkFunc adapts a function to the Sink interface.
	SinkFunc func(run Run) error

	// EqualFunc decides whether two lines belong to the same run.
	EqualFunc func(a, b lines.Line) bool

	// Collapser is the push-style form of Collapse.
	// The zero value is not usable; construct with NewCollapser.
	Collapser struct {
		sink    Sink
		equal   EqualFunc
		current Run
		open    bool
		read    uint64
		emitted uint64
	}

	// Option configures a Collapser.
	Option func(*Collapser)
)

// Emit calls f(run).
func (f SinkFunc) Emit(run Run) error {
	return f(run)
}

// WithEqual replaces exact byte equality with a custom comparison.
func WithEqual(eq EqualFunc) Option {
	return func(c *Collapser) {
		if eq != nil {
			c.equal = eq
		}
	}
}

// NewCollapser creates a Collapser that emits to sink.
func NewCollapser(sink Sink, opts ...Option) *Collapser {
	c := &Collapser{
		sink:  sink,
		equal: lines.Line.Equal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push feeds one line. When it differs from the open run, the open run is
// emitted before the new one is opened.
func (c *Collapser) Push(line lines.Line) error {
	if c.read == math.MaxUint64 {
		return ErrCountOverflow
	}

	if c.open && c.equal(c.current.Line, line) {
		c.current.Count++
		c.read++
		return nil
	}

	if c.open {
		if err := c.emit(); err != nil {
			return err
		}
	}

	c.current = Run{Line: line, Count: 1}
	c.open = true
	c.read++
	return nil
}

// Flush emits the open run, if any. Flushing twice emits nothing the second
// time.
func (c *Collapser) Flush() error {
	if !c.open {
		return nil
	}
	return c.emit()
}

// LinesRead returns the number of lines pushed so far.
func (c *Collapser) LinesRead() uint64 {
	return c.read
}

// RunsEmitted returns the number of runs delivered to the sink.
func (c *Collapser) RunsEmitted() uint64 {
	return c.emitted
}

func (c *Collapser) emit() error {
	run := c.current
	c.current = Run{}
	c.open = false
	if err := c.sink.Emit(run); err != nil {
		return err
	}
	c.emitted++
	return nil
}

// Collapse reads src to the end and emits one Run per maximal group of equal
// adjacent lines. Empty input emits nothing and succeeds.
func Collapse(src lines.Source, sink Sink, opts ...Option) error {
	return collapse(src, NewCollapser(sink, opts...))
}

// CollapseStats is like Collapse but also reports how many lines were read and
// how many runs were emitted.
func CollapseStats(src lines.Source, sink Sink, opts ...Option) (read, emitted uint64, err error) {
	c := NewCollapser(sink, opts...)
	err = collapse(src, c)
	return c.LinesRead(), c.RunsEmitted(), err
}

func collapse(src lines.Source, c *Collapser) error {
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return c.Flush()
		}
		if err != nil {
			return err
		}
		if err := c.Push(line); err != nil {
			return err
		}
	}
}
