// Package render runs the host-supplied markdown renderer asynchronously
// and stores its latest output. Renders are stamped with a monotonic
// generation; a result older than the last applied one is discarded, so the
// settled output always reflects the most recent text even when renders
// finish out of issue order.
package render

import (
	"sync"
)

// Func converts markdown to rendered output. Hosts supply one at editor
// construction; a slow or remote renderer simply blocks the goroutine the
// pipeline runs it on.
type Func func(markdown string) (string, error)

// Pipeline owns the rendered-output slot.
type Pipeline struct {
	mu      sync.Mutex
	fn      Func
	output  string
	issued  uint64
	applied uint64

	missingWarned bool
	warn          func(msg string)
}

// New creates a pipeline around fn. fn may be nil; every render then
// settles immediately with the output unchanged, and warn (if non-nil) is
// invoked once to report the missing renderer.
func New(fn Func, warn func(msg string)) *Pipeline {
	return &Pipeline{fn: fn, warn: warn}
}

// Output returns the most recently applied rendered output.
func (p *Pipeline) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.output
}

// Render issues an asynchronous render of text. The returned channel yields
// exactly one value when this render settles: the renderer's error, or nil.
// A stale result (superseded by a later render that settled first) is
// discarded but still settles with nil.
func (p *Pipeline) Render(text string) <-chan error {
	done := make(chan error, 1)

	p.mu.Lock()
	if p.fn == nil {
		if !p.missingWarned {
			p.missingWarned = true
			if p.warn != nil {
				p.warn("no render function configured; preview output disabled")
			}
		}
		p.mu.Unlock()
		done <- nil
		return done
	}
	p.issued++
	gen := p.issued
	fn := p.fn
	p.mu.Unlock()

	go func() {
		out, err := fn(text)
		if err != nil {
			done <- err
			return
		}

		p.mu.Lock()
		if gen > p.applied {
			p.applied = gen
			p.output = out
		}
		p.mu.Unlock()
		done <- nil
	}()

	return done
}
