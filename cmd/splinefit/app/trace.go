package app

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// TraceSelector creates a tracer per key on first use and hands out the
// same tracer for every later selection of that key. Trace levels set on a
// selected tracer therefore stay in effect.
type TraceSelector struct {
	mx        sync.Mutex
	newTracer func() tracing.Trace
	tracers   map[string]tracing.Trace
}

// NewTraceSelector returns a selector creating tracers with newTracer,
// e.g. gologadapter.New.
func NewTraceSelector(newTracer func() tracing.Trace) *TraceSelector {
	return &TraceSelector{
		newTracer: newTracer,
		tracers:   make(map[string]tracing.Trace),
	}
}

// Select is part of interface tracing.TraceSelector.
func (sel *TraceSelector) Select(key string) tracing.Trace {
	sel.mx.Lock()
	defer sel.mx.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = sel.newTracer()
		sel.tracers[key] = t
	}
	return t
}
