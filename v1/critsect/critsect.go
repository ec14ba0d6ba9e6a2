package critsect

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mirkobrombin/go-tbx/v1/assert"
	"github.com/mirkobrombin/go-tbx/v1/metrics"
)

var tracer = otel.Tracer("github.com/mirkobrombin/go-tbx/v1/critsect")

// State is the opaque token returned by Disable and consumed by the matching
// Restore. On this backend it carries no information; backends that save a
// real interrupt mask return it through the same type.
type State uintptr

// guard owns the lazily created lock and the holder bookkeeping. owner is the
// goroutine id of the current holder, zero when the section is free.
type guard struct {
	once        sync.Once
	lock        *mutex
	initialized atomic.Bool
	owner       atomic.Int64

	traceEnabled atomic.Bool
	span         trace.Span
}

var global guard

func (g *guard) init() {
	g.once.Do(func() {
		g.lock = new(mutex)
		g.initialized.Store(true)
	})
}

// Disable enters the process-wide critical section, blocking until it is
// available. Calling Disable again from the goroutine that already holds the
// section is a no-op: nesting is not depth-counted, and the first Restore
// from the holder releases the section. The returned State must be passed to
// the matching Restore.
func Disable() State {
	return global.disable()
}

// Restore exits the critical section entered by the matching Disable. If the
// calling goroutine does not hold the section the call is a no-op. Calling
// Restore before any Disable ever initialized the section is a usage error
// and triggers an assertion.
func Restore(s State) {
	global.restore(s)
}

// With runs fn inside the critical section.
func With(fn func()) {
	s := Disable()
	defer Restore(s)
	fn()
}

// EnableTracing toggles an OpenTelemetry span covering each held section.
func EnableTracing(v bool) {
	global.traceEnabled.Store(v)
}

func (g *guard) disable() State {
	g.init()
	id := goid.Get()
	if g.owner.Load() == id {
		// Nested entry from the holding goroutine. The section stays held;
		// the holder's first Restore releases it.
		metrics.CritSectNestedCounter.Inc()
		return 0
	}
	start := time.Now()
	g.lock.Lock()
	metrics.CritSectWaitHist.Observe(time.Since(start).Seconds())
	g.owner.Store(id)
	metrics.CritSectEnterCounter.Inc()
	metrics.CritSectHeldGauge.Set(1)
	if g.traceEnabled.Load() {
		_, span := tracer.Start(context.Background(), "critsect.hold",
			trace.WithAttributes(attribute.Int64("goroutine.id", id)))
		g.span = span
	}
	return 0
}

func (g *guard) restore(State) {
	if !g.initialized.Load() {
		assert.Trigger()
		return
	}
	id := goid.Get()
	if !g.owner.CompareAndSwap(id, 0) {
		// Not the holder: a redundant Restore is absorbed silently.
		return
	}
	if g.span != nil {
		g.span.End()
		g.span = nil
	}
	metrics.CritSectHeldGauge.Set(0)
	g.lock.Unlock()
}
