package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"

	tbxerrors "github.com/mirkobrombin/go-tbx/v1/errors"
	"github.com/mirkobrombin/go-tbx/v1/metrics"
)

// Handler processes a failed assertion. file and line identify the call site
// that triggered it. A handler must not assume it runs on any particular
// goroutine.
type Handler func(file string, line int)

var handler atomic.Pointer[Handler]

// SetHandler installs h as the assertion handler. Passing nil is itself an
// assertion failure and leaves the current handler installed.
func SetHandler(h Handler) {
	if h == nil {
		trigger()
		return
	}
	handler.Store(&h)
}

// Assert triggers the assertion handler when cond is false.
func Assert(cond bool) {
	if !cond {
		trigger()
	}
}

// Trigger unconditionally reports an assertion failure at the caller.
func Trigger() {
	trigger()
}

// trigger reports the failure two frames up: the caller of the exported
// function that detected it.
func trigger() {
	metrics.AssertionCounter.Inc()
	file, line := "unknown", 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file, line = f, l
	}
	if h := handler.Load(); h != nil {
		(*h)(file, line)
		return
	}
	panic(fmt.Errorf("%w at %s:%d", tbxerrors.ErrAssertionFailed, file, line))
}
