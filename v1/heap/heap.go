package heap

import (
	"math/bits"

	"github.com/mirkobrombin/go-tbx/v1/assert"
	"github.com/mirkobrombin/go-tbx/v1/critsect"
	"github.com/mirkobrombin/go-tbx/v1/metrics"
)

// wordSize is the pointer size of the architecture in bytes. Allocation sizes
// are rounded up to it.
const wordSize = bits.UintSize / 8

// Heap is a fixed-capacity allocate-only arena.
type Heap struct {
	arena []byte
	used  int
}

// New returns a heap with the given capacity in bytes. A non-positive size is
// a usage error and yields nil.
func New(size int) *Heap {
	if size <= 0 {
		assert.Trigger()
		return nil
	}
	return &Heap{arena: make([]byte, size)}
}

// Allocate reserves size bytes from the heap and returns them. The reserved
// size is rounded up to the pointer size of the architecture. A zero or
// negative size is a usage error and yields nil; an allocation larger than
// the remaining free space yields nil without asserting.
func (h *Heap) Allocate(size int) []byte {
	if size <= 0 {
		assert.Trigger()
		return nil
	}

	s := critsect.Disable()
	defer critsect.Restore(s)
	free := len(h.arena) - h.used
	// Bound the request before rounding so align cannot overflow.
	if size > free {
		return nil
	}
	size = align(size)
	if size > free {
		return nil
	}
	mem := h.arena[h.used : h.used+size : h.used+size]
	h.used += size
	metrics.HeapUsedGauge.Set(float64(h.used))
	return mem
}

// Free reports the number of bytes still available for allocation.
func (h *Heap) Free() int {
	s := critsect.Disable()
	defer critsect.Restore(s)
	return len(h.arena) - h.used
}

func align(n int) int {
	return (n + wordSize - 1) &^ (wordSize - 1)
}
