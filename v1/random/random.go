package random

import (
	"encoding/binary"
	"time"

	uuid "github.com/hashicorp/go-uuid"

	"github.com/mirkobrombin/go-tbx/v1/assert"
	"github.com/mirkobrombin/go-tbx/v1/critsect"
)

// SeedInitHandler produces the seed used to initialize the generator on its
// first use.
type SeedInitHandler func() uint32

// Generator state, guarded by the process-wide critical section.
var (
	seedFn SeedInitHandler
	state  uint32
	seeded bool
)

// SetSeedInitHandler installs fn as the seed source used when the generator
// first runs. A nil fn is a usage error: it triggers an assertion and keeps
// the current source.
func SetSeedInitHandler(fn SeedInitHandler) {
	if fn == nil {
		assert.Trigger()
		return
	}
	critsect.With(func() {
		seedFn = fn
	})
}

// Number returns the next pseudo-random number. The first call seeds the
// generator through the configured seed handler.
func Number() uint32 {
	var n uint32
	critsect.With(func() {
		if !seeded {
			fn := seedFn
			if fn == nil {
				fn = defaultSeed
			}
			state = fn()
			if state == 0 {
				// xorshift must not start from an all-zero state.
				state = 1
			}
			seeded = true
		}
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		n = state
	})
	return n
}

// defaultSeed draws four bytes of system entropy, falling back to the clock
// when entropy is unavailable.
func defaultSeed() uint32 {
	if b, err := uuid.GenerateRandomBytes(4); err == nil {
		return binary.BigEndian.Uint32(b)
	}
	return uint32(time.Now().UnixNano())
}
