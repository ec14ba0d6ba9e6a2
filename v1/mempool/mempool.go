package mempool

import (
	"math"

	"github.com/google/uuid"

	"github.com/mirkobrombin/go-tbx/v1/assert"
	"github.com/mirkobrombin/go-tbx/v1/critsect"
	"github.com/mirkobrombin/go-tbx/v1/metrics"
)

// Pool hands out fixed-size blocks from a preallocated arena.
type Pool struct {
	id        string
	blockSize int
	free      [][]byte
	// allocated maps the first byte of each block to whether the block is
	// currently handed out. It doubles as the ownership check on Release.
	allocated map[*byte]bool
}

// New creates a pool of blockCount blocks of blockSize bytes each.
// Non-positive parameters, or parameters whose arena would overflow an int,
// are a usage error and yield nil.
func New(blockCount, blockSize int) *Pool {
	if blockCount <= 0 || blockSize <= 0 || blockCount > math.MaxInt/blockSize {
		assert.Trigger()
		return nil
	}
	p := &Pool{
		id:        uuid.NewString(),
		blockSize: blockSize,
		free:      make([][]byte, 0, blockCount),
		allocated: make(map[*byte]bool, blockCount),
	}
	arena := make([]byte, blockCount*blockSize)
	for i := 0; i < blockCount; i++ {
		b := arena[i*blockSize : (i+1)*blockSize : (i+1)*blockSize]
		p.free = append(p.free, b)
		p.allocated[&b[0]] = false
	}
	metrics.PoolFreeBlocks.WithLabelValues(p.id).Set(float64(blockCount))
	return p
}

// ID returns the unique identity of the pool.
func (p *Pool) ID() string {
	return p.id
}

// BlockSize returns the size of the blocks handed out by the pool.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

// Allocate returns a free block, or nil when the pool is exhausted.
func (p *Pool) Allocate() []byte {
	s := critsect.Disable()
	defer critsect.Restore(s)
	if len(p.free) == 0 {
		return nil
	}
	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.allocated[&b[0]] = true
	metrics.PoolFreeBlocks.WithLabelValues(p.id).Set(float64(len(p.free)))
	return b
}

// Release returns block to the pool. Releasing a block foreign to the pool,
// or releasing the same block twice, is a usage error: it triggers an
// assertion and leaves the pool unchanged.
func (p *Pool) Release(block []byte) {
	if len(block) != p.blockSize {
		assert.Trigger()
		return
	}
	s := critsect.Disable()
	defer critsect.Restore(s)
	held, ok := p.allocated[&block[0]]
	if !ok || !held {
		assert.Trigger()
		return
	}
	p.allocated[&block[0]] = false
	p.free = append(p.free, block)
	metrics.PoolFreeBlocks.WithLabelValues(p.id).Set(float64(len(p.free)))
}

// FreeBlocks reports the number of blocks currently available.
func (p *Pool) FreeBlocks() int {
	s := critsect.Disable()
	defer critsect.Restore(s)
	return len(p.free)
}
