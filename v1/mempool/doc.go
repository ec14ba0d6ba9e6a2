// Package mempool provides pools of fixed-size memory blocks carved from a
// single backing arena, modelled after the block pools embedded firmware uses
// to avoid fragmentation. Allocation and release run inside the process-wide
// critical section. Each pool carries a unique identity used to label its
// metrics.
package mempool
