// Package heap provides a fixed-capacity, allocate-only arena modelled after
// the static heaps of embedded targets: memory is handed out in pointer-size
// aligned chunks and never reclaimed. State mutations run inside the
// process-wide critical section.
package heap
