// Package list provides a doubly linked list whose operations run inside the
// process-wide critical section, mirroring how embedded firmware shares
// guarded lists between task and interrupt context. Operations are safe for
// concurrent use from multiple goroutines.
package list
