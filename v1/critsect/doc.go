// Package critsect provides the single process-wide critical section used by
// the rest of the toolbox to protect short, non-reentrant internal state
// mutations. The hosted backend maps the disable/restore contract onto a
// lazily created mutex; bare-metal backends implement the same contract by
// masking interrupts and returning the saved mask as the State token.
//
// There is exactly one critical section per process, not a pool of
// independently lockable regions. Callers bracket shared-state mutations with
// Disable and Restore, always as a matched pair:
//
//	s := critsect.Disable()
//	defer critsect.Restore(s)
//
// Nested Disable calls from the goroutine already holding the section are
// no-ops. Nesting is not depth-counted: the holder's first Restore releases
// the section, and the remaining Restore calls of the nested pairs are
// no-ops. Building with -tags deadlock swaps the underlying mutex for a
// deadlock-detecting variant during development.
package critsect
