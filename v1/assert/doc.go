// Package assert provides the run-time assertion hook used throughout the
// toolbox. Usage errors trigger the installed handler with the offending call
// site; the default handler panics. Applications typically install their own
// handler early during startup to route failures into their logging or crash
// reporting.
package assert
