package auxengine

import "errors"

// ErrHelperDied is the fatal error surfaced when a helper's child process
// is no longer running at the point a worker tries to write to it. Per
// SPEC_FULL.md §7 it aborts the search; everything else in the error
// taxonomy (corruption, empty PV, cap exceeded, stale purge, stop) is
// handled inline and never reaches a caller as an error value.
var ErrHelperDied = errors.New("auxengine: helper process died")

// ErrDisabled is returned by NewEngine when the configuration has no helper
// executable configured.
var ErrDisabled = errors.New("auxengine: subsystem disabled (AuxEngineFile empty)")
