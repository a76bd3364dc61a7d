package store

import "errors"

// ErrNotReady indicates current() or commit() was requested while at least
// one tracked name is still Stale.
var ErrNotReady = errors.New("store: not ready, stale entries present")

// ErrOutOfRange indicates a history index outside the current ring bounds.
var ErrOutOfRange = errors.New("store: history index out of range")
