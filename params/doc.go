// Package params defines the Parameter Bundle: an immutable snapshot of
// user-supplied scalar inputs to a calculation engine run.
//
// A Bundle is built once via NewBundle and never mutated afterward; the
// engine replaces a stale Bundle wholesale rather than editing one in place.
// Unknown names are never silently created — Get on a name the Bundle does
// not carry fails with ErrNotFound.
package params
