// Package registry implements the Strategy Registry: a lookup of the
// default Strategy Descriptor for each known node name, plus any declared
// alternative descriptors for that node (e.g. Lukoschus vs Clerc lambda).
//
// The registry never executes a strategy; it only hands descriptors to
// callers (the engine) by name.
package registry
