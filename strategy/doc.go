// Package strategy defines the Strategy Descriptor: the pure-function
// capability every calculation node installs.
//
// A Descriptor declares the names it reads (parameters and/or upstream node
// outputs) via Dependencies, and computes a Node Output from those via
// Calculate. Calculate must be pure with respect to its declared inputs —
// no hidden state, no I/O — so the engine's caching is sound: the same
// strategy and the same inputs always produce the same output.
//
// Dependency kinds are discriminated only at resolution time — a name is
// either a parameter or a node. Calculate receives that distinction encoded
// as DepValue, a tagged union of Scalar and Node.
package strategy
