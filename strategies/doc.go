// Package strategies provides the concrete Strategy Descriptors for a
// magnetic search-coil sensor model: the coil's electrical parameters
// (resistance, inductance, capacitance), its core's apparent permeability
// and demagnetizing factor, its impedance and ASIC transfer functions, its
// open- and closed-loop transfer functions, and a handful of noise
// spectral densities.
//
// Every type here is a zero-size strategy.Descriptor; none hold mutable
// state, matching the pure-function contract each must satisfy.
package strategies
