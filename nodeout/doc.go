// Package nodeout defines Node Output: the value a single strategy
// evaluation produces, immutable once stored.
//
// Data carries either a scalar or a 1-D/2-D numeric array; Labels names each
// column (first is conventionally "Frequency" for array outputs); Units
// carries the matching unit string per label. The engine does not interpret
// units or labels — it forwards them verbatim from strategy to caller.
package nodeout
