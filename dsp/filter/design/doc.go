// Package design provides the coefficient-design table consumed by the
// filter response engine.
//
// The RBJ cookbook designers ([LowpassBiquad], [HighpassBiquad],
// [BandpassBiquad], [NotchBiquad], [PeakBiquad], [LowShelfBiquad] and
// [HighShelfBiquad]) each produce one normalized second-order section.
// [Table] maps a [FilterType] to a [Formula] that decomposes a requested
// order into a cascade of first- and second-order sections written into a
// caller-owned slice. Formulas are deterministic and never allocate.
package design
