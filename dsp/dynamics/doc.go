// Package dynamics provides the soft-knee transfer-curve computer used by
// the compressor gain stage.
//
// [KneeComputer] turns threshold, ratio, knee width and curve shape into two
// quadratic polynomials: one bridging the knee and one shaping the region
// above it. Evaluating the curve is at most two multiply-adds per sample.
//
// Parameters are written from a control context through atomic setters and
// picked up by the consuming context with [KneeComputer.Pull], which rebuilds
// the polynomials at most once per call. Evaluation never blocks or
// allocates.
package dynamics
