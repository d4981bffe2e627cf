// Package biquad provides second-order IIR section primitives.
//
// [Coefficients] describes one section. The response helpers evaluate a
// section at a complex point ([Coefficients.ResponseAt]) or at an angular
// frequency ([Coefficients.MagnitudeAt]); these are the kernels the response
// engine in dsp/filter/ideal multiplies across a cascade.
//
// [Section] and [Chain] run Direct Form II Transposed recursions and are used
// to render impulse responses when cross-checking analytic responses.
//
// Coefficient design lives in dsp/filter/design.
package biquad
