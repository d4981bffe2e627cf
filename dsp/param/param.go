package param

import (
	"math"
	"sync/atomic"
)

// Float64 is an atomic float64 slot. The zero value holds 0.
type Float64 struct {
	bits atomic.Uint64
}

// NewFloat64 returns a slot holding v.
func NewFloat64(v float64) *Float64 {
	f := &Float64{}
	f.Store(v)
	return f
}

// Load returns the stored value.
func (f *Float64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store replaces the stored value.
func (f *Float64) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// StoreIfChanged stores v only when it differs from the current value by
// more than eps and reports whether it did.
func (f *Float64) StoreIfChanged(v, eps float64) bool {
	if math.Abs(v-f.Load()) <= eps {
		return false
	}

	f.Store(v)

	return true
}

// Int is an atomic int slot. The zero value holds 0.
type Int struct {
	v atomic.Int64
}

// Load returns the stored value.
func (i *Int) Load() int {
	return int(i.v.Load())
}

// Store replaces the stored value.
func (i *Int) Store(v int) {
	i.v.Store(int64(v))
}

// Enum is an atomic slot for small integer enumerations.
type Enum[T ~int] struct {
	v atomic.Int64
}

// Load returns the stored value.
func (e *Enum[T]) Load() T {
	return T(e.v.Load())
}

// Store replaces the stored value.
func (e *Enum[T]) Store(v T) {
	e.v.Store(int64(v))
}

// Flag is the coalescing dirty flag shared by one writer and one consumer.
// The zero value is clear; use [NewFlag] for a flag that starts raised.
type Flag struct {
	dirty atomic.Bool
}

// NewFlag returns a raised flag, so the first claim triggers a rebuild.
func NewFlag() *Flag {
	f := &Flag{}
	f.Raise()
	return f
}

// Raise marks the published parameters as changed.
func (f *Flag) Raise() {
	f.dirty.Store(true)
}

// Claim clears the flag and reports whether it was raised.
func (f *Flag) Claim() bool {
	return f.dirty.Swap(false)
}

// Pending reports whether the flag is raised without clearing it.
func (f *Flag) Pending() bool {
	return f.dirty.Load()
}

// Pull claims f and runs rebuild exactly once when the claim succeeds.
// It reports whether rebuild ran.
func Pull(f *Flag, rebuild func()) bool {
	if !f.Claim() {
		return false
	}

	rebuild()

	return true
}
