package dynamics

import (
	"math"

	"github.com/cwbudde/algo-dyneq/dsp/core"
	"github.com/cwbudde/algo-dyneq/dsp/param"
)

const (
	defaultKneeThresholdDB = -18.0
	defaultKneeRatio       = 2.0
	defaultKneeWidthDB     = 0.25
	defaultKneeCurve       = 0.0

	minKneeRatio   = 1.0
	minKneeWidthDB = 0.01
	minKneeCurve   = -1.0
	maxKneeCurve   = 1.0
)

// KneeComputer computes the static compression curve in the dB domain.
//
// Below threshold-knee the input passes unchanged. Between threshold-knee
// and threshold+knee a quadratic bridges unity slope and the 1/ratio slope.
// Above threshold+knee the curve shape selects a blend of the linear, down
// and up prototypes; inputs above 0 dB are evaluated at 0 dB.
//
// Setters and getters may be called from any goroutine. Pull, Eval, Process
// and the derived-state accessors belong to the single consuming goroutine.
type KneeComputer struct {
	threshold param.Float64
	ratio     param.Float64
	kneeWidth param.Float64
	curve     param.Float64
	dirty     *param.Flag

	lowThreshold  float64
	highThreshold float64
	mid           Poly
	high          Poly
	unity         bool
}

// NewKneeComputer returns a computer with threshold -18 dB, ratio 2:1,
// knee 0.25 dB and a linear curve. The first Pull builds the curve.
func NewKneeComputer() *KneeComputer {
	k := &KneeComputer{dirty: param.NewFlag()}
	k.threshold.Store(defaultKneeThresholdDB)
	k.ratio.Store(defaultKneeRatio)
	k.kneeWidth.Store(defaultKneeWidthDB)
	k.curve.Store(defaultKneeCurve)

	return k
}

// SetThreshold sets the threshold in dB. Non-finite values are ignored.
func (k *KneeComputer) SetThreshold(dB float64) {
	if !core.IsFinite(dB) {
		return
	}

	k.threshold.Store(dB)
	k.dirty.Raise()
}

// Threshold returns the threshold in dB.
func (k *KneeComputer) Threshold() float64 { return k.threshold.Load() }

// SetRatio sets the compression ratio, floored at 1.
func (k *KneeComputer) SetRatio(ratio float64) {
	if math.IsNaN(ratio) {
		return
	}

	k.ratio.Store(math.Max(minKneeRatio, ratio))
	k.dirty.Raise()
}

// Ratio returns the compression ratio.
func (k *KneeComputer) Ratio() float64 { return k.ratio.Load() }

// SetKneeWidth sets the knee half-width in dB, floored at 0.01 dB.
func (k *KneeComputer) SetKneeWidth(dB float64) {
	if !core.IsFinite(dB) {
		return
	}

	k.kneeWidth.Store(math.Max(minKneeWidthDB, dB))
	k.dirty.Raise()
}

// KneeWidth returns the knee half-width in dB.
func (k *KneeComputer) KneeWidth() float64 { return k.kneeWidth.Load() }

// SetCurve sets the curve shape, clamped to [-1, 1].
//   - -1 = up curve (convex, returns to unity slope at 0 dB)
//   - 0 = linear compression line
//   - 1 = down curve (concave, flattens at 0 dB)
func (k *KneeComputer) SetCurve(shape float64) {
	if math.IsNaN(shape) {
		return
	}

	k.curve.Store(core.Clamp(shape, minKneeCurve, maxKneeCurve))
	k.dirty.Raise()
}

// Curve returns the curve shape.
func (k *KneeComputer) Curve() float64 { return k.curve.Load() }

// Outdated reports whether parameters changed since the last rebuild.
func (k *KneeComputer) Outdated() bool { return k.dirty.Pending() }

// Invalidate forces the next Pull to rebuild.
func (k *KneeComputer) Invalidate() { k.dirty.Raise() }

// Pull rebuilds the curve if any parameter was set since the last Pull and
// reports whether it did.
func (k *KneeComputer) Pull() bool {
	return param.Pull(k.dirty, k.interpolate)
}

func (k *KneeComputer) interpolate() {
	t := k.threshold.Load()
	r := k.ratio.Load()
	w := k.kneeWidth.Load()
	shape := k.curve.Load()

	k.lowThreshold = t - w
	k.highThreshold = t + w
	k.unity = r == minKneeRatio

	if k.unity {
		k.mid = identityPoly
		k.high = identityPoly
		return
	}

	k.mid = kneePoly(t, r, w)
	k.high = shapedPoly(t, r, w, shape)
}

// CopyFrom copies the derived curve of other. Parameters and the dirty flag
// of k are left untouched.
func (k *KneeComputer) CopyFrom(other *KneeComputer) {
	k.lowThreshold = other.lowThreshold
	k.highThreshold = other.highThreshold
	k.mid = other.mid
	k.high = other.high
	k.unity = other.unity
}

// LowThreshold returns threshold-knee from the last rebuild.
func (k *KneeComputer) LowThreshold() float64 { return k.lowThreshold }

// HighThreshold returns threshold+knee from the last rebuild.
func (k *KneeComputer) HighThreshold() float64 { return k.highThreshold }

// MidPoly returns the knee polynomial from the last rebuild.
func (k *KneeComputer) MidPoly() Poly { return k.mid }

// HighPoly returns the above-knee polynomial from the last rebuild.
func (k *KneeComputer) HighPoly() Poly { return k.high }

// Eval returns the output level in dB for input level x in dB. A unity
// ratio passes every input through, including levels above 0 dB.
func (k *KneeComputer) Eval(x float64) float64 {
	switch {
	case x <= k.lowThreshold || k.unity:
		return x
	case x >= k.highThreshold:
		return k.high.Eval(math.Min(x, 0))
	default:
		return k.mid.Eval(x)
	}
}

// Process returns the gain change in dB applied at input level x in dB.
// It is never positive while threshold+knee stays at or below 0 dB.
func (k *KneeComputer) Process(x float64) float64 {
	return k.Eval(x) - x
}

// EvalBlock writes Eval(src[i]) to dst[i]. Panics if lengths differ.
func (k *KneeComputer) EvalBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("dynamics: EvalBlock length mismatch")
	}

	for i, x := range src {
		dst[i] = k.Eval(x)
	}
}

// ProcessBlock writes Process(src[i]) to dst[i]. Panics if lengths differ.
func (k *KneeComputer) ProcessBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("dynamics: ProcessBlock length mismatch")
	}

	for i, x := range src {
		dst[i] = k.Eval(x) - x
	}
}
