package dynamics

import "math"

// maxKneeTop caps threshold+knee when deriving the curved prototypes so the
// slope term stays negative and finite.
const maxKneeTop = -0.0001

// Poly is the quadratic A*x^2 + B*x + C.
type Poly struct {
	A, B, C float64
}

// identityPoly maps every input to itself.
var identityPoly = Poly{B: 1}

// Eval returns the polynomial value at x.
func (p Poly) Eval(x float64) float64 {
	return (p.A*x+p.B)*x + p.C
}

// Slope returns the derivative at x.
func (p Poly) Slope(x float64) float64 {
	return 2*p.A*x + p.B
}

// blend returns alpha*p + beta*q.
func blend(p, q Poly, alpha, beta float64) Poly {
	return Poly{
		A: alpha*p.A + beta*q.A,
		B: alpha*p.B + beta*q.B,
		C: alpha*p.C + beta*q.C,
	}
}

// CurveKind selects one of the prototype curves used above the knee.
type CurveKind int

const (
	// CurveLinear is the straight compression line with slope 1/ratio.
	CurveLinear CurveKind = iota
	// CurveDown bends towards zero slope at 0 dB (concave).
	CurveDown
	// CurveUp bends back towards unity slope at 0 dB (convex).
	CurveUp
)

// String returns the curve kind name.
func (k CurveKind) String() string {
	switch k {
	case CurveLinear:
		return "linear"
	case CurveDown:
		return "down"
	case CurveUp:
		return "up"
	default:
		return "unknown"
	}
}

// Poly derives the prototype polynomial for threshold t (dB), ratio r and
// knee half-width w (dB). Every prototype meets the knee polynomial at t+w
// with value t+w/r and slope 1/r as long as t+w is negative.
func (k CurveKind) Poly(t, r, w float64) Poly {
	switch k {
	case CurveDown:
		m := math.Min(t+w, maxKneeTop)
		return Poly{
			A: 0.5 / (r * m),
			B: 0,
			C: 0.5*(w-t)/r + t,
		}
	case CurveUp:
		m := math.Min(t+w, maxKneeTop)
		return Poly{
			A: 0.5 * (1 - r) / (r * m),
			B: 1,
			C: 0.5 * (1 - r) * (w - t) / r,
		}
	default:
		return Poly{
			A: 0,
			B: 1 / r,
			C: t * (1 - 1/r),
		}
	}
}

// kneePoly is the quadratic bridging the identity line at t-w and the
// compression slope 1/r at t+w.
func kneePoly(t, r, w float64) Poly {
	low := t - w
	a := (1/r - 1) / (4 * w)
	return Poly{
		A: a,
		B: 1 - 2*a*low,
		C: a * low * low,
	}
}

// shapedPoly blends the linear prototype with the down (shape >= 0) or up
// (shape < 0) prototype.
func shapedPoly(t, r, w, shape float64) Poly {
	linear := CurveLinear.Poly(t, r, w)
	if shape >= 0 {
		return blend(linear, CurveDown.Poly(t, r, w), 1-shape, shape)
	}

	return blend(linear, CurveUp.Poly(t, r, w), 1+shape, -shape)
}
