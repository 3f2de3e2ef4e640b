package geom

import "math"

// Tolerance is the numeric slack below which two floating-point quantities
// are treated as equal. It is passed explicitly to the *Tol variants of the
// comparison-heavy operations; the plain variants use DefaultTolerance.
type Tolerance float64

// DefaultTolerance is used by every operation that does not take an
// explicit Tolerance.
const DefaultTolerance Tolerance = 1e-6

// Equal reports whether |a-b| < t.
func (t Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) < float64(t)
}

// Zero reports whether x is within t of zero.
func (t Tolerance) Zero(x float64) bool {
	return math.Abs(x) < float64(t)
}

// Between reports whether x lies strictly between a and b, more than t away
// from both. The bounds may be given in either order.
func (t Tolerance) Between(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return x > a+float64(t) && x < b-float64(t)
}

// Within reports whether x lies in the closed interval [a-t, b+t]. The
// bounds may be given in either order.
func (t Tolerance) Within(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return x >= a-float64(t) && x <= b+float64(t)
}

// NearlyEqual reports whether a and b are equal within DefaultTolerance.
func NearlyEqual(a, b float64) bool {
	return DefaultTolerance.Equal(a, b)
}

// IsBetween reports whether x lies strictly between a and b using
// DefaultTolerance.
func IsBetween(x, a, b float64) bool {
	return DefaultTolerance.Between(x, a, b)
}

func clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, x))
}

// roundTo rounds x to the nearest multiple of inc. A zero increment leaves
// x unchanged.
func roundTo(x, inc float64) float64 {
	if inc == 0 {
		return x
	}
	return math.Round(x/inc) * inc
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
