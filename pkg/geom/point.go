package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a 2D point or vector. It is a plain value: every operation
// returns a new Point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the point (0, 0).
var Origin = Point{}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromPolar returns the point at the given angle (radians) and distance
// from the origin.
func FromPolar(angle, radius float64) Point {
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Kind returns KindPoint.
func (p Point) Kind() Kind { return KindPoint }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// ManhattanDistance returns |Δx| + |Δy|.
func (p Point) ManhattanDistance(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Unit returns the unit vector in the direction of p. A zero-length vector
// yields (1, 0).
func (p Point) Unit() Point {
	l := p.Length()
	if DefaultTolerance.Zero(l) {
		return Point{X: 1}
	}
	return p.Mul(1 / l)
}

// Perpendicular returns p rotated by +90°.
func (p Point) Perpendicular() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the polar angle of p in [0, 2π).
func (p Point) Angle() float64 {
	return normalizeAngle(math.Atan2(p.Y, p.X))
}

// Polar returns the polar angle and radius of p. FromPolar(p.Polar()) ≈ p.
func (p Point) Polar() (angle, radius float64) {
	return p.Angle(), p.Length()
}

// Shift moves p by (dx, dy).
func (p Point) Shift(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Translate moves p by the vector v.
func (p Point) Translate(v Point) Point {
	return p.Add(v)
}

// Scale scales p about the origin.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Rotate rotates p by angle radians about c.
func (p Point) Rotate(angle float64, c Point) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// Reflect mirrors p across the infinite line through l. A degenerate line
// (coincident endpoints) leaves p unchanged.
func (p Point) Reflect(l Linelike) Point {
	a, b := l.Endpoints()
	v, w := b.X-a.X, b.Y-a.Y
	d := v*v + w*w
	if DefaultTolerance.Zero(d) {
		return p
	}
	x0, y0 := p.X-a.X, p.Y-a.Y
	mu := (v*y0 - w*x0) / d
	return Point{X: p.X + 2*mu*w, Y: p.Y - 2*mu*v}
}

// Transform applies the affine matrix m, laid out row-major as
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
func (p Point) Transform(m f64.Aff3) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Round rounds both coordinates to the nearest multiple of inc.
func (p Point) Round(inc float64) Point {
	return Point{X: roundTo(p.X, inc), Y: roundTo(p.Y, inc)}
}

// Floor rounds both coordinates down.
func (p Point) Floor() Point {
	return Point{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

// Clamp restricts p to b shrunk by padding on every side.
func (p Point) Clamp(b Bounds, padding float64) Point {
	return Point{
		X: clamp(p.X, b.XMin+padding, b.XMax-padding),
		Y: clamp(p.Y, b.YMin+padding, b.YMax-padding),
	}
}

// Remap maps p from the coordinate system spanned by from onto the one
// spanned by to. Degenerate source extents map onto the target minimum.
func (p Point) Remap(from, to Bounds) Point {
	remap := func(v, a0, a1, b0, b1 float64) float64 {
		if DefaultTolerance.Equal(a0, a1) {
			return b0
		}
		return b0 + (v-a0)/(a1-a0)*(b1-b0)
	}
	return Point{
		X: remap(p.X, from.XMin, from.XMax, to.XMin, to.XMax),
		Y: remap(p.Y, from.YMin, from.YMax, to.YMin, to.YMax),
	}
}

// Equals reports whether both coordinates match within DefaultTolerance.
func (p Point) Equals(q Point) bool {
	return p.EqualsTol(q, DefaultTolerance)
}

// EqualsTol reports whether both coordinates match within tol.
func (p Point) EqualsTol(q Point, tol Tolerance) bool {
	return tol.Equal(p.X, q.X) && tol.Equal(p.Y, q.Y)
}

// Contains reports whether q coincides with p.
func (p Point) Contains(q Point) bool {
	return p.Equals(q)
}

// Project returns p: the only point of a point.
func (p Point) Project(Point) Point {
	return p
}

// Distance returns the distance between p and q.
func Distance(p, q Point) float64 {
	return p.Distance(q)
}

// Average returns the mean of pts, or the origin for an empty list.
func Average(pts ...Point) Point {
	if len(pts) == 0 {
		return Origin
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// Interpolate returns the point at parameter t on the way from p to q.
func Interpolate(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// InterpolateList walks the polyline through pts. t is clamped to [0, 1];
// segment floor(t·(n-1)) is selected and the remainder interpolated along
// it. An empty list yields the origin and a single point yields itself.
func InterpolateList(pts []Point, t float64) Point {
	switch len(pts) {
	case 0:
		return Origin
	case 1:
		return pts[0]
	}
	t = clamp(t, 0, 1)
	n := float64(len(pts) - 1)
	i := int(math.Floor(t * n))
	if i >= len(pts)-1 {
		i = len(pts) - 2
	}
	return Interpolate(pts[i], pts[i+1], t*n-float64(i))
}

// mapPoints applies f to every point, returning a fresh slice.
func mapPoints(pts []Point, f func(Point) Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = f(p)
	}
	return out
}
