package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ---------------------------------------------------------------------------
// Shared linelike helpers
// ---------------------------------------------------------------------------

// lineParam returns the projection parameter of p onto the line a→b, so
// that a + t·(b-a) is the closest point. A degenerate line yields 0.
func lineParam(a, b, p Point) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if DefaultTolerance.Zero(l2) {
		return 0
	}
	return p.Sub(a).Dot(d) / l2
}

// collinear reports whether p lies on the infinite line through a and b,
// using the 3-point determinant.
func collinear(a, b, p Point, tol Tolerance) bool {
	det := p.X*(a.Y-b.Y) + a.X*(b.Y-p.Y) + b.X*(p.Y-a.Y)
	return tol.Zero(det)
}

// slope returns Δy/Δx. Vertical lines yield ±Inf.
func slope(a, b Point) float64 {
	dx := b.X - a.X
	if DefaultTolerance.Zero(dx) {
		return math.Copysign(math.Inf(1), b.Y-a.Y)
	}
	return (b.Y - a.Y) / dx
}

// ---------------------------------------------------------------------------
// Line
// ---------------------------------------------------------------------------

// Line is the infinite line through P1 and P2, directed P1→P2.
type Line struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// NewLine returns the line through p1 and p2.
func NewLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2}
}

func (l Line) Kind() Kind                { return KindLine }
func (l Line) Endpoints() (Point, Point) { return l.P1, l.P2 }
func (l Line) Line() Line                { return l }

func (l Line) String() string {
	return fmt.Sprintf("line(%v, %v)", l.P1, l.P2)
}

// Length returns the distance between the defining points.
func (l Line) Length() float64 { return l.P1.Distance(l.P2) }

// Midpoint returns the point halfway between the defining points.
func (l Line) Midpoint() Point { return Interpolate(l.P1, l.P2, 0.5) }

// Slope returns Δy/Δx; vertical lines yield ±Inf.
func (l Line) Slope() float64 { return slope(l.P1, l.P2) }

// Angle returns the direction of P1→P2 in [0, 2π).
func (l Line) Angle() float64 { return l.P2.Sub(l.P1).Angle() }

// UnitVector returns the unit direction P1→P2.
func (l Line) UnitVector() Point { return l.P2.Sub(l.P1).Unit() }

// PerpendicularVector returns the unit normal of the line.
func (l Line) PerpendicularVector() Point { return l.UnitVector().Perpendicular() }

// Parallel returns the line through p parallel to l.
func (l Line) Parallel(p Point) Line {
	return Line{P1: p, P2: p.Add(l.P2.Sub(l.P1))}
}

// Perpendicular returns the line through p perpendicular to l.
func (l Line) Perpendicular(p Point) Line {
	return Line{P1: p, P2: p.Add(l.PerpendicularVector())}
}

// Offset returns the projection parameter of p: l.At(l.Offset(p)) is the
// closest point on l.
func (l Line) Offset(p Point) float64 { return lineParam(l.P1, l.P2, p) }

// Project returns the closest point on the infinite line.
func (l Line) Project(p Point) Point { return l.At(l.Offset(p)) }

// DistanceTo returns the distance from p to the line.
func (l Line) DistanceTo(p Point) float64 { return p.Distance(l.Project(p)) }

// At returns P1 + t·(P2-P1).
func (l Line) At(t float64) Point { return Interpolate(l.P1, l.P2, t) }

// Contains reports whether p lies on the line.
func (l Line) Contains(p Point) bool { return l.ContainsTol(p, DefaultTolerance) }

// ContainsTol reports whether p lies on the line within tol.
func (l Line) ContainsTol(p Point, tol Tolerance) bool {
	return collinear(l.P1, l.P2, p, tol)
}

// Equals reports whether both lines describe the same infinite line.
func (l Line) Equals(o Line) bool {
	return l.Contains(o.P1) && l.Contains(o.P2)
}

func (l Line) Rotate(angle float64, c Point) Line {
	return Line{P1: l.P1.Rotate(angle, c), P2: l.P2.Rotate(angle, c)}
}

func (l Line) Reflect(m Linelike) Line {
	return Line{P1: l.P1.Reflect(m), P2: l.P2.Reflect(m)}
}

func (l Line) Scale(sx, sy float64) Line {
	return Line{P1: l.P1.Scale(sx, sy), P2: l.P2.Scale(sx, sy)}
}

func (l Line) Shift(dx, dy float64) Line {
	return Line{P1: l.P1.Shift(dx, dy), P2: l.P2.Shift(dx, dy)}
}

func (l Line) Translate(v Point) Line { return l.Shift(v.X, v.Y) }

func (l Line) Transform(m f64.Aff3) Line {
	return Line{P1: l.P1.Transform(m), P2: l.P2.Transform(m)}
}

// ---------------------------------------------------------------------------
// Segment
// ---------------------------------------------------------------------------

// Segment is the bounded piece of line between P1 and P2.
type Segment struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// NewSegment returns the segment from p1 to p2.
func NewSegment(p1, p2 Point) Segment {
	return Segment{P1: p1, P2: p2}
}

func (s Segment) Kind() Kind                { return KindSegment }
func (s Segment) Endpoints() (Point, Point) { return s.P1, s.P2 }
func (s Segment) Line() Line                { return Line{P1: s.P1, P2: s.P2} }

func (s Segment) String() string {
	return fmt.Sprintf("segment(%v, %v)", s.P1, s.P2)
}

func (s Segment) Length() float64            { return s.P1.Distance(s.P2) }
func (s Segment) Midpoint() Point            { return Interpolate(s.P1, s.P2, 0.5) }
func (s Segment) Slope() float64             { return slope(s.P1, s.P2) }
func (s Segment) Angle() float64             { return s.Line().Angle() }
func (s Segment) UnitVector() Point          { return s.Line().UnitVector() }
func (s Segment) PerpendicularVector() Point { return s.Line().PerpendicularVector() }
func (s Segment) At(t float64) Point         { return Interpolate(s.P1, s.P2, t) }

// Project returns the closest point on the segment; the projection
// parameter is clamped to [0, 1].
func (s Segment) Project(p Point) Point {
	return s.At(clamp(lineParam(s.P1, s.P2, p), 0, 1))
}

// Contains reports whether p lies on the segment, strictly between its
// endpoints. Endpoints themselves are not contained.
func (s Segment) Contains(p Point) bool { return s.ContainsTol(p, DefaultTolerance) }

// ContainsTol is Contains with an explicit tolerance.
func (s Segment) ContainsTol(p Point, tol Tolerance) bool {
	if !collinear(s.P1, s.P2, p, tol) {
		return false
	}
	if tol.Equal(s.P1.X, s.P2.X) {
		return tol.Between(p.Y, s.P1.Y, s.P2.Y)
	}
	return tol.Between(p.X, s.P1.X, s.P2.X)
}

// PerpendicularBisector returns the line through the midpoint perpendicular
// to the segment.
func (s Segment) PerpendicularBisector() Line {
	return s.Line().Perpendicular(s.Midpoint())
}

// Equals compares segments. Unless oriented is set, P1 and P2 may be swapped.
func (s Segment) Equals(o Segment, oriented bool) bool {
	if s.P1.Equals(o.P1) && s.P2.Equals(o.P2) {
		return true
	}
	return !oriented && s.P1.Equals(o.P2) && s.P2.Equals(o.P1)
}

func (s Segment) Rotate(angle float64, c Point) Segment {
	return Segment(s.Line().Rotate(angle, c))
}

func (s Segment) Reflect(m Linelike) Segment { return Segment(s.Line().Reflect(m)) }

func (s Segment) Scale(sx, sy float64) Segment { return Segment(s.Line().Scale(sx, sy)) }

func (s Segment) Shift(dx, dy float64) Segment { return Segment(s.Line().Shift(dx, dy)) }

func (s Segment) Translate(v Point) Segment { return s.Shift(v.X, v.Y) }

func (s Segment) Transform(m f64.Aff3) Segment { return Segment(s.Line().Transform(m)) }

// IntersectSegments returns the single point where s1 and s2 cross, if any.
// Crossings at an endpoint of either segment are not reported.
func IntersectSegments(s1, s2 Segment) (Point, bool) {
	return intersectSegmentsTol(s1, s2, DefaultTolerance)
}

func intersectSegmentsTol(s1, s2 Segment, tol Tolerance) (Point, bool) {
	pts, err := IntersectionsTol(tol, s1, s2)
	if err != nil || len(pts) == 0 {
		return Point{}, false
	}
	return pts[0], true
}

// ---------------------------------------------------------------------------
// Ray
// ---------------------------------------------------------------------------

// Ray is the half-line starting at P1 and passing through P2.
type Ray struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// NewRay returns the ray from p1 through p2.
func NewRay(p1, p2 Point) Ray {
	return Ray{P1: p1, P2: p2}
}

func (r Ray) Kind() Kind                { return KindRay }
func (r Ray) Endpoints() (Point, Point) { return r.P1, r.P2 }
func (r Ray) Line() Line                { return Line{P1: r.P1, P2: r.P2} }

func (r Ray) String() string {
	return fmt.Sprintf("ray(%v, %v)", r.P1, r.P2)
}

func (r Ray) Length() float64            { return r.P1.Distance(r.P2) }
func (r Ray) Midpoint() Point            { return Interpolate(r.P1, r.P2, 0.5) }
func (r Ray) Slope() float64             { return slope(r.P1, r.P2) }
func (r Ray) Angle() float64             { return r.Line().Angle() }
func (r Ray) UnitVector() Point          { return r.Line().UnitVector() }
func (r Ray) PerpendicularVector() Point { return r.Line().PerpendicularVector() }
func (r Ray) At(t float64) Point         { return Interpolate(r.P1, r.P2, t) }

// Project returns the closest point on the ray; negative projection
// parameters clamp to the origin P1.
func (r Ray) Project(p Point) Point {
	return r.At(math.Max(0, lineParam(r.P1, r.P2, p)))
}

// Contains reports whether p lies on the ray beyond its origin.
func (r Ray) Contains(p Point) bool { return r.ContainsTol(p, DefaultTolerance) }

// ContainsTol is Contains with an explicit tolerance.
func (r Ray) ContainsTol(p Point, tol Tolerance) bool {
	return collinear(r.P1, r.P2, p, tol) && liesOnRay(p, r)
}

// liesOnRay reports whether the projection parameter of p along P1→P2 is
// positive. Collinearity is not checked.
func liesOnRay(p Point, r Ray) bool {
	return lineParam(r.P1, r.P2, p) > 0
}

// Equals reports whether both rays share an origin and direction.
func (r Ray) Equals(o Ray) bool {
	return r.P1.Equals(o.P1) && r.Contains(o.P2)
}

func (r Ray) Rotate(angle float64, c Point) Ray { return Ray(r.Line().Rotate(angle, c)) }

func (r Ray) Reflect(m Linelike) Ray { return Ray(r.Line().Reflect(m)) }

func (r Ray) Scale(sx, sy float64) Ray { return Ray(r.Line().Scale(sx, sy)) }

func (r Ray) Shift(dx, dy float64) Ray { return Ray(r.Line().Shift(dx, dy)) }

func (r Ray) Translate(v Point) Ray { return r.Shift(v.X, v.Y) }

func (r Ray) Transform(m f64.Aff3) Ray { return Ray(r.Line().Transform(m)) }
