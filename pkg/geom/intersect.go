package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupported is returned when no intersection routine exists for a pair
// of shape kinds. It is distinct from an empty result, which means the
// shapes do not meet.
var ErrUnsupported = errors.New("geom: unsupported intersection")

// ---------------------------------------------------------------------------
// Pairwise primitives
// ---------------------------------------------------------------------------

// LineLine returns the crossing point of the infinite lines through a and b.
// Parallel and coincident lines yield no point.
func LineLine(a, b Linelike) []Point {
	return lineLine(a.Line(), b.Line(), DefaultTolerance)
}

func lineLine(l1, l2 Line, tol Tolerance) []Point {
	d1 := l1.P1.Sub(l1.P2)
	d2 := l2.P1.Sub(l2.P2)
	d := d1.Cross(d2)
	if tol.Zero(d) {
		return nil
	}
	q1 := l1.P1.Cross(l1.P2)
	q2 := l2.P1.Cross(l2.P2)
	return []Point{{
		X: (q1*d2.X - d1.X*q2) / d,
		Y: (q1*d2.Y - d1.Y*q2) / d,
	}}
}

// LineCircle returns the points where the infinite line through l meets c:
// none, one tangent point, or two points.
func LineCircle(l Linelike, c Round) []Point {
	return lineCircle(l.Line(), c, DefaultTolerance)
}

func lineCircle(l Line, c Round, tol Tolerance) []Point {
	ctr, r := c.Center(), c.Radius()
	dx, dy := l.P2.X-l.P1.X, l.P2.Y-l.P1.Y
	dr2 := dx*dx + dy*dy
	if tol.Zero(dr2) {
		return nil
	}
	a, b := l.P1.Sub(ctr), l.P2.Sub(ctr)
	det := a.Cross(b)
	disc := r*r*dr2 - det*det

	xa, ya := det*dy/dr2, -det*dx/dr2
	// disc/dr2 is r² minus the squared distance from the center to the
	// line, so the tangent test does not depend on the spacing of P1 and P2.
	switch {
	case tol.Zero(disc / dr2):
		return []Point{ctr.Shift(xa, ya)}
	case disc < 0:
		return nil
	}

	sq := math.Sqrt(disc)
	sign := 1.0
	if dy < 0 {
		sign = -1
	}
	xb := dx * sign * sq / dr2
	yb := math.Abs(dy) * sq / dr2
	return []Point{
		ctr.Shift(xa+xb, ya+yb),
		ctr.Shift(xa-xb, ya-yb),
	}
}

// CircleCircle returns the points where the circumferences of c1 and c2
// meet. Identical, concentric, nested and separate circles yield no point;
// tangent circles yield one.
func CircleCircle(c1, c2 Round) []Point {
	return circleCircle(c1, c2, DefaultTolerance)
}

func circleCircle(c1, c2 Round, tol Tolerance) []Point {
	p1, r1 := c1.Center(), c1.Radius()
	p2, r2 := c2.Center(), c2.Radius()
	d := p1.Distance(p2)

	switch {
	case tol.Zero(d):
		return nil
	case tol.Equal(d, r1+r2):
		return []Point{Interpolate(p1, p2, r1/(r1+r2))}
	case d > r1+r2:
		return nil
	case d < math.Abs(r1-r2)-float64(tol):
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	mid := Interpolate(p1, p2, a/d)
	if h2 <= 0 || tol.Zero(h2) {
		return []Point{mid}
	}
	h := math.Sqrt(h2)
	off := Point{X: -(p2.Y - p1.Y), Y: p2.X - p1.X}.Mul(h / d)
	return []Point{mid.Add(off), mid.Sub(off)}
}

// ---------------------------------------------------------------------------
// Dispatcher
// ---------------------------------------------------------------------------

func isLinelike(k Kind) bool {
	return k == KindLine || k == KindSegment || k == KindRay
}

func isPolygonlike(k Kind) bool {
	return k == KindPolygon || k == KindRectangle
}

// Intersections returns every point where the given shapes meet.
//
// Fewer than two shapes yield nothing. With more than two, the results of
// every unordered pair are concatenated in (0,1), (0,2), ..., (1,2), ...
// order. Polygons and rectangles are decomposed into their edges; vertices
// lying on a linelike partner are reported as well.
//
// Pairs with no intersection routine (arcs, sectors, angles, points) return
// an error wrapping ErrUnsupported.
func Intersections(shapes ...Shape) ([]Point, error) {
	return IntersectionsTol(DefaultTolerance, shapes...)
}

// IntersectionsTol is Intersections with an explicit tolerance.
func IntersectionsTol(tol Tolerance, shapes ...Shape) ([]Point, error) {
	if len(shapes) < 2 {
		return nil, nil
	}
	if len(shapes) > 2 {
		var out []Point
		for i := 0; i < len(shapes); i++ {
			for j := i + 1; j < len(shapes); j++ {
				pts, err := IntersectionsTol(tol, shapes[i], shapes[j])
				if err != nil {
					return nil, err
				}
				out = append(out, pts...)
			}
		}
		return out, nil
	}

	a, b := shapes[0], shapes[1]
	if isPolygonlike(b.Kind()) {
		a, b = b, a
	}
	if isPolygonlike(a.Kind()) {
		return polygonIntersections(a.(Polygonlike), b, tol)
	}
	return pairIntersections(a, b, tol)
}

// polygonIntersections treats pl as its edge set joined with other.
func polygonIntersections(pl Polygonlike, other Shape, tol Tolerance) ([]Point, error) {
	var out []Point
	if isLinelike(other.Kind()) {
		l := other.(Linelike)
		for _, v := range pl.Points() {
			if l.ContainsTol(v, tol) {
				out = append(out, v)
			}
		}
	}
	edges := pl.Edges()
	parts := make([]Shape, 0, len(edges)+1)
	for _, e := range edges {
		parts = append(parts, e)
	}
	parts = append(parts, other)
	pts, err := IntersectionsTol(tol, parts...)
	if err != nil {
		return nil, err
	}
	return append(out, pts...), nil
}

func pairIntersections(a, b Shape, tol Tolerance) ([]Point, error) {
	ka, kb := a.Kind(), b.Kind()
	var pts []Point
	switch {
	case isLinelike(ka) && isLinelike(kb):
		pts = lineLine(a.(Linelike).Line(), b.(Linelike).Line(), tol)
	case isLinelike(ka) && kb == KindCircle:
		pts = lineCircle(a.(Linelike).Line(), b.(Round), tol)
	case ka == KindCircle && isLinelike(kb):
		pts = lineCircle(b.(Linelike).Line(), a.(Round), tol)
	case ka == KindCircle && kb == KindCircle:
		pts = circleCircle(a.(Round), b.(Round), tol)
	default:
		return nil, fmt.Errorf("%w: %s and %s", ErrUnsupported, ka, kb)
	}
	return filterBounded(filterBounded(pts, a, tol), b, tol), nil
}

// filterBounded drops points that fall outside a segment's interior or
// behind a ray's origin. Other shapes pass everything through.
func filterBounded(pts []Point, s Shape, tol Tolerance) []Point {
	var keep func(Point) bool
	switch s.Kind() {
	case KindSegment:
		seg := s.(Segment)
		keep = func(p Point) bool { return seg.ContainsTol(p, tol) }
	case KindRay:
		ray := s.(Ray)
		keep = func(p Point) bool { return liesOnRay(p, ray) }
	default:
		return pts
	}
	out := pts[:0]
	for _, p := range pts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
