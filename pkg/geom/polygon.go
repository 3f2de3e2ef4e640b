package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/f64"
)

// ErrTooFewVertices is returned by NewPolygon for fewer than three vertices.
var ErrTooFewVertices = errors.New("geom: polygon needs at least 3 vertices")

// Polygon is a closed, simple polygon. Vertex order is winding order; the
// last vertex connects back to the first.
type Polygon struct {
	pts []Point
}

// NewPolygon returns the polygon through pts. The slice is copied.
func NewPolygon(pts ...Point) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(pts))
	}
	return Polygon{pts: append([]Point(nil), pts...)}, nil
}

// MustPolygon is NewPolygon that panics on error.
func MustPolygon(pts ...Point) Polygon {
	p, err := NewPolygon(pts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Polygon) Kind() Kind       { return KindPolygon }
func (p Polygon) Polygon() Polygon { return p }

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.pts) }

// Points returns a copy of the vertices.
func (p Polygon) Points() []Point { return append([]Point(nil), p.pts...) }

func (p Polygon) String() string {
	parts := make([]string, len(p.pts))
	for i, v := range p.pts {
		parts[i] = v.String()
	}
	return "polygon(" + strings.Join(parts, ", ") + ")"
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Points []Point `json:"points"`
	}{p.pts})
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	var raw struct {
		Points []Point `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q, err := NewPolygon(raw.Points...)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

func (p Polygon) mustBeValid(op string) {
	if len(p.pts) < 3 {
		panic(fmt.Sprintf("geom: %s of polygon with %d vertices", op, len(p.pts)))
	}
}

// SignedArea returns the shoelace area. It is positive for clockwise
// polygons in y-down coordinates and negative for counter-clockwise ones.
func (p Polygon) SignedArea() float64 {
	p.mustBeValid("signed area")
	n := len(p.pts)
	var sum float64
	for i, a := range p.pts {
		b := p.pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

// Centroid returns the mean of the vertices.
func (p Polygon) Centroid() Point { return Average(p.pts...) }

// Edges returns the segments between consecutive vertices, last to first
// included.
func (p Polygon) Edges() []Segment {
	p.mustBeValid("edges")
	n := len(p.pts)
	edges := make([]Segment, n)
	for i := range p.pts {
		edges[i] = Segment{P1: p.pts[i], P2: p.pts[(i+1)%n]}
	}
	return edges
}

// Circumference returns the perimeter length.
func (p Polygon) Circumference() float64 {
	var sum float64
	for _, e := range p.Edges() {
		sum += e.Length()
	}
	return sum
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() Bounds { return BoundsOf(p.pts...) }

// Contains reports whether q lies strictly inside the polygon. Points on a
// vertex or an edge are outside.
func (p Polygon) Contains(q Point) bool { return p.ContainsTol(q, DefaultTolerance) }

// ContainsTol is Contains with an explicit tolerance.
func (p Polygon) ContainsTol(q Point, tol Tolerance) bool {
	inside := false
	for _, e := range p.Edges() {
		if e.P1.EqualsTol(q, tol) || e.ContainsTol(q, tol) {
			return false
		}
		if (e.P1.Y > q.Y) == (e.P2.Y > q.Y) {
			continue
		}
		det := (e.P2.X - e.P1.X) / (e.P2.Y - e.P1.Y)
		if q.X < det*(q.Y-e.P1.Y)+e.P1.X {
			inside = !inside
		}
	}
	return inside
}

// Project returns the closest point on the polygon boundary.
func (p Polygon) Project(q Point) Point {
	var best Point
	bestDist := math.Inf(1)
	for _, e := range p.Edges() {
		c := e.Project(q)
		if d := c.Distance(q); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// At walks the closed boundary: t=0 and t=1 are both the first vertex.
func (p Polygon) At(t float64) Point {
	p.mustBeValid("walk")
	closed := append(p.Points(), p.pts[0])
	return InterpolateList(closed, t)
}

// Oriented returns p if it is clockwise (SignedArea ≥ 0), otherwise p with
// its vertices reversed.
func (p Polygon) Oriented() Polygon {
	if p.SignedArea() >= 0 {
		return p
	}
	return p.Reverse()
}

// Reverse returns the polygon with its vertex order reversed.
func (p Polygon) Reverse() Polygon {
	n := len(p.pts)
	out := make([]Point, n)
	for i, v := range p.pts {
		out[n-1-i] = v
	}
	return Polygon{pts: out}
}

// SelfIntersecting reports whether two non-adjacent edges cross.
func (p Polygon) SelfIntersecting() bool {
	edges := p.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if _, ok := IntersectSegments(edges[i], edges[j]); ok {
				return true
			}
		}
	}
	return false
}

// Collision reports whether a and b overlap: an edge of one crosses an edge
// of the other, or one lies entirely inside the other.
func Collision(a, b Polygonlike) bool {
	return CollisionTol(a, b, DefaultTolerance)
}

// CollisionTol is Collision with an explicit tolerance.
func CollisionTol(a, b Polygonlike, tol Tolerance) bool {
	ea, eb := a.Edges(), b.Edges()
	for _, e1 := range ea {
		for _, e2 := range eb {
			if _, ok := intersectSegmentsTol(e1, e2, tol); ok {
				return true
			}
		}
	}
	return b.ContainsTol(ea[0].P1, tol) || a.ContainsTol(eb[0].P1, tol)
}

func (p Polygon) mapPoints(f func(Point) Point) Polygon {
	return Polygon{pts: mapPoints(p.pts, f)}
}

func (p Polygon) Rotate(angle float64, c Point) Polygon {
	return p.mapPoints(func(q Point) Point { return q.Rotate(angle, c) })
}

func (p Polygon) Reflect(l Linelike) Polygon {
	return p.mapPoints(func(q Point) Point { return q.Reflect(l) })
}

func (p Polygon) Scale(sx, sy float64) Polygon {
	return p.mapPoints(func(q Point) Point { return q.Scale(sx, sy) })
}

func (p Polygon) Shift(dx, dy float64) Polygon {
	return p.mapPoints(func(q Point) Point { return q.Shift(dx, dy) })
}

func (p Polygon) Translate(v Point) Polygon { return p.Shift(v.X, v.Y) }

func (p Polygon) Transform(m f64.Aff3) Polygon {
	return p.mapPoints(func(q Point) Point { return q.Transform(m) })
}
