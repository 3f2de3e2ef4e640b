package geom

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Rectangle is an axis-aligned rectangle with top-left corner P in y-down
// coordinates. It behaves as a 4-vertex clockwise Polygon; the vertex list
// is rebuilt on every call.
type Rectangle struct {
	P Point   `json:"p"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRectangle returns the rectangle at p with width w and height h.
func NewRectangle(p Point, w, h float64) Rectangle {
	return Rectangle{P: p, W: w, H: h}
}

func (r Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) String() string {
	return fmt.Sprintf("rect(%v, %g, %g)", r.P, r.W, r.H)
}

// Points returns the corners clockwise from the top-left.
func (r Rectangle) Points() []Point {
	return []Point{
		r.P,
		r.P.Shift(r.W, 0),
		r.P.Shift(r.W, r.H),
		r.P.Shift(0, r.H),
	}
}

// Polygon expands the rectangle into its 4-vertex polygon.
func (r Rectangle) Polygon() Polygon { return Polygon{pts: r.Points()} }

func (r Rectangle) Edges() []Segment { return r.Polygon().Edges() }

func (r Rectangle) Area() float64 { return r.W * r.H }

func (r Rectangle) Center() Point { return r.P.Shift(r.W/2, r.H/2) }

func (r Rectangle) Bounds() Bounds { return BoundsOf(r.Points()...) }

func (r Rectangle) Circumference() float64 { return 2 * (r.W + r.H) }

// Contains reports whether p lies strictly inside the rectangle.
func (r Rectangle) Contains(p Point) bool { return r.Polygon().Contains(p) }

// ContainsTol is Contains with an explicit tolerance.
func (r Rectangle) ContainsTol(p Point, tol Tolerance) bool {
	return r.Polygon().ContainsTol(p, tol)
}

func (r Rectangle) Project(p Point) Point { return r.Polygon().Project(p) }

func (r Rectangle) At(t float64) Point { return r.Polygon().At(t) }

// Rotate yields a Polygon: a rotated rectangle is no longer axis-aligned.
func (r Rectangle) Rotate(angle float64, c Point) Polygon {
	return r.Polygon().Rotate(angle, c)
}

// Reflect yields a Polygon.
func (r Rectangle) Reflect(l Linelike) Polygon { return r.Polygon().Reflect(l) }

func (r Rectangle) Scale(sx, sy float64) Rectangle {
	return Rectangle{P: r.P.Scale(sx, sy), W: r.W * sx, H: r.H * sy}
}

func (r Rectangle) Shift(dx, dy float64) Rectangle {
	return Rectangle{P: r.P.Shift(dx, dy), W: r.W, H: r.H}
}

func (r Rectangle) Translate(v Point) Rectangle { return r.Shift(v.X, v.Y) }

func (r Rectangle) Transform(m f64.Aff3) Polygon { return r.Polygon().Transform(m) }
