package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Circle is a center and a radius. It takes part in line–circle and
// circle–circle intersections.
type Circle struct {
	C Point   `json:"c"`
	R float64 `json:"r"`
}

// NewCircle returns the circle around c with radius r.
func NewCircle(c Point, r float64) Circle {
	return Circle{C: c, R: r}
}

func (c Circle) Kind() Kind      { return KindCircle }
func (c Circle) Center() Point   { return c.C }
func (c Circle) Radius() float64 { return c.R }

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, %g)", c.C, c.R)
}

func (c Circle) Area() float64          { return math.Pi * c.R * c.R }
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.R }

// At returns the point at fraction t of a full turn, starting at angle 0.
func (c Circle) At(t float64) Point {
	return c.C.Add(FromPolar(2*math.Pi*t, c.R))
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Point) bool {
	return c.C.Distance(p) < c.R-float64(DefaultTolerance)
}

// Project returns the point on the circumference closest to p. The center
// itself projects onto angle 0.
func (c Circle) Project(p Point) Point {
	return c.C.Add(p.Sub(c.C).Unit().Mul(c.R))
}

// Tangent reports whether p lies on the circumference.
func (c Circle) Tangent(p Point) bool {
	return NearlyEqual(c.C.Distance(p), c.R)
}

func (c Circle) Rotate(angle float64, o Point) Circle {
	return Circle{C: c.C.Rotate(angle, o), R: c.R}
}

func (c Circle) Reflect(l Linelike) Circle {
	return Circle{C: c.C.Reflect(l), R: c.R}
}

// Scale scales the center by (sx, sy) and the radius by sx. The result is
// only a true image of c under uniform scales.
func (c Circle) Scale(sx, sy float64) Circle {
	return Circle{C: c.C.Scale(sx, sy), R: c.R * math.Abs(sx)}
}

func (c Circle) Shift(dx, dy float64) Circle {
	return Circle{C: c.C.Shift(dx, dy), R: c.R}
}

func (c Circle) Translate(v Point) Circle { return c.Shift(v.X, v.Y) }

// Transform maps the center through m and scales the radius by the square
// root of the determinant of m's linear part.
func (c Circle) Transform(m f64.Aff3) Circle {
	det := math.Abs(m[0]*m[4] - m[1]*m[3])
	return Circle{C: c.C.Transform(m), R: c.R * math.Sqrt(det)}
}
