package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Angle is the angle at vertex B, swept from ray B→A to ray B→C.
type Angle struct {
	A Point `json:"a"`
	B Point `json:"b"`
	C Point `json:"c"`
}

// NewAngle returns the angle at b swept from a to c.
func NewAngle(a, b, c Point) Angle {
	return Angle{A: a, B: b, C: c}
}

func (a Angle) Kind() Kind { return KindAngle }

func (a Angle) String() string {
	return fmt.Sprintf("angle(%v, %v, %v)", a.A, a.B, a.C)
}

// Rad returns the size of the angle in [0, 2π).
func (a Angle) Rad() float64 {
	phiA := math.Atan2(a.A.Y-a.B.Y, a.A.X-a.B.X)
	phiC := math.Atan2(a.C.Y-a.B.Y, a.C.X-a.B.X)
	rad := phiC - phiA
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// Deg returns the size of the angle in degrees.
func (a Angle) Deg() float64 { return a.Rad() * 180 / math.Pi }

// IsRight reports whether the angle is within one degree of π/2.
func (a Angle) IsRight() bool {
	return math.Abs(a.Rad()-math.Pi/2) < math.Pi/180
}

// Degenerate reports whether either arm collapses onto the vertex.
func (a Angle) Degenerate() bool {
	return a.A.Equals(a.B) || a.C.Equals(a.B)
}

// Bisector returns the line through the vertex splitting the angle in half.
// It reports false when the angle is degenerate.
func (a Angle) Bisector() (Line, bool) {
	if a.Degenerate() {
		return Line{}, false
	}
	phiA := math.Atan2(a.A.Y-a.B.Y, a.A.X-a.B.X)
	phiC := math.Atan2(a.C.Y-a.B.Y, a.C.X-a.B.X)
	phi := (phiA + phiC) / 2
	if phiA > phiC {
		phi += math.Pi
	}
	dir := Point{X: math.Cos(phi), Y: math.Sin(phi)}
	return Line{P1: a.B, P2: a.B.Add(dir)}, true
}

// Sup returns the non-reflex version of the angle: a itself when it is
// smaller than π, otherwise the angle with its arms swapped.
func (a Angle) Sup() Angle {
	if a.Rad() < math.Pi {
		return a
	}
	return Angle{A: a.C, B: a.B, C: a.A}
}

// Arc returns the arc centered on the vertex, starting at A and sweeping
// the angle.
func (a Angle) Arc() Arc {
	return Arc{C: a.B, Start: a.A, Sweep: a.Rad()}
}

func (a Angle) mapPoints(f func(Point) Point) Angle {
	return Angle{A: f(a.A), B: f(a.B), C: f(a.C)}
}

func (a Angle) Rotate(angle float64, c Point) Angle {
	return a.mapPoints(func(p Point) Point { return p.Rotate(angle, c) })
}

func (a Angle) Reflect(l Linelike) Angle {
	return a.mapPoints(func(p Point) Point { return p.Reflect(l) })
}

func (a Angle) Scale(sx, sy float64) Angle {
	return a.mapPoints(func(p Point) Point { return p.Scale(sx, sy) })
}

func (a Angle) Shift(dx, dy float64) Angle {
	return a.mapPoints(func(p Point) Point { return p.Shift(dx, dy) })
}

func (a Angle) Translate(v Point) Angle { return a.Shift(v.X, v.Y) }

func (a Angle) Transform(m f64.Aff3) Angle {
	return a.mapPoints(func(p Point) Point { return p.Transform(m) })
}
