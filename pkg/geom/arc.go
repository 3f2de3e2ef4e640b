package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Arc is the circular arc around C that starts at Start and sweeps Sweep
// radians. Positive sweeps run in the direction of increasing polar angle.
type Arc struct {
	C     Point   `json:"c"`
	Start Point   `json:"start"`
	Sweep float64 `json:"sweep"`
}

// NewArc returns the arc around c from start through sweep radians.
func NewArc(c, start Point, sweep float64) Arc {
	return Arc{C: c, Start: start, Sweep: sweep}
}

func (a Arc) Kind() Kind { return KindArc }

func (a Arc) String() string {
	return fmt.Sprintf("arc(%v, %v, %g)", a.C, a.Start, a.Sweep)
}

// Radius returns the distance from the center to the start point.
func (a Arc) Radius() float64 { return a.C.Distance(a.Start) }

// End returns the start point rotated by the sweep about the center.
func (a Arc) End() Point { return a.Start.Rotate(a.Sweep, a.C) }

// StartAngle returns the polar angle of the start point, in [0, 2π).
func (a Arc) StartAngle() float64 { return a.Start.Sub(a.C).Angle() }

// Length returns the arc length.
func (a Arc) Length() float64 { return a.Radius() * math.Abs(a.Sweep) }

// At returns the point a fraction t of the way along the arc.
func (a Arc) At(t float64) Point { return a.Start.Rotate(a.Sweep*t, a.C) }

// Project returns the point of the arc closest in angle to p: p's polar
// angle around the center is clamped into the swept range.
func (a Arc) Project(p Point) Point {
	start := a.StartAngle()
	end := start + a.Sweep
	phi := p.Sub(a.C).Angle()
	switch {
	case end > 2*math.Pi && phi < end-2*math.Pi:
		phi += 2 * math.Pi
	case end < 0 && phi > end+2*math.Pi:
		phi -= 2 * math.Pi
	}
	phi = clamp(phi, start, end)
	return a.C.Shift(a.Radius(), 0).Rotate(phi, a.C)
}

// Contains reports whether p lies on the arc.
func (a Arc) Contains(p Point) bool {
	if !NearlyEqual(a.C.Distance(p), a.Radius()) {
		return false
	}
	return a.Project(p).Equals(p)
}

// Contract shrinks the arc symmetrically: the start moves a fraction p/2
// along the arc and the sweep scales by 1-p.
func (a Arc) Contract(p float64) Arc {
	return Arc{C: a.C, Start: a.At(p / 2), Sweep: a.Sweep * (1 - p)}
}

// complement returns the rest of the circle: start at End, sweep 2π-Sweep.
func (a Arc) complement() Arc {
	return Arc{C: a.C, Start: a.End(), Sweep: 2*math.Pi - a.Sweep}
}

// Minor returns whichever of a and its complement sweeps at most π.
func (a Arc) Minor() Arc {
	if a.Sweep <= math.Pi {
		return a
	}
	return a.complement()
}

// Major returns whichever of a and its complement sweeps at least π.
func (a Arc) Major() Arc {
	if a.Sweep >= math.Pi {
		return a
	}
	return a.complement()
}

// Sector returns the pie slice bounded by the arc.
func (a Arc) Sector() Sector { return Sector(a) }

func (a Arc) Rotate(angle float64, c Point) Arc {
	return Arc{C: a.C.Rotate(angle, c), Start: a.Start.Rotate(angle, c), Sweep: a.Sweep}
}

// Reflect mirrors the arc across l. Mirroring flips the sweep direction.
func (a Arc) Reflect(l Linelike) Arc {
	return Arc{C: a.C.Reflect(l), Start: a.Start.Reflect(l), Sweep: -a.Sweep}
}

// Scale scales center and start point. Non-uniform scales do not produce
// an ellipse; the radius follows the scaled start point.
func (a Arc) Scale(sx, sy float64) Arc {
	return Arc{C: a.C.Scale(sx, sy), Start: a.Start.Scale(sx, sy), Sweep: a.Sweep}
}

func (a Arc) Shift(dx, dy float64) Arc {
	return Arc{C: a.C.Shift(dx, dy), Start: a.Start.Shift(dx, dy), Sweep: a.Sweep}
}

func (a Arc) Translate(v Point) Arc { return a.Shift(v.X, v.Y) }

// Transform applies m to the center and start point. The sweep is kept, so
// m should be a similarity transform.
func (a Arc) Transform(m f64.Aff3) Arc {
	return Arc{C: a.C.Transform(m), Start: a.Start.Transform(m), Sweep: a.Sweep}
}

// ---------------------------------------------------------------------------
// Sector
// ---------------------------------------------------------------------------

// Sector is the pie slice bounded by an arc and the two radii to its ends.
// Its geometry is that of the arc.
type Sector Arc

// NewSector returns the sector around c from start through sweep radians.
func NewSector(c, start Point, sweep float64) Sector {
	return Sector{C: c, Start: start, Sweep: sweep}
}

func (s Sector) Kind() Kind { return KindSector }

func (s Sector) String() string {
	return fmt.Sprintf("sector(%v, %v, %g)", s.C, s.Start, s.Sweep)
}

// Arc returns the bounding arc.
func (s Sector) Arc() Arc { return Arc(s) }

func (s Sector) Radius() float64       { return s.Arc().Radius() }
func (s Sector) End() Point            { return s.Arc().End() }
func (s Sector) StartAngle() float64   { return s.Arc().StartAngle() }
func (s Sector) At(t float64) Point    { return s.Arc().At(t) }
func (s Sector) Project(p Point) Point { return s.Arc().Project(p) }
func (s Sector) Contains(p Point) bool { return s.Arc().Contains(p) }

// Area returns r²·|sweep|/2.
func (s Sector) Area() float64 {
	r := s.Radius()
	return r * r * math.Abs(s.Sweep) / 2
}

func (s Sector) Contract(p float64) Sector { return Sector(s.Arc().Contract(p)) }
func (s Sector) Minor() Sector             { return Sector(s.Arc().Minor()) }
func (s Sector) Major() Sector             { return Sector(s.Arc().Major()) }

func (s Sector) Rotate(angle float64, c Point) Sector { return Sector(s.Arc().Rotate(angle, c)) }
func (s Sector) Reflect(l Linelike) Sector            { return Sector(s.Arc().Reflect(l)) }
func (s Sector) Scale(sx, sy float64) Sector          { return Sector(s.Arc().Scale(sx, sy)) }
func (s Sector) Shift(dx, dy float64) Sector          { return Sector(s.Arc().Shift(dx, dy)) }
func (s Sector) Translate(v Point) Sector             { return s.Shift(v.X, v.Y) }
func (s Sector) Transform(m f64.Aff3) Sector          { return Sector(s.Arc().Transform(m)) }
