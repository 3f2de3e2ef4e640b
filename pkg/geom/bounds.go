package geom

// Bounds is an axis-aligned rectangular extent. Callers must supply ordered
// bounds (XMin ≤ XMax, YMin ≤ YMax); the constructor does not reorder them.
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// NewBounds returns the bounds [xMin, xMax] × [yMin, yMax].
func NewBounds(xMin, xMax, yMin, yMax float64) Bounds {
	return Bounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// BoundsOf returns the smallest bounds enclosing pts. An empty list yields
// the zero Bounds.
func BoundsOf(pts ...Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{XMin: pts[0].X, XMax: pts[0].X, YMin: pts[0].Y, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.XMin {
			b.XMin = p.X
		}
		if p.X > b.XMax {
			b.XMax = p.X
		}
		if p.Y < b.YMin {
			b.YMin = p.Y
		}
		if p.Y > b.YMax {
			b.YMax = p.Y
		}
	}
	return b
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether p lies inside or on the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Rect returns the bounds as a Rectangle anchored at (XMin, YMin).
func (b Bounds) Rect() Rectangle {
	return Rectangle{P: Point{X: b.XMin, Y: b.YMin}, W: b.Width(), H: b.Height()}
}
