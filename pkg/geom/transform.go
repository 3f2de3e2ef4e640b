package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// The functions below apply a transform to any shape, returning the
// transformed shape. Rotating or reflecting a Rectangle yields a Polygon.

// RotateShape rotates s by angle radians about c.
func RotateShape(s Shape, angle float64, c Point) Shape {
	switch s.Kind() {
	case KindPoint:
		return s.(Point).Rotate(angle, c)
	case KindLine:
		return s.(Line).Rotate(angle, c)
	case KindRay:
		return s.(Ray).Rotate(angle, c)
	case KindSegment:
		return s.(Segment).Rotate(angle, c)
	case KindArc:
		return s.(Arc).Rotate(angle, c)
	case KindSector:
		return s.(Sector).Rotate(angle, c)
	case KindPolygon:
		return s.(Polygon).Rotate(angle, c)
	case KindRectangle:
		return s.(Rectangle).Rotate(angle, c)
	case KindAngle:
		return s.(Angle).Rotate(angle, c)
	case KindCircle:
		return s.(Circle).Rotate(angle, c)
	}
	panic(fmt.Sprintf("geom: rotate of unknown kind %v", s.Kind()))
}

// ShiftShape moves s by (dx, dy).
func ShiftShape(s Shape, dx, dy float64) Shape {
	switch s.Kind() {
	case KindPoint:
		return s.(Point).Shift(dx, dy)
	case KindLine:
		return s.(Line).Shift(dx, dy)
	case KindRay:
		return s.(Ray).Shift(dx, dy)
	case KindSegment:
		return s.(Segment).Shift(dx, dy)
	case KindArc:
		return s.(Arc).Shift(dx, dy)
	case KindSector:
		return s.(Sector).Shift(dx, dy)
	case KindPolygon:
		return s.(Polygon).Shift(dx, dy)
	case KindRectangle:
		return s.(Rectangle).Shift(dx, dy)
	case KindAngle:
		return s.(Angle).Shift(dx, dy)
	case KindCircle:
		return s.(Circle).Shift(dx, dy)
	}
	panic(fmt.Sprintf("geom: shift of unknown kind %v", s.Kind()))
}

// ScaleShape scales s about the origin.
func ScaleShape(s Shape, sx, sy float64) Shape {
	switch s.Kind() {
	case KindPoint:
		return s.(Point).Scale(sx, sy)
	case KindLine:
		return s.(Line).Scale(sx, sy)
	case KindRay:
		return s.(Ray).Scale(sx, sy)
	case KindSegment:
		return s.(Segment).Scale(sx, sy)
	case KindArc:
		return s.(Arc).Scale(sx, sy)
	case KindSector:
		return s.(Sector).Scale(sx, sy)
	case KindPolygon:
		return s.(Polygon).Scale(sx, sy)
	case KindRectangle:
		return s.(Rectangle).Scale(sx, sy)
	case KindAngle:
		return s.(Angle).Scale(sx, sy)
	case KindCircle:
		return s.(Circle).Scale(sx, sy)
	}
	panic(fmt.Sprintf("geom: scale of unknown kind %v", s.Kind()))
}

// ReflectShape mirrors s across l.
func ReflectShape(s Shape, l Linelike) Shape {
	switch s.Kind() {
	case KindPoint:
		return s.(Point).Reflect(l)
	case KindLine:
		return s.(Line).Reflect(l)
	case KindRay:
		return s.(Ray).Reflect(l)
	case KindSegment:
		return s.(Segment).Reflect(l)
	case KindArc:
		return s.(Arc).Reflect(l)
	case KindSector:
		return s.(Sector).Reflect(l)
	case KindPolygon:
		return s.(Polygon).Reflect(l)
	case KindRectangle:
		return s.(Rectangle).Reflect(l)
	case KindAngle:
		return s.(Angle).Reflect(l)
	case KindCircle:
		return s.(Circle).Reflect(l)
	}
	panic(fmt.Sprintf("geom: reflect of unknown kind %v", s.Kind()))
}

// TransformShape applies the affine matrix m to s.
func TransformShape(s Shape, m f64.Aff3) Shape {
	switch s.Kind() {
	case KindPoint:
		return s.(Point).Transform(m)
	case KindLine:
		return s.(Line).Transform(m)
	case KindRay:
		return s.(Ray).Transform(m)
	case KindSegment:
		return s.(Segment).Transform(m)
	case KindArc:
		return s.(Arc).Transform(m)
	case KindSector:
		return s.(Sector).Transform(m)
	case KindPolygon:
		return s.(Polygon).Transform(m)
	case KindRectangle:
		return s.(Rectangle).Transform(m)
	case KindAngle:
		return s.(Angle).Transform(m)
	case KindCircle:
		return s.(Circle).Transform(m)
	}
	panic(fmt.Sprintf("geom: transform of unknown kind %v", s.Kind()))
}

// ShapeBounds returns the bounding box of s. Lines and rays are unbounded
// and report false.
func ShapeBounds(s Shape) (Bounds, bool) {
	switch s.Kind() {
	case KindPoint:
		return BoundsOf(s.(Point)), true
	case KindSegment:
		seg := s.(Segment)
		return BoundsOf(seg.P1, seg.P2), true
	case KindPolygon, KindRectangle:
		return BoundsOf(s.(Polygonlike).Points()...), true
	case KindAngle:
		a := s.(Angle)
		return BoundsOf(a.A, a.B, a.C), true
	case KindCircle:
		c := s.(Circle)
		return NewBounds(c.C.X-c.R, c.C.X+c.R, c.C.Y-c.R, c.C.Y+c.R), true
	case KindArc:
		return BoundsOf(arcExtremes(s.(Arc))...), true
	case KindSector:
		sec := s.(Sector)
		return BoundsOf(append(arcExtremes(sec.Arc()), sec.C)...), true
	}
	return Bounds{}, false
}

// arcExtremes returns the arc's endpoints and every axis-extreme point of
// its circle that the arc passes through.
func arcExtremes(a Arc) []Point {
	pts := []Point{a.Start, a.End()}
	r := a.Radius()
	for i := 0; i < 4; i++ {
		p := a.C.Add(FromPolar(float64(i)*math.Pi/2, r))
		if a.Contains(p) {
			pts = append(pts, p)
		}
	}
	return pts
}
