package geom

// Kind is the discriminant tag carried by every shape. Dispatch in the
// intersection engine switches on it rather than on dynamic type checks.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindRay
	KindSegment
	KindArc
	KindSector
	KindPolygon
	KindRectangle
	KindAngle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindRay:
		return "ray"
	case KindSegment:
		return "segment"
	case KindArc:
		return "arc"
	case KindSector:
		return "sector"
	case KindPolygon:
		return "polygon"
	case KindRectangle:
		return "rectangle"
	case KindAngle:
		return "angle"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k := KindPoint; k <= KindCircle; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Shape is implemented by every geometric value in this package. The set of
// implementations is closed: the unexported marker method keeps other
// packages from adding their own.
type Shape interface {
	Kind() Kind
	shape() // marker method restricting implementations to this package
}

// Hittable is the contract used by interactive collaborators to hit-test a
// shape and snap a pointer position onto it.
type Hittable interface {
	Shape
	Contains(p Point) bool
	Project(p Point) Point
}

// Linelike is any shape representable as a line through two points: Line,
// Segment and Ray.
type Linelike interface {
	Shape
	Endpoints() (Point, Point)
	Length() float64
	Midpoint() Point
	Slope() float64
	Angle() float64
	UnitVector() Point
	PerpendicularVector() Point
	Project(p Point) Point
	Contains(p Point) bool
	ContainsTol(p Point, tol Tolerance) bool
	At(t float64) Point
	Line() Line
}

// Polygonlike is any shape representable as an ordered, cyclic vertex list:
// Polygon and Rectangle.
type Polygonlike interface {
	Shape
	Points() []Point
	Edges() []Segment
	Polygon() Polygon
	Contains(p Point) bool
	ContainsTol(p Point, tol Tolerance) bool
}

// Round is any shape with a center and a radius. Circle is the only
// implementation that takes part in intersections.
type Round interface {
	Shape
	Center() Point
	Radius() float64
}

// Compile-time interface checks.
var (
	_ Hittable    = Point{}
	_ Linelike    = Line{}
	_ Linelike    = Segment{}
	_ Linelike    = Ray{}
	_ Hittable    = Arc{}
	_ Hittable    = Sector{}
	_ Polygonlike = Polygon{}
	_ Polygonlike = Rectangle{}
	_ Round       = Circle{}
	_ Shape       = Angle{}
)

func (Point) shape()     {}
func (Line) shape()      {}
func (Segment) shape()   {}
func (Ray) shape()       {}
func (Arc) shape()       {}
func (Sector) shape()    {}
func (Polygon) shape()   {}
func (Rectangle) shape() {}
func (Angle) shape()     {}
func (Circle) shape()    {}
