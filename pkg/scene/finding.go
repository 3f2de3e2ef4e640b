package scene

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// QueryKind enumerates the geometric queries a script can record.
type QueryKind int

const (
	QueryIntersections QueryKind = iota // points where shapes meet
	QueryClip                           // shared region of two polygons
	QueryCollides                       // polygon overlap test
	QueryContains                       // hit test
	QueryProject                        // snap a point onto a shape
	QueryArea                           // enclosed area
)

func (q QueryKind) String() string {
	switch q {
	case QueryIntersections:
		return "intersections"
	case QueryClip:
		return "clip"
	case QueryCollides:
		return "collides"
	case QueryContains:
		return "contains"
	case QueryProject:
		return "project"
	case QueryArea:
		return "area"
	default:
		return fmt.Sprintf("QueryKind(%d)", int(q))
	}
}

func (q QueryKind) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Finding is the recorded outcome of one query. Operands refers to the
// scene entries the query ran against; exactly one of the result fields
// is set unless Error is.
type Finding struct {
	Query    QueryKind     `json:"query"`
	Operands []ShapeID     `json:"operands"`
	Points   []geom.Point  `json:"points,omitempty"`
	Polygon  *geom.Polygon `json:"polygon,omitempty"`
	Bool     *bool         `json:"bool,omitempty"`
	Value    *float64      `json:"value,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func (f Finding) String() string {
	switch {
	case f.Error != "":
		return fmt.Sprintf("%s: error: %s", f.Query, f.Error)
	case f.Polygon != nil:
		return fmt.Sprintf("%s: %v", f.Query, *f.Polygon)
	case f.Bool != nil:
		return fmt.Sprintf("%s: %t", f.Query, *f.Bool)
	case f.Value != nil:
		return fmt.Sprintf("%s: %g", f.Query, *f.Value)
	default:
		return fmt.Sprintf("%s: %v", f.Query, f.Points)
	}
}
