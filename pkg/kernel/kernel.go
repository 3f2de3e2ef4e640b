// Package kernel defines the abstract 2D region kernel interface.
// Implementations provide signed-distance regions and boolean operations
// behind this interface, so area estimates can be computed independently
// of the exact polygon algorithms in geom.
package kernel

import "github.com/chazu/planar/pkg/geom"

// Region is an opaque handle to a kernel region.
// Implementations wrap their internal representation.
type Region interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() geom.Bounds
}

// Kernel is the abstract region kernel interface.
type Kernel interface {
	// Primitives
	Polygon(pts []geom.Point) (Region, error)
	Circle(c geom.Point, r float64) (Region, error)

	// Boolean operations
	Union(a, b Region) Region
	Difference(a, b Region) Region
	Intersection(a, b Region) Region

	// Transforms
	Translate(r Region, dx, dy float64) Region
	Rotate(r Region, angle float64) Region // radians, about the origin

	// Distance returns the signed distance from p to the region boundary,
	// negative inside.
	Distance(r Region, p geom.Point) float64

	// Sample rasterizes the region over its bounding box.
	Sample(r Region, cells int) (*Coverage, error)
}
