// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxRegion wraps an sdf.SDF2 to implement kernel.Region.
type sdfxRegion struct {
	s sdf.SDF2
}

// BoundingBox returns the axis-aligned bounding box.
func (r *sdfxRegion) BoundingBox() geom.Bounds {
	bb := r.s.BoundingBox()
	return geom.NewBounds(bb.Min.X, bb.Max.X, bb.Min.Y, bb.Max.Y)
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

func unwrap(r kernel.Region) sdf.SDF2 {
	return r.(*sdfxRegion).s
}

func wrap(s sdf.SDF2) kernel.Region {
	return &sdfxRegion{s: s}
}

func vec(p geom.Point) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// Polygon creates a region bounded by the closed vertex list pts. Either
// winding is accepted.
func (k *SdfxKernel) Polygon(pts []geom.Point) (kernel.Region, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w: got %d", geom.ErrTooFewVertices, len(pts))
	}
	verts := make([]v2.Vec, len(pts))
	for i, p := range pts {
		verts[i] = vec(p)
	}
	s, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
	}
	return wrap(s), nil
}

// Circle creates a disc of radius r centered on c.
func (k *SdfxKernel) Circle(c geom.Point, r float64) (kernel.Region, error) {
	if r <= 0 {
		return nil, fmt.Errorf("sdfx.Circle2D: radius %g must be positive", r)
	}
	s, err := sdf.Circle2D(r)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
	}
	return wrap(sdf.Transform2D(s, sdf.Translate2d(vec(c)))), nil
}

// Union returns the union of two regions.
func (k *SdfxKernel) Union(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Union2D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Difference2D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two regions.
func (k *SdfxKernel) Intersection(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Intersect2D(unwrap(a), unwrap(b)))
}

// Translate moves a region by (dx, dy).
func (k *SdfxKernel) Translate(r kernel.Region, dx, dy float64) kernel.Region {
	return wrap(sdf.Transform2D(unwrap(r), sdf.Translate2d(v2.Vec{X: dx, Y: dy})))
}

// Rotate turns a region by angle radians about the origin.
func (k *SdfxKernel) Rotate(r kernel.Region, angle float64) kernel.Region {
	return wrap(sdf.Transform2D(unwrap(r), sdf.Rotate2d(angle)))
}

// Distance evaluates the signed distance field at p.
func (k *SdfxKernel) Distance(r kernel.Region, p geom.Point) float64 {
	return unwrap(r).Evaluate(vec(p))
}

// Sample rasterizes the region over its bounding box. A cell is filled
// when the field is non-positive at its center.
func (k *SdfxKernel) Sample(r kernel.Region, cells int) (*kernel.Coverage, error) {
	s := unwrap(r)
	c, err := kernel.SampleGrid(r.BoundingBox(), cells, func(p geom.Point) bool {
		return s.Evaluate(vec(p)) <= 0
	})
	if err != nil {
		return nil, fmt.Errorf("sdfx: sample: %w", err)
	}
	return c, nil
}
