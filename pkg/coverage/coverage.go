// Package coverage walks a scene and rasterizes its area shapes using a
// region kernel. One kernel.Coverage is produced per area entry, and
// pairwise overlaps are estimated from the kernel's boolean intersection.
package coverage

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/scene"
)

// sectorSegments is the number of chords used to approximate a sector's arc.
const sectorSegments = 64

// Overlap is the estimated shared area of two scene shapes.
type Overlap struct {
	A    scene.ShapeID `json:"a"`
	B    scene.ShapeID `json:"b"`
	Area float64       `json:"area"`
}

// Report is the sampled coverage of a scene.
type Report struct {
	Shapes   []*kernel.Coverage `json:"shapes"`
	Overlaps []Overlap          `json:"overlaps,omitempty"`
}

// Sample rasterizes every area entry of s. The sampler is read-only and
// never mutates the scene.
func Sample(s *scene.Scene, k kernel.Kernel, cells int) (*Report, error) {
	if s == nil {
		return &Report{}, nil
	}

	areas := s.Areas()
	regions := make([]kernel.Region, len(areas))
	rep := &Report{}

	for i, e := range areas {
		r, err := Region(k, e.Shape)
		if err != nil {
			return nil, fmt.Errorf("coverage: shape %s: %w", e.ID.Short(), err)
		}
		regions[i] = r

		c, err := k.Sample(r, cells)
		if err != nil {
			return nil, fmt.Errorf("coverage: sample %s: %w", e.ID.Short(), err)
		}
		c.Name = label(e)
		rep.Shapes = append(rep.Shapes, c)
	}

	for i := range areas {
		for j := i + 1; j < len(areas); j++ {
			if !boundsOverlap(regions[i].BoundingBox(), regions[j].BoundingBox()) {
				continue
			}
			c, err := k.Sample(k.Intersection(regions[i], regions[j]), cells)
			if err != nil {
				return nil, fmt.Errorf("coverage: overlap %s/%s: %w", areas[i].ID.Short(), areas[j].ID.Short(), err)
			}
			if c.IsEmpty() {
				continue
			}
			rep.Overlaps = append(rep.Overlaps, Overlap{A: areas[i].ID, B: areas[j].ID, Area: c.Area})
		}
	}

	return rep, nil
}

// Region converts an area shape to a kernel region.
func Region(k kernel.Kernel, sh geom.Shape) (kernel.Region, error) {
	switch sh.Kind() {
	case geom.KindPolygon, geom.KindRectangle:
		return k.Polygon(sh.(geom.Polygonlike).Points())
	case geom.KindCircle:
		c := sh.(geom.Circle)
		return k.Circle(c.C, c.R)
	case geom.KindSector:
		return k.Polygon(sectorOutline(sh.(geom.Sector)))
	default:
		return nil, fmt.Errorf("%s encloses no region", sh.Kind())
	}
}

// sectorOutline approximates a sector by its center and chords along the arc.
func sectorOutline(s geom.Sector) []geom.Point {
	pts := make([]geom.Point, 0, sectorSegments+2)
	pts = append(pts, s.C)
	for i := 0; i <= sectorSegments; i++ {
		pts = append(pts, s.At(float64(i)/sectorSegments))
	}
	return pts
}

func label(e *scene.Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID.Short()
}

func boundsOverlap(a, b geom.Bounds) bool {
	return a.XMin <= b.XMax && b.XMin <= a.XMax && a.YMin <= b.YMax && b.YMin <= a.YMax
}
