package coverage_test

import (
	"math"
	"testing"

	"github.com/chazu/planar/pkg/coverage"
	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/kernel/sdfx"
	"github.com/chazu/planar/pkg/scene"
)

func newKernel() kernel.Kernel {
	return sdfx.New()
}

func square(x, y, size float64) geom.Polygon {
	return geom.MustPolygon(geom.Pt(x, y), geom.Pt(x+size, y), geom.Pt(x+size, y+size), geom.Pt(x, y+size))
}

func TestEmptyScene(t *testing.T) {
	rep, err := coverage.Sample(scene.New(0), newKernel(), 50)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(rep.Shapes) != 0 || len(rep.Overlaps) != 0 {
		t.Errorf("Sample(empty) = %+v, want empty report", rep)
	}
	if rep, err := coverage.Sample(nil, newKernel(), 50); err != nil || len(rep.Shapes) != 0 {
		t.Errorf("Sample(nil) = %+v, %v", rep, err)
	}
}

func TestAreaShapesOnly(t *testing.T) {
	s := scene.New(0)
	s.Add("sq", square(0, 0, 2))
	s.Add("", geom.NewSegment(geom.Pt(0, 0), geom.Pt(5, 5)))
	s.Add("disc", geom.NewCircle(geom.Pt(10, 10), 1))
	s.Add("wedge", geom.NewSector(geom.Pt(20, 0), geom.Pt(22, 0), math.Pi/2))
	s.Add("box", geom.NewRectangle(geom.Pt(-10, -10), 3, 1))

	rep, err := coverage.Sample(s, newKernel(), 200)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	want := []struct {
		name string
		area float64
	}{
		{"sq", 4},
		{"disc", math.Pi},
		{"wedge", math.Pi},
		{"box", 3},
	}
	if len(rep.Shapes) != len(want) {
		t.Fatalf("len(Shapes) = %d, want %d", len(rep.Shapes), len(want))
	}
	for i, w := range want {
		c := rep.Shapes[i]
		if c.Name != w.name {
			t.Errorf("Shapes[%d].Name = %q, want %q", i, c.Name, w.name)
		}
		if math.Abs(c.Area-w.area)/w.area > 0.02 {
			t.Errorf("%s area = %f, want ~%f", w.name, c.Area, w.area)
		}
	}
	if len(rep.Overlaps) != 0 {
		t.Errorf("Overlaps = %v, want none", rep.Overlaps)
	}
}

func TestOverlapMatchesClip(t *testing.T) {
	a, b := square(0, 0, 1), square(0.5, 0.5, 1)
	s := scene.New(0)
	ea := s.Add("a", a)
	eb := s.Add("b", b)
	s.Add("far", square(50, 50, 1))

	rep, err := coverage.Sample(s, newKernel(), 200)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(rep.Overlaps) != 1 {
		t.Fatalf("len(Overlaps) = %d, want 1: %v", len(rep.Overlaps), rep.Overlaps)
	}
	o := rep.Overlaps[0]
	if o.A != ea.ID || o.B != eb.ID {
		t.Errorf("overlap operands = %s/%s, want a/b", o.A.Short(), o.B.Short())
	}
	clipped, ok := a.Intersect(b)
	if !ok {
		t.Fatal("Intersect() ok = false")
	}
	if math.Abs(o.Area-clipped.Area()) > 0.02 {
		t.Errorf("overlap area = %f, clip area = %f", o.Area, clipped.Area())
	}
}

func TestRegionRejectsOpenShapes(t *testing.T) {
	k := newKernel()
	for _, sh := range []geom.Shape{
		geom.Pt(1, 1),
		geom.NewLine(geom.Pt(0, 0), geom.Pt(1, 1)),
		geom.NewArc(geom.Origin, geom.Pt(1, 0), 1),
		geom.NewAngle(geom.Pt(1, 0), geom.Origin, geom.Pt(0, 1)),
	} {
		if _, err := coverage.Region(k, sh); err == nil {
			t.Errorf("Region(%s) should fail", sh.Kind())
		}
	}
}

func TestInvalidShapeFails(t *testing.T) {
	s := scene.New(0)
	s.Add("bad", geom.NewCircle(geom.Origin, -1))
	if _, err := coverage.Sample(s, newKernel(), 50); err == nil {
		t.Error("Sample() with negative radius should fail")
	}
}
