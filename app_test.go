package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
)

func evalFile(t *testing.T, path string) EvalResult {
	t.Helper()
	source, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	result := NewApp(nil).Evaluate(string(source))
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}
	return result
}

func shapeByName(t *testing.T, r EvalResult, name string) ShapeData {
	t.Helper()
	for _, s := range r.Shapes {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no shape named %q", name)
	return ShapeData{}
}

func within(got, want, frac float64) bool {
	return math.Abs(got-want) <= frac*math.Max(1, math.Abs(want))
}

// TestE2EExamples runs every bundled script through the whole pipeline.
func TestE2EExamples(t *testing.T) {
	paths, err := filepath.Glob("examples/*.planar")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example scripts found")
	}
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			r := evalFile(t, p)
			if len(r.Shapes) == 0 {
				t.Error("example produced no shapes")
			}
			for _, s := range r.Shapes {
				if s.Color == "" {
					t.Errorf("shape %q has no color", s.Name)
				}
			}
		})
	}
}

func TestE2EOverlapExample(t *testing.T) {
	r := evalFile(t, "examples/overlap.planar")

	if len(r.Shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(r.Shapes))
	}
	if len(r.Findings) != 4 {
		t.Fatalf("expected 4 findings, got %d", len(r.Findings))
	}

	hits := r.Findings[0]
	if hits.Query != scene.QueryIntersections || len(hits.Points) != 2 {
		t.Errorf("first finding = %+v, want two intersection points", hits.Finding)
	}
	if c := r.Findings[1]; c.Bool == nil || !*c.Bool {
		t.Errorf("collides finding = %+v, want true", c.Finding)
	}
	if a := r.Findings[3]; a.Value == nil || !within(*a.Value, 4, 1e-9) {
		t.Errorf("area finding = %+v, want 4", a.Finding)
	}

	shared := shapeByName(t, r, "shared")
	if shared.Kind != geom.KindPolygon {
		t.Errorf("shared kind = %v, want polygon", shared.Kind)
	}
	if b := shared.Bounds; b == nil || !within(b.XMin, 2, 1e-9) || !within(b.YMax, 4, 1e-9) {
		t.Errorf("shared bounds = %+v, want [2,4]x[2,4]", shared.Bounds)
	}

	if len(r.Coverage) != 3 {
		t.Fatalf("expected 3 coverage grids, got %d", len(r.Coverage))
	}
	for _, c := range r.Coverage {
		want := 16.0
		if c.Name == "shared" {
			want = 4
		}
		if !within(c.Area, want, 0.02) {
			t.Errorf("coverage %q area = %g, want ~%g", c.Name, c.Area, want)
		}
	}
	// a/b, a/shared and b/shared each share the 2x2 corner.
	if len(r.Overlaps) != 3 {
		t.Fatalf("expected 3 overlaps, got %d", len(r.Overlaps))
	}
	for _, o := range r.Overlaps {
		if !within(o.Area, 4, 0.05) {
			t.Errorf("overlap area = %g, want ~4", o.Area)
		}
	}
}

func TestE2ECirclesExample(t *testing.T) {
	r := evalFile(t, "examples/circles.planar")

	if len(r.Shapes) != 4 {
		t.Fatalf("expected 4 shapes, got %d", len(r.Shapes))
	}
	if len(r.Findings) != 5 {
		t.Fatalf("expected 5 findings, got %d", len(r.Findings))
	}

	// Unit circle and circle at (1,0) cross at (1/2, ±√3/2).
	if pts := r.Findings[0].Points; len(pts) != 2 || !within(pts[0].X, 0.5, 1e-9) {
		t.Errorf("circle/circle points = %v", pts)
	}
	// The line y=1 is tangent to the unit circle.
	if pts := r.Findings[1].Points; len(pts) != 1 || !pts[0].Equals(geom.Pt(0, 1)) {
		t.Errorf("tangent points = %v, want [(0, 1)]", pts)
	}
	if pts := r.Findings[2].Points; len(pts) != 1 || !pts[0].Equals(geom.Pt(0.6, 0.8)) {
		t.Errorf("project = %v, want [(0.6, 0.8)]", pts)
	}
	if b := r.Findings[3].Bool; b == nil || !*b {
		t.Error("contains([0.5 0]) = false, want true")
	}
	if v := r.Findings[4].Value; v == nil || !within(*v, math.Pi, 1e-9) {
		t.Errorf("wedge area = %v, want π", v)
	}

	if len(r.Coverage) != 3 {
		t.Fatalf("expected 3 coverage grids, got %d", len(r.Coverage))
	}
	for _, c := range r.Coverage {
		if !within(c.Area, math.Pi, 0.05) {
			t.Errorf("coverage %q area = %g, want ~π", c.Name, c.Area)
		}
	}
}

func TestE2ETransformsExample(t *testing.T) {
	r := evalFile(t, "examples/transforms.planar")

	if len(r.Shapes) != 7 {
		t.Fatalf("expected 7 shapes, got %d", len(r.Shapes))
	}
	kinds := map[string]geom.Kind{
		"plate":    geom.KindRectangle,
		"turned":   geom.KindPolygon,
		"mirrored": geom.KindPolygon,
		"hull":     geom.KindRectangle,
		"tri-big":  geom.KindPolygon,
	}
	for name, want := range kinds {
		if got := shapeByName(t, r, name).Kind; got != want {
			t.Errorf("%s kind = %v, want %v", name, got, want)
		}
	}

	if v := r.Findings[0].Value; v == nil || !within(*v, 18, 1e-9) {
		t.Errorf("tri-big area = %v, want 18", v)
	}
	hits := r.Findings[1].Points
	if len(hits) != 2 {
		t.Fatalf("plate/segment points = %v, want 2", hits)
	}
	for _, p := range hits {
		if !within(p.Y, 1, 1e-9) || !(within(p.X, 0, 1e-9) || within(p.X, 6, 1e-9)) {
			t.Errorf("unexpected crossing %v", p)
		}
	}

	// The segment is the only unnamed shape; it has no coverage grid.
	if len(r.Coverage) != 6 {
		t.Errorf("expected 6 coverage grids, got %d", len(r.Coverage))
	}
}

func TestE2EEmptySource(t *testing.T) {
	r := NewApp(nil).Evaluate("")
	if len(r.Errors) != 0 || len(r.Shapes) != 0 || len(r.Findings) != 0 {
		t.Errorf("Evaluate(\"\") = %+v, want empty result", r)
	}
}

func TestE2ESyntaxError(t *testing.T) {
	r := NewApp(nil).Evaluate(`(defshape "a" (circle [0 0] 1)`)
	if len(r.Errors) == 0 {
		t.Fatal("expected syntax error, got none")
	}
	if len(r.Shapes) != 0 {
		t.Errorf("expected 0 shapes on syntax error, got %d", len(r.Shapes))
	}
}
