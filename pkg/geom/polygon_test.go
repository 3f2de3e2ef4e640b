package geom

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func square(x, y, size float64) Polygon {
	return MustPolygon(Pt(x, y), Pt(x+size, y), Pt(x+size, y+size), Pt(x, y+size))
}

func TestNewPolygonTooFew(t *testing.T) {
	_, err := NewPolygon(Pt(0, 0), Pt(1, 1))
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("NewPolygon() error = %v, want ErrTooFewVertices", err)
	}
}

func TestPolygonZeroValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("SignedArea() on empty polygon did not panic")
		}
		if msg, _ := r.(string); !strings.HasPrefix(msg, "geom:") {
			t.Errorf("panic = %v, want geom: prefix", r)
		}
	}()
	Polygon{}.SignedArea()
}

func TestPolygonPointsAreCopied(t *testing.T) {
	src := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	p := MustPolygon(src...)
	src[0] = Pt(9, 9)
	pts := p.Points()
	pts[1] = Pt(9, 9)
	if got := p.Points(); got[0] != Pt(0, 0) || got[1] != Pt(1, 0) {
		t.Errorf("Points() = %v, polygon was mutated through a shared slice", got)
	}
}

func TestSignedArea(t *testing.T) {
	cw := square(0, 0, 1)
	if got := cw.SignedArea(); got != 1 {
		t.Errorf("SignedArea() = %g, want 1", got)
	}
	if got := cw.Reverse().SignedArea(); got != -1 {
		t.Errorf("Reverse().SignedArea() = %g, want -1", got)
	}
	if got := cw.Reverse().Area(); got != 1 {
		t.Errorf("Area() = %g, want 1", got)
	}
}

func TestOriented(t *testing.T) {
	cw := square(0, 0, 2)
	ccw := cw.Reverse()
	for _, p := range []Polygon{cw, ccw} {
		o := p.Oriented()
		if o.SignedArea() < 0 {
			t.Errorf("Oriented().SignedArea() = %g, want ≥ 0", o.SignedArea())
		}
		oo := o.Oriented()
		for i, v := range oo.Points() {
			if v != o.Points()[i] {
				t.Fatalf("Oriented().Oriented() = %v, want %v", oo, o)
			}
		}
	}
}

func TestPolygonContains(t *testing.T) {
	sq := MustPolygon(Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4))
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(2, 2), true},
		{"vertex", Pt(0, 0), false},
		{"bottom edge", Pt(2, 0), false},
		{"right edge", Pt(4, 2), false},
		{"outside", Pt(5, 5), false},
		{"left of polygon", Pt(-1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sq.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// Concave "U": the notch is outside.
	u := MustPolygon(Pt(0, 0), Pt(3, 0), Pt(3, 3), Pt(2, 3), Pt(2, 1), Pt(1, 1), Pt(1, 3), Pt(0, 3))
	if u.Contains(Pt(1.5, 2)) {
		t.Error("Contains(notch) = true, want false")
	}
	if !u.Contains(Pt(0.5, 2)) {
		t.Error("Contains(left arm) = false, want true")
	}
}

func TestPolygonEdgesAndWalk(t *testing.T) {
	sq := square(0, 0, 4)
	edges := sq.Edges()
	if len(edges) != 4 {
		t.Fatalf("len(Edges()) = %d, want 4", len(edges))
	}
	if last := edges[3]; last.P1 != Pt(0, 4) || last.P2 != Pt(0, 0) {
		t.Errorf("Edges()[3] = %v, want wrap to first vertex", last)
	}
	if got := sq.Circumference(); got != 16 {
		t.Errorf("Circumference() = %g, want 16", got)
	}
	if got := sq.Centroid(); got != Pt(2, 2) {
		t.Errorf("Centroid() = %v, want (2, 2)", got)
	}
	for _, tt := range []struct {
		t    float64
		want Point
	}{{0, Pt(0, 0)}, {0.125, Pt(2, 0)}, {0.5, Pt(4, 4)}, {1, Pt(0, 0)}} {
		if got := sq.At(tt.t); !nearPoint(got, tt.want) {
			t.Errorf("At(%g) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := sq.Project(Pt(5, 2)); !nearPoint(got, Pt(4, 2)) {
		t.Errorf("Project() = %v, want (4, 2)", got)
	}
	if b := sq.Bounds(); b != NewBounds(0, 4, 0, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygonlike
		want bool
	}{
		{"overlapping", square(0, 0, 2), square(1, 1, 2), true},
		{"disjoint", square(0, 0, 1), square(5, 5, 1), false},
		{"contained", square(0, 0, 10), square(4, 4, 1), true},
		{"contains", square(4, 4, 1), square(0, 0, 10), true},
		{"rectangle", NewRectangle(Pt(0.5, -1), 1, 5), square(0, 0, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collision(tt.a, tt.b); got != tt.want {
				t.Errorf("Collision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelfIntersecting(t *testing.T) {
	bowtie := MustPolygon(Pt(0, 0), Pt(2, 2), Pt(2, 0), Pt(0, 2))
	if !bowtie.SelfIntersecting() {
		t.Error("bowtie SelfIntersecting() = false, want true")
	}
	if square(0, 0, 1).SelfIntersecting() {
		t.Error("square SelfIntersecting() = true, want false")
	}
}

func TestPolygonTransforms(t *testing.T) {
	sq := square(0, 0, 1)
	rot := sq.Rotate(math.Pi/2, Origin)
	if !near(rot.Area(), 1) {
		t.Errorf("Rotate().Area() = %g, want 1", rot.Area())
	}
	if got := sq.Shift(2, 3).Points()[0]; got != Pt(2, 3) {
		t.Errorf("Shift().Points()[0] = %v, want (2, 3)", got)
	}
	if got := sq.Scale(2, 3).Area(); got != 6 {
		t.Errorf("Scale(2, 3).Area() = %g, want 6", got)
	}
	if got := sq.Reflect(NewLine(Origin, Pt(1, 0))).SignedArea(); got != -1 {
		t.Errorf("Reflect().SignedArea() = %g, want -1", got)
	}
}

func TestPolygonJSON(t *testing.T) {
	data, err := json.Marshal(square(0, 0, 1))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"points"`) {
		t.Errorf("Marshal() = %s, want points key", data)
	}
	var back Polygon
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Len() != 4 {
		t.Errorf("Len() = %d, want 4", back.Len())
	}
	if err := json.Unmarshal([]byte(`{"points":[{"x":0,"y":0}]}`), &back); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("Unmarshal(1 point) error = %v, want ErrTooFewVertices", err)
	}
}

func TestRectangle(t *testing.T) {
	r := NewRectangle(Pt(1, 1), 4, 2)
	want := []Point{Pt(1, 1), Pt(5, 1), Pt(5, 3), Pt(1, 3)}
	for i, p := range r.Points() {
		if p != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, p, want[i])
		}
	}
	if r.Polygon().SignedArea() <= 0 {
		t.Error("Polygon() should be clockwise")
	}
	if r.Area() != 8 || r.Center() != Pt(3, 2) {
		t.Errorf("Area(), Center() = %g, %v", r.Area(), r.Center())
	}
	if !r.Contains(Pt(2, 2)) || r.Contains(Pt(1, 2)) {
		t.Error("Contains() wrong")
	}
	rot := r.Rotate(math.Pi/4, r.Center())
	if rot.Kind() != KindPolygon || !near(rot.Area(), 8) {
		t.Errorf("Rotate() = %v, want polygon of area 8", rot)
	}
	if got := r.Shift(1, 1); got.Kind() != KindRectangle || got.P != Pt(2, 2) {
		t.Errorf("Shift() = %v", got)
	}
}
