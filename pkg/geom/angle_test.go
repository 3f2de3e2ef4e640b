package geom

import (
	"math"
	"testing"
)

func TestAngleRad(t *testing.T) {
	tests := []struct {
		name  string
		a     Angle
		want  float64
		right bool
	}{
		{"quarter", NewAngle(Pt(1, 0), Origin, Pt(0, 1)), math.Pi / 2, true},
		{"reflex", NewAngle(Pt(0, 1), Origin, Pt(1, 0)), 3 * math.Pi / 2, false},
		{"straight", NewAngle(Pt(1, 0), Origin, Pt(-1, 0)), math.Pi, false},
		{"almost right", NewAngle(Pt(1, 0), Origin, FromPolar(math.Pi/2+0.01, 1)), math.Pi/2 + 0.01, true},
		{"shifted vertex", NewAngle(Pt(3, 2), Pt(2, 2), Pt(2, 5)), math.Pi / 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Rad(); !near(got, tt.want) {
				t.Errorf("Rad() = %g, want %g", got, tt.want)
			}
			if got := tt.a.IsRight(); got != tt.right {
				t.Errorf("IsRight() = %v, want %v", got, tt.right)
			}
		})
	}
	if got := NewAngle(Pt(1, 0), Origin, Pt(0, 1)).Deg(); !near(got, 90) {
		t.Errorf("Deg() = %g, want 90", got)
	}
}

func TestAngleBisector(t *testing.T) {
	l, ok := NewAngle(Pt(1, 0), Origin, Pt(0, 1)).Bisector()
	if !ok {
		t.Fatal("Bisector() ok = false, want true")
	}
	if !l.Contains(Pt(1, 1)) {
		t.Errorf("Bisector() = %v, want line through (1, 1)", l)
	}

	// The arms straddle the branch cut, so the bisector points into the
	// reflex side.
	l, ok = NewAngle(Pt(0, 1), Origin, Pt(1, 0)).Bisector()
	if !ok {
		t.Fatal("Bisector() ok = false, want true")
	}
	want := Pt(-math.Sqrt2/2, -math.Sqrt2/2)
	if got := l.UnitVector(); !nearPoint(got, want) {
		t.Errorf("Bisector() direction = %v, want %v", got, want)
	}

	if _, ok := NewAngle(Origin, Origin, Pt(1, 0)).Bisector(); ok {
		t.Error("degenerate Bisector() ok = true, want false")
	}
}

func TestAngleSup(t *testing.T) {
	small := NewAngle(Pt(1, 0), Origin, Pt(0, 1))
	if got := small.Sup(); got != small {
		t.Errorf("Sup() = %v, want %v", got, small)
	}
	reflex := NewAngle(Pt(0, 1), Origin, Pt(1, 0))
	got := reflex.Sup()
	if got.A != reflex.C || got.C != reflex.A || !near(got.Rad(), math.Pi/2) {
		t.Errorf("Sup() = %v, want arms swapped", got)
	}
}

func TestAngleArc(t *testing.T) {
	arc := NewAngle(Pt(2, 0), Origin, Pt(0, 2)).Arc()
	if !near(arc.Radius(), 2) {
		t.Errorf("Radius() = %g, want 2", arc.Radius())
	}
	if !nearPoint(arc.End(), Pt(0, 2)) {
		t.Errorf("End() = %v, want (0, 2)", arc.End())
	}
}

func TestAngleTransform(t *testing.T) {
	a := NewAngle(Pt(1, 0), Origin, Pt(0, 1))
	moved := a.Shift(5, 5).Rotate(1.2, Pt(3, 3))
	if !near(moved.Rad(), a.Rad()) {
		t.Errorf("Rad() after rigid transform = %g, want %g", moved.Rad(), a.Rad())
	}
	mirrored := a.Reflect(NewLine(Origin, Pt(1, 0)))
	if !near(mirrored.Rad(), 3*math.Pi/2) {
		t.Errorf("Rad() after reflect = %g, want 3π/2", mirrored.Rad())
	}
}
