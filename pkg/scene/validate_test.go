package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/planar/pkg/geom"
)

func hasMessage[T any](items []T, msg func(T) string, substr string) bool {
	for _, it := range items {
		if strings.Contains(msg(it), substr) {
			return true
		}
	}
	return false
}

func errMsg(e ValidationError) string    { return e.Message }
func warnMsg(w ValidationWarning) string { return w.Message }

func TestValidateCleanScene(t *testing.T) {
	s := New(0)
	s.Add("a", geom.MustPolygon(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2)))
	s.Add("b", geom.NewCircle(geom.Pt(1, 1), 1))
	s.Add("l", geom.NewSegment(geom.Pt(0, 0), geom.Pt(3, 3)))
	s.Add("arc", geom.NewArc(geom.Origin, geom.Pt(1, 0), math.Pi))

	res := ValidateAll(s)
	if !res.OK() {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	s := New(0)
	s.Add("x", geom.Pt(0, 0))
	s.Add("x", geom.Pt(1, 1))
	s.Add("", geom.Pt(2, 2))
	s.Add("", geom.Pt(3, 3))

	errs := Validate(s)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, `duplicate name "x"`) {
		t.Errorf("error = %q, want duplicate name", errs[0].Message)
	}
	if errs[0].Severity != SeverityError {
		t.Errorf("Severity = %v, want error", errs[0].Severity)
	}
}

func TestValidateMissingOperand(t *testing.T) {
	s := New(0)
	e := s.Add("p", geom.Pt(0, 0))
	ghost := NewShapeID("ghost", geom.Pt(9, 9))
	s.Record(Finding{Query: QueryContains, Operands: []ShapeID{e.ID, ghost}})

	errs := Validate(s)
	if len(errs) != 1 || errs[0].ID != ghost {
		t.Fatalf("Validate() = %v, want one error for the missing operand", errs)
	}
	if !strings.Contains(errs[0].Error(), ghost.Short()) {
		t.Errorf("Error() = %q, want short id", errs[0].Error())
	}
}

func TestValidateMalformedEntries(t *testing.T) {
	s := New(0)
	s.Entries = append(s.Entries, nil, &Entry{Name: "empty"}, &Entry{
		Name:  "liar",
		Kind:  geom.KindCircle,
		Shape: geom.Pt(0, 0),
	})
	errs := Validate(s)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	if !hasMessage(errs, errMsg, "does not match") {
		t.Errorf("missing kind mismatch error: %v", errs)
	}
}

func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name    string
		shape   geom.Shape
		wantErr string
		wantWrn string
	}{
		{"zero-length segment", geom.NewSegment(geom.Pt(1, 1), geom.Pt(1, 1)), "segment has zero length", ""},
		{"zero-length line", geom.NewLine(geom.Pt(1, 1), geom.Pt(1, 1)), "line has zero length", ""},
		{"zero-length ray", geom.NewRay(geom.Pt(0, 0), geom.Pt(0, 0)), "ray has zero length", ""},
		{"empty polygon", geom.Polygon{}, "polygon has 0 vertices", ""},
		{"flat polygon", geom.MustPolygon(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)), "", "zero area"},
		{"bowtie", geom.MustPolygon(geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(2, 0), geom.Pt(0, 2)), "", "self-intersecting"},
		{"flat rectangle", geom.NewRectangle(geom.Pt(0, 0), 5, 0), "", "zero area"},
		{"negative radius", geom.NewCircle(geom.Origin, -1), "must be positive", ""},
		{"zero radius", geom.NewCircle(geom.Origin, 0), "must be positive", ""},
		{"collapsed arc", geom.NewArc(geom.Origin, geom.Origin, 1), "arc radius is zero", ""},
		{"zero sweep sector", geom.NewSector(geom.Origin, geom.Pt(1, 0), 0), "", "sector sweeps zero radians"},
		{"degenerate angle", geom.NewAngle(geom.Origin, geom.Origin, geom.Pt(1, 0)), "", "coincides with its vertex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(0)
			s.Add(tt.name, tt.shape)
			res := ValidateAll(s)

			if tt.wantErr == "" && !res.OK() {
				t.Errorf("unexpected errors: %v", res.Errors)
			}
			if tt.wantErr != "" && !hasMessage(res.Errors, errMsg, tt.wantErr) {
				t.Errorf("errors = %v, want %q", res.Errors, tt.wantErr)
			}
			if tt.wantWrn == "" && len(res.Warnings) != 0 {
				t.Errorf("unexpected warnings: %v", res.Warnings)
			}
			if tt.wantWrn != "" && !hasMessage(res.Warnings, warnMsg, tt.wantWrn) {
				t.Errorf("warnings = %v, want %q", res.Warnings, tt.wantWrn)
			}
		})
	}
}
