package scene

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// ---------------------------------------------------------------------------
// Geometric validation (errors + warnings)
// ---------------------------------------------------------------------------

// validateGeometry runs the per-shape geometric checks. Returns errors and
// warnings separately.
func validateGeometry(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	for _, e := range s.Entries {
		if e == nil || e.Shape == nil {
			continue
		}
		var msgs []string
		var warns []string
		switch v := e.Shape.(type) {
		case geom.Line, geom.Segment, geom.Ray:
			msgs = append(msgs, checkLinelike(v.(geom.Linelike), s.Tolerance)...)
		case geom.Polygon:
			m, w := checkPolygon(v, s.Tolerance)
			msgs, warns = append(msgs, m...), append(warns, w...)
		case geom.Rectangle:
			if s.Tolerance.Zero(v.W) || s.Tolerance.Zero(v.H) {
				warns = append(warns, fmt.Sprintf("rectangle has zero area (%gx%g)", v.W, v.H))
			}
		case geom.Circle:
			if v.R <= 0 {
				msgs = append(msgs, fmt.Sprintf("circle radius is %.4f, must be positive", v.R))
			}
		case geom.Arc:
			m, w := checkArc(v, geom.KindArc, s.Tolerance)
			msgs, warns = append(msgs, m...), append(warns, w...)
		case geom.Sector:
			m, w := checkArc(v.Arc(), geom.KindSector, s.Tolerance)
			msgs, warns = append(msgs, m...), append(warns, w...)
		case geom.Angle:
			if v.Degenerate() {
				warns = append(warns, "angle arm coincides with its vertex")
			}
		}

		for _, m := range msgs {
			errs = append(errs, ValidationError{ID: e.ID, Message: m, Severity: SeverityError})
		}
		for _, w := range warns {
			warnings = append(warnings, ValidationWarning{ID: e.ID, Message: w})
		}
	}
	return errs, warnings
}

func checkLinelike(l geom.Linelike, tol geom.Tolerance) []string {
	if tol.Zero(l.Length()) {
		return []string{fmt.Sprintf("%s has zero length", l.Kind())}
	}
	return nil
}

// checkPolygon returns errors then warnings. Area and self-intersection
// checks are skipped for polygons that already fail the vertex count.
func checkPolygon(p geom.Polygon, tol geom.Tolerance) ([]string, []string) {
	if p.Len() < 3 {
		return []string{fmt.Sprintf("polygon has %d vertices, need at least 3", p.Len())}, nil
	}
	var warns []string
	if tol.Zero(p.Area()) {
		warns = append(warns, "polygon has zero area")
	}
	if p.SelfIntersecting() {
		warns = append(warns, "polygon is self-intersecting; clip and containment results are undefined")
	}
	return nil, warns
}

func checkArc(a geom.Arc, kind geom.Kind, tol geom.Tolerance) ([]string, []string) {
	var errs, warns []string
	if tol.Zero(a.Radius()) {
		errs = append(errs, fmt.Sprintf("%s radius is zero", kind))
	}
	if tol.Zero(a.Sweep) {
		warns = append(warns, fmt.Sprintf("%s sweeps zero radians", kind))
	}
	return errs, warns
}
