package scene

import "fmt"

// ValidationSeverity indicates whether a validation finding makes the scene
// unusable or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // scene is unusable
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	ID       ShapeID            // which entry has the problem (zero if scene-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.ID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] shape %s: %s", e.Severity, e.ID.Short(), e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	ID      ShapeID
	Message string
}

func (w ValidationWarning) String() string {
	if w.ID.IsZero() {
		return w.Message
	}
	return fmt.Sprintf("shape %s: %s", w.ID.Short(), w.Message)
}

// ValidationResult bundles errors and warnings from all validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result holds no errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Validate runs the structural checks on a scene: entries are well formed,
// names are unique and findings only refer to entries that exist. It never
// mutates the scene.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateEntries(s)...)
	errs = append(errs, validateNames(s)...)
	errs = append(errs, validateReferences(s)...)
	return errs
}

// ValidateAll runs the structural and geometric tiers and separates errors
// from warnings.
func ValidateAll(s *Scene) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(s) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{ID: e.ID, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	errs, warnings := validateGeometry(s)
	result.Errors = append(result.Errors, errs...)
	result.Warnings = append(result.Warnings, warnings...)
	return result
}

// validateEntries checks that every entry carries a shape whose kind
// matches the recorded kind.
func validateEntries(s *Scene) []ValidationError {
	var errs []ValidationError
	for i, e := range s.Entries {
		switch {
		case e == nil:
			errs = append(errs, ValidationError{
				Message:  fmt.Sprintf("entry %d is nil", i),
				Severity: SeverityError,
			})
		case e.Shape == nil:
			errs = append(errs, ValidationError{
				ID:       e.ID,
				Message:  "entry has no shape",
				Severity: SeverityError,
			})
		case e.Shape.Kind() != e.Kind:
			errs = append(errs, ValidationError{
				ID:       e.ID,
				Message:  fmt.Sprintf("entry kind %s does not match shape kind %s", e.Kind, e.Shape.Kind()),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// validateNames reports every name used by more than one entry.
func validateNames(s *Scene) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]ShapeID)
	for _, e := range s.Entries {
		if e == nil || e.Name == "" {
			continue
		}
		if first, ok := seen[e.Name]; ok {
			errs = append(errs, ValidationError{
				ID:       e.ID,
				Message:  fmt.Sprintf("duplicate name %q (first defined by shape %s)", e.Name, first.Short()),
				Severity: SeverityError,
			})
			continue
		}
		seen[e.Name] = e.ID
	}
	return errs
}

// validateReferences checks that every finding operand exists in the scene.
func validateReferences(s *Scene) []ValidationError {
	var errs []ValidationError
	for i, f := range s.Findings {
		for _, id := range f.Operands {
			if s.Get(id) == nil {
				errs = append(errs, ValidationError{
					ID:       id,
					Message:  fmt.Sprintf("finding %d (%s) refers to a missing shape", i, f.Query),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}
