package scene

import (
	"fmt"

	"github.com/chazu/planar/pkg/geom"
)

// Entry is one shape in a scene.
type Entry struct {
	ID    ShapeID    `json:"id"`
	Name  string     `json:"name,omitempty"`
	Kind  geom.Kind  `json:"kind"`
	Shape geom.Shape `json:"shape"`
}

func (e *Entry) String() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.ID.Short())
}

// Scene is the result of evaluating a script: shapes in definition order
// and the findings of every query run against them.
type Scene struct {
	Entries   []*Entry       `json:"entries"`
	Findings  []Finding      `json:"findings,omitempty"`
	Tolerance geom.Tolerance `json:"tolerance"`

	byID   map[ShapeID]*Entry
	byName map[string]*Entry
}

// New creates an empty scene. A non-positive tolerance selects
// geom.DefaultTolerance.
func New(tol geom.Tolerance) *Scene {
	if tol <= 0 {
		tol = geom.DefaultTolerance
	}
	return &Scene{
		Tolerance: tol,
		byID:      make(map[ShapeID]*Entry),
		byName:    make(map[string]*Entry),
	}
}

// Add appends a shape to the scene and returns its entry. Re-adding an
// identical shape under the same name yields an entry with the same ID.
// A repeated name shadows the earlier entry for Lookup; ValidateAll
// reports it.
func (s *Scene) Add(name string, shape geom.Shape) *Entry {
	e := &Entry{
		ID:    NewShapeID(name, shape),
		Name:  name,
		Kind:  shape.Kind(),
		Shape: shape,
	}
	s.Entries = append(s.Entries, e)
	if _, ok := s.byID[e.ID]; !ok {
		s.byID[e.ID] = e
	}
	if name != "" {
		s.byName[name] = e
	}
	return e
}

// Lookup returns the entry with the given name, or nil.
func (s *Scene) Lookup(name string) *Entry {
	return s.byName[name]
}

// MustLookup returns the entry with the given name, or panics.
func (s *Scene) MustLookup(name string) *Entry {
	e := s.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("scene: no shape named %q", name))
	}
	return e
}

// Get returns the entry with the given ID, or nil.
func (s *Scene) Get(id ShapeID) *Entry {
	return s.byID[id]
}

// Len returns the number of entries.
func (s *Scene) Len() int {
	return len(s.Entries)
}

// Areas returns the entries that enclose a region: polygons, rectangles,
// circles and sectors.
func (s *Scene) Areas() []*Entry {
	var out []*Entry
	for _, e := range s.Entries {
		if IsArea(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

// IsArea reports whether shapes of kind k enclose a region.
func IsArea(k geom.Kind) bool {
	switch k {
	case geom.KindPolygon, geom.KindRectangle, geom.KindCircle, geom.KindSector:
		return true
	}
	return false
}

// Record appends a query finding.
func (s *Scene) Record(f Finding) {
	s.Findings = append(s.Findings, f)
}

func describe(v any) string {
	return fmt.Sprint(v)
}
