package main

import (
	"log/slog"

	"github.com/chazu/planar/pkg/config"
	"github.com/chazu/planar/pkg/coverage"
	"github.com/chazu/planar/pkg/engine"
	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/kernel"
	"github.com/chazu/planar/pkg/kernel/sdfx"
	"github.com/chazu/planar/pkg/scene"
)

// colorPalette is a default palette used to assign distinct colors to shapes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App runs the evaluation pipeline: script, scene, validation, coverage.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	cells  int
}

// ShapeData is the JSON-serializable form of one scene entry.
type ShapeData struct {
	ID     string       `json:"id"`
	Name   string       `json:"name,omitempty"`
	Kind   geom.Kind    `json:"kind"`
	Shape  geom.Shape   `json:"shape"`
	Bounds *geom.Bounds `json:"bounds,omitempty"`
	Color  string       `json:"color"`
}

// FindingData is a recorded query with a printable summary.
type FindingData struct {
	scene.Finding
	Summary string `json:"summary"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	ShapeID string `json:"shapeId,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating one script.
type EvalResult struct {
	Shapes   []ShapeData        `json:"shapes"`
	Findings []FindingData      `json:"findings"`
	Coverage []*kernel.Coverage `json:"coverage"`
	Overlaps []coverage.Overlap `json:"overlaps"`
	Errors   []EvalErrorData    `json:"errors"`
	Warnings []EvalErrorData    `json:"warnings"`
}

// NewApp creates an App with the sdfx kernel. A nil cfg selects the
// defaults.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		engine: engine.NewEngine(cfg.EngineOptions()...),
		kernel: sdfx.New(),
		cells:  cfg.SampleCells,
	}
}

// Evaluate takes Lisp source and returns the scene, findings, coverage
// and any errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Shapes:   []ShapeData{},
		Findings: []FindingData{},
		Coverage: []*kernel.Coverage{},
		Overlaps: []coverage.Overlap{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene.
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		slog.Error("evaluate fatal error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Convert the scene to the output format.
	for i, e := range s.Entries {
		sd := ShapeData{
			ID:    e.ID.String(),
			Name:  e.Name,
			Kind:  e.Kind,
			Shape: e.Shape,
			Color: colorPalette[i%len(colorPalette)],
		}
		if b, ok := geom.ShapeBounds(e.Shape); ok {
			sd.Bounds = &b
		}
		result.Shapes = append(result.Shapes, sd)
	}
	for _, f := range s.Findings {
		result.Findings = append(result.Findings, FindingData{Finding: f, Summary: f.String()})
	}

	// Step 3: Validate. Geometry errors stop the pipeline before sampling.
	vr := scene.ValidateAll(s)
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{ShapeID: idString(w.ID), Message: w.Message})
	}
	if len(vr.Errors) > 0 {
		for _, e := range vr.Errors {
			result.Errors = append(result.Errors, EvalErrorData{ShapeID: idString(e.ID), Message: e.Error()})
		}
		return result
	}

	// Step 4: Sample area shapes through the region kernel.
	rep, err := coverage.Sample(s, a.kernel, a.cells)
	if err != nil {
		slog.Error("coverage error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "coverage failed: " + err.Error()})
		return result
	}
	result.Coverage = append(result.Coverage, rep.Shapes...)
	result.Overlaps = append(result.Overlaps, rep.Overlaps...)

	return result
}

func idString(id scene.ShapeID) string {
	if id.IsZero() {
		return ""
	}
	return id.String()
}
