package engine

import (
	"errors"
	"fmt"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ensure adds ref to the scene on first use and returns its ID.
func ensure(s *scene.Scene, ref *sexpShape) scene.ShapeID {
	if ref.id.IsZero() {
		ref.id = s.Add(ref.name, ref.shape).ID
	}
	return ref.id
}

// operands returns the scene IDs of every shape argument, adding
// anonymous shapes as needed. Plain [x y] points are not recorded.
func operands(s *scene.Scene, args ...zygo.Sexp) []scene.ShapeID {
	var ids []scene.ShapeID
	for _, a := range args {
		if ref, ok := a.(*sexpShape); ok {
			ids = append(ids, ensure(s, ref))
		}
	}
	return ids
}

func registerTransforms(env *zygo.Zlisp) {

	// (rotate shape angle) or (rotate shape angle :about p)
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a shape and an angle")
		}
		ref, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		angle, err := toFloat64(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
		}
		about := geom.Origin
		if _, ok := pa.arg("about", 2); ok {
			if about, err = pa.point("about", 2); err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
			}
		}
		return newShape(geom.RotateShape(ref.shape, angle, about)), nil
	})

	// (shift shape dx dy)
	env.AddFunction("shift", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("shift requires a shape")
		}
		ref, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shift: %w", err)
		}
		dx, err := pa.float("dx", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shift: %w", err)
		}
		dy, err := pa.float("dy", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shift: %w", err)
		}
		return newShape(geom.ShiftShape(ref.shape, dx, dy)), nil
	})

	// (scale shape s) or (scale shape sx sy), about the origin.
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("scale requires a shape")
		}
		ref, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: %w", err)
		}
		sx, err := pa.float("sx", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: %w", err)
		}
		sy := sx
		if _, ok := pa.arg("sy", 2); ok {
			if sy, err = pa.float("sy", 2); err != nil {
				return zygo.SexpNull, fmt.Errorf("scale: %w", err)
			}
		}
		return newShape(geom.ScaleShape(ref.shape, sx, sy)), nil
	})

	// (reflect shape line)
	env.AddFunction("reflect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("reflect requires a shape and a line")
		}
		ref, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("reflect: %w", err)
		}
		axis, err := toLinelike(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("reflect: axis: %w", err)
		}
		return newShape(geom.ReflectShape(ref.shape, axis)), nil
	})
}

func registerScene(env *zygo.Zlisp, s *scene.Scene) {

	// (defshape "name" (circle ...))
	env.AddFunction("defshape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defshape requires a name and a shape expression")
		}
		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
		}
		if shapeName == "" {
			return zygo.SexpNull, fmt.Errorf("defshape: name must not be empty")
		}
		ref, err := toShape(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		e := s.Add(shapeName, ref.shape)
		Logger().Debug("defshape", "name", shapeName, "kind", e.Kind, "id", e.ID.Short())
		return &sexpShape{shape: ref.shape, id: e.ID, name: shapeName}, nil
	})

	// (shape "name") looks up a shape defined earlier.
	env.AddFunction("shape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("shape requires a name")
		}
		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shape: %w", err)
		}
		e := s.Lookup(shapeName)
		if e == nil {
			return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", shapeName)
		}
		return &sexpShape{shape: e.Shape, id: e.ID, name: e.Name}, nil
	})
}

// Every query records a scene.Finding in addition to returning its value.
func registerQueries(env *zygo.Zlisp, s *scene.Scene) {

	// (intersections a b ...) returns the list of crossing points. An
	// unsupported pair is recorded as a failed finding and yields an empty
	// list.
	env.AddFunction("intersections", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		shapes := make([]geom.Shape, len(args))
		for i, a := range args {
			ref, err := toShape(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("intersections: argument %d: %w", i+1, err)
			}
			shapes[i] = ref.shape
		}
		f := scene.Finding{Query: scene.QueryIntersections, Operands: operands(s, args...)}
		pts, err := geom.IntersectionsTol(s.Tolerance, shapes...)
		if err != nil {
			if !errors.Is(err, geom.ErrUnsupported) {
				return zygo.SexpNull, fmt.Errorf("intersections: %w", err)
			}
			Logger().Debug("intersections unsupported", "err", err)
			f.Error = err.Error()
			s.Record(f)
			return zygo.SexpNull, nil
		}
		f.Points = pts
		s.Record(f)
		return fromPoints(pts), nil
	})

	// (clip subject clip) returns the shared region or nil.
	env.AddFunction("clip", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("clip requires two polygons")
		}
		a, err := toPolygonlike(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("clip: subject: %w", err)
		}
		b, err := toPolygonlike(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("clip: %w", err)
		}
		f := scene.Finding{Query: scene.QueryClip, Operands: operands(s, args...)}
		region, ok := a.Polygon().IntersectTol(b, s.Tolerance)
		if !ok {
			f.Bool = new(bool)
			s.Record(f)
			return zygo.SexpNull, nil
		}
		f.Polygon = &region
		s.Record(f)
		return newShape(region), nil
	})

	// (collides a b) tests two polygons for overlap.
	env.AddFunction("collides", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("collides requires two polygons")
		}
		a, err := toPolygonlike(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("collides: %w", err)
		}
		b, err := toPolygonlike(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("collides: %w", err)
		}
		hit := geom.CollisionTol(a, b, s.Tolerance)
		s.Record(scene.Finding{Query: scene.QueryCollides, Operands: operands(s, args...), Bool: &hit})
		return fromBool(hit), nil
	})

	// (contains shape point)
	env.AddFunction("contains", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("contains requires a shape and a point")
		}
		ref, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		p, err := toPoint(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("contains: %w", err)
		}
		var in bool
		switch v := ref.shape.(type) {
		case interface {
			ContainsTol(geom.Point, geom.Tolerance) bool
		}:
			in = v.ContainsTol(p, s.Tolerance)
		case geom.Hittable:
			in = v.Contains(p)
		default:
			return zygo.SexpNull, fmt.Errorf("contains: %s has no interior or outline to test", ref.shape.Kind())
		}
		s.Record(scene.Finding{Query: scene.QueryContains, Operands: operands(s, args...), Bool: &in})
		return fromBool(in), nil
	})

	// (project shape point) snaps point onto shape.
	env.AddFunction("project", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("project requires a shape and a point")
		}
		ref, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("project: %w", err)
		}
		p, err := toPoint(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("project: %w", err)
		}
		h, ok := ref.shape.(interface{ Project(geom.Point) geom.Point })
		if !ok {
			return zygo.SexpNull, fmt.Errorf("project: cannot project onto %s", ref.shape.Kind())
		}
		q := h.Project(p)
		s.Record(scene.Finding{Query: scene.QueryProject, Operands: operands(s, args...), Points: []geom.Point{q}})
		return newShape(q), nil
	})

	// (area shape)
	env.AddFunction("area", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("area requires one shape")
		}
		ref, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("area: %w", err)
		}
		a, ok := ref.shape.(interface{ Area() float64 })
		if !ok || !scene.IsArea(ref.shape.Kind()) {
			return zygo.SexpNull, fmt.Errorf("area: %s encloses no region", ref.shape.Kind())
		}
		v := a.Area()
		s.Record(scene.Finding{Query: scene.QueryArea, Operands: operands(s, args...), Value: &v})
		return fromFloat(v), nil
	})
}
