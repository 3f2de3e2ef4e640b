package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/planar/pkg/geom"
	"github.com/chazu/planar/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Planar Lisp source code before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: outer-wall -> outer_wall
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. Line comments: ; and ;; become //, which is what zygomys reads.
//
// All transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a geom.Shape so it can be passed between builtins. id is
// set once the shape has been added to the scene, either by defshape or
// implicitly when a query first uses it.
type sexpShape struct {
	shape geom.Shape
	id    scene.ShapeID
	name  string
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	if s.name != "" {
		return fmt.Sprintf("(%s %q)", s.shape.Kind(), s.name)
	}
	return fmt.Sprint(s.shape)
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

func newShape(shape geom.Shape) *sexpShape {
	return &sexpShape{shape: shape}
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// arg returns the keyword argument kw if present, otherwise the positional
// argument at index pos.
func (a kwArgs) arg(kw string, pos int) (zygo.Sexp, bool) {
	if v, ok := a.kw[kw]; ok {
		return v, true
	}
	if pos >= 0 && pos < len(a.positional) {
		return a.positional[pos], true
	}
	return nil, false
}

func (a kwArgs) float(kw string, pos int) (float64, error) {
	v, ok := a.arg(kw, pos)
	if !ok {
		return 0, fmt.Errorf("missing %s", kw)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", kw, err)
	}
	return f, nil
}

func (a kwArgs) point(kw string, pos int) (geom.Point, error) {
	v, ok := a.arg(kw, pos)
	if !ok {
		return geom.Point{}, fmt.Errorf("missing %s", kw)
	}
	p, err := toPoint(v)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%s: %w", kw, err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_x) and plain strings ("x").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toShape extracts a shape value.
func toShape(s zygo.Sexp) (*sexpShape, error) {
	if ref, ok := s.(*sexpShape); ok {
		return ref, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// toPoint accepts a point shape or a two-element list or array of numbers.
func toPoint(s zygo.Sexp) (geom.Point, error) {
	if ref, ok := s.(*sexpShape); ok {
		if p, ok := ref.shape.(geom.Point); ok {
			return p, nil
		}
		return geom.Point{}, fmt.Errorf("expected point, got %s", ref.shape.Kind())
	}
	items, err := sexpListToSlice(s)
	if err != nil {
		return geom.Point{}, fmt.Errorf("expected point or [x y], got %T (%s)", s, s.SexpString(nil))
	}
	if len(items) != 2 {
		return geom.Point{}, fmt.Errorf("expected [x y], got %d elements", len(items))
	}
	x, err := toFloat64(items[0])
	if err != nil {
		return geom.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := toFloat64(items[1])
	if err != nil {
		return geom.Point{}, fmt.Errorf("y: %w", err)
	}
	return geom.Pt(x, y), nil
}

func toLinelike(s zygo.Sexp) (geom.Linelike, error) {
	ref, err := toShape(s)
	if err != nil {
		return nil, err
	}
	if l, ok := ref.shape.(geom.Linelike); ok {
		return l, nil
	}
	return nil, fmt.Errorf("expected line, ray or segment, got %s", ref.shape.Kind())
}

func toPolygonlike(s zygo.Sexp) (geom.Polygonlike, error) {
	ref, err := toShape(s)
	if err != nil {
		return nil, err
	}
	if p, ok := ref.shape.(geom.Polygonlike); ok {
		return p, nil
	}
	return nil, fmt.Errorf("expected polygon or rectangle, got %s", ref.shape.Kind())
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

func fromFloat(f float64) zygo.Sexp { return &zygo.SexpFloat{Val: f} }

func fromBool(b bool) zygo.Sexp { return &zygo.SexpBool{Val: b} }

func fromPoints(pts []geom.Point) zygo.Sexp {
	items := make([]zygo.Sexp, len(pts))
	for i, p := range pts {
		items[i] = newShape(p)
	}
	return zygo.MakeList(items)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Planar builtins into a zygomys environment.
// Shape builtins only build values; defshape and the query builtins write
// to the scene.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) {
	registerConstructors(env)
	registerTransforms(env)
	registerScene(env, s)
	registerQueries(env, s)
}

func registerConstructors(env *zygo.Zlisp) {

	// (point 1 2) or (point :x 1 :y 2)
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		x, err := pa.float("x", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		y, err := pa.float("y", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("point: %w", err)
		}
		return newShape(geom.Pt(x, y)), nil
	})

	// (line p1 p2), (segment p1 p2), (ray p1 p2)
	twoPoint := func(kind string, build func(p1, p2 geom.Point) geom.Shape) {
		env.AddFunction(kind, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			p1, err := pa.point("from", 0)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			p2, err := pa.point("to", 1)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			return newShape(build(p1, p2)), nil
		})
	}
	twoPoint("line", func(p1, p2 geom.Point) geom.Shape { return geom.NewLine(p1, p2) })
	twoPoint("segment", func(p1, p2 geom.Point) geom.Shape { return geom.NewSegment(p1, p2) })
	twoPoint("ray", func(p1, p2 geom.Point) geom.Shape { return geom.NewRay(p1, p2) })

	// (circle center r) or (circle :center c :radius r)
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c, err := pa.point("center", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		r, err := pa.float("radius", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return newShape(geom.NewCircle(c, r)), nil
	})

	// (arc center start sweep), (sector center start sweep)
	arcLike := func(kind string, build func(c, start geom.Point, sweep float64) geom.Shape) {
		env.AddFunction(kind, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			c, err := pa.point("center", 0)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			start, err := pa.point("start", 1)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			sweep, err := pa.float("sweep", 2)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
			}
			return newShape(build(c, start, sweep)), nil
		})
	}
	arcLike("arc", func(c, start geom.Point, sweep float64) geom.Shape { return geom.NewArc(c, start, sweep) })
	arcLike("sector", func(c, start geom.Point, sweep float64) geom.Shape { return geom.NewSector(c, start, sweep) })

	// (angle a vertex c)
	env.AddFunction("angle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("angle requires three points, got %d", len(args))
		}
		var pts [3]geom.Point
		for i, a := range args {
			p, err := toPoint(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angle: point %d: %w", i+1, err)
			}
			pts[i] = p
		}
		return newShape(geom.NewAngle(pts[0], pts[1], pts[2])), nil
	})

	// (polygon p1 p2 p3 ...) or (polygon [p1 p2 p3 ...])
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		items := args
		if len(args) == 1 {
			list, err := sexpListToSlice(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
			}
			items = list
		}
		pts := make([]geom.Point, len(items))
		for i, it := range items {
			p, err := toPoint(it)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polygon: vertex %d: %w", i+1, err)
			}
			pts[i] = p
		}
		poly, err := geom.NewPolygon(pts...)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return newShape(poly), nil
	})

	// (rect corner w h) or (rect :at p :width w :height h)
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		at, err := pa.point("at", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		w, err := pa.float("width", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		h, err := pa.float("height", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		return newShape(geom.NewRectangle(at, w, h)), nil
	})

	// (bounds shape) returns the bounding rectangle.
	env.AddFunction("bounds", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("bounds requires one shape")
		}
		ref, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bounds: %w", err)
		}
		b, ok := geom.ShapeBounds(ref.shape)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("bounds: %s is unbounded", ref.shape.Kind())
		}
		return newShape(b.Rect()), nil
	})

	// (deg 90) converts degrees to radians.
	env.AddFunction("deg", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("deg requires one number")
		}
		d, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("deg: %w", err)
		}
		return fromFloat(d * math.Pi / 180), nil
	})

	// (point-x p), (point-y p) read point coordinates.
	coord := func(fn string, get func(geom.Point) float64) {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires one point", fn)
			}
			p, err := toPoint(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return fromFloat(get(p)), nil
		})
	}
	coord("point_x", func(p geom.Point) float64 { return p.X })
	coord("point_y", func(p geom.Point) float64 { return p.Y })
}
