package geom

import "math"

// clipNode is one vertex of the clip arena. Vertices of both polygons and
// the synthetic crossing nodes created during the walk share one slice;
// next is an index into it.
type clipNode struct {
	p    Point
	next int
}

// clipArena holds both polygons as cyclic vertex lists. Polygon A occupies
// [0, na), polygon B occupies [na, na+nb), synthetic nodes follow.
type clipArena struct {
	nodes  []clipNode
	na, nb int
}

func newClipArena(a, b Polygon) *clipArena {
	na, nb := len(a.pts), len(b.pts)
	ar := &clipArena{nodes: make([]clipNode, 0, na+nb+8), na: na, nb: nb}
	for i, p := range a.pts {
		ar.nodes = append(ar.nodes, clipNode{p: p, next: (i + 1) % na})
	}
	for i, p := range b.pts {
		ar.nodes = append(ar.nodes, clipNode{p: p, next: na + (i+1)%nb})
	}
	return ar
}

// ring returns the index range of the original vertices of polygon A
// (onA) or B.
func (ar *clipArena) ring(onA bool) (lo, hi int) {
	if onA {
		return 0, ar.na
	}
	return ar.na, ar.na + ar.nb
}

func (ar *clipArena) add(p Point, next int) int {
	ar.nodes = append(ar.nodes, clipNode{p: p, next: next})
	return len(ar.nodes) - 1
}

// Intersect returns the region shared by p and other, found by walking the
// boundaries of both and switching polygons at every crossing
// (Weiler–Atherton). Both polygons must be simple.
//
// The walk starts at the first vertex of p inside other. When no vertex of
// p lies inside other, no region is reported even if the polygons overlap.
// At each step the walk switches polygons at the crossing nearest the
// start of the current edge, not the first crossing in edge order.
// Only one contour is produced. Malformed input that keeps the walk from
// closing reports false once the walk has visited as many vertices as both
// polygons have together.
func (p Polygon) Intersect(other Polygonlike) (Polygon, bool) {
	return p.IntersectTol(other, DefaultTolerance)
}

// IntersectTol is Intersect with an explicit tolerance.
func (p Polygon) IntersectTol(other Polygonlike, tol Tolerance) (Polygon, bool) {
	b := other.Polygon()
	p.mustBeValid("intersect")
	b.mustBeValid("intersect")

	seed := -1
	for i, v := range p.pts {
		if b.ContainsTol(v, tol) {
			seed = i
			break
		}
	}
	if seed < 0 {
		Logger().Debug("clip: no seed vertex inside clip polygon",
			"vertices", len(p.pts), "clip_vertices", len(b.pts))
		return Polygon{}, false
	}

	oa, ob := p.Oriented(), b.Oriented()
	if p.SignedArea() < 0 {
		seed = len(p.pts) - 1 - seed
	}

	ar := newClipArena(oa, ob)
	limit := ar.na + ar.nb
	start := ar.nodes[seed].p
	active, onA := seed, true
	result := make([]Point, 0, limit)

	for len(result) < limit {
		cur := ar.nodes[active]
		result = append(result, cur.p)
		walked := Segment{P1: cur.p, P2: ar.nodes[cur.next].p}

		if hit, succ, ok := ar.nearestCrossing(walked, !onA, tol); ok {
			active = ar.add(hit, succ)
			onA = !onA
		} else {
			active = cur.next
		}

		if ar.nodes[active].p.EqualsTol(start, tol) {
			if len(result) < 3 {
				return Polygon{}, false
			}
			return Polygon{pts: result}, true
		}
	}

	Logger().Warn("clip: walk did not close",
		"limit", limit, "vertices", len(p.pts), "clip_vertices", len(b.pts))
	return Polygon{}, false
}

// nearestCrossing scans the edges of one polygon for crossings with the
// walked segment and returns the crossing closest to the segment's start,
// together with the arena index of the crossed edge's successor vertex.
func (ar *clipArena) nearestCrossing(walked Segment, onA bool, tol Tolerance) (Point, int, bool) {
	lo, hi := ar.ring(onA)
	var (
		best     Point
		bestNext int
		found    bool
	)
	bestDist := math.Inf(1)
	for i := lo; i < hi; i++ {
		n := ar.nodes[i]
		edge := Segment{P1: n.p, P2: ar.nodes[n.next].p}
		x, ok := intersectSegmentsTol(walked, edge, tol)
		if !ok {
			continue
		}
		if d := walked.P1.Distance(x); d < bestDist {
			best, bestNext, bestDist, found = x, n.next, d, true
		}
	}
	return best, bestNext, found
}
