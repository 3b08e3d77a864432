// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "math"

// line is a line equation in implicit form: a*x + b*y + c = 0 for all
// points (x, y) on the line.
//
// The coefficients are stored in double precision to avoid catastrophic
// cancellation in the isLeftOf and isRightOf checks. Doubles make those
// results exact for float32 inputs, since the distance is a polynomial of
// degree 2. The intersection computation, being degree 5, is still
// subject to cancellation; the sweep assumes its output may be wrong and
// repairs the topology afterwards (see simplify.go).
type line struct {
	a, b, c float64
}

func lineBetween(p, q Point) line {
	return line{
		a: float64(q.Y) - float64(p.Y),                             // a = dY
		b: float64(p.X) - float64(q.X),                             // b = -dX
		c: float64(p.Y)*float64(q.X) - float64(p.X)*float64(q.Y), // c = cross(q, p)
	}
}

func (l line) dist(p Point) float64 {
	return l.a*float64(p.X) + l.b*float64(p.Y) + l.c
}

func (l line) magSq() float64 {
	return l.a*l.a + l.b*l.b
}

func (l *line) normalize() {
	len := math.Sqrt(l.magSq())
	if len == 0.0 {
		return
	}
	scale := 1.0 / len
	l.a *= scale
	l.b *= scale
	l.c *= scale
}

func (l line) nearParallel(o line) bool {
	return math.Abs(o.a-l.a) < 0.00001 && math.Abs(o.b-l.b) < 0.00001
}

// edgeType classifies an edge's provenance.
type edgeType uint8

const (
	// edgeTypeInner came from the path itself.
	edgeTypeInner edgeType = iota
	// edgeTypeOuter belongs to the antialiased outer boundary.
	edgeTypeOuter
	// edgeTypeConnector was introduced to join monotone chains.
	edgeTypeConnector
)

// edge joins a top vertex to a bottom vertex in sweep order.
//
// Ordering within the "edges above"/"edges below" lists of a vertex, and
// within the active edge list, is decided by isLeftOf/isRightOf. An edge
// occasionally gives dist() != 0 for its own endpoints (floating point),
// so dist coerces those to zero.
type edge struct {
	winding int // 1: edge goes downward; -1: edge goes upward
	top     *vertex
	bottom  *vertex
	kind    edgeType

	// Active edge list links.
	left, right *edge

	// Links within the bottom vertex's "edges above" list.
	prevEdgeAbove, nextEdgeAbove *edge
	// Links within the top vertex's "edges below" list.
	prevEdgeBelow, nextEdgeBelow *edge

	// The polygons bordering this edge, with per-side chain links.
	leftPoly, rightPoly         *poly
	leftPolyPrev, leftPolyNext  *edge
	rightPolyPrev, rightPolyNext *edge
	usedInLeftPoly, usedInRightPoly bool

	line line
}

func newEdge(top, bottom *vertex, winding int, kind edgeType) edge {
	return edge{
		winding: winding,
		top:     top,
		bottom:  bottom,
		kind:    kind,
		line:    lineBetween(top.point, bottom.point),
	}
}

// dist returns the signed distance from p to the edge's line, coercing
// points coincident with the endpoints to zero. Converting a double
// intersection point back to float32 storage may construct a point that
// is no longer exactly on the ideal line; without the coercion, shared
// endpoints would report spurious sidedness.
func (e *edge) dist(p Point) float64 {
	if p == e.top.point || p == e.bottom.point {
		return 0.0
	}
	return e.line.dist(p)
}

func (e *edge) isRightOf(v *vertex) bool { return e.dist(v.point) < 0.0 }
func (e *edge) isLeftOf(v *vertex) bool  { return e.dist(v.point) > 0.0 }

// recompute refreshes the cached line equation after an endpoint moved.
func (e *edge) recompute() {
	e.line = lineBetween(e.top.point, e.bottom.point)
}

// insertAbove links e into v's "edges above" list, keeping the list
// sorted left to right by the edges' top points.
func (e *edge) insertAbove(v *vertex, c comparator) {
	if e.top.point == e.bottom.point || c.sweepLt(e.bottom.point, e.top.point) {
		return
	}
	var prev *edge
	next := v.firstEdgeAbove
	for next != nil {
		if next.isRightOf(e.top) {
			break
		}
		prev = next
		next = next.nextEdgeAbove
	}
	e.prevEdgeAbove = prev
	e.nextEdgeAbove = next
	if prev != nil {
		prev.nextEdgeAbove = e
	} else {
		v.firstEdgeAbove = e
	}
	if next != nil {
		next.prevEdgeAbove = e
	} else {
		v.lastEdgeAbove = e
	}
}

// insertBelow links e into v's "edges below" list, keeping the list
// sorted left to right by the edges' bottom points.
func (e *edge) insertBelow(v *vertex, c comparator) {
	if e.top.point == e.bottom.point || c.sweepLt(e.bottom.point, e.top.point) {
		return
	}
	var prev *edge
	next := v.firstEdgeBelow
	for next != nil {
		if next.isRightOf(e.bottom) {
			break
		}
		prev = next
		next = next.nextEdgeBelow
	}
	e.prevEdgeBelow = prev
	e.nextEdgeBelow = next
	if prev != nil {
		prev.nextEdgeBelow = e
	} else {
		v.firstEdgeBelow = e
	}
	if next != nil {
		next.prevEdgeBelow = e
	} else {
		v.lastEdgeBelow = e
	}
}

// removeEdgeAbove unlinks e from its bottom vertex's "edges above" list.
func removeEdgeAbove(e *edge) {
	if e.prevEdgeAbove != nil {
		e.prevEdgeAbove.nextEdgeAbove = e.nextEdgeAbove
	} else {
		e.bottom.firstEdgeAbove = e.nextEdgeAbove
	}
	if e.nextEdgeAbove != nil {
		e.nextEdgeAbove.prevEdgeAbove = e.prevEdgeAbove
	} else {
		e.bottom.lastEdgeAbove = e.prevEdgeAbove
	}
	e.prevEdgeAbove = nil
	e.nextEdgeAbove = nil
}

// removeEdgeBelow unlinks e from its top vertex's "edges below" list.
func removeEdgeBelow(e *edge) {
	if e.prevEdgeBelow != nil {
		e.prevEdgeBelow.nextEdgeBelow = e.nextEdgeBelow
	} else {
		e.top.firstEdgeBelow = e.nextEdgeBelow
	}
	if e.nextEdgeBelow != nil {
		e.nextEdgeBelow.prevEdgeBelow = e.prevEdgeBelow
	} else {
		e.top.lastEdgeBelow = e.prevEdgeBelow
	}
	e.prevEdgeBelow = nil
	e.nextEdgeBelow = nil
}

// disconnect removes e from both endpoint lists.
func (e *edge) disconnect() {
	removeEdgeAbove(e)
	removeEdgeBelow(e)
}

// intersect computes the intersection of two edge segments. The edges are
// converted to parametric form so no division happens until an
// intersection is confirmed; that is slightly slower in the "found" case
// but much faster in the common "not found" case. The point is computed
// in double precision and rounded to float32. Returns ok=false for shared
// endpoints and near-parallel lines.
func (e *edge) intersect(other *edge) (p Point, alpha uint8, ok bool) {
	if e.top == other.top || e.bottom == other.bottom ||
		e.top == other.bottom || e.bottom == other.top {
		return Point{}, 0, false
	}

	// Near-parallel lines produce wildly inaccurate intersection points
	// that the rewind machinery cannot repair. Treat them as disjoint.
	la := e.line
	lb := other.line
	la.normalize()
	lb.normalize()
	if la.nearParallel(lb) {
		return Point{}, 0, false
	}

	denom := e.line.a*other.line.b - e.line.b*other.line.a
	if denom == 0.0 {
		return Point{}, 0, false
	}
	dx := float64(other.top.point.X) - float64(e.top.point.X)
	dy := float64(other.top.point.Y) - float64(e.top.point.Y)
	sNumer := dy*other.line.b + dx*other.line.a
	tNumer := dy*e.line.b + dx*e.line.a
	// If s or t is outside [0..1], the segments do not intersect. Testing
	// against denom before dividing keeps the common miss path cheap.
	if denom > 0.0 {
		if sNumer < 0.0 || sNumer > denom || tNumer < 0.0 || tNumer > denom {
			return Point{}, 0, false
		}
	} else {
		if sNumer > 0.0 || sNumer < denom || tNumer > 0.0 || tNumer < denom {
			return Point{}, 0, false
		}
	}
	s := sNumer / denom
	p = Point{
		X: float32(float64(e.top.point.X) - s*e.line.b),
		Y: float32(float64(e.top.point.Y) + s*e.line.a),
	}
	alpha = max(e.top.alpha, e.bottom.alpha)
	return p, alpha, true
}

// edgeList is the active edge list: the edges the sweep line currently
// crosses, sorted left to right by their x at the sweep level. Ties are
// broken by the point where both edges are active, so the lower of the
// two top vertices, then the upper of the two bottom vertices.
type edgeList struct {
	head, tail *edge
}

func (l *edgeList) insert(e, prev *edge) {
	var next *edge
	if prev != nil {
		next = prev.right
	} else {
		next = l.head
	}
	e.left = prev
	e.right = next
	if prev != nil {
		prev.right = e
	} else {
		l.head = e
	}
	if next != nil {
		next.left = e
	} else {
		l.tail = e
	}
}

func (l *edgeList) remove(e *edge) {
	if !l.contains(e) {
		return
	}
	if e.left != nil {
		e.left.right = e.right
	} else {
		l.head = e.right
	}
	if e.right != nil {
		e.right.left = e.left
	} else {
		l.tail = e.left
	}
	e.left = nil
	e.right = nil
}

func (l *edgeList) removeAll() {
	for l.head != nil {
		l.remove(l.head)
	}
}

func (l *edgeList) contains(e *edge) bool {
	return e.left != nil || e.right != nil || l.head == e
}

// findEnclosingEdges locates the nearest active edges on either side of
// v. When v has edges above, those end at v and the enclosing edges are
// their neighbours in the list. Otherwise left is the rightmost active
// edge left of v, right the leftmost active edge right of (or through) v.
func (l *edgeList) findEnclosingEdges(v *vertex) (left, right *edge) {
	if v.firstEdgeAbove != nil && v.lastEdgeAbove != nil {
		return v.firstEdgeAbove.left, v.lastEdgeAbove.right
	}
	var prev *edge
	next := l.head
	for next != nil {
		if !next.isLeftOf(v) {
			break
		}
		prev = next
		next = next.right
	}
	return prev, next
}
