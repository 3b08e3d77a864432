// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Mesh simplification: a Bentley-Ottmann line sweep that inserts new
// vertices at edge intersections until the mesh is planar.
//
// Because the intersection points are computed in floating point, they
// are not exact and may violate the mesh topology or the left-to-right
// ordering of the active edge list. The sweep accommodates this by
// adjusting the topology to match the computed points rather than the
// other way around:
//
//   - A shortened edge may no longer be ordered with respect to its
//     neighbours at the top or bottom vertex. Handled by merging the
//     edges (mergeCollinearEdges).
//   - An intersection may make an edge violate the active edge list
//     ordering. Handled by detecting potential violations and rewinding
//     the sweep to the vertex before they occur.
//
// The rewinds are the correctness mechanism; they must not be "fixed" by
// switching to exact arithmetic piecemeal.

// simplifyResult reports the outcome of the simplification sweep.
type simplifyResult uint8

const (
	simplifyFailed simplifyResult = iota
	simplifyAlreadySimple
	simplifyFoundSelfIntersection
)

// rewind walks the sweep backwards from the current position to dst,
// unwinding the active edge list until ordering invariants hold again,
// and resets the current sweep vertex to the earliest affected position.
// It does nothing when dst does not lie before the current position.
func rewind(activeEdges *edgeList, current **vertex, dst *vertex, c comparator) {
	if activeEdges == nil || current == nil {
		return
	}
	v := *current
	if v == dst || c.sweepLt(v.point, dst.point) {
		return
	}
	Logger().Debug("tess: rewinding", "x", dst.point.X, "y", dst.point.Y)
	for v != dst {
		v = v.prev
		for e := v.firstEdgeBelow; e != nil; e = e.nextEdgeBelow {
			activeEdges.remove(e)
		}
		leftEdge := v.leftEnclosingEdge
		for e := v.firstEdgeAbove; e != nil; e = e.nextEdgeAbove {
			activeEdges.insert(e, leftEdge)
			leftEdge = e
			top := e.top
			if c.sweepLt(top.point, dst.point) &&
				((top.leftEnclosingEdge != nil && !top.leftEnclosingEdge.isLeftOf(e.top)) ||
					(top.rightEnclosingEdge != nil && !top.rightEnclosingEdge.isRightOf(e.top))) {
				dst = top
			}
		}
	}
	*current = v
}

// splitEdge splits an edge at vertex v, turning it into two edges that
// share v. The original edge record keeps one part with a moved endpoint;
// the other part is a new edge.
func (t *triangulator) splitEdge(e *edge, v *vertex, activeEdges *edgeList, current **vertex, c comparator) bool {
	if e.top == nil || e.bottom == nil || v == e.top || v == e.bottom {
		return false
	}
	winding := e.winding
	var top, bottom *vertex
	switch {
	case c.sweepLt(v.point, e.top.point):
		// The new vertex is above the edge; the edge is stretched up to
		// start at v and the new edge covers [v, old top].
		top = v
		bottom = e.top
		t.setTop(e, v, activeEdges, current, c)
	case c.sweepLt(e.bottom.point, v.point):
		// Below the edge; symmetric to the above case.
		top = e.bottom
		bottom = v
		t.setBottom(e, v, activeEdges, current, c)
	default:
		// Interior split: e keeps [top, v], the new edge takes [v, bottom].
		top = v
		bottom = e.bottom
		t.setBottom(e, v, activeEdges, current, c)
	}
	newEdge := t.allocateEdge(top, bottom, winding, e.kind)
	newEdge.insertBelow(newEdge.top, c)
	newEdge.insertAbove(newEdge.bottom, c)
	t.mergeCollinearEdges(newEdge, activeEdges, current, c)
	return true
}

// makeSortedVertex finds or creates a mesh vertex at p, searching the
// sweep-ordered list from reference. Existing coincident vertices are
// reused so shared intersection points do not duplicate.
func (t *triangulator) makeSortedVertex(p Point, alpha uint8, mesh *vertexList, reference *vertex, c comparator) *vertex {
	prev := reference
	for prev != nil && c.sweepLt(p, prev.point) {
		prev = prev.prev
	}
	var next *vertex
	if prev != nil {
		next = prev.next
	} else {
		next = mesh.head
	}
	for next != nil && c.sweepLt(next.point, p) {
		prev = next
		next = next.next
	}
	switch {
	case prev != nil && coincident(prev.point, p):
		return prev
	case next != nil && coincident(next.point, p):
		return next
	}
	v := t.verts.Make(vertex{point: p, alpha: alpha, synthetic: true})
	mesh.insert(v, prev, next)
	return v
}

// intersectEdgePair corrects the topology when the sided-ness checks say
// two neighbouring edges cross but intersect() lacked the precision to
// find a point. isLeftOf/isRightOf are the source of ground truth, so the
// edge that violates them is split at the offending vertex.
func (t *triangulator) intersectEdgePair(left, right *edge, activeEdges *edgeList, current **vertex, c comparator) bool {
	if left.top == nil || left.bottom == nil || right.top == nil || right.bottom == nil {
		return false
	}
	if left.top == right.top || left.bottom == right.bottom {
		return false
	}

	var split *edge
	var splitAt *vertex
	if c.sweepLt(left.top.point, right.top.point) {
		if !left.isLeftOf(right.top) {
			split = left
			splitAt = right.top
		}
	} else {
		if !right.isRightOf(left.top) {
			split = right
			splitAt = left.top
		}
	}
	if c.sweepLt(right.bottom.point, left.bottom.point) {
		if !left.isLeftOf(right.bottom) {
			split = left
			splitAt = right.bottom
		}
	} else {
		if !right.isRightOf(left.bottom) {
			split = right
			splitAt = left.bottom
		}
	}
	if split == nil {
		return false
	}
	// The split changes the geometry of the moving edge; rewind to its
	// top so affected orderings are re-examined.
	rewind(activeEdges, current, split.top, c)
	return t.splitEdge(split, splitAt, activeEdges, current, c)
}

// checkForIntersection tests a pair of neighbouring active edges and, if
// they cross, splits both at a shared vertex.
func (t *triangulator) checkForIntersection(left, right *edge, activeEdges *edgeList, current **vertex, mesh *vertexList, c comparator) bool {
	if left == nil || right == nil {
		return false
	}
	p, alpha, ok := left.intersect(right)
	if ok && p.IsFinite() {
		var v *vertex
		top := *current
		// If the intersection is above the current vertex, rewind the
		// search reference to the vertex above it.
		for top != nil && c.sweepLt(p, top.point) {
			top = top.prev
		}
		switch {
		case coincident(p, left.top.point):
			v = left.top
		case coincident(p, left.bottom.point):
			v = left.bottom
		case coincident(p, right.top.point):
			v = right.top
		case coincident(p, right.bottom.point):
			v = right.bottom
		default:
			v = t.makeSortedVertex(p, alpha, mesh, top, c)
		}
		if top == nil {
			top = v
		}
		rewind(activeEdges, current, top, c)
		t.splitEdge(left, v, activeEdges, current, c)
		t.splitEdge(right, v, activeEdges, current, c)
		v.alpha = max(v.alpha, alpha)
		return true
	}
	return t.intersectEdgePair(left, right, activeEdges, current, c)
}

// simplify runs the intersection sweep over the sorted mesh. Returns
// simplifyFailed if the sweep does not converge (adversarial input),
// simplifyAlreadySimple if no intersections were found, and
// simplifyFoundSelfIntersection otherwise.
func (t *triangulator) simplify(mesh *vertexList, c comparator) simplifyResult {
	// A self-intersection sweep over n edges can at most square the edge
	// count; anything beyond that means float drift has the sweep
	// thrashing.
	maxEdges := t.numEdges*t.numEdges + 32

	var activeEdges edgeList
	result := simplifyAlreadySimple
	for v := mesh.head; v != nil; v = v.next {
		if !v.isConnected() {
			continue
		}
		var leftEnclosingEdge, rightEnclosingEdge *edge
		for restart := true; restart; {
			restart = false
			leftEnclosingEdge, rightEnclosingEdge = activeEdges.findEnclosingEdges(v)
			v.leftEnclosingEdge = leftEnclosingEdge
			v.rightEnclosingEdge = rightEnclosingEdge
			if v.firstEdgeBelow != nil {
				for e := v.firstEdgeBelow; e != nil; e = e.nextEdgeBelow {
					if t.checkForIntersection(leftEnclosingEdge, e, &activeEdges, &v, mesh, c) ||
						t.checkForIntersection(e, rightEnclosingEdge, &activeEdges, &v, mesh, c) {
						result = simplifyFoundSelfIntersection
						restart = true
						break
					}
				}
			} else {
				if t.checkForIntersection(leftEnclosingEdge, rightEnclosingEdge, &activeEdges, &v, mesh, c) {
					result = simplifyFoundSelfIntersection
					restart = true
				}
			}
			if t.numEdges > maxEdges {
				Logger().Warn("tess: simplification did not converge", "edges", t.numEdges)
				activeEdges.removeAll()
				return simplifyFailed
			}
		}
		if !t.preserveCollinearVertices &&
			v.firstEdgeAbove != nil && v.firstEdgeAbove == v.lastEdgeAbove &&
			v.firstEdgeBelow != nil && v.firstEdgeBelow == v.lastEdgeBelow {
			// A regular vertex whose two edges are collinear adds nothing
			// to the decomposition; fuse them. Skipped while
			// preserveCollinearVertices is set, so splits stay anchored to
			// original endpoints.
			ea, eb := v.firstEdgeAbove, v.firstEdgeBelow
			if ea.winding == eb.winding && ea.dist(eb.bottom.point) == 0.0 {
				t.setBottom(ea, eb.bottom, &activeEdges, &v, c)
				eb.disconnect()
				continue
			}
		}
		for e := v.firstEdgeAbove; e != nil; e = e.nextEdgeAbove {
			activeEdges.remove(e)
		}
		leftEdge := leftEnclosingEdge
		for e := v.firstEdgeBelow; e != nil; e = e.nextEdgeBelow {
			activeEdges.insert(e, leftEdge)
			leftEdge = e
		}
	}
	return result
}
