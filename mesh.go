// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Mesh construction and topology maintenance: deriving directed edges
// from contours, and the merge operations that keep vertex/edge lists
// consistent when endpoints move or coincide.

func coincident(a, b Point) bool { return a == b }

// countCircular returns the number of vertices in a closed contour list.
func (l *vertexList) countCircular() int {
	if l.head == nil {
		return 0
	}
	n := 1
	for v := l.head.next; v != nil && v != l.head; v = v.next {
		n++
	}
	return n
}

// removeCircular unlinks v from a closed contour list.
func (l *vertexList) removeCircular(v *vertex) {
	if v.next == v {
		l.head = nil
		l.tail = nil
		v.prev = nil
		v.next = nil
		return
	}
	v.prev.next = v.next
	v.next.prev = v.prev
	if l.head == v {
		l.head = v.next
	}
	if l.tail == v {
		l.tail = v.prev
	}
	v.prev = nil
	v.next = nil
}

// sanitizeContours strips coincident consecutive vertices and non-finite
// points from each contour before meshing.
func (t *triangulator) sanitizeContours(contours []*vertexList) {
	for _, contour := range contours {
		n := contour.countCircular()
		if n == 0 {
			continue
		}
		prev := contour.tail
		v := contour.head
		for range n {
			next := v.next
			switch {
			case v != prev && coincident(prev.point, v.point):
				contour.removeCircular(v)
			case !v.point.IsFinite():
				contour.removeCircular(v)
			default:
				prev = v
			}
			v = next
		}
	}
}

// allocateEdge creates an arena-owned edge.
func (t *triangulator) allocateEdge(top, bottom *vertex, winding int, kind edgeType) *edge {
	t.numEdges++
	return t.edges.Make(newEdge(top, bottom, winding, kind))
}

// makeEdge orients prev->next into sweep order and allocates the edge.
// Winding is +1 when the contour direction agrees with the sweep.
func (t *triangulator) makeEdge(prev, next *vertex, kind edgeType, c comparator) *edge {
	winding := -1
	if c.sweepLt(prev.point, next.point) {
		winding = 1
	}
	top, bottom := next, prev
	if winding > 0 {
		top, bottom = prev, next
	}
	return t.allocateEdge(top, bottom, winding, kind)
}

// makeConnectingEdge creates an edge between two mesh vertices and links
// it into both endpoint lists. Degenerate (zero-length) edges are
// dropped.
func (t *triangulator) makeConnectingEdge(prev, next *vertex, kind edgeType, c comparator, windingScale int) *edge {
	if prev == nil || next == nil || coincident(prev.point, next.point) {
		return nil
	}
	e := t.makeEdge(prev, next, kind, c)
	e.insertBelow(e.top, c)
	e.insertAbove(e.bottom, c)
	e.winding *= windingScale
	t.mergeCollinearEdges(e, nil, nil, c)
	return e
}

// contoursToMesh walks each circular contour, creating an edge per
// consecutive vertex pair and accumulating the vertices into the mesh
// list (which reuses the same intrusive links).
func (t *triangulator) contoursToMesh(contours []*vertexList, mesh *vertexList, c comparator) {
	for _, contour := range contours {
		n := contour.countCircular()
		if n == 0 {
			continue
		}
		prev := contour.tail
		v := contour.head
		for range n {
			next := v.next
			t.makeConnectingEdge(prev, v, edgeTypeInner, c, 1)
			prev = v
			mesh.append(v)
			v = next
		}
	}
}

// setTop moves an edge's top vertex, re-linking and re-sorting it. The
// displaced span [top, bottom, v] becomes a grout triangle: the stencil
// contribution of the clipped-off sliver has to be replayed somewhere for
// the two-pass fill to match a single-pass fan.
func (t *triangulator) setTop(e *edge, v *vertex, activeEdges *edgeList, current **vertex, c comparator) {
	removeEdgeBelow(e)
	if t.collectGrout {
		t.grout.append(e.top.point, e.bottom.point, v.point, e.winding)
	}
	e.top = v
	e.recompute()
	e.insertBelow(v, c)
	t.mergeCollinearEdges(e, activeEdges, current, c)
}

// setBottom moves an edge's bottom vertex, re-linking and re-sorting it.
func (t *triangulator) setBottom(e *edge, v *vertex, activeEdges *edgeList, current **vertex, c comparator) {
	removeEdgeAbove(e)
	if t.collectGrout {
		t.grout.append(e.top.point, e.bottom.point, v.point, e.winding)
	}
	e.bottom = v
	e.recompute()
	e.insertAbove(v, c)
	t.mergeCollinearEdges(e, activeEdges, current, c)
}

// mergeEdgesAbove combines two collinear edges that end at the same
// vertex. The survivor inherits the union of windings.
func (t *triangulator) mergeEdgesAbove(e, other *edge, activeEdges *edgeList, current **vertex, c comparator) {
	if coincident(e.top.point, other.top.point) {
		Logger().Debug("tess: merging identical edges above", "x", e.top.point.X, "y", e.top.point.Y)
		rewind(activeEdges, current, e.top, c)
		other.winding += e.winding
		e.disconnect()
		e.top = nil
		e.bottom = nil
	} else if c.sweepLt(e.top.point, other.top.point) {
		rewind(activeEdges, current, e.top, c)
		other.winding += e.winding
		t.setBottom(e, other.top, activeEdges, current, c)
	} else {
		rewind(activeEdges, current, other.top, c)
		e.winding += other.winding
		t.setBottom(other, e.top, activeEdges, current, c)
	}
}

// mergeEdgesBelow combines two collinear edges that start at the same
// vertex.
func (t *triangulator) mergeEdgesBelow(e, other *edge, activeEdges *edgeList, current **vertex, c comparator) {
	if coincident(e.bottom.point, other.bottom.point) {
		Logger().Debug("tess: merging identical edges below", "x", e.bottom.point.X, "y", e.bottom.point.Y)
		rewind(activeEdges, current, e.bottom, c)
		other.winding += e.winding
		e.disconnect()
		e.top = nil
		e.bottom = nil
	} else if c.sweepLt(other.bottom.point, e.bottom.point) {
		rewind(activeEdges, current, e.bottom, c)
		other.winding += e.winding
		t.setTop(e, other.bottom, activeEdges, current, c)
	} else {
		rewind(activeEdges, current, other.bottom, c)
		e.winding += other.winding
		t.setTop(other, e.bottom, activeEdges, current, c)
	}
}

// mergeCollinearEdges repeatedly merges e with any neighbor in its
// endpoint lists that shares an endpoint or has become collinear
// (detected by the neighbor's line passing through e's other endpoint).
// Intersection splits shorten edges; a shortened edge may no longer be
// ordered against its neighbors, and merging is how the topology is
// repaired.
func (t *triangulator) mergeCollinearEdges(e *edge, activeEdges *edgeList, current **vertex, c comparator) {
	for {
		if e.prevEdgeAbove != nil &&
			(e.top == e.prevEdgeAbove.top || !e.prevEdgeAbove.isLeftOf(e.top)) {
			t.mergeEdgesAbove(e, e.prevEdgeAbove, activeEdges, current, c)
		} else if e.nextEdgeAbove != nil &&
			(e.top == e.nextEdgeAbove.top || !e.isLeftOf(e.nextEdgeAbove.top)) {
			t.mergeEdgesAbove(e.nextEdgeAbove, e, activeEdges, current, c)
		} else if e.prevEdgeBelow != nil &&
			(e.bottom == e.prevEdgeBelow.bottom || !e.prevEdgeBelow.isLeftOf(e.bottom)) {
			t.mergeEdgesBelow(e, e.prevEdgeBelow, activeEdges, current, c)
		} else if e.nextEdgeBelow != nil &&
			(e.bottom == e.nextEdgeBelow.bottom || !e.isLeftOf(e.nextEdgeBelow.bottom)) {
			t.mergeEdgesBelow(e.nextEdgeBelow, e, activeEdges, current, c)
		} else {
			break
		}
		if e.top == nil || e.bottom == nil {
			// e was absorbed into a neighbor.
			return
		}
	}
}

// mergeVertices folds src into dst, moving all incident edges over.
func (t *triangulator) mergeVertices(src, dst *vertex, mesh *vertexList, c comparator) {
	dst.alpha = max(dst.alpha, src.alpha)
	if src.partner != nil {
		src.partner.partner = dst
	}
	for src.firstEdgeAbove != nil {
		t.setBottom(src.firstEdgeAbove, dst, nil, nil, c)
	}
	for src.firstEdgeBelow != nil {
		t.setTop(src.firstEdgeBelow, dst, nil, nil, c)
	}
	mesh.remove(src)
	dst.synthetic = true
}

// mergeCoincidentVertices collapses sweep-adjacent vertices that share a
// point. Returns whether anything merged.
func (t *triangulator) mergeCoincidentVertices(mesh *vertexList, c comparator) bool {
	if mesh.head == nil {
		return false
	}
	merged := false
	for v := mesh.head.next; v != nil; {
		next := v.next
		if c.sweepLt(v.point, v.prev.point) {
			// Out-of-order due to float drift; snap to the predecessor.
			v.point = v.prev.point
		}
		if coincident(v.prev.point, v.point) {
			t.mergeVertices(v, v.prev, mesh, c)
			merged = true
		}
		v = next
	}
	return merged
}
