// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Tessellation: a second sweep over the simplified planar mesh that
// decomposes it into y-monotone polygons, after "Triangulating Simple
// Polygons and Equivalent Problems" (Fournier and Montuno).
//
// The active edge list here is a plain linked list rather than the 2-3
// tree the paper describes. The tree gives O(lg N) lookups, but insertion
// and removal also become O(lg N); with the list, all removals and most
// insertions are O(1) because the adjacent edge is known from the
// topology. Only split vertices need the O(N) lookup, and those are rare.

// side distinguishes the two chains of a monotone polygon.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// monotonePoly is a single y-monotone span of a polygon: a chain of
// edges all on one side, linked through the edges' per-side links.
type monotonePoly struct {
	side       side
	firstEdge  *edge
	lastEdge   *edge
	prev, next *monotonePoly
	winding    int
}

// addEdge appends an edge to the chain on this monotone polygon's side.
func (m *monotonePoly) addEdge(e *edge) {
	if m.side == sideRight {
		e.rightPolyPrev = m.lastEdge
		if m.lastEdge != nil {
			m.lastEdge.rightPolyNext = e
		}
		if m.firstEdge == nil {
			m.firstEdge = e
		}
		m.lastEdge = e
		e.usedInRightPoly = true
	} else {
		e.leftPolyPrev = m.lastEdge
		if m.lastEdge != nil {
			m.lastEdge.leftPolyNext = e
		}
		if m.firstEdge == nil {
			m.firstEdge = e
		}
		m.lastEdge = e
		e.usedInLeftPoly = true
	}
}

// poly is a polygon produced by the tessellation sweep: a chain of
// monotone spans plus the winding accumulated for the fill rule.
type poly struct {
	firstVertex *vertex
	winding     int
	head, tail  *monotonePoly
	next        *poly
	partner     *poly
	count       int
}

// lastVertex returns the most recently added vertex of the polygon.
func (p *poly) lastVertex() *vertex {
	if p.tail != nil {
		return p.tail.lastEdge.bottom
	}
	return p.firstVertex
}

// makePoly allocates a polygon and pushes it onto the output list.
func (t *triangulator) makePoly(polys **poly, v *vertex, winding int) *poly {
	p := t.polys.Make(poly{
		firstVertex: v,
		winding:     winding,
		count:       0,
		next:        *polys,
	})
	*polys = p
	return p
}

// allocateMonotonePoly allocates a monotone span seeded with one edge.
func (t *triangulator) allocateMonotonePoly(e *edge, s side, winding int) *monotonePoly {
	t.numMonotonePolys++
	m := t.monos.Make(monotonePoly{side: s, winding: winding})
	m.addEdge(e)
	return m
}

// addEdgeToPoly grows polygon p along side s with edge e, splitting off a
// new monotone span (joined by a connector edge) whenever the growth
// switches sides. Returns the polygon that subsequent growth should
// continue on, which differs from p when the edge got routed to p's AA
// partner.
func (t *triangulator) addEdgeToPoly(p *poly, e *edge, s side) *poly {
	if coincident(e.top.point, e.bottom.point) {
		return p
	}
	if s == sideRight {
		if e.usedInRightPoly {
			return p
		}
	} else {
		if e.usedInLeftPoly {
			return p
		}
	}
	partner := p.partner
	if partner != nil {
		p.partner = nil
		partner.partner = nil
	}
	switch {
	case p.tail == nil:
		p.head = t.allocateMonotonePoly(e, s, p.winding)
		p.tail = p.head
		p.count += 2
	case e.bottom == p.tail.lastEdge.bottom:
		// Already terminated here.
	case s == p.tail.side:
		p.tail.addEdge(e)
		p.count++
	default:
		e = t.allocateEdge(p.tail.lastEdge.bottom, e.bottom, 1, edgeTypeConnector)
		p.tail.addEdge(e)
		p.count++
		if partner != nil {
			return t.addEdgeToPoly(partner, e, s)
		}
		m := t.allocateMonotonePoly(e, s, p.winding)
		m.prev = p.tail
		p.tail.next = m
		p.tail = m
	}
	return p
}

// tessellateFn is the tessellation stage, pluggable so an antialiased
// variant can substitute its own decomposition.
type tessellateFn func(t *triangulator, vertices *vertexList, c comparator) (*poly, bool)

// tessellate sweeps the simplified mesh and builds monotone polygons.
// At each vertex the local classification is implicit in the incident
// edge lists: no edges above starts polygons, no edges below ends or
// merges them, and a vertex with both continues its neighbours.
func tessellate(t *triangulator, vertices *vertexList, c comparator) (*poly, bool) {
	var activeEdges edgeList
	var polys *poly
	for v := vertices.head; v != nil; v = v.next {
		if !v.isConnected() {
			continue
		}
		leftEnclosingEdge, rightEnclosingEdge := activeEdges.findEnclosingEdges(v)
		var leftPoly, rightPoly *poly
		if v.firstEdgeAbove != nil {
			leftPoly = v.firstEdgeAbove.leftPoly
			rightPoly = v.lastEdgeAbove.rightPoly
		} else {
			if leftEnclosingEdge != nil {
				leftPoly = leftEnclosingEdge.rightPoly
			}
			if rightEnclosingEdge != nil {
				rightPoly = rightEnclosingEdge.leftPoly
			}
		}
		if v.firstEdgeAbove != nil {
			// Terminate ending edges into their polygons.
			if leftPoly != nil {
				leftPoly = t.addEdgeToPoly(leftPoly, v.firstEdgeAbove, sideRight)
			}
			if rightPoly != nil {
				rightPoly = t.addEdgeToPoly(rightPoly, v.lastEdgeAbove, sideLeft)
			}
			for e := v.firstEdgeAbove; e != v.lastEdgeAbove; e = e.nextEdgeAbove {
				rightEdge := e.nextEdgeAbove
				activeEdges.remove(e)
				if e.rightPoly != nil {
					t.addEdgeToPoly(e.rightPoly, e, sideLeft)
				}
				if rightEdge.leftPoly != nil && rightEdge.leftPoly != e.rightPoly {
					t.addEdgeToPoly(rightEdge.leftPoly, e, sideRight)
				}
			}
			activeEdges.remove(v.lastEdgeAbove)
			if v.firstEdgeBelow == nil {
				// End or merge vertex: pair the polygons for the AA
				// variant's bookkeeping.
				if leftPoly != nil && rightPoly != nil && leftPoly != rightPoly {
					rightPoly.partner = leftPoly
					leftPoly.partner = rightPoly
				}
			}
		}
		if v.firstEdgeBelow != nil {
			if v.firstEdgeAbove == nil {
				// Start or split vertex.
				if leftPoly != nil && rightPoly != nil {
					if leftPoly == rightPoly {
						// Split vertex inside one polygon: divide it by
						// restarting the side whose chain was last
						// extended.
						if leftPoly.tail != nil && leftPoly.tail.side == sideLeft {
							leftPoly = t.makePoly(&polys, leftPoly.lastVertex(), leftPoly.winding)
							leftEnclosingEdge.rightPoly = leftPoly
						} else {
							rightPoly = t.makePoly(&polys, rightPoly.lastVertex(), rightPoly.winding)
							rightEnclosingEdge.leftPoly = rightPoly
						}
					}
					// Connect to the helper vertex.
					join := t.allocateEdge(leftPoly.lastVertex(), v, 1, edgeTypeConnector)
					leftPoly = t.addEdgeToPoly(leftPoly, join, sideRight)
					rightPoly = t.addEdgeToPoly(rightPoly, join, sideLeft)
				}
			}
			// Insert starting edges and create polygons between adjacent
			// pairs.
			leftEdge := v.firstEdgeBelow
			leftEdge.leftPoly = leftPoly
			activeEdges.insert(leftEdge, leftEnclosingEdge)
			for rightEdge := leftEdge.nextEdgeBelow; rightEdge != nil; rightEdge = rightEdge.nextEdgeBelow {
				activeEdges.insert(rightEdge, leftEdge)
				winding := leftEdge.winding
				if leftEdge.leftPoly != nil {
					winding += leftEdge.leftPoly.winding
				}
				if winding != 0 {
					p := t.makePoly(&polys, v, winding)
					leftEdge.rightPoly = p
					rightEdge.leftPoly = p
				}
				leftEdge = rightEdge
			}
			v.lastEdgeBelow.rightPoly = rightPoly
		}
	}
	activeEdges.removeAll()
	return polys, true
}
