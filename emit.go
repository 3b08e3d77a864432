// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Triangle emission: fan-triangulates each monotone polygon into the
// caller's vertex sink.

// emitTriangle pushes one triangle. The weight carries the winding
// magnitude so the fragment stage can accumulate non-simple coverage.
func (t *triangulator) emitTriangle(prev, curr, next *vertex, winding int, pathID uint16, reverseTriangles bool, sink VertexSink) int {
	if winding < 0 {
		prev, next = next, prev
		winding = -winding
	}
	if reverseTriangles {
		prev, next = next, prev
	}
	w := int16(min(winding, 32767))
	sink.Push(TriangleVertex{X: prev.point.X, Y: prev.point.Y, Weight: w, PathID: pathID})
	sink.Push(TriangleVertex{X: curr.point.X, Y: curr.point.Y, Weight: w, PathID: pathID})
	sink.Push(TriangleVertex{X: next.point.X, Y: next.point.Y, Weight: w, PathID: pathID})
	return 3
}

// emitMonotonePoly fan-triangulates one monotone span. It maintains a
// reflex chain on the span's active side, emitting a triangle whenever
// the chain turns convex and pushing otherwise. The vertices' intrusive
// links are reused as scratch for the chain; they are rebuilt from the
// edge chains on every call, so sharing vertices between spans is safe.
func (t *triangulator) emitMonotonePoly(m *monotonePoly, pathID uint16, reverseTriangles bool, sink VertexSink) int {
	e := m.firstEdge
	var vertices vertexList
	vertices.append(e.top)
	count := 1
	for e != nil {
		if m.side == sideRight {
			vertices.append(e.bottom)
			e = e.rightPolyNext
		} else {
			vertices.prepend(e.bottom)
			e = e.leftPolyNext
		}
		count++
	}
	emitted := 0
	first := vertices.head
	v := first.next
	for v != vertices.tail {
		prev := v.prev
		curr := v
		next := v.next
		if count == 3 {
			return emitted + t.emitTriangle(prev, curr, next, m.winding, pathID, reverseTriangles, sink)
		}
		ax := float64(curr.point.X) - float64(prev.point.X)
		ay := float64(curr.point.Y) - float64(prev.point.Y)
		bx := float64(next.point.X) - float64(curr.point.X)
		by := float64(next.point.Y) - float64(curr.point.Y)
		if ax*by-ay*bx >= 0.0 {
			emitted += t.emitTriangle(prev, curr, next, m.winding, pathID, reverseTriangles, sink)
			v.prev.next = v.next
			v.next.prev = v.prev
			count--
			if v.prev == first {
				v = v.next
			} else {
				v = v.prev
			}
		} else {
			v = v.next
		}
	}
	return emitted
}

// emitPoly emits all monotone spans of a polygon.
func (t *triangulator) emitPoly(p *poly, pathID uint16, reverseTriangles bool, sink VertexSink) int {
	if p.count < 3 {
		return 0
	}
	emitted := 0
	for m := p.head; m != nil; m = m.next {
		emitted += t.emitMonotonePoly(m, pathID, reverseTriangles, sink)
	}
	return emitted
}

// countPoints returns an upper bound on the vertices emission will push
// for the polygons included by the fill rule.
func countPoints(polys *poly, fillRule FillRule) int {
	count := 0
	for p := polys; p != nil; p = p.next {
		if fillRule.Includes(p.winding) && p.count >= 3 {
			count += (p.count - 2) * 3
		}
	}
	return count
}

// polysToTriangles emits every polygon selected by the fill rule into
// the sink and returns the number of vertices pushed.
func (t *triangulator) polysToTriangles(polys *poly, fillRule FillRule, pathID uint16, reverseTriangles bool, sink VertexSink) int {
	maxVertexCount := countPoints(polys, fillRule)
	if maxVertexCount == 0 {
		return 0
	}
	sink.Reserve(maxVertexCount)
	emitted := 0
	for p := polys; p != nil; p = p.next {
		if !fillRule.Includes(p.winding) {
			continue
		}
		emitted += t.emitPoly(p, pathID, reverseTriangles, sink)
		if emitted > maxVertexCount {
			// The estimate is an invariant of the decomposition; tripping
			// this means the mesh is corrupt. Stop writing.
			Logger().Warn("tess: emission exceeded estimate", "emitted", emitted, "max", maxVertexCount)
			break
		}
	}
	return emitted
}
