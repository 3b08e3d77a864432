// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "github.com/gogpu/tess/internal/arena"

// The grout triangles serve as a glue that erases T-junctions between a
// path's outer curves and its inner polygon triangulation. Drawing the
// outer curves, the grout triangles, and the inner triangulation together
// into the stencil buffer has the identical rasterized effect as
// stenciling a classic fan.
//
// The grout tracks every edge split that led from the original inner
// polygon edges to the final triangulation. Each split of an edge [a, b]
// at x emits the razor-thin triangle [a, b, x] (plus supplemental copies
// where |winding| > 1):
//
//	    a
//	   /
//	  /
//	 x   <- edge splits at x; new grout triangle is [a, b, x]
//	/
//	b
//
// The opposite-direction shared edges between the triangulation and the
// grout triangles all cancel, leaving just the edges of the original
// polygon.

// GroutTriangle is one grout triangle.
type GroutTriangle struct {
	A, B, C Point
}

// groutNode is a GroutTriangle in the arena-linked list.
type groutNode struct {
	tri  GroutTriangle
	next *groutNode
}

// GroutList collects the grout triangles produced while simplifying a
// path. Append-only, with a tail pointer for O(1) concatenation.
type GroutList struct {
	head  *groutNode
	tail  **groutNode
	count int
	alloc *groutAlloc
}

type groutAlloc = arena.Slab[groutNode]

// ensureTail makes the tail pointer usable on a zero-value or moved
// list. GroutList values get embedded in larger structs, so the tail
// cannot be bound at construction time.
func (l *GroutList) ensureTail() {
	if l.tail == nil {
		l.tail = &l.head
	}
}

// Count returns the number of collected triangles.
func (l *GroutList) Count() int { return l.count }

// append records the triangle [a, b, c], |winding| times. Degenerate
// triangles and zero windings are skipped; negative windings swap a and b
// so every copy is consistently oriented.
func (l *GroutList) append(a, b, c Point, winding int) {
	if a == b || a == c || b == c || winding == 0 {
		return
	}
	l.ensureTail()
	if winding < 0 {
		a, b = b, a
		winding = -winding
	}
	for range winding {
		n := l.alloc.Make(groutNode{tri: GroutTriangle{A: a, B: b, C: c}})
		*l.tail = n
		l.tail = &n.next
	}
	l.count += winding
}

// Concat moves all triangles from other onto the end of l, leaving other
// empty.
func (l *GroutList) Concat(other *GroutList) {
	if other.head == nil {
		return
	}
	l.ensureTail()
	*l.tail = other.head
	l.tail = other.tail
	l.count += other.count
	other.head = nil
	other.tail = &other.head
	other.count = 0
}

// All iterates the collected triangles in insertion order.
func (l *GroutList) All(yield func(GroutTriangle) bool) {
	for n := l.head; n != nil; n = n.next {
		if !yield(n.tri) {
			return
		}
	}
}

// Emit pushes every grout triangle into the sink as a weight-1 triangle
// with the given path ID, returning the number of vertices pushed.
func (l *GroutList) Emit(pathID uint16, reverseTriangles bool, sink VertexSink) int {
	if l.count == 0 {
		return 0
	}
	sink.Reserve(l.count * 3)
	emitted := 0
	for n := l.head; n != nil; n = n.next {
		a, b, c := n.tri.A, n.tri.B, n.tri.C
		if reverseTriangles {
			a, c = c, a
		}
		sink.Push(TriangleVertex{X: a.X, Y: a.Y, Weight: 1, PathID: pathID})
		sink.Push(TriangleVertex{X: b.X, Y: b.Y, Weight: 1, PathID: pathID})
		sink.Push(TriangleVertex{X: c.X, Y: c.Y, Weight: 1, PathID: pathID})
		emitted += 3
	}
	return emitted
}
