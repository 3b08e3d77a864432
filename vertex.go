// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

// Vertices are used three ways over a triangulation: first, path contours
// are linearized into a circularly-linked vertex list per contour. After
// edge construction, the same vertices are re-ordered by the merge sort
// according to the sweep comparator using the same prev/next links, to
// avoid reallocation. Finally, emission threads them into per-monotone-
// polygon chains, again reusing the links as scratch.

// vertex is a planar point participating in the sweep.
type vertex struct {
	point Point
	alpha uint8

	// Intrusive list links: contour membership, then sweep order.
	prev, next *vertex

	// Edges incident from above (ending here) and below (starting here),
	// each kept sorted left to right.
	firstEdgeAbove, lastEdgeAbove *edge
	firstEdgeBelow, lastEdgeBelow *edge

	// Nearest enclosing active edges, cached by the sweeps.
	leftEnclosingEdge, rightEnclosingEdge *edge

	// Corresponding inner or outer vertex for the antialiased variant.
	// Tracked but not yet acted on.
	partner *vertex

	// synthetic marks vertices introduced by intersection.
	synthetic bool
}

// isConnected reports whether any edge is incident on the vertex.
// Disconnected vertices are skipped by the sweeps and pruned before
// tessellation.
func (v *vertex) isConnected() bool {
	return v.firstEdgeAbove != nil || v.firstEdgeBelow != nil
}

// vertexList is a head+tail wrapper over the intrusive vertex chain.
type vertexList struct {
	head, tail *vertex
}

func (l *vertexList) insert(v, prev, next *vertex) {
	v.prev = prev
	v.next = next
	if prev != nil {
		prev.next = v
	} else {
		l.head = v
	}
	if next != nil {
		next.prev = v
	} else {
		l.tail = v
	}
}

func (l *vertexList) append(v *vertex) {
	l.insert(v, l.tail, nil)
}

func (l *vertexList) prepend(v *vertex) {
	l.insert(v, nil, l.head)
}

func (l *vertexList) appendList(other *vertexList) {
	if other.head == nil {
		return
	}
	if l.tail != nil {
		l.tail.next = other.head
		other.head.prev = l.tail
	} else {
		l.head = other.head
	}
	l.tail = other.tail
}

func (l *vertexList) remove(v *vertex) {
	if v.prev != nil {
		v.prev.next = v.next
	} else {
		l.head = v.next
	}
	if v.next != nil {
		v.next.prev = v.prev
	} else {
		l.tail = v.prev
	}
	v.prev = nil
	v.next = nil
}

// close links tail to head, making the list circular. Used for contours.
func (l *vertexList) close() {
	if l.head != nil && l.tail != nil {
		l.tail.next = l.head
		l.head.prev = l.tail
	}
}

// sweepDirection selects the orientation of the line sweeps.
type sweepDirection uint8

const (
	// sweepVertical sorts by increasing Y, then increasing X.
	sweepVertical sweepDirection = iota
	// sweepHorizontal sorts by increasing X, then decreasing Y.
	sweepHorizontal
)

// comparator orders points along the sweep direction.
//
// The direction is chosen from the path bounds aspect ratio. When the
// path is wider than tall, the sweep runs horizontally with Y reversed,
// which rotates the frame 90 degrees counterclockwise rather than
// transposing it. The rotation preserves the invariant that "left" edges
// increase in the sweep coordinate, so the rest of the code never
// consults the direction.
type comparator struct {
	direction sweepDirection
}

// sweepLt reports whether a sweeps strictly before b.
func (c comparator) sweepLt(a, b Point) bool {
	if c.direction == sweepHorizontal {
		return a.X < b.X || (a.X == b.X && a.Y > b.Y)
	}
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

// sortedMerge merges two sweep-sorted lists into result, reusing the
// existing links. Stable: front wins ties.
func sortedMerge(front, back, result *vertexList, c comparator) {
	a := front.head
	b := back.head
	for a != nil && b != nil {
		if !c.sweepLt(b.point, a.point) {
			next := a.next
			front.remove(a)
			result.append(a)
			a = next
		} else {
			next := b.next
			back.remove(b)
			result.append(b)
			b = next
		}
	}
	result.appendList(front)
	result.appendList(back)
}

// sortMesh merge-sorts the vertex chain by the sweep comparator. The
// merge sort plays well with the linked list and with the later need to
// insert new vertices at intersections.
func sortMesh(vertices *vertexList, c comparator) {
	if vertices.head == nil || vertices.head == vertices.tail {
		return
	}

	// Split at the midpoint.
	fast := vertices.head
	slow := vertices.head
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		slow = slow.next
	}
	front := vertexList{head: vertices.head, tail: slow.prev}
	back := vertexList{head: slow, tail: vertices.tail}
	front.tail.next = nil
	back.head.prev = nil

	sortMesh(&front, c)
	sortMesh(&back, c)

	*vertices = vertexList{}
	sortedMerge(&front, &back, vertices, c)
}
