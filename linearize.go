// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "math"

// Curve linearization: flattens quadratic and cubic segments to polylines
// within a tolerance, producing one circular vertex list per contour.

// maxCubicPointBudget caps the number of points a single cubic may
// flatten to, guarding against extreme control points.
const maxCubicPointBudget = 1 << 10

// appendPointToContour allocates a vertex for p at full coverage and
// appends it to the contour.
func (t *triangulator) appendPointToContour(p Point, contour *vertexList) {
	v := t.verts.Make(vertex{point: p, alpha: 255})
	contour.append(v)
}

// quadDeviationSqd returns the squared max deviation of a quadratic from
// its chord: half the distance of the control point from the chord
// midpoint, squared.
func quadDeviationSqd(p0, p1, p2 Point) float32 {
	d := p1.Sub(p0.Midpoint(p2))
	return d.LengthSquared() * 0.25
}

// appendQuadraticToContour recursively subdivides the quadratic until the
// control-point deviation from the chord is within toleranceSqd, emitting
// chord endpoints. The start point is assumed to already be on the
// contour.
func (t *triangulator) appendQuadraticToContour(p0, p1, p2 Point, toleranceSqd float32, contour *vertexList, depth int) {
	if depth >= 16 || quadDeviationSqd(p0, p1, p2) <= toleranceSqd {
		t.appendPointToContour(p2, contour)
		return
	}
	q0 := p0.Midpoint(p1)
	q1 := p1.Midpoint(p2)
	r := q0.Midpoint(q1)
	t.appendQuadraticToContour(p0, q0, r, toleranceSqd, contour, depth+1)
	t.appendQuadraticToContour(r, q1, p2, toleranceSqd, contour, depth+1)
}

// distToSegmentSqd returns the squared distance from p to segment [a, b].
func distToSegmentSqd(p, a, b Point) float64 {
	vx := float64(b.X) - float64(a.X)
	vy := float64(b.Y) - float64(a.Y)
	wx := float64(p.X) - float64(a.X)
	wy := float64(p.Y) - float64(a.Y)
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return wx*wx + wy*wy
	}
	s := (wx*vx + wy*vy) / lenSq
	s = math.Max(0, math.Min(1, s))
	dx := wx - s*vx
	dy := wy - s*vy
	return dx*dx + dy*dy
}

// cubicPointBudget conservatively estimates how many points are needed to
// flatten the cubic within tolerance, as a power of two so the recursive
// subdivision can halve it per level.
func cubicPointBudget(p0, p1, p2, p3 Point, tolerance float32) int {
	d := math.Max(distToSegmentSqd(p1, p0, p3), distToSegmentSqd(p2, p0, p3))
	d = math.Sqrt(d)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return maxCubicPointBudget
	}
	if d <= float64(tolerance) {
		return 1
	}
	temp := math.Sqrt(d / float64(tolerance))
	budget := 1
	for budget < maxCubicPointBudget && float64(budget) < temp {
		budget <<= 1
	}
	return budget
}

// generateCubicPoints recursively subdivides a cubic within its point
// budget; each level halves the budget. The start point is assumed to
// already be on the contour.
func (t *triangulator) generateCubicPoints(p0, p1, p2, p3 Point, toleranceSqd float32, contour *vertexList, pointsLeft int) {
	d1 := distToSegmentSqd(p1, p0, p3)
	d2 := distToSegmentSqd(p2, p0, p3)
	if pointsLeft < 2 ||
		(d1 <= float64(toleranceSqd) && d2 <= float64(toleranceSqd)) ||
		math.IsNaN(d1) || math.IsNaN(d2) {
		t.appendPointToContour(p3, contour)
		return
	}
	q0 := p0.Midpoint(p1)
	q1 := p1.Midpoint(p2)
	q2 := p2.Midpoint(p3)
	r0 := q0.Midpoint(q1)
	r1 := q1.Midpoint(q2)
	s := r0.Midpoint(r1)
	pointsLeft >>= 1
	t.generateCubicPoints(p0, q0, r0, s, toleranceSqd, contour, pointsLeft)
	t.generateCubicPoints(s, r1, q2, p3, toleranceSqd, contour, pointsLeft)
}

// curveOutsideClip reports whether the control hull of a curve lies
// entirely outside the clip bounds. Such curves only matter for their
// winding contribution, so a chord stands in for the exact shape.
func curveOutsideClip(clip Rect, pts ...Point) bool {
	if clip.IsEmpty() {
		return false
	}
	hull := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		hull.ExpandToInclude(p)
	}
	return !clip.Intersects(hull)
}

// pathToContours linearizes the path into one circular vertex list per
// contour. Reports whether the path contained no curves.
func (t *triangulator) pathToContours(path *Path, tolerance float32, clipBounds Rect) (contours []*vertexList, isLinear bool) {
	toleranceSqd := tolerance * tolerance
	isLinear = true

	var contour *vertexList
	closeContour := func() {
		if contour != nil && contour.head != nil {
			contour.close()
		}
		contour = nil
	}
	startContour := func() {
		closeContour()
		contour = &vertexList{}
		contours = append(contours, contour)
	}

	var current, contourStart Point
	// reopen starts a fresh contour at the last MoveTo point, for
	// segments that follow a Close without an explicit MoveTo.
	reopen := func() {
		startContour()
		t.appendPointToContour(contourStart, contour)
		current = contourStart
	}
	path.segments(func(v Verb, pts []Point) {
		switch v {
		case VerbMoveTo:
			startContour()
			t.appendPointToContour(pts[0], contour)
			current = pts[0]
			contourStart = pts[0]
		case VerbLineTo:
			if contour == nil {
				reopen()
			}
			t.appendPointToContour(pts[0], contour)
			current = pts[0]
		case VerbQuadTo:
			if contour == nil {
				reopen()
			}
			isLinear = false
			if curveOutsideClip(clipBounds, current, pts[0], pts[1]) {
				t.appendPointToContour(pts[1], contour)
			} else {
				t.appendQuadraticToContour(current, pts[0], pts[1], toleranceSqd, contour, 0)
			}
			current = pts[1]
		case VerbCubicTo:
			if contour == nil {
				reopen()
			}
			isLinear = false
			if curveOutsideClip(clipBounds, current, pts[0], pts[1], pts[2]) {
				t.appendPointToContour(pts[2], contour)
			} else {
				budget := cubicPointBudget(current, pts[0], pts[1], pts[2], tolerance)
				t.generateCubicPoints(current, pts[0], pts[1], pts[2], toleranceSqd, contour, budget)
			}
			current = pts[2]
		case VerbClose:
			closeContour()
		}
	})
	closeContour()

	// Drop contours that never got a vertex (e.g. MoveTo immediately
	// followed by Close).
	live := contours[:0]
	for _, c := range contours {
		if c.head != nil {
			live = append(live, c)
		}
	}
	return live, isLinear
}
