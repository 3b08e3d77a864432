// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"math"
	"testing"
)

// triangle is one emitted triangle, for test inspection.
type triangle struct {
	a, b, c TriangleVertex
}

// collectTriangles groups a sink's vertices three at a time.
func collectTriangles(t *testing.T, sink *SliceSink) []triangle {
	t.Helper()
	if len(sink.Vertices)%3 != 0 {
		t.Fatalf("vertex count %d is not a multiple of 3", len(sink.Vertices))
	}
	tris := make([]triangle, 0, len(sink.Vertices)/3)
	for i := 0; i+2 < len(sink.Vertices); i += 3 {
		tris = append(tris, triangle{sink.Vertices[i], sink.Vertices[i+1], sink.Vertices[i+2]})
	}
	return tris
}

// signedArea returns the signed area of the triangle (positive for
// clockwise order on screen, with y pointing down).
func (tr triangle) signedArea() float64 {
	ax := float64(tr.b.X) - float64(tr.a.X)
	ay := float64(tr.b.Y) - float64(tr.a.Y)
	bx := float64(tr.c.X) - float64(tr.a.X)
	by := float64(tr.c.Y) - float64(tr.a.Y)
	return (ax*by - ay*bx) / 2
}

// contains reports whether (x, y) lies inside the triangle or on its
// boundary.
func (tr triangle) contains(x, y float64) bool {
	sign := func(ax, ay, bx, by float64) float64 {
		return (x-bx)*(ay-by) - (ax-bx)*(y-by)
	}
	d1 := sign(float64(tr.a.X), float64(tr.a.Y), float64(tr.b.X), float64(tr.b.Y))
	d2 := sign(float64(tr.b.X), float64(tr.b.Y), float64(tr.c.X), float64(tr.c.Y))
	d3 := sign(float64(tr.c.X), float64(tr.c.Y), float64(tr.a.X), float64(tr.a.Y))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// meshWinding sums the signed winding contribution of every triangle
// containing (x, y): the triangle's weight, signed by its orientation.
func meshWinding(tris []triangle, x, y float64) int {
	winding := 0
	for _, tr := range tris {
		if !tr.contains(x, y) {
			continue
		}
		if tr.signedArea() >= 0 {
			winding += int(tr.a.Weight)
		} else {
			winding -= int(tr.a.Weight)
		}
	}
	return winding
}

// covered reports whether any triangle contains (x, y).
func covered(tris []triangle, x, y float64) bool {
	for _, tr := range tris {
		if tr.contains(x, y) {
			return true
		}
	}
	return false
}

// polygonWinding computes the winding number of a closed polygon at
// (x, y) with a rightward ray cast.
func polygonWinding(pts []Point, x, y float64) int {
	winding := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		ay, by := float64(a.Y), float64(b.Y)
		if ay <= y && by > y || by <= y && ay > y {
			t := (y - ay) / (by - ay)
			cx := float64(a.X) + t*(float64(b.X)-float64(a.X))
			if cx > x {
				if by > ay {
					winding++
				} else {
					winding--
				}
			}
		}
	}
	return winding
}

// nearPolygonEdge reports whether (x, y) lies within eps of any edge of
// the closed polygon. Sample-based coverage checks skip such points:
// boundary pixels are legitimately ambiguous.
func nearPolygonEdge(pts []Point, x, y, eps float64) bool {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		d := distToSegmentSqd(Pt(float32(x), float32(y)), a, b)
		if d < eps*eps {
			return true
		}
	}
	return false
}

func TestTriangulateUnitSquare(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))

	var sink SliceSink
	res := Triangulate(p, &sink, nil)

	if !res.IsLinear {
		t.Error("IsLinear = false, want true for a polygon")
	}
	if res.VertexCount != 6 {
		t.Fatalf("VertexCount = %d, want 6 (two triangles)", res.VertexCount)
	}
	tris := collectTriangles(t, &sink)

	// The two triangles cover exactly the unit square.
	area := 0.0
	for _, tr := range tris {
		area += math.Abs(tr.signedArea())
	}
	if math.Abs(area-1.0) > 1e-6 {
		t.Errorf("total triangle area = %v, want 1.0", area)
	}
	for _, tr := range tris {
		for _, v := range []TriangleVertex{tr.a, tr.b, tr.c} {
			if v.X != 0 && v.X != 1 || v.Y != 0 && v.Y != 1 {
				t.Errorf("vertex (%v, %v) is not a square corner", v.X, v.Y)
			}
		}
	}
}

func TestTriangulatePathID(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	var sink SliceSink
	res := Triangulate(p, &sink, &Options{PathID: 42})
	if res.VertexCount == 0 {
		t.Fatal("no vertices emitted")
	}
	for i, v := range sink.Vertices {
		if v.PathID != 42 {
			t.Fatalf("vertex %d PathID = %d, want 42", i, v.PathID)
		}
	}
}

func TestTriangulateBowtie(t *testing.T) {
	// Self-intersecting bowtie: the two wings carry winding +1 and -1,
	// the regions between them winding 0.
	bowtie := []Point{Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1)}

	samples := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"left wing", 0.15, 0.5, true},
		{"right wing", 0.85, 0.5, true},
		{"above center", 0.5, 0.15, false},
		{"below center", 0.5, 0.85, false},
		{"outside", 1.5, 0.5, false},
	}

	for _, rule := range []FillRule{FillNonZero, FillEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			p := NewPath()
			p.Polygon(bowtie...)

			var sink SliceSink
			res := Triangulate(p, &sink, &Options{FillRule: rule, CollectGrout: true})
			if res.VertexCount != 6 {
				t.Errorf("VertexCount = %d, want 6 (one triangle per wing)", res.VertexCount)
			}
			tris := collectTriangles(t, &sink)
			for _, s := range samples {
				if got := covered(tris, s.x, s.y); got != s.inside {
					t.Errorf("%s (%v, %v): covered = %v, want %v", s.name, s.x, s.y, got, s.inside)
				}
			}

			// Each of the two crossing edges splits once at the center,
			// emitting one razor-thin grout triangle per split.
			if res.Grout == nil {
				t.Fatal("Grout = nil with CollectGrout set")
			}
			if res.Grout.Count() != 2 {
				t.Errorf("grout count = %d, want 2", res.Grout.Count())
			}
			for gt := range res.Grout.All {
				tr := triangle{
					TriangleVertex{X: gt.A.X, Y: gt.A.Y},
					TriangleVertex{X: gt.B.X, Y: gt.B.Y},
					TriangleVertex{X: gt.C.X, Y: gt.C.Y},
				}
				if a := math.Abs(tr.signedArea()); a > 1e-6 {
					t.Errorf("grout triangle area = %v, want ~0 (split point lies on the edge)", a)
				}
			}
		})
	}
}

func TestTriangulateOverlappingContoursFillRules(t *testing.T) {
	// Two same-orientation squares overlapping in [1,2]x[1,2]: the
	// overlap has winding 2, so NonZero includes it and EvenOdd punches
	// it out.
	build := func() *Path {
		p := NewPath()
		p.Rectangle(0, 0, 2, 2)
		p.Rectangle(1, 1, 2, 2)
		return p
	}

	tests := []struct {
		rule        FillRule
		overlapIn   bool
		cornersIn   bool
	}{
		{FillNonZero, true, true},
		{FillEvenOdd, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			var sink SliceSink
			res := Triangulate(build(), &sink, &Options{FillRule: tt.rule})
			if res.VertexCount == 0 {
				t.Fatal("no vertices emitted")
			}
			tris := collectTriangles(t, &sink)

			if got := covered(tris, 1.5, 1.5); got != tt.overlapIn {
				t.Errorf("overlap center covered = %v, want %v", got, tt.overlapIn)
			}
			if got := covered(tris, 0.5, 0.5); got != tt.cornersIn {
				t.Errorf("first square covered = %v, want %v", got, tt.cornersIn)
			}
			if got := covered(tris, 2.5, 2.5); got != tt.cornersIn {
				t.Errorf("second square covered = %v, want %v", got, tt.cornersIn)
			}
			if covered(tris, 2.5, 0.5) {
				t.Error("point outside both squares is covered")
			}
		})
	}
}

func TestTriangulateCirclePolygon(t *testing.T) {
	// A 64-gon approximating a circle: one convex monotone polygon, so
	// exactly 62 fan triangles with consistent orientation.
	const n = 64
	pts := make([]Point, n)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / n
		pts[i] = Pt(float32(100+50*math.Cos(angle)), float32(100+50*math.Sin(angle)))
	}
	p := NewPath()
	p.Polygon(pts...)

	var sink SliceSink
	res := Triangulate(p, &sink, nil)
	if res.VertexCount != 62*3 {
		t.Fatalf("VertexCount = %d, want %d", res.VertexCount, 62*3)
	}
	tris := collectTriangles(t, &sink)

	polyArea := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%n]
		polyArea += (float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)) / 2
	}

	sum := 0.0
	first := tris[0].signedArea()
	for i, tr := range tris {
		a := tr.signedArea()
		if a*first < 0 {
			t.Errorf("triangle %d orientation differs from triangle 0", i)
		}
		sum += a
	}
	if math.Abs(math.Abs(sum)-math.Abs(polyArea)) > 1e-3*math.Abs(polyArea) {
		t.Errorf("triangle area sum = %v, want polygon area %v", sum, polyArea)
	}
}

func TestTriangulateSharedEdgeNoIntersections(t *testing.T) {
	// Two triangles sharing the diagonal: nothing crosses, so
	// simplification inserts no vertices and the grout list stays empty.
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	p.Polygon(Pt(1, 0), Pt(1, 1), Pt(0, 1))

	var sink SliceSink
	res := Triangulate(p, &sink, &Options{CollectGrout: true})
	if res.VertexCount == 0 {
		t.Fatal("no vertices emitted")
	}
	if res.Grout == nil || res.Grout.Count() != 0 {
		t.Errorf("grout count = %d, want 0", res.Grout.Count())
	}

	tris := collectTriangles(t, &sink)
	area := 0.0
	for _, tr := range tris {
		area += math.Abs(tr.signedArea())
	}
	if math.Abs(area-1.0) > 1e-6 {
		t.Errorf("total area = %v, want 1.0", area)
	}
}

func TestTriangulateDeterministic(t *testing.T) {
	build := func() *Path {
		p := NewPath()
		p.Polygon(Pt(0, 0), Pt(5, 1), Pt(3, 4), Pt(6, 6), Pt(1, 5))
		p.Circle(3, 3, 1.5)
		return p
	}

	var first SliceSink
	Triangulate(build(), &first, &Options{FillRule: FillEvenOdd})

	for run := 0; run < 3; run++ {
		var sink SliceSink
		Triangulate(build(), &sink, &Options{FillRule: FillEvenOdd})
		if len(sink.Vertices) != len(first.Vertices) {
			t.Fatalf("run %d: %d vertices, first run had %d", run, len(sink.Vertices), len(first.Vertices))
		}
		for i := range sink.Vertices {
			if sink.Vertices[i] != first.Vertices[i] {
				t.Fatalf("run %d: vertex %d = %+v, first run had %+v",
					run, i, sink.Vertices[i], first.Vertices[i])
			}
		}
	}
}

func TestTriangulateSweepDirectionInvariance(t *testing.T) {
	// The same concave polygon triangulated under both sweep directions
	// (forced via the bounds aspect ratio) must cover the same region.
	poly := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(2, 2), Pt(0, 4)}

	triangulate := func(bounds Rect) []triangle {
		p := NewPath()
		p.Polygon(poly...)
		var sink SliceSink
		Triangulate(p, &sink, &Options{Bounds: bounds})
		return collectTriangles(t, &sink)
	}

	// Taller-than-wide bounds select the vertical sweep, wider-than-tall
	// the horizontal one.
	vertical := triangulate(Rect{0, 0, 4, 100})
	horizontal := triangulate(Rect{0, 0, 100, 4})

	for y := 0.25; y < 4; y += 0.5 {
		for x := 0.25; x < 4; x += 0.5 {
			if nearPolygonEdge(poly, x, y, 0.05) {
				continue
			}
			want := FillNonZero.Includes(polygonWinding(poly, x, y))
			if got := covered(vertical, x, y); got != want {
				t.Errorf("vertical sweep at (%v, %v): covered = %v, want %v", x, y, got, want)
			}
			if got := covered(horizontal, x, y); got != want {
				t.Errorf("horizontal sweep at (%v, %v): covered = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTriangulateStencilEquivalence(t *testing.T) {
	// The signed sum of triangle weights at any sample point equals the
	// path's winding number there: stenciling the triangulation (plus
	// the measure-zero grout) reproduces a classic winding-rule fan.
	polys := [][]Point{
		{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)},
		{Pt(0, 0), Pt(4, 4), Pt(4, 0), Pt(0, 4)}, // bowtie
		{Pt(0, 0), Pt(5, 1), Pt(3, 4), Pt(6, 6), Pt(1, 5)},
	}
	for i, poly := range polys {
		p := NewPath()
		p.Polygon(poly...)
		var sink SliceSink
		Triangulate(p, &sink, &Options{CollectGrout: true})
		tris := collectTriangles(t, &sink)

		for y := 0.3; y < 6; y += 0.7 {
			for x := 0.3; x < 6; x += 0.7 {
				if nearPolygonEdge(poly, x, y, 0.05) {
					continue
				}
				got := meshWinding(tris, x, y)
				want := polygonWinding(poly, x, y)
				if got != want && -got != want {
					t.Errorf("polygon %d at (%v, %v): mesh winding %d, path winding %d",
						i, x, y, got, want)
				}
			}
		}
	}
}

func TestTriangulateReverseTriangles(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 2, 2)

	var fwd, rev SliceSink
	Triangulate(p, &fwd, nil)
	p2 := NewPath()
	p2.Rectangle(0, 0, 2, 2)
	Triangulate(p2, &rev, &Options{ReverseTriangles: true})

	ft := collectTriangles(t, &fwd)
	rt := collectTriangles(t, &rev)
	if len(ft) != len(rt) {
		t.Fatalf("triangle counts differ: %d vs %d", len(ft), len(rt))
	}
	for i := range ft {
		if ft[i].signedArea()*rt[i].signedArea() >= 0 {
			t.Errorf("triangle %d: orientation did not flip", i)
		}
	}
}

func TestTriangulateEmptyAndDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Path
	}{
		{"empty", func() *Path { return NewPath() }},
		{"single moveto", func() *Path {
			p := NewPath()
			p.MoveTo(1, 1)
			return p
		}},
		{"single point contour", func() *Path {
			p := NewPath()
			p.MoveTo(1, 1)
			p.Close()
			return p
		}},
		{"collinear points", func() *Path {
			p := NewPath()
			p.Polygon(Pt(0, 0), Pt(1, 1), Pt(2, 2))
			return p
		}},
		{"repeated point", func() *Path {
			p := NewPath()
			p.Polygon(Pt(1, 1), Pt(1, 1), Pt(1, 1))
			return p
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink SliceSink
			res := Triangulate(tt.build(), &sink, nil)
			if res.VertexCount != len(sink.Vertices) {
				t.Errorf("VertexCount = %d, sink has %d", res.VertexCount, len(sink.Vertices))
			}
			// Degenerate inputs must produce no area, not crash.
			for _, tr := range collectTriangles(t, &sink) {
				if math.Abs(tr.signedArea()) > 1e-9 {
					t.Errorf("degenerate input emitted triangle with area %v", tr.signedArea())
				}
			}
		})
	}
}

func TestTriangulatorReuse(t *testing.T) {
	var tr Triangulator
	for i := 0; i < 3; i++ {
		p := NewPath()
		p.Rectangle(0, 0, 1, 1)
		var sink SliceSink
		res := tr.Triangulate(p, &sink, nil)
		if res.VertexCount != 6 {
			t.Fatalf("iteration %d: VertexCount = %d, want 6", i, res.VertexCount)
		}
	}
}

func TestTriangulateOverrideFillRule(t *testing.T) {
	// Stencil under NonZero, cover under EvenOdd: the overlap region of
	// two same-winding squares drops out at emission time.
	p := NewPath()
	p.Rectangle(0, 0, 2, 2)
	p.Rectangle(1, 1, 2, 2)

	var sink SliceSink
	Triangulate(p, &sink, &Options{
		FillRule:            FillNonZero,
		OverrideFillRule:    FillEvenOdd,
		HasOverrideFillRule: true,
	})
	tris := collectTriangles(t, &sink)
	if covered(tris, 1.5, 1.5) {
		t.Error("overlap center covered, want punched out by override rule")
	}
	if !covered(tris, 0.5, 0.5) {
		t.Error("non-overlap region not covered")
	}
}

func BenchmarkTriangulate(b *testing.B) {
	shapes := []struct {
		name  string
		build func() *Path
	}{
		{"square", func() *Path {
			p := NewPath()
			p.Rectangle(0, 0, 100, 100)
			return p
		}},
		{"circle", func() *Path {
			p := NewPath()
			p.Circle(100, 100, 50)
			return p
		}},
		{"star128", func() *Path {
			p := NewPath()
			pts := make([]Point, 128)
			for i := range pts {
				r := 100.0
				if i%2 == 1 {
					r = 40
				}
				angle := 2 * math.Pi * float64(i) / 128
				pts[i] = Pt(float32(200+r*math.Cos(angle)), float32(200+r*math.Sin(angle)))
			}
			p.Polygon(pts...)
			return p
		}},
	}
	for _, shape := range shapes {
		b.Run(shape.name, func(b *testing.B) {
			path := shape.build()
			var tr Triangulator
			var sink SliceSink
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink.Reset()
				tr.Triangulate(path, &sink, nil)
			}
		})
	}
}
