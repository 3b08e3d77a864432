// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import "github.com/gogpu/tess/internal/arena"

// DefaultTolerance is the default curve flattening tolerance, in pixels.
const DefaultTolerance = 0.25

// Options configures a triangulation. The zero value gives a NonZero
// fill at the default tolerance with no clipping.
type Options struct {
	// Tolerance is the maximum distance, in pixels, that a flattened
	// curve may deviate from the true curve. Zero means
	// DefaultTolerance.
	Tolerance float32

	// FillRule selects which winding numbers are inside.
	FillRule FillRule

	// OverrideFillRule, when set, replaces FillRule at emission time
	// only. The simplification and decomposition still run under
	// FillRule; this matches a renderer that stencils with one rule but
	// covers with another.
	OverrideFillRule FillRule

	// HasOverrideFillRule enables OverrideFillRule.
	HasOverrideFillRule bool

	// Bounds is the path's bounding box. Zero means computed from the
	// path. The aspect ratio selects the sweep direction.
	Bounds Rect

	// Clip bounds the region whose exact coverage matters. Curves
	// entirely outside the clip are flattened to chords. Zero means no
	// clipping.
	Clip Rect

	// PathID is stamped on every emitted vertex.
	PathID uint16

	// ReverseTriangles flips the vertex order of every emitted triangle.
	ReverseTriangles bool

	// CollectGrout collects the grout triangles produced by edge splits
	// during simplification, for renderers that stitch an outer curve
	// pass with the inner triangulation.
	CollectGrout bool
}

// Result reports the outcome of a triangulation.
type Result struct {
	// VertexCount is the number of vertices pushed into the sink.
	VertexCount int

	// IsLinear reports whether the path contained no curves.
	IsLinear bool

	// Grout holds the collected grout triangles when
	// Options.CollectGrout was set. The list is backed by the
	// triangulation's arena; consume it before the next triangulation
	// reuses the Triangulator.
	Grout *GroutList
}

// Triangulator converts filled paths into triangle meshes. The zero
// value is ready to use; reusing one across triangulations recycles its
// arena.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	verts arena.Slab[vertex]
	edges arena.Slab[edge]
	monos arena.Slab[monotonePoly]
	polys arena.Slab[poly]
	gnode groutAlloc
}

// triangulator is the per-triangulation state.
type triangulator struct {
	pathBounds Rect
	fillRule   FillRule

	verts *arena.Slab[vertex]
	edges *arena.Slab[edge]
	monos *arena.Slab[monotonePoly]
	polys *arena.Slab[poly]

	numEdges         int
	numMonotonePolys int

	// preserveCollinearVertices keeps collinear mesh vertices intact so
	// grout triangles stay anchored to original edge endpoints.
	preserveCollinearVertices bool
	collectGrout              bool
	grout                     GroutList

	// tessellate is the decomposition stage; pluggable for the
	// antialiased variant.
	tessellate tessellateFn
}

// Triangulate converts the filled path into triangles, pushing the
// vertices into sink. opts may be nil for defaults.
//
// On geometric failure (simplification cannot converge) the result is
// empty and the path should be drawn by a fallback rasterizer; nothing
// will have been pushed into the sink.
func Triangulate(path *Path, sink VertexSink, opts *Options) Result {
	var tr Triangulator
	return tr.Triangulate(path, sink, opts)
}

// Triangulate converts the filled path into triangles, pushing the
// vertices into sink. opts may be nil for defaults.
func (tr *Triangulator) Triangulate(path *Path, sink VertexSink, opts *Options) Result {
	if opts == nil {
		opts = &Options{}
	}
	tr.verts.Reset()
	tr.edges.Reset()
	tr.monos.Reset()
	tr.polys.Reset()
	tr.gnode.Reset()

	bounds := opts.Bounds
	if bounds.IsEmpty() {
		bounds = path.Bounds()
	}
	t := &triangulator{
		pathBounds:                bounds,
		fillRule:                  opts.FillRule,
		verts:                     &tr.verts,
		edges:                     &tr.edges,
		monos:                     &tr.monos,
		polys:                     &tr.polys,
		preserveCollinearVertices: true,
		collectGrout:              opts.CollectGrout,
		grout:                     GroutList{alloc: &tr.gnode},
		tessellate:                tessellate,
	}

	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	polys, isLinear, ok := t.pathToPolys(path, tolerance, opts.Clip)
	res := Result{IsLinear: isLinear}
	if t.collectGrout {
		res.Grout = &t.grout
	}
	if !ok {
		return res
	}

	emitRule := t.fillRule
	if opts.HasOverrideFillRule {
		emitRule = opts.OverrideFillRule
	}
	res.VertexCount = t.polysToTriangles(polys, emitRule, opts.PathID, opts.ReverseTriangles, sink)
	return res
}

// pathToPolys runs linearization through tessellation.
func (t *triangulator) pathToPolys(path *Path, tolerance float32, clipBounds Rect) (polys *poly, isLinear, ok bool) {
	contours, isLinear := t.pathToContours(path, tolerance, clipBounds)
	if len(contours) == 0 {
		return nil, isLinear, false
	}
	t.sanitizeContours(contours)
	polys, ok = t.contoursToPolys(contours)
	return polys, isLinear, ok
}

// contoursToPolys runs meshing, sorting, simplification and
// tessellation.
func (t *triangulator) contoursToPolys(contours []*vertexList) (*poly, bool) {
	c := comparator{direction: sweepVertical}
	if t.pathBounds.Width() > t.pathBounds.Height() {
		c.direction = sweepHorizontal
	}

	var mesh vertexList
	t.contoursToMesh(contours, &mesh, c)
	sortMesh(&mesh, c)
	t.mergeCoincidentVertices(&mesh, c)
	if t.simplify(&mesh, c) == simplifyFailed {
		Logger().Warn("tess: path dropped, simplification failed")
		return nil, false
	}
	return t.tessellate(t, &mesh, c)
}
