// Package tess converts filled vector paths into triangle meshes for GPU
// rasterization.
//
// # Overview
//
// tess implements the two algorithmic cores that sit between path
// construction and a GPU render pass in the GoGPU ecosystem:
//
//   - A polygon triangulator that turns arbitrary filled paths (curves,
//     self-intersections, any winding) into a triangle mesh, based on a
//     Bentley-Ottmann line sweep with floating-point-robust intersection
//     handling and a Fournier-Montuno monotone decomposition.
//   - An intersection board (package board) that assigns monotonically
//     increasing group indices to overlapping axis-aligned rectangles, so
//     a renderer can serialize overlapping draws within a render pass.
//
// # Quick Start
//
//	import "github.com/gogpu/tess"
//
//	p := tess.NewPath()
//	p.Rectangle(0, 0, 100, 100)
//
//	var sink tess.SliceSink
//	result := tess.Triangulate(p, &sink, nil)
//	// sink.Vertices now holds result.VertexCount triangle vertices.
//
// # Scope
//
// tess is deliberately backend-agnostic: the triangulator writes vertices
// into a caller-owned VertexSink and the board is pure in-memory
// computation. GPU buffer management, shader compilation, and renderer
// orchestration live elsewhere in the GoGPU stack.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package tess
