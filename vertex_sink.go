package tess

import "honnef.co/go/safeish"

// TriangleVertex is one vertex of an emitted triangle, laid out to be
// uploaded to a GPU vertex buffer verbatim.
//
// Weight encodes winding coverage for the downstream fragment stage: the
// stencil contribution of the triangle this vertex belongs to. PathID
// identifies the owning path so a batched rasterizer can attribute
// coverage.
type TriangleVertex struct {
	X, Y   float32
	Weight int16
	PathID uint16
}

// VertexSink receives the triangle vertices produced by Triangulate.
// Implementations are typically thin wrappers over mapped GPU buffers.
type VertexSink interface {
	// Reserve hints that n more vertices are about to be pushed.
	Reserve(n int)

	// Push appends one vertex.
	Push(v TriangleVertex)
}

// SliceSink is a VertexSink that collects vertices into a slice.
type SliceSink struct {
	Vertices []TriangleVertex
}

// Reserve grows the underlying slice capacity.
func (s *SliceSink) Reserve(n int) {
	if need := len(s.Vertices) + n; need > cap(s.Vertices) {
		grown := make([]TriangleVertex, len(s.Vertices), need)
		copy(grown, s.Vertices)
		s.Vertices = grown
	}
}

// Push appends one vertex.
func (s *SliceSink) Push(v TriangleVertex) {
	s.Vertices = append(s.Vertices, v)
}

// Reset empties the sink, retaining capacity.
func (s *SliceSink) Reset() {
	s.Vertices = s.Vertices[:0]
}

// BufferSink is a VertexSink that stages vertices for GPU upload. Bytes
// exposes the collected vertices as their raw in-memory representation,
// suitable for writing into a wgpu vertex buffer without a copy per
// vertex.
type BufferSink struct {
	vertices []TriangleVertex
}

// Reserve grows the staging buffer capacity.
func (s *BufferSink) Reserve(n int) {
	if need := len(s.vertices) + n; need > cap(s.vertices) {
		grown := make([]TriangleVertex, len(s.vertices), need)
		copy(grown, s.vertices)
		s.vertices = grown
	}
}

// Push appends one vertex.
func (s *BufferSink) Push(v TriangleVertex) {
	s.vertices = append(s.vertices, v)
}

// Len returns the number of staged vertices.
func (s *BufferSink) Len() int { return len(s.vertices) }

// Bytes returns the staged vertices as raw bytes. The slice aliases the
// sink's storage and is invalidated by the next Push.
func (s *BufferSink) Bytes() []byte {
	return safeish.SliceCast[[]byte](s.vertices)
}

// Reset empties the sink, retaining capacity.
func (s *BufferSink) Reset() {
	s.vertices = s.vertices[:0]
}
