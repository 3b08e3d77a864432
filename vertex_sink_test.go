package tess

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"
)

func TestSliceSink(t *testing.T) {
	var s SliceSink
	s.Reserve(4)
	if cap(s.Vertices) < 4 {
		t.Errorf("cap = %d after Reserve(4)", cap(s.Vertices))
	}
	s.Push(TriangleVertex{X: 1, Y: 2, Weight: 3, PathID: 4})
	if len(s.Vertices) != 1 || s.Vertices[0].PathID != 4 {
		t.Errorf("unexpected contents: %+v", s.Vertices)
	}
	s.Reset()
	if len(s.Vertices) != 0 {
		t.Error("Reset did not empty the sink")
	}
}

func TestBufferSinkBytes(t *testing.T) {
	if sz := unsafe.Sizeof(TriangleVertex{}); sz != 12 {
		t.Fatalf("TriangleVertex size = %d, want 12", sz)
	}

	var s BufferSink
	s.Reserve(2)
	s.Push(TriangleVertex{X: 1.5, Y: -2, Weight: -7, PathID: 513})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	raw := s.Bytes()
	if len(raw) != 12 {
		t.Fatalf("Bytes len = %d, want 12", len(raw))
	}
	if got := math.Float32frombits(binary.NativeEndian.Uint32(raw[0:])); got != 1.5 {
		t.Errorf("X bytes = %v, want 1.5", got)
	}
	if got := math.Float32frombits(binary.NativeEndian.Uint32(raw[4:])); got != -2 {
		t.Errorf("Y bytes = %v, want -2", got)
	}
	if got := int16(binary.NativeEndian.Uint16(raw[8:])); got != -7 {
		t.Errorf("Weight bytes = %d, want -7", got)
	}
	if got := binary.NativeEndian.Uint16(raw[10:]); got != 513 {
		t.Errorf("PathID bytes = %d, want 513", got)
	}

	s.Reset()
	if s.Len() != 0 {
		t.Error("Reset did not empty the sink")
	}
}
