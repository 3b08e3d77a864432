package tess

import (
	"iter"

	"honnef.co/go/curve"
)

// FromPathElements builds a Path from a stream of curve path elements.
// This is the bridge from honnef.co/go/curve's Bezier path model, so
// shapes built with that library can be triangulated directly.
func FromPathElements(elements iter.Seq[curve.PathElement]) *Path {
	p := NewPath()
	for el := range elements {
		switch el.Kind {
		case curve.MoveToKind:
			p.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			p.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			p.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			p.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			p.Close()
		}
	}
	return p
}

// FromShape builds a Path from any curve.Shape. tolerance bounds the
// error of non-Bezier primitives (arcs, ellipses) when the shape lowers
// itself to path elements.
func FromShape(shape curve.Shape, tolerance float64) *Path {
	return FromPathElements(shape.PathElements(tolerance))
}
