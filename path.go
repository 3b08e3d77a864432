package tess

// Verb identifies a path segment type in a Path's verb stream.
type Verb uint8

const (
	// VerbMoveTo starts a new contour at a point.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a line to a point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve (control, end).
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve (control1, control2, end).
	VerbCubicTo
	// VerbClose closes the current contour.
	VerbClose
)

// pointCount returns how many points the verb consumes from the point
// array.
func (v Verb) pointCount() int {
	switch v {
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	case VerbClose:
		return 0
	default:
		return 1
	}
}

// Path is a raw vector path: a verb stream plus a point array.
//
// The split representation keeps segment data dense and allocation-light,
// which matters when paths are re-triangulated every frame. Builder
// methods mirror the usual canvas API.
type Path struct {
	verbs   []Verb
	points  []Point
	start   Point // Starting point of current contour
	current Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(float32(x), float32(y))
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(float32(x), float32(y))
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Pt(float32(cx), float32(cy)), Pt(float32(x), float32(y)))
	p.current = Pt(float32(x), float32(y))
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points,
		Pt(float32(c1x), float32(c1y)),
		Pt(float32(c2x), float32(c2y)),
		Pt(float32(x), float32(y)))
	p.current = Pt(float32(x), float32(y))
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
	p.current = p.start
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
	p.current = Point{}
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []Verb { return p.verbs }

// Points returns the point array.
func (p *Path) Points() []Point { return p.points }

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point { return p.current }

// Bounds returns the control-point bounding box of the path. For curves
// this is conservative: control points may lie outside the drawn shape.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	r := Rect{
		Left: p.points[0].X, Top: p.points[0].Y,
		Right: p.points[0].X, Bottom: p.points[0].Y,
	}
	for _, pt := range p.points[1:] {
		r.ExpandToInclude(pt)
	}
	return r
}

// ContourCount returns the number of contours (one per MoveTo, plus one
// for a leading implicit contour).
func (p *Path) ContourCount() int {
	n := 0
	for i, v := range p.verbs {
		if v == VerbMoveTo || i == 0 {
			n++
		}
	}
	return n
}

// Rectangle adds an axis-aligned rectangle contour.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed contour through the given points.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float64(pt.X), float64(pt.Y))
	}
	p.Close()
}

// Circle adds a circle contour using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse contour using cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.verbs = append(result.verbs[:0], p.verbs...)
	result.points = append(result.points[:0], p.points...)
	result.start = p.start
	result.current = p.current
	return result
}

// segments iterates the path verb-by-verb, handing each segment's points
// to fn. pts is valid only for the duration of the call:
// MoveTo/LineTo get [end], QuadTo [ctrl, end], CubicTo [c1, c2, end],
// Close gets an empty slice.
func (p *Path) segments(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		fn(v, p.points[i:i+n])
		i += n
	}
}
