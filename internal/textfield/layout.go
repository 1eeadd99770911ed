package textfield

// Point is a position in the host's coordinate space (pixels, or terminal
// cells for the tcell host).
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box in the host's coordinate space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Measurer is the host's text measurement capability. It returns the x of
// every codepoint boundary of text relative to the text origin, so the
// result has one more element than text has codepoints.
type Measurer interface {
	Measure(text string) (edges []float64, lineHeight float64)
}

// Layout is a snapshot of measured glyph positions for one revision of the
// content. It is a cache: once the model moves past Revision it is stale and
// results computed from it are best effort.
type Layout struct {
	// Bounds is the widget's last known box.
	Bounds Rect
	// Origin is where offset 0 sits; it differs from Bounds when the host
	// scrolls or pads the text.
	Origin Point
	// Edges[i] is the x of the boundary before codepoint i, relative to
	// Origin.X.
	Edges      []float64
	LineHeight float64
	Revision   uint64
}

// NewLayout measures text with m and records it as revision rev.
func NewLayout(m Measurer, text string, rev uint64, bounds Rect, origin Point) *Layout {
	edges, lh := m.Measure(text)
	if len(edges) == 0 {
		edges = []float64{0}
	}
	return &Layout{
		Bounds:     bounds,
		Origin:     origin,
		Edges:      edges,
		LineHeight: lh,
		Revision:   rev,
	}
}

// Len is the number of codepoints the layout was measured for.
func (l *Layout) Len() int {
	if l == nil || len(l.Edges) == 0 {
		return 0
	}
	return len(l.Edges) - 1
}

// Width is the measured advance of the whole text.
func (l *Layout) Width() float64 {
	if l == nil || len(l.Edges) == 0 {
		return 0
	}
	return l.Edges[len(l.Edges)-1]
}

// X returns the absolute x of the boundary before offset.
func (l *Layout) X(offset int) float64 {
	if l == nil || len(l.Edges) == 0 {
		return 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(l.Edges) {
		offset = len(l.Edges) - 1
	}
	return l.Origin.X + l.Edges[offset]
}

// Box returns the bounding box of codepoint i.
func (l *Layout) Box(i int) Rect {
	x0 := l.X(i)
	x1 := l.X(i + 1)
	return Rect{X: x0, Y: l.Origin.Y, W: x1 - x0, H: l.LineHeight}
}

// Span returns the box covering offsets [r.Start, r.End).
func (l *Layout) Span(r Range) Rect {
	x0 := l.X(r.Start)
	x1 := l.X(r.End)
	return Rect{X: x0, Y: l.Origin.Y, W: x1 - x0, H: l.LineHeight}
}

// OffsetAt maps p to the nearest codepoint boundary. Points above the bounds
// map to 0 and points below to the end. On an exact midpoint between two
// boundaries the left one wins.
func (l *Layout) OffsetAt(p Point) int {
	n := l.Len()
	if l == nil || n == 0 {
		return 0
	}
	if l.Bounds.H > 0 {
		if p.Y < l.Bounds.Y {
			return 0
		}
		if p.Y >= l.Bounds.Bottom() {
			return n
		}
	}
	x := p.X - l.Origin.X
	if x <= l.Edges[0] {
		return 0
	}
	if x >= l.Edges[n] {
		return n
	}
	lo, hi := 0, n
	// smallest i with Edges[i] > x
	for lo < hi {
		mid := (lo + hi) / 2
		if l.Edges[mid] > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	right := lo
	left := right - 1
	if x-l.Edges[left] <= l.Edges[right]-x {
		return left
	}
	return right
}
