package bitmap

import "iter"

// Span is a contiguous run of cells along one axis, From and To inclusive.
type Span struct {
	From, To Point
}

// VerticalSpan returns the cells of column x from row y1 to row y2.
func VerticalSpan(x, y1, y2 int) Span {
	return Span{From: Pt(x, y1), To: Pt(x, y2)}
}

// HorizontalSpan returns the cells of row y from column x1 to column x2.
func HorizontalSpan(x1, x2, y int) Span {
	return Span{From: Pt(x1, y), To: Pt(x2, y)}
}

// Vertical reports whether the span runs along a column.
func (s Span) Vertical() bool {
	return s.From.X == s.To.X && s.From.Y != s.To.Y
}

// Ordered reports whether From does not come after To.
func (s Span) Ordered() bool {
	return s.From.X <= s.To.X && s.From.Y <= s.To.Y
}

// Len returns the number of cells in an ordered span, or 0.
func (s Span) Len() int {
	if !s.Ordered() {
		return 0
	}
	return (s.To.X - s.From.X) + (s.To.Y - s.From.Y) + 1
}

// Cells yields every cell of an ordered span from From to To.
func (s Span) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !s.Ordered() {
			return
		}
		step := Pt(1, 0)
		if s.Vertical() {
			step = Pt(0, 1)
		}
		for p := s.From; ; p = p.Add(step) {
			if !yield(p) || p == s.To {
				return
			}
		}
	}
}

// DrawVertical paints column x from row y1 through row y2. The bounds are
// checked in argument order, then y1 <= y2 is required.
func (c *Canvas) DrawVertical(x, y1, y2 int, color Color) error {
	if x < 1 || x > c.width {
		return invalidColumn()
	}
	if y1 < 1 || y1 > c.height || y2 < 1 || y2 > c.height {
		return invalidRow()
	}
	return c.drawSpan(VerticalSpan(x, y1, y2), color)
}

// DrawHorizontal paints row y from column x1 through column x2. The bounds
// are checked in argument order, then x1 <= x2 is required.
func (c *Canvas) DrawHorizontal(x1, x2, y int, color Color) error {
	if x1 < 1 || x1 > c.width || x2 < 1 || x2 > c.width {
		return invalidColumn()
	}
	if y < 1 || y > c.height {
		return invalidRow()
	}
	return c.drawSpan(HorizontalSpan(x1, x2, y), color)
}

func (c *Canvas) drawSpan(s Span, color Color) error {
	if !s.Ordered() {
		return &Error{Kind: KindInvalidSegment}
	}
	if !color.Valid() {
		return &Error{Kind: KindInvalidColor, Token: color.String()}
	}
	for p := range s.Cells() {
		c.cells[(p.Y-1)*c.width+(p.X-1)] = color
	}
	return nil
}
