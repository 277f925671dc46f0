package bitmap

import (
	"io"
	"strconv"
	"strings"
)

// Dimension limits for New. Both bounds are inclusive.
const (
	MinDimension = 1
	MaxDimension = 250
)

// Canvas is a fixed-size grid of color cells addressed by 1-based
// (column, row) coordinates.
type Canvas struct {
	width  int
	height int
	cells  []Color // row-major, len = width*height
}

// New creates a canvas with m columns and n rows, every cell Background.
func New(m, n int) (*Canvas, error) {
	if m < MinDimension || m > MaxDimension {
		return nil, &Error{Kind: KindOutOfRange, Token: strconv.Itoa(m)}
	}
	if n < MinDimension || n > MaxDimension {
		return nil, &Error{Kind: KindOutOfRange, Token: strconv.Itoa(n)}
	}
	c := &Canvas{
		width:  m,
		height: n,
		cells:  make([]Color, m*n),
	}
	c.Clear()
	return c, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// index validates (x, y) and returns its cell offset. The column is
// checked before the row.
func (c *Canvas) index(x, y int) (int, error) {
	if x < 1 || x > c.width {
		return 0, invalidColumn()
	}
	if y < 1 || y > c.height {
		return 0, invalidRow()
	}
	return (y-1)*c.width + (x - 1), nil
}

// Get returns the color at column x, row y.
func (c *Canvas) Get(x, y int) (Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return 0, err
	}
	return c.cells[i], nil
}

// Set paints the cell at column x, row y.
func (c *Canvas) Set(x, y int, color Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	if !color.Valid() {
		return &Error{Kind: KindInvalidColor, Token: color.String()}
	}
	c.cells[i] = color
	return nil
}

// Clear resets every cell to Background.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Background
	}
}

// Render returns the canvas as Height lines of Width colors, each line
// newline-terminated, rows top to bottom.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height)
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for _, color := range row {
			sb.WriteByte(byte(color))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (c *Canvas) String() string {
	return c.Render()
}

// WriteTo implements io.WriterTo by writing Render to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Render())
	return int64(n), err
}
