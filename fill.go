package bitmap

import "log/slog"

// Fill recolors the 4-connected region of cells sharing the color of the
// seed cell (x, y). Filling with the seed's current color is a no-op.
//
// The traversal uses an explicit stack, never recursion. A cell is recolored
// when it is pushed, so it is pushed at most once.
func (c *Canvas) Fill(x, y int, color Color) error {
	seed, err := c.index(x, y)
	if err != nil {
		return err
	}
	if !color.Valid() {
		return &Error{Kind: KindInvalidColor, Token: color.String()}
	}
	target := c.cells[seed]
	if target == color {
		return nil
	}

	c.cells[seed] = color
	stack := []Point{Pt(x, y)}
	filled := 1
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbors4 {
			n := p.Add(d)
			if n.X < 1 || n.X > c.width || n.Y < 1 || n.Y > c.height {
				continue
			}
			i := (n.Y-1)*c.width + (n.X - 1)
			if c.cells[i] != target {
				continue
			}
			c.cells[i] = color
			stack = append(stack, n)
			filled++
		}
	}

	Logger().Debug("bitmap: flood fill",
		slog.Int("x", x), slog.Int("y", y),
		slog.String("from", target.String()), slog.String("to", color.String()),
		slog.Int("cells", filled))
	return nil
}
