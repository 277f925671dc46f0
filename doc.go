// Package bitmap provides a small raster canvas of single-letter color
// codes.
//
// # Overview
//
// A Canvas is an M x N grid (each dimension 1..250) where every cell holds
// one uppercase letter. 'O' is the background color. Cells are painted one
// at a time, along vertical or horizontal spans, or by flood-filling a
// 4-connected region, and the whole grid renders to plain text.
//
// # Quick Start
//
//	c, err := bitmap.New(5, 6)
//	if err != nil {
//		return err
//	}
//	_ = c.Set(1, 3, 'A')
//	_ = c.DrawVertical(2, 3, 6, 'W')
//	_ = c.DrawHorizontal(3, 5, 2, 'Z')
//	fmt.Print(c.Render())
//
// # Coordinate System
//
//   - Cells are addressed as (column, row), both 1-based
//   - Column 1 is the left edge, row 1 the top edge
//   - Render emits rows top to bottom
//
// # Errors
//
// Every failure is a *Error carrying a Kind. Use errors.Is with the Err*
// sentinels to test for a kind, or errors.As to read the details.
//
// The editor sub-package interprets text command scripts against a Canvas.
package bitmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
