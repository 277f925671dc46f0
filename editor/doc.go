// Package editor interprets line-oriented command scripts against a
// bitmap.Canvas.
//
// Each line holds a one-letter command followed by whitespace-separated
// arguments:
//
//	I M N           create an M x N canvas (columns, rows)
//	C               clear the canvas to 'O'
//	L X Y C         paint cell (X, Y) with color C
//	V X Y1 Y2 C     paint column X from row Y1 to Y2
//	H X1 X2 Y C     paint row Y from column X1 to X2
//	F X Y C         flood-fill the region containing (X, Y)
//	S               write the canvas to the output
//
// Numeric arguments are 1..250; colors are single uppercase letters.
// Processing stops at the first failing line.
package editor
