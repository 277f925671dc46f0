package bitmap

// Color is a single-letter color code in the range 'A'..'Z'.
type Color byte

// Background is the color every cell holds after New and Clear.
const Background Color = 'O'

// Valid reports whether c is an uppercase ASCII letter.
func (c Color) Valid() bool {
	return c >= 'A' && c <= 'Z'
}

// String returns the color as a one-character string.
func (c Color) String() string {
	return string(rune(c))
}

// ParseColor parses a token holding exactly one uppercase letter.
func ParseColor(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := Color(s[0])
	if !c.Valid() {
		return 0, false
	}
	return c, true
}
