package editor

import (
	"strconv"

	"github.com/gogpu/bitmap"
)

// ArgKind is the variant of a sanitized argument.
type ArgKind uint8

const (
	ArgInteger ArgKind = iota + 1
	ArgColor
)

func (k ArgKind) String() string {
	switch k {
	case ArgInteger:
		return "integer"
	case ArgColor:
		return "color"
	default:
		return "argument"
	}
}

// Argument is a typed command argument. Int is set for ArgInteger, Color
// for ArgColor; Raw keeps the source token.
type Argument struct {
	Kind  ArgKind
	Int   int
	Color bitmap.Color
	Raw   string
}

func (k ArgKind) article() string {
	if k == ArgInteger {
		return "an " + k.String()
	}
	return "a " + k.String()
}

// IntegerValue returns an integer argument.
func IntegerValue(n int) Argument {
	return Argument{Kind: ArgInteger, Int: n, Raw: strconv.Itoa(n)}
}

// ColorValue returns a color argument.
func ColorValue(c bitmap.Color) Argument {
	return Argument{Kind: ArgColor, Color: c, Raw: c.String()}
}

// maxDigits bounds numeric tokens; longer digit strings are unknown
// parameters rather than out-of-range integers.
const maxDigits = 3

// ParseArgument classifies tok. A single uppercase letter is a color; one
// to three decimal digits is an integer that must lie in 1..250; anything
// else is an unknown parameter.
func ParseArgument(tok string) (Argument, error) {
	if c, ok := bitmap.ParseColor(tok); ok {
		return Argument{Kind: ArgColor, Color: c, Raw: tok}, nil
	}
	if !isShortDecimal(tok) {
		return Argument{}, &bitmap.Error{Kind: bitmap.KindUnknownParameter, Token: tok}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return Argument{}, &bitmap.Error{Kind: bitmap.KindUnknownParameter, Token: tok}
	}
	if n < bitmap.MinDimension || n > bitmap.MaxDimension {
		return Argument{}, &bitmap.Error{Kind: bitmap.KindOutOfRange, Token: strconv.Itoa(n)}
	}
	return Argument{Kind: ArgInteger, Int: n, Raw: tok}, nil
}

// ParseArguments sanitizes every token, stopping at the first failure.
func ParseArguments(tokens []string) ([]Argument, error) {
	args := make([]Argument, 0, len(tokens))
	for _, tok := range tokens {
		a, err := ParseArgument(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func isShortDecimal(s string) bool {
	if len(s) == 0 || len(s) > maxDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
