package editor

import "github.com/gogpu/bitmap"

// Command is one of Create, Clear, Paint, VerticalLine, HorizontalLine,
// FloodFill or Show.
type Command interface {
	// Name returns the command token.
	Name() string
}

// Create makes an M-column, N-row canvas.
type Create struct{ M, N int }

// Clear resets the canvas to the background color.
type Clear struct{}

// Paint colors a single cell.
type Paint struct {
	X, Y  int
	Color bitmap.Color
}

// VerticalLine colors column X from row Y1 to Y2.
type VerticalLine struct {
	X, Y1, Y2 int
	Color     bitmap.Color
}

// HorizontalLine colors row Y from column X1 to X2.
type HorizontalLine struct {
	X1, X2, Y int
	Color     bitmap.Color
}

// FloodFill recolors the region containing (X, Y).
type FloodFill struct {
	X, Y  int
	Color bitmap.Color
}

// Show writes the rendered canvas to the output.
type Show struct{}

func (Create) Name() string         { return "I" }
func (Clear) Name() string          { return "C" }
func (Paint) Name() string          { return "L" }
func (VerticalLine) Name() string   { return "V" }
func (HorizontalLine) Name() string { return "H" }
func (FloodFill) Name() string      { return "F" }
func (Show) Name() string           { return "S" }

// signature is the fixed argument shape of a command token.
type signature struct {
	roles []ArgKind
	build func(a []Argument) Command
}

var (
	ii   = []ArgKind{ArgInteger, ArgInteger}
	iic  = []ArgKind{ArgInteger, ArgInteger, ArgColor}
	iiic = []ArgKind{ArgInteger, ArgInteger, ArgInteger, ArgColor}
)

var commands = map[string]signature{
	"I": {ii, func(a []Argument) Command { return Create{M: a[0].Int, N: a[1].Int} }},
	"C": {nil, func([]Argument) Command { return Clear{} }},
	"L": {iic, func(a []Argument) Command { return Paint{X: a[0].Int, Y: a[1].Int, Color: a[2].Color} }},
	"V": {iiic, func(a []Argument) Command {
		return VerticalLine{X: a[0].Int, Y1: a[1].Int, Y2: a[2].Int, Color: a[3].Color}
	}},
	"H": {iiic, func(a []Argument) Command {
		return HorizontalLine{X1: a[0].Int, X2: a[1].Int, Y: a[2].Int, Color: a[3].Color}
	}},
	"F": {iic, func(a []Argument) Command { return FloodFill{X: a[0].Int, Y: a[1].Int, Color: a[2].Color} }},
	"S": {nil, func([]Argument) Command { return Show{} }},
}

// lookup returns the signature for name or an UnrecognizedCommand error.
func lookup(name string) (signature, error) {
	sig, ok := commands[name]
	if !ok {
		return signature{}, &bitmap.Error{Kind: bitmap.KindUnrecognizedCommand, Command: name}
	}
	return sig, nil
}

// bind checks arity and argument variants and builds the command.
func (s signature) bind(name string, args []Argument) (Command, error) {
	if len(args) != len(s.roles) {
		return nil, &bitmap.Error{
			Kind:     bitmap.KindArity,
			Command:  name,
			Given:    len(args),
			Expected: len(s.roles),
		}
	}
	for i, want := range s.roles {
		if args[i].Kind != want {
			return nil, &bitmap.Error{
				Kind:     bitmap.KindArgumentType,
				Command:  name,
				Token:    args[i].Raw,
				Position: i + 1,
				Want:     want.article(),
			}
		}
	}
	return s.build(args), nil
}

// Bind validates name and args without touching any canvas state.
func Bind(name string, args []Argument) (Command, error) {
	sig, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return sig.bind(name, args)
}
