package editor

import (
	"io"
	"log/slog"

	"github.com/gogpu/bitmap"
)

// Interpreter owns the canvas and applies commands to it. The zero canvas
// state is uninitialized; a successful Create moves it to initialized and
// it never moves back.
type Interpreter struct {
	canvas *bitmap.Canvas
	out    io.Writer
}

// New returns an uninitialized interpreter that writes Show output to out.
// A nil out discards it.
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{out: out}
}

// Initialized reports whether a canvas has been created.
func (in *Interpreter) Initialized() bool {
	return in.canvas != nil
}

// Execute sanitizes tokens, validates them against the command named by
// name and applies it. Checks run in this order: argument tokens, command
// token, canvas state, arity, argument variants.
func (in *Interpreter) Execute(name string, tokens []string) error {
	args, err := ParseArguments(tokens)
	if err != nil {
		return err
	}
	sig, err := lookup(name)
	if err != nil {
		return err
	}
	if err := in.admit(name); err != nil {
		return err
	}
	cmd, err := sig.bind(name, args)
	if err != nil {
		return err
	}
	bitmap.Logger().Debug("editor: execute", slog.String("command", name), slog.Any("args", tokens))
	return in.dispatch(cmd)
}

// Apply runs an already bound command.
func (in *Interpreter) Apply(cmd Command) error {
	if err := in.admit(cmd.Name()); err != nil {
		return err
	}
	return in.dispatch(cmd)
}

// admit enforces the state machine: Create only while uninitialized,
// everything else only once initialized.
func (in *Interpreter) admit(name string) error {
	if name == (Create{}).Name() {
		if in.canvas != nil {
			return &bitmap.Error{Kind: bitmap.KindDuplicateImage, Command: name}
		}
		return nil
	}
	if in.canvas == nil {
		return &bitmap.Error{Kind: bitmap.KindNoImage, Command: name}
	}
	return nil
}

func (in *Interpreter) dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case Create:
		canvas, err := bitmap.New(c.M, c.N)
		if err != nil {
			return err
		}
		in.canvas = canvas
		return nil
	case Clear:
		in.canvas.Clear()
		return nil
	case Paint:
		return in.canvas.Set(c.X, c.Y, c.Color)
	case VerticalLine:
		return in.canvas.DrawVertical(c.X, c.Y1, c.Y2, c.Color)
	case HorizontalLine:
		return in.canvas.DrawHorizontal(c.X1, c.X2, c.Y, c.Color)
	case FloodFill:
		return in.canvas.Fill(c.X, c.Y, c.Color)
	case Show:
		_, err := in.canvas.WriteTo(in.out)
		return err
	default:
		return &bitmap.Error{Kind: bitmap.KindUnrecognizedCommand, Command: cmd.Name()}
	}
}
