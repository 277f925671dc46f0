package editor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/bitmap"
)

// attach installs a canvas directly, bypassing Create. A nil canvas gets a
// 2x2 canvas with (1, 1) painted R.
func attach(t *testing.T, in *Interpreter, c *bitmap.Canvas) *bitmap.Canvas {
	t.Helper()
	if c == nil {
		c = newCanvas(t, 2, 2)
		if err := c.Set(1, 1, 'R'); err != nil {
			t.Fatal(err)
		}
	}
	in.canvas = c
	return c
}

func newCanvas(t *testing.T, m, n int) *bitmap.Canvas {
	t.Helper()
	c, err := bitmap.New(m, n)
	if err != nil {
		t.Fatalf("bitmap.New(%d, %d) = %v", m, n, err)
	}
	return c
}

// mustExecute fails the test if the command is rejected.
func mustExecute(t *testing.T, in *Interpreter, name string, args ...string) {
	t.Helper()
	if err := in.Execute(name, args); err != nil {
		t.Fatalf("Execute(%s %v) = %v", name, args, err)
	}
}

// wantError checks err against a kind sentinel and an exact message.
func wantError(t *testing.T, err, kind error, msg string) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Errorf("err = %v, want %v", err, kind)
		return
	}
	if err.Error() != msg {
		t.Errorf("message = %q, want %q", err.Error(), msg)
	}
}

func TestExecuteCreate(t *testing.T) {
	in := New(nil)
	if in.Initialized() {
		t.Fatal("new interpreter reports Initialized")
	}

	mustExecute(t, in, "I", "3", "3")
	if !in.Initialized() {
		t.Fatal("Initialized() = false after Create")
	}
	if in.canvas.Width() != 3 || in.canvas.Height() != 3 {
		t.Errorf("canvas = %dx%d, want 3x3", in.canvas.Width(), in.canvas.Height())
	}
}

func TestExecuteCreateTwice(t *testing.T) {
	in := New(nil)
	mustExecute(t, in, "I", "5", "5")

	wantError(t, in.Execute("I", []string{"3", "3"}), bitmap.ErrDuplicateImage, "image already created")
	if in.canvas.Width() != 5 {
		t.Errorf("second Create replaced the canvas: width %d", in.canvas.Width())
	}
}

func TestExecuteDuplicateBeforeArity(t *testing.T) {
	in := New(nil)
	attach(t, in, nil)
	if err := in.Execute("I", nil); !errors.Is(err, bitmap.ErrDuplicateImage) {
		t.Errorf("Execute(I) = %v, want DuplicateImage", err)
	}
}

func TestExecuteArity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"I", nil, "wrong number of arguments for command 'I' (given 0, expected 2)"},
		{"C", []string{"1"}, "wrong number of arguments for command 'C' (given 1, expected 0)"},
		{"L", nil, "wrong number of arguments for command 'L' (given 0, expected 3)"},
		{"V", nil, "wrong number of arguments for command 'V' (given 0, expected 4)"},
		{"H", nil, "wrong number of arguments for command 'H' (given 0, expected 4)"},
		{"F", []string{"1"}, "wrong number of arguments for command 'F' (given 1, expected 3)"},
		{"S", []string{"1"}, "wrong number of arguments for command 'S' (given 1, expected 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(nil)
			if tt.name != "I" {
				attach(t, in, nil)
			}
			wantError(t, in.Execute(tt.name, tt.args), bitmap.ErrArity, tt.msg)
		})
	}
}

func TestExecuteNoImage(t *testing.T) {
	for _, name := range []string{"C", "L", "V", "H", "F", "S"} {
		t.Run(name, func(t *testing.T) {
			in := New(nil)
			wantError(t, in.Execute(name, nil), bitmap.ErrNoImage,
				"can not execute command '"+name+"' if there is no image created first")
			if in.Initialized() {
				t.Error("failed command initialized the interpreter")
			}
		})
	}
}

func TestExecuteDrawing(t *testing.T) {
	tests := []struct {
		name  string
		m, n  int
		lines [][]string
		want  string
	}{
		{"clear", 2, 2, [][]string{{"L", "1", "1", "R"}, {"C"}}, "OO\nOO\n"},
		{"paint", 2, 2, [][]string{{"L", "1", "2", "G"}}, "OO\nGO\n"},
		{
			"vertical", 4, 4,
			[][]string{{"V", "1", "2", "4", "Z"}, {"V", "3", "3", "4", "E"}},
			"OOOO\nZOOO\nZOEO\nZOEO\n",
		},
		{
			"horizontal", 4, 4,
			[][]string{{"H", "1", "2", "4", "Z"}, {"H", "2", "4", "2", "E"}},
			"OOOO\nOEEE\nOOOO\nZZOO\n",
		},
		{
			"flood fill", 3, 3,
			[][]string{{"V", "2", "1", "3", "X"}, {"F", "1", "1", "B"}},
			"BXO\nBXO\nBXO\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(nil)
			c := attach(t, in, newCanvas(t, tt.m, tt.n))
			for _, line := range tt.lines {
				mustExecute(t, in, line[0], line[1:]...)
			}
			if got := c.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecuteShow(t *testing.T) {
	var out bytes.Buffer
	in := New(&out)
	c := newCanvas(t, 4, 4)
	for i := 1; i <= 4; i++ {
		if err := c.Set(i, i, 'D'); err != nil {
			t.Fatal(err)
		}
	}
	attach(t, in, c)

	mustExecute(t, in, "S")
	want := "DOOO\nODOO\nOODO\nOOOD\n"
	if out.String() != want {
		t.Errorf("Show output = %q, want %q", out.String(), want)
	}
	if c.Render() != want {
		t.Errorf("Show changed the canvas: %q", c.Render())
	}
}

func TestExecuteUnrecognized(t *testing.T) {
	wantError(t, New(nil).Execute("W", nil), bitmap.ErrUnrecognizedCommand, "unrecognized command 'W'")
}

func TestExecuteSanitizesBeforeDispatch(t *testing.T) {
	in := New(nil)
	wantError(t, in.Execute("I", []string{"0", "12"}), bitmap.ErrOutOfRange, "integer '0' out of bounds")
	wantError(t, in.Execute("I", []string{"251", "12"}), bitmap.ErrOutOfRange, "integer '251' out of bounds")
	if in.Initialized() {
		t.Fatal("rejected Create initialized the interpreter")
	}

	attach(t, in, nil)
	wantError(t, in.Execute("L", []string{"2", "1", "a"}), bitmap.ErrUnknownParameter, "parameter unknown: 'a'")
	wantError(t, in.Execute("L", []string{"2", "1", "RR"}), bitmap.ErrUnknownParameter, "parameter unknown: 'RR'")
}

func TestExecuteCanvasErrorsPropagate(t *testing.T) {
	in := New(nil)
	mustExecute(t, in, "I", "2", "3")

	tests := []struct {
		line []string
		kind error
		msg  string
	}{
		{[]string{"L", "3", "1", "A"}, bitmap.ErrInvalidCoordinate, "invalid column"},
		{[]string{"L", "1", "4", "A"}, bitmap.ErrInvalidCoordinate, "invalid row"},
		{[]string{"V", "1", "3", "2", "A"}, bitmap.ErrInvalidSegment, "invalid segment"},
		{[]string{"H", "2", "1", "1", "A"}, bitmap.ErrInvalidSegment, "invalid segment"},
		{[]string{"F", "9", "1", "A"}, bitmap.ErrInvalidCoordinate, "invalid column"},
	}
	for _, tt := range tests {
		wantError(t, in.Execute(tt.line[0], tt.line[1:]), tt.kind, tt.msg)
	}
}

func TestApply(t *testing.T) {
	var out bytes.Buffer
	in := New(&out)

	if err := in.Apply(Show{}); !errors.Is(err, bitmap.ErrNoImage) {
		t.Errorf("Apply(Show) before Create = %v, want NoImage", err)
	}
	for _, cmd := range []Command{Create{M: 2, N: 1}, Paint{X: 2, Y: 1, Color: 'P'}, Show{}} {
		if err := in.Apply(cmd); err != nil {
			t.Fatalf("Apply(%#v) = %v", cmd, err)
		}
	}
	if out.String() != "OP\n" {
		t.Errorf("output = %q, want %q", out.String(), "OP\n")
	}
	if err := in.Apply(Create{M: 1, N: 1}); !errors.Is(err, bitmap.ErrDuplicateImage) {
		t.Errorf("second Apply(Create) = %v, want DuplicateImage", err)
	}
}
