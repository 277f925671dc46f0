package editor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/bitmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineBytes bounds a single script line.
const maxLineBytes = 1 << 20

// LineError is the first failure of a script, tagged with its 1-based line
// number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseLine splits a line on whitespace into the command token and its
// argument tokens. An empty line yields an empty name.
func ParseLine(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Run feeds every line of r to in and stops at the first failure, which is
// returned as a *LineError. Blank lines are skipped but still counted. A
// leading UTF-8 or UTF-16 byte order mark selects the input encoding;
// without one the input is read as UTF-8.
func Run(r io.Reader, in *Interpreter) error {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		name, args := ParseLine(sc.Text())
		if name == "" {
			continue
		}
		if err := in.Execute(name, args); err != nil {
			bitmap.Logger().Warn("editor: script halted",
				slog.Int("line", line), slog.String("command", name), slog.Any("error", err))
			return &LineError{Line: line, Err: err}
		}
	}
	// A scan error, such as an over-long line, belongs to the line that
	// could not be read.
	if err := sc.Err(); err != nil {
		bitmap.Logger().Warn("editor: script halted",
			slog.Int("line", line+1), slog.Any("error", err))
		return &LineError{Line: line + 1, Err: fmt.Errorf("read script: %w", err)}
	}
	return nil
}
