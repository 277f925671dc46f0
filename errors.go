package bitmap

import "fmt"

// Kind classifies every failure the canvas and the command interpreter can
// report.
type Kind uint8

const (
	KindUnrecognizedCommand Kind = iota + 1
	KindArity
	KindOutOfRange
	KindUnknownParameter
	KindNoImage
	KindDuplicateImage
	KindInvalidCoordinate
	KindInvalidSegment
	KindArgumentType
	KindInvalidColor
)

var kindNames = map[Kind]string{
	KindUnrecognizedCommand: "UnrecognizedCommand",
	KindArity:               "ArityError",
	KindOutOfRange:          "OutOfRange",
	KindUnknownParameter:    "UnknownParameter",
	KindNoImage:             "NoImage",
	KindDuplicateImage:      "DuplicateImage",
	KindInvalidCoordinate:   "InvalidCoordinate",
	KindInvalidSegment:      "InvalidSegment",
	KindArgumentType:        "ArgumentType",
	KindInvalidColor:        "InvalidColor",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Axis names the coordinate that failed a bounds check.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisColumn
	AxisRow
)

func (a Axis) String() string {
	switch a {
	case AxisColumn:
		return "column"
	case AxisRow:
		return "row"
	default:
		return ""
	}
}

// Error is the structured failure returned by Canvas and editor operations.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	// Command is the command token (UnrecognizedCommand, Arity, NoImage,
	// ArgumentType).
	Command string
	// Token is the offending literal (OutOfRange, UnknownParameter,
	// ArgumentType, InvalidColor).
	Token string

	Given    int
	Expected int
	// Position is the 1-based argument index for ArgumentType.
	Position int
	// Want describes the argument expected for ArgumentType, e.g. "a color".
	Want string

	Axis Axis
}

// Sentinel values for errors.Is. They match any *Error of the same Kind.
var (
	ErrUnrecognizedCommand = &Error{Kind: KindUnrecognizedCommand}
	ErrArity               = &Error{Kind: KindArity}
	ErrOutOfRange          = &Error{Kind: KindOutOfRange}
	ErrUnknownParameter    = &Error{Kind: KindUnknownParameter}
	ErrNoImage             = &Error{Kind: KindNoImage}
	ErrDuplicateImage      = &Error{Kind: KindDuplicateImage}
	ErrInvalidCoordinate   = &Error{Kind: KindInvalidCoordinate}
	ErrInvalidSegment      = &Error{Kind: KindInvalidSegment}
	ErrArgumentType        = &Error{Kind: KindArgumentType}
	ErrInvalidColor        = &Error{Kind: KindInvalidColor}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnrecognizedCommand:
		return fmt.Sprintf("unrecognized command '%s'", e.Command)
	case KindArity:
		return fmt.Sprintf("wrong number of arguments for command '%s' (given %d, expected %d)",
			e.Command, e.Given, e.Expected)
	case KindOutOfRange:
		return fmt.Sprintf("integer '%s' out of bounds", e.Token)
	case KindUnknownParameter:
		return fmt.Sprintf("parameter unknown: '%s'", e.Token)
	case KindNoImage:
		return fmt.Sprintf("can not execute command '%s' if there is no image created first", e.Command)
	case KindDuplicateImage:
		return "image already created"
	case KindInvalidCoordinate:
		if e.Axis == AxisNone {
			return "invalid coordinate"
		}
		return "invalid " + e.Axis.String()
	case KindInvalidSegment:
		return "invalid segment"
	case KindArgumentType:
		return fmt.Sprintf("argument %d of command '%s' must be %s, got '%s'",
			e.Position, e.Command, e.Want, e.Token)
	case KindInvalidColor:
		return fmt.Sprintf("invalid color '%s'", e.Token)
	default:
		return "bitmap: " + e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func invalidColumn() error { return &Error{Kind: KindInvalidCoordinate, Axis: AxisColumn} }

func invalidRow() error { return &Error{Kind: KindInvalidCoordinate, Axis: AxisRow} }
