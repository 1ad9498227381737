package jsonparser

import "fmt"

// ErrorKind is the coarse classification of the errors that escape this
// package. Value sub-parser failures never surface; they are consumed by
// the amender when it chooses between synthesis, truncation and fallback.
type ErrorKind int

const (
	EmptyInputError ErrorKind = iota + 1

	// StructuralMismatchError is raised by the scanner when a right
	// delimiter has no matching opener on the stack; no completion of the
	// prefix can be a valid document.
	StructuralMismatchError

	// IllegalEscapeError is raised inside a string when a backslash is
	// followed by a character outside the escape set, including a \uXXXX
	// sequence cut short by a non-hex character.
	IllegalEscapeError

	UnamendableError
)

func (k ErrorKind) GoString() string {
	return errorKindToDescription[k]
}

func (k ErrorKind) String() string {
	return errorKindToDescription[k]
}

func init() {
	// make sure we panic if a description isn't declared
	for k := EmptyInputError; k <= UnamendableError; k++ {
		if errorKindToDescription[k] == "" {
			panic("you have not updated errorKindToDescription")
		}
	}
}

var errorKindToDescription = map[ErrorKind]string{
	EmptyInputError:         "EmptyInputError",
	StructuralMismatchError: "StructuralMismatchError",
	IllegalEscapeError:      "IllegalEscapeError",
	UnamendableError:        "UnamendableError",
}

// Error is the single error type returned to callers. Offset is a byte
// offset into the input, or -1 when the error is not tied to a position.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return e.Message
	}
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}
