package jsonparser

import (
	"fmt"
	"strings"
)

// RunState tracks the outcome of a single scan pass over a prefix.
type RunState int

const (
	FreshState RunState = iota + 1
	SuccessState
	ErrorState
)

func (rs RunState) GoString() string {
	return runStateToDescription[rs]
}

func (rs RunState) String() string {
	return runStateToDescription[rs]
}

func init() {
	// make sure we panic if a description isn't declared
	for rs := FreshState; rs <= ErrorState; rs++ {
		if runStateToDescription[rs] == "" {
			panic("you have not updated runStateToDescription")
		}
	}
}

var runStateToDescription = map[RunState]string{
	FreshState:   "FreshState",
	SuccessState: "SuccessState",
	ErrorState:   "ErrorState",
}

// Container is one entry on the scanner's container stack: the byte offset
// of an opener that has not been matched yet, and which opener it is
// (LeftBracketChar or LeftBraceChar). Entries reference the input by offset
// only; the stack holds no substrings.
type Container struct {
	Offset int
	Kind   CharType
}

// escapeCount is the in-string escape sub-machine. cnt is 0 or 1: a value
// of 1 means a backslash is pending and the next character decides whether
// the escape is legal. Within \uXXXX, uHexSeen counts the hex digits
// consumed so far (0..3); the fourth digit resets the whole machine.
type escapeCount struct {
	cnt      int
	uMode    bool
	uHexSeen int
}

func (e *escapeCount) input(r rune) (CharType, *Error) {
	if e.cnt == 0 {
		switch r {
		case '\\':
			e.cnt = 1
			return EscapeChar, nil
		case '"':
			return QuoteChar, nil
		default:
			return SpecialChar, nil
		}
	}

	// a backslash is pending
	switch {
	case !e.uMode && r == 'u':
		e.uMode = true
		return SpecialChar, nil
	case !e.uMode && strings.ContainsRune(`"\/bfnrt`, r):
		e.cnt = 0
		return NormalChar, nil
	case e.uMode && e.uHexSeen < 3 && isHexDigit(r):
		e.uHexSeen++
		return SpecialChar, nil
	case e.uMode && e.uHexSeen == 3 && isHexDigit(r):
		e.cnt = 0
		e.uMode = false
		e.uHexSeen = 0
		return NormalChar, nil
	}
	return 0, &Error{Kind: IllegalEscapeError, Message: fmt.Sprintf("illegal escape character %q", r)}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Scanner makes a single pass over a JSON(5) prefix, maintaining the
// container stack and the offsets of the most recent comma, colon and
// closing delimiter seen outside of strings. It never rewinds; after Scan
// it is handed to Amend, which consumes it.
type Scanner struct {
	src string

	stack []Container
	inStr bool
	esc   escapeCount

	lastComma int
	lastColon int
	lastClose int

	state RunState
	err   *Error
}

func NewScanner(input string) *Scanner {
	return &Scanner{
		src:       input,
		lastComma: -1,
		lastColon: -1,
		lastClose: -1,
		state:     FreshState,
	}
}

// Report is a snapshot of the scanner after a pass, for tests and
// debugging output.
type Report struct {
	State     RunState
	Stack     []Container
	LastComma int
	LastColon int
	LastClose int
	Err       *Error
}

func (s *Scanner) Report() Report {
	stack := make([]Container, len(s.stack))
	copy(stack, s.stack)
	return Report{
		State:     s.state,
		Stack:     stack,
		LastComma: s.lastComma,
		LastColon: s.lastColon,
		LastClose: s.lastClose,
		Err:       s.err,
	}
}

func (s *Scanner) State() RunState {
	return s.state
}

// Scan consumes the whole input and returns the resulting run state.
// It can only run once per Scanner.
func (s *Scanner) Scan() RunState {
	if s.state != FreshState {
		panic("Scan called twice on the same Scanner")
	}

	for offset, r := range s.src {
		ct, err := s.classify(r)
		if err != nil {
			err.Offset = offset
			s.state = ErrorState
			s.err = err
			return s.state
		}

		switch ct {
		case LeftBracketChar, LeftBraceChar:
			s.stack = append(s.stack, Container{Offset: offset, Kind: ct})
		case RightBracketChar, RightBraceChar:
			s.lastClose = offset
			if !s.popMatching(ct) {
				s.state = ErrorState
				s.err = &Error{
					Kind:    StructuralMismatchError,
					Offset:  offset,
					Message: fmt.Sprintf("unmatched %q", r),
				}
				return s.state
			}
		case CommaChar:
			s.lastComma = offset
		case ColonChar:
			s.lastColon = offset
		}
	}

	s.state = SuccessState
	return s.state
}

// classify maps one character to its category. Inside a string the escape
// sub-machine decides; a quote it reports while no escape is pending ends
// the string.
func (s *Scanner) classify(r rune) (CharType, *Error) {
	if s.inStr {
		ct, err := s.esc.input(r)
		if err != nil {
			return 0, err
		}
		if ct == QuoteChar {
			s.inStr = false
		}
		return ct, nil
	}

	switch r {
	case ':':
		return ColonChar, nil
	case ',':
		return CommaChar, nil
	case '"':
		s.inStr = true
		s.esc = escapeCount{}
		return QuoteChar, nil
	case '[':
		return LeftBracketChar, nil
	case ']':
		return RightBracketChar, nil
	case '{':
		return LeftBraceChar, nil
	case '}':
		return RightBraceChar, nil
	default:
		return NormalChar, nil
	}
}

func (s *Scanner) popMatching(closer CharType) bool {
	if len(s.stack) == 0 {
		return false
	}
	opener := LeftBracketChar
	if closer == RightBraceChar {
		opener = LeftBraceChar
	}
	if s.stack[len(s.stack)-1].Kind != opener {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return true
}

// openerBefore returns the innermost surviving opener strictly before the
// given offset. That opener is the container the position belongs to.
func (s *Scanner) openerBefore(offset int) (Container, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].Offset < offset {
			return s.stack[i], true
		}
	}
	return Container{}, false
}
