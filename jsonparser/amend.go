package jsonparser

import "strings"

// Amend consumes a finished scan and turns the prefix into a well-formed
// document: it picks the cut point, re-parses the trailing partial value if
// there is one, and closes whatever remains open on the stack.
//
// The cut point is the last definitely-good boundary in the prefix: the
// most recent comma, colon, or top opener, whichever comes last. The
// recover index is where we fall back to when the trailing value cannot be
// amended; for a comma that is the comma itself (so the separator is
// dropped with the value), for a colon it is the most recent comma if there
// is one and otherwise just past the opener of the enclosing container, and
// for a top opener just past the opener.
func Amend(s *Scanner, settings Settings) (string, error) {
	switch s.state {
	case FreshState:
		panic("Amend called on a Scanner that has not run")
	case ErrorState:
		return "", s.err
	}

	if len(s.stack) == 0 {
		// the prefix may already be, or amend into, a complete document
		if amended, res := cutAndAmend(s.src, 0, settings); res == cutOK {
			return amended, nil
		}
		if s.lastClose >= 0 {
			return s.src, nil
		}
		return "", &Error{Kind: UnamendableError, Offset: -1, Message: "input does not end in an amendable value"}
	}

	validIdx, recoverIdx, keyPos := s.amendIndices()

	var body string
	remaining := s.stack
	switch {
	case validIdx == len(s.src)-1:
		// the prefix stops on the boundary itself; a trailing separator
		// carries no value, so fall back to the recover index
		body = s.src[:recoverIdx]
		remaining = recoverStack(s.stack, recoverIdx)
	case s.lastClose <= validIdx:
		amended, res := "", cutNoMatch
		if !keyPos {
			// at a key position there is no colon to pair a key with, so
			// nothing may be synthesized there
			amended, res = cutAndAmend(s.src, validIdx+1, settings)
		}
		if res == cutOK {
			body = s.src[:validIdx+1] + amended
		} else {
			body = s.src[:recoverIdx]
			remaining = recoverStack(s.stack, recoverIdx)
		}
	default:
		// the prefix ends on or after a closing delimiter; keep it verbatim
		body = s.src[:s.lastClose+1]
	}

	var b strings.Builder
	b.Grow(len(body) + len(remaining))
	b.WriteString(body)
	for i := len(remaining) - 1; i >= 0; i-- {
		if remaining[i].Kind == LeftBraceChar {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	if b.Len() == 0 {
		return "", &Error{Kind: UnamendableError, Offset: -1, Message: "amendment leaves nothing of the input"}
	}
	return b.String(), nil
}

// amendIndices computes the cut point, the fallback truncation offset and
// whether the position after the cut point expects an object key. Only
// called with a nonempty stack.
func (s *Scanner) amendIndices() (validIdx, recoverIdx int, keyPos bool) {
	top := s.stack[len(s.stack)-1]
	c, m := s.lastColon, s.lastComma

	switch {
	case c > m && c > top.Offset:
		// a colon is the last boundary: value position
		validIdx = c
		if m >= 0 {
			recoverIdx = m
		} else if opener, ok := s.openerBefore(c); ok {
			recoverIdx = opener.Offset + 1
		}
	case m > c && m > top.Offset:
		// a comma is the last boundary; inside an object that puts us at a
		// key position
		validIdx, recoverIdx = m, m
		if opener, ok := s.openerBefore(m); ok && opener.Kind == LeftBraceChar {
			keyPos = true
		}
	default:
		// the top opener is the last boundary
		validIdx, recoverIdx = top.Offset, top.Offset+1
		keyPos = top.Kind == LeftBraceChar
	}
	return
}

type cutResult int

const (
	cutOK cutResult = iota
	cutPartial
	cutNoMatch
)

// cutAndAmend re-parses the tail of the input from offset as a single
// value. A match that is complete is always kept; an incomplete match is
// kept only when its kind's setting permits synthesis, and otherwise
// signals a partial match so the caller truncates. No match at all is
// reported separately; the caller treats both the same way but the
// distinction keeps the sub-parser outcomes honest.
func cutAndAmend(src string, offset int, settings Settings) (string, cutResult) {
	rest := src[offset:]
	frag := skipSpace(rest)
	if frag == "" {
		return "", cutNoMatch
	}
	ws := rest[:len(rest)-len(frag)]

	attempts := []struct {
		parse           func(string) (ValueResult, bool)
		allowIncomplete bool
	}{
		{parseBool, settings.AllowBool},
		{parseString, settings.AllowString},
		{parseNumber, settings.AllowNumber},
		{parseNaN, settings.AllowNaN},
		{parseNull, settings.AllowNull},
		{parseInfinity, settings.AllowInfinity},
		{parseNegInfinity, settings.AllowNegInfinity},
	}
	for _, a := range attempts {
		res, ok := a.parse(frag)
		if !ok {
			continue
		}
		if res.IsComplete || a.allowIncomplete {
			return ws + res.Amended, cutOK
		}
		return "", cutPartial
	}
	return "", cutNoMatch
}

// recoverStack pops every opener whose offset lies inside the discarded
// region, so closer emission only covers openers that survive in the
// amended prefix.
func recoverStack(stack []Container, idx int) []Container {
	for len(stack) > 0 && stack[len(stack)-1].Offset >= idx {
		stack = stack[:len(stack)-1]
	}
	return stack
}
