package jsonparser

import (
	"regexp"
	"strings"
)

// ValueResult is the outcome of a value sub-parser: the amended text for
// the trailing value, and whether the literal was fully terminated in the
// input. Numbers are never reported complete; a digit stream may always
// continue, so a matched number is only a valid truncation point.
type ValueResult struct {
	Amended    string
	IsComplete bool
}

// The sub-parsers share one signature: they recognize any nonempty prefix
// of their literal in the fragment (after optional whitespace) and report
// how to finish it, or report no match. They are plain functions; the
// amender tries them in a fixed order.

const whitespace = " \t\r\n"

func skipSpace(s string) string {
	return strings.TrimLeft(s, whitespace)
}

// keyword table per literal; the minimum recognizable prefix length is 1
// except for -Infinity, where a bare "-" could still become a number.
func parseKeyword(fragment, keyword string, minPrefix int) (ValueResult, bool) {
	frag := skipSpace(fragment)
	trimmed := strings.TrimRight(frag, whitespace)
	if trimmed == keyword {
		return ValueResult{Amended: keyword, IsComplete: true}, true
	}
	// a partial keyword cannot carry trailing whitespace; "tr " is dead
	if trimmed != frag {
		return ValueResult{}, false
	}
	if len(frag) >= minPrefix && len(frag) < len(keyword) && strings.HasPrefix(keyword, frag) {
		return ValueResult{Amended: keyword, IsComplete: false}, true
	}
	return ValueResult{}, false
}

func parseBool(fragment string) (ValueResult, bool) {
	if res, ok := parseKeyword(fragment, "true", 1); ok {
		return res, ok
	}
	return parseKeyword(fragment, "false", 1)
}

func parseNull(fragment string) (ValueResult, bool) {
	return parseKeyword(fragment, "null", 1)
}

func parseNaN(fragment string) (ValueResult, bool) {
	return parseKeyword(fragment, "NaN", 1)
}

func parseInfinity(fragment string) (ValueResult, bool) {
	return parseKeyword(fragment, "Infinity", 1)
}

func parseNegInfinity(fragment string) (ValueResult, bool) {
	return parseKeyword(fragment, "-Infinity", 2)
}

var (
	numberBaseRegexp = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?`)
	exponentRegexp   = regexp.MustCompile(`^[eE][+-]?[0-9]+`)
)

// parseNumber consumes a maximal base (sign, digits, optional fraction),
// then deals with what dangles behind it: a lone decimal point is dropped,
// a well-formed exponent is kept, an exponent cut off before its digits is
// dropped. Anything else after the base is no match; whether a number is
// legal at this position at all is the amender's problem, not ours.
func parseNumber(fragment string) (ValueResult, bool) {
	frag := skipSpace(fragment)
	loc := numberBaseRegexp.FindStringIndex(frag)
	if loc == nil {
		return ValueResult{}, false
	}
	base, rest := frag[:loc[1]], frag[loc[1]:]

	switch {
	case skipSpace(rest) == "":
		return ValueResult{Amended: base}, true
	case rest[0] == '.':
		// dangling decimal point ("12."); the base regexp already took any
		// fraction that had digits, so this dot has none
		if skipSpace(rest[1:]) == "" {
			return ValueResult{Amended: base}, true
		}
		return ValueResult{}, false
	case rest[0] == 'e' || rest[0] == 'E':
		if eloc := exponentRegexp.FindStringIndex(rest); eloc != nil {
			if skipSpace(rest[eloc[1]:]) == "" {
				return ValueResult{Amended: base + rest[:eloc[1]]}, true
			}
			return ValueResult{}, false
		}
		// exponent cut off before its digits ("1e", "1e-"): drop it
		tail := rest[1:]
		if tail != "" && (tail[0] == '+' || tail[0] == '-') {
			tail = tail[1:]
		}
		if skipSpace(tail) == "" {
			return ValueResult{Amended: base}, true
		}
		return ValueResult{}, false
	}
	return ValueResult{}, false
}

// parseString walks the fragment with the same escape machine the scanner
// uses. A closing unescaped quote makes the string complete; otherwise the
// fragment is amended with a synthetic closing quote, truncated back to the
// most recent backslash if an escape was still pending there.
func parseString(fragment string) (ValueResult, bool) {
	frag := skipSpace(fragment)
	if !strings.HasPrefix(frag, `"`) {
		return ValueResult{}, false
	}

	var esc escapeCount
	lastEscape := -1
	for i, r := range frag {
		if i == 0 {
			continue
		}
		ct, err := esc.input(r)
		if err != nil {
			return ValueResult{}, false
		}
		switch ct {
		case QuoteChar:
			if skipSpace(frag[i+1:]) != "" {
				// terminated string followed by junk; not ours to repair
				return ValueResult{}, false
			}
			return ValueResult{Amended: frag[:i+1], IsComplete: true}, true
		case EscapeChar:
			lastEscape = i
		}
	}

	if esc.cnt == 1 {
		return ValueResult{Amended: frag[:lastEscape] + `"`}, true
	}
	return ValueResult{Amended: frag + `"`}, true
}
