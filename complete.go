// Package partialjson completes a truncated prefix of a JSON5-compatible
// document into a syntactically valid JSON document. The typical use is
// reconstructing structured output from a streaming producer that was
// interrupted before it produced the closing delimiters.
package partialjson

import (
	"unicode/utf8"

	"github.com/promplate/partialjson/jsonparser"
)

// Complete amends prefix into a well-formed document. The settings decide
// which literal kinds may be synthesized when the prefix stops in the
// middle of a value; see jsonparser.Settings.
func Complete(prefix string, settings jsonparser.Settings) (string, error) {
	if len(prefix) == 0 {
		return "", &jsonparser.Error{
			Kind:    jsonparser.EmptyInputError,
			Offset:  -1,
			Message: "empty input",
		}
	}
	if !utf8.ValidString(prefix) {
		return "", &jsonparser.Error{
			Kind:    jsonparser.UnamendableError,
			Offset:  -1,
			Message: "input is not valid UTF-8",
		}
	}
	s := jsonparser.NewScanner(prefix)
	s.Scan()
	return jsonparser.Amend(s, settings)
}
