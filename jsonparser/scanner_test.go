package jsonparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promplate/partialjson/jsontest"
)

func TestScan(t *testing.T) {
	test := func(input string, expected Report) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input)
			s.Scan()
			got := s.Report()
			if expected.Stack == nil {
				expected.Stack = []Container{}
			}
			if got.Stack == nil {
				got.Stack = []Container{}
			}
			assert.Equal(t, expected, got)
		}
	}

	ok := func(stack []Container, comma, colon, close int) Report {
		return Report{State: SuccessState, Stack: stack, LastComma: comma, LastColon: colon, LastClose: close}
	}

	t.Run("", test(`[1, 2]`, ok(nil, 2, -1, 5)))
	t.Run("", test(`{"a": 1}`, ok(nil, -1, 4, 7)))
	t.Run("", test(`[{`, ok([]Container{{0, LeftBracketChar}, {1, LeftBraceChar}}, -1, -1, -1)))
	t.Run("", test(`[ {"a": [`, ok([]Container{{0, LeftBracketChar}, {2, LeftBraceChar}, {8, LeftBracketChar}}, -1, 6, -1)))
	t.Run("", test(`[[1,2],`, ok([]Container{{0, LeftBracketChar}}, 6, -1, 5)))

	// separators and brackets inside strings have no structural effect
	t.Run("", test(`["a,b:c]"`, ok([]Container{{0, LeftBracketChar}}, -1, -1, -1)))
	t.Run("", test(`{"a": "b\"`, ok([]Container{{0, LeftBraceChar}}, -1, 4, -1)))
	t.Run("", test(`"{[,:]}"`, ok(nil, -1, -1, -1)))

	// a prefix cut inside a string or escape is still a successful scan
	t.Run("", test(`"a\"b`, ok(nil, -1, -1, -1)))
	t.Run("", test(`"v\u00`, ok(nil, -1, -1, -1)))
	t.Run("", test(`["é世"]`, ok(nil, -1, -1, 8)))

	fail := func(input string, kind ErrorKind, offset int) func(*testing.T) {
		return func(t *testing.T) {
			s := NewScanner(input)
			require.Equal(t, ErrorState, s.Scan())
			report := s.Report()
			require.NotNil(t, report.Err)
			assert.Equal(t, kind, report.Err.Kind)
			assert.Equal(t, offset, report.Err.Offset)
		}
	}

	t.Run("", fail(`]`, StructuralMismatchError, 0))
	t.Run("", fail(`[}`, StructuralMismatchError, 1))
	t.Run("", fail(`[1,2]]`, StructuralMismatchError, 5))
	t.Run("", fail(`{"a": 1}}`, StructuralMismatchError, 8))

	t.Run("", fail(`"\q`, IllegalEscapeError, 2))
	t.Run("", fail(`"ab\ `, IllegalEscapeError, 4))
	t.Run("", fail(`"\u00g`, IllegalEscapeError, 5))
	t.Run("", fail(`{"k": "v\u12Z`, IllegalEscapeError, 12))
}

func TestScanOnlyRunsOnce(t *testing.T) {
	s := NewScanner(`[1]`)
	s.Scan()
	assert.Panics(t, func() { s.Scan() })
}

func TestScanRecordsLastCommaOutsideStrings(t *testing.T) {
	// none of the embedded strings contain a comma, so the last comma in
	// the text is also the last structural comma
	doc := `[1, [2, 3], {"a": 4, "b": "x"}]`
	s := NewScanner(doc)
	require.Equal(t, SuccessState, s.Scan())
	assert.Equal(t, strings.LastIndex(doc, ","), s.Report().LastComma)
}

func TestScanGeneratedDocuments(t *testing.T) {
	for _, doc := range jsontest.Corpus(1, 150) {
		s := NewScanner(doc)
		require.Equal(t, SuccessState, s.Scan(), "doc: %s", doc)
		assert.Empty(t, s.Report().Stack, "report: %s", jsontest.Dump(s.Report()))

		if doc[0] != '[' && doc[0] != '{' {
			continue
		}
		// every proper prefix of a container document is mid-container:
		// success with a nonempty stack, never an empty one
		for _, prefix := range jsontest.Prefixes(doc) {
			if prefix == doc {
				continue
			}
			ps := NewScanner(prefix)
			require.Equal(t, SuccessState, ps.Scan(), "prefix: %s", prefix)
			assert.NotEmpty(t, ps.Report().Stack, "prefix: %s", prefix)
		}
	}
}
