package jsontest

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusIsDeterministicAndValid(t *testing.T) {
	a := Corpus(7, 50)
	b := Corpus(7, 50)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different corpora (-a +b):\n%s", diff)
	}
	for _, doc := range a {
		require.True(t, Valid(doc), "generated invalid document %q", doc)
	}
}

func TestPrefixes(t *testing.T) {
	doc := `{"é": 1}`
	prefixes := Prefixes(doc)
	assert.Len(t, prefixes, utf8.RuneCountInString(doc))
	assert.Equal(t, doc, prefixes[len(prefixes)-1])
	for _, p := range prefixes {
		assert.True(t, utf8.ValidString(p))
	}
}
