// Package jsontest holds shared fixtures for the completion tests: a
// deterministic pseudo-random document corpus, rune-safe prefix sweeps,
// and validation through a real JSON decoder.
package jsontest

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/alecthomas/repr"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Valid reports whether s parses as a single standard JSON document. This
// is the downstream validator the completion tests check amended output
// against; it goes through a full decode so that trailing garbage counts
// as invalid.
func Valid(s string) bool {
	_, err := Decode(s)
	return err == nil
}

// Decode parses s into an untyped value, failing the way the downstream
// decoder would.
func Decode(s string) (interface{}, error) {
	var v interface{}
	if err := json.UnmarshalFromString(s, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal renders a Go value as JSON text. Panics on failure; the corpus
// only contains marshalable values.
func Marshal(v interface{}) string {
	s, err := json.MarshalToString(v)
	if err != nil {
		panic(fmt.Sprintf("jsontest: marshal: %s", err))
	}
	return s
}

// Dump renders a value for failure messages.
func Dump(v interface{}) string {
	return repr.String(v)
}

// Prefixes returns every rune-boundary prefix of doc from one character up
// to and including the full document.
func Prefixes(doc string) []string {
	var result []string
	for i := range doc {
		if i == 0 {
			continue
		}
		result = append(result, doc[:i])
	}
	result = append(result, doc)
	return result
}

// Corpus generates n random JSON documents from the given seed. The same
// seed always yields the same documents, so failures reproduce.
func Corpus(seed int64, n int) []string {
	rng := rand.New(rand.NewSource(seed))
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, Marshal(randomValue(rng, 0)))
	}
	return result
}

const maxDepth = 4

func randomValue(rng *rand.Rand, depth int) interface{} {
	kind := rng.Intn(7)
	if depth >= maxDepth && kind >= 5 {
		kind = rng.Intn(5)
	}
	switch kind {
	case 0:
		return nil
	case 1:
		return rng.Intn(2) == 0
	case 2:
		switch rng.Intn(3) {
		case 0:
			return rng.Intn(2000) - 1000
		case 1:
			return float64(rng.Intn(2000)-1000) / 16
		default:
			return float64(rng.Intn(100)) * 1e-7
		}
	case 3, 4:
		return randomString(rng)
	case 5:
		n := rng.Intn(4)
		arr := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			arr = append(arr, randomValue(rng, depth+1))
		}
		return arr
	default:
		n := rng.Intn(4)
		obj := make(map[string]interface{}, n)
		for i := 0; i < n; i++ {
			obj[randomString(rng)] = randomValue(rng, depth+1)
		}
		return obj
	}
}

// randomString mixes plain ASCII with the characters that exercise the
// escape machine: quotes, backslashes, control characters, and some
// multi-byte runes.
func randomString(rng *rand.Rand) string {
	alphabet := []rune("abcdefgh XYZ012\"\\\n\té世\U0001f600")
	var b strings.Builder
	n := rng.Intn(10)
	for i := 0; i < n; i++ {
		b.WriteRune(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
