package partialjson

import (
	"testing"

	"github.com/promplate/partialjson/jsonparser"
	"github.com/promplate/partialjson/jsontest"
)

func FuzzComplete(f *testing.F) {
	seeds := []string{
		``,
		`null`,
		`[1, 2,`,
		`{"a": 1, "b":`,
		`[{"x": "abc`,
		`[-Infi`,
		`{"k": "v\u00`,
		`[1e`,
		`{"deep": [[[{"a": "b\\", "c": 1.5e`,
		`]`,
		`["\q`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 1<<12 {
			t.Skip("input too large")
		}
		settings := jsonparser.AllowAll()

		out, err := Complete(s, settings)
		if err == nil && out == "" {
			t.Fatalf("input %q amended to an empty string", s)
		}

		if !jsontest.Valid(s) {
			return
		}
		// an input that is already a valid document must come through, and
		// every prefix of it must either amend to valid JSON or error out
		if err != nil {
			t.Fatalf("valid document %q failed: %v", s, err)
		}
		if !jsontest.Valid(out) {
			t.Fatalf("valid document %q amended to invalid JSON %q", s, out)
		}
		for _, prefix := range jsontest.Prefixes(s) {
			got, err := Complete(prefix, settings)
			if err != nil {
				continue
			}
			if !jsontest.Valid(got) {
				t.Fatalf("prefix %q of %q amended to invalid JSON %q", prefix, s, got)
			}
		}
	})
}
