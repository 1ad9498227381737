package partialjson

import (
	"bytes"
	"io"

	"github.com/promplate/partialjson/jsonparser"
)

// Completer accumulates chunks from a streaming producer and renders a
// well-formed document for whatever has arrived so far. Feed it with
// Write, read with Current; a producer can be pointed straight at it via
// io.Copy.
//
// A Completer is not safe for concurrent use.
type Completer struct {
	buf      bytes.Buffer
	settings jsonparser.Settings
}

var _ io.Writer = (*Completer)(nil)

func NewCompleter(settings jsonparser.Settings) *Completer {
	return &Completer{settings: settings}
}

// Write implements io.Writer. It never fails; amendment errors surface
// from Current instead, since a chunk boundary says nothing about whether
// the data so far is amendable.
func (c *Completer) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// Current amends everything received so far. Each call is a full pass
// over the accumulated input.
func (c *Completer) Current() (string, error) {
	return Complete(c.buf.String(), c.settings)
}

// Len returns the number of bytes accumulated.
func (c *Completer) Len() int {
	return c.buf.Len()
}

// Reset discards the accumulated input, keeping the settings, so the
// Completer can follow the producer's next document.
func (c *Completer) Reset() {
	c.buf.Reset()
}
