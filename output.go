package rail

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/rail/internal/flushio"
)

// Output is the shared sink that print commands (pl, p) write to. Like
// RunConventions, it's passed through State by reference rather than
// copied — it names a shared external resource (stdout), not interpreter
// state — but unlike RunConventions it's a live io.Writer rather than an
// immutable constant bundle, so it gets its own field.
type Output struct {
	w flushio.WriteFlusher
}

// NewOutput wraps w in a flush-aware writer, adapted from the teacher's
// flushio package: a writer that already has a Flush method is used as is,
// an in-memory buffer gets a no-op Flush, and any other writer (e.g. a bare
// os.Stdout) is wrapped in a bufio.Writer whose bytes reach w only when
// Flush is called. The rail driver hands in its own bufio.Writer around
// os.Stdout and flushes it before exiting.
func NewOutput(w io.Writer) *Output {
	return &Output{w: flushio.NewWriteFlusher(w)}
}

// DiscardOutput returns an Output that discards everything written to it,
// the default for States built without an explicit driver (e.g. in tests).
func DiscardOutput() *Output { return NewOutput(ioutil.Discard) }

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) { return o.w.Write(p) }

// Flush flushes any buffered bytes.
func (o *Output) Flush() error { return o.w.Flush() }
