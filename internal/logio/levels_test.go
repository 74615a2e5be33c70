package logio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/rail/internal/logio"
)

func newLevels(out *bytes.Buffer) logio.Levels {
	var log logio.Logger
	log.SetOutput(nopCloser{out})
	return logio.Levels{
		Log:         &log,
		InfoPrefix:  "info:",
		WarnPrefix:  "warn:",
		ErrorPrefix: "error:",
		FatalPrefix: "fatal:",
	}
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestLevelsPrefixesLines(t *testing.T) {
	var out bytes.Buffer
	levels := newLevels(&out)

	levels.Info("starting %s", "up")
	levels.Warn("missing %s", "stdlib")

	assert.Equal(t, "info: starting up\nwarn: missing stdlib\n", out.String())
	assert.Equal(t, 0, levels.Log.ExitCode())
}

func TestErrorAndFatalSetExitCode(t *testing.T) {
	var out bytes.Buffer
	levels := newLevels(&out)

	levels.Error("could not %s", "parse")
	assert.Contains(t, out.String(), "error: could not parse")
	assert.Equal(t, 1, levels.Log.ExitCode())

	out.Reset()
	levels2 := newLevels(&out)
	levels2.Fatal("signal received")
	assert.Contains(t, out.String(), "fatal: signal received")
	assert.Equal(t, 1, levels2.Log.ExitCode())
}
