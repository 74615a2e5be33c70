package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/builtin"
)

func run(t *testing.T, src string) rail.State {
	t.Helper()
	s := rail.NewMainState(builtin.All(), rail.DefaultConventions())
	next, err := s.EvalSource(src)
	require.NoError(t, err)
	return next
}

func TestAllRegistersEveryVocabularyGroup(t *testing.T) {
	dict := builtin.All()
	for _, name := range []string{
		"drop", "dup", "dup2", "swap", "rot",
		"+", "-", "*", "/", "mod", "abs", "negate", "sqrt", "floor",
		"true", "false", "not", "and", "or", "eq?", "neq?", "gt?", ">", "any",
		"?",
		"do!", "do", "doin!", "doin", "def?", "describe",
		"def!", "alias", "=>", "->",
		"len", "quote", "unquote", "as-quote", "push", "pop", "enq", "deq",
		"nth", "rev", "concat", "filter", "map", "each!", "each", "zip", "zip-with", "times",
		"upcase", "downcase", "trim", "split", "join", "contains?", "starts-with?", "ends-with?", "to-string",
		"stab", "insert", "extract",
		"type", "defs", "quote-all", "version", "stack", "p", "pl",
	} {
		assert.True(t, dict.Defined(name), "expected %q to be defined", name)
	}
}

func TestStabInsertAndExtract(t *testing.T) {
	s := run(t, `stab [ "a" 1 ] insert [ "b" 2 ] insert "b" extract`)
	_, val := pop1(s)
	assert.Equal(t, rail.I64(2), val)
}

func TestStabExtractMissingKeyIsHostIOError(t *testing.T) {
	s := rail.NewMainState(builtin.All(), rail.DefaultConventions())
	_, err := s.EvalSource(`stab "missing" extract`)
	var hostErr rail.HostIOError
	require.ErrorAs(t, err, &hostErr)
}

func TestZipWith(t *testing.T) {
	s := run(t, `[ 1 2 3 ] [ 10 20 30 ] [ + ] zip-with`)
	_, result := pop1(s)
	q, ok := result.AsQuote()
	require.True(t, ok)
	assert.Equal(t, "[ 11 22 33 ]", q.Stack.String())
}

func pop1(s rail.State) (rail.State, rail.Value) {
	next, v, _ := s.Pop()
	return next, v
}
