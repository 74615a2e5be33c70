package interp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/interp"
)

func eval(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ip, err := interp.New(interp.WithNoStdlib(), interp.WithOutput(&out))
	require.NoError(t, err)
	err = ip.Eval(src)
	return out.String(), err
}

// seed scenarios, spec.md §8.
func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add-and-print", `1 1 + pl`, "2\n"},
		{"do-quote", `1 1 [ + ] do pl`, "2\n"},
		{"times", `[ 1 ] 2 times + pl`, "2\n"},
		{"map", `[ 1 2 3 ] [ dup * ] map pl`, "[ 1 4 9 ]\n"},
		{"upcase", `"hello" upcase pl`, "HELLO\n"},
		{"branch-first-match", `[ [ true ] [ "a" pl ] [ true ] [ "b" pl ] ] ?`, "a\n"},
		{"deferred-term", `1 \dup do pl`, "1\n"},
		{"split", `"a,b,c" "," split pl`, "[ \"a\" \"b\" \"c\" ]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eval(t, tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// boundary tests, spec.md §8.
func TestBoundaries(t *testing.T) {
	t.Run("right-bracket-in-main-cant-escape", func(t *testing.T) {
		_, err := eval(t, `]`)
		var cant rail.CantEscapeError
		assert.True(t, errors.As(err, &cant))
	})

	t.Run("undefined-command-preserves-stack", func(t *testing.T) {
		var out bytes.Buffer
		ip, err := interp.New(interp.WithNoStdlib(), interp.WithOutput(&out))
		require.NoError(t, err)
		ip.State = ip.State.Push(rail.I64(1)).Push(rail.I64(2))
		err = ip.Eval(`foo`)
		var unk rail.UnknownCommandError
		require.True(t, errors.As(err, &unk))
		assert.Equal(t, "foo", unk.Name)
		assert.Equal(t, 2, ip.State.Stack.Len())
	})

	t.Run("stack-underflow-preserves-stack", func(t *testing.T) {
		var out bytes.Buffer
		ip, err := interp.New(interp.WithNoStdlib(), interp.WithOutput(&out))
		require.NoError(t, err)
		ip.State = ip.State.Push(rail.I64(1))
		err = ip.Eval(`+`)
		var under rail.StackUnderflowError
		require.True(t, errors.As(err, &under))
		assert.Equal(t, 1, ip.State.Stack.Len())
	})

	t.Run("cross-tag-numeric-equality", func(t *testing.T) {
		got, err := eval(t, `1 2 eq? pl`)
		require.NoError(t, err)
		assert.Equal(t, "false\n", got)

		got, err = eval(t, `1 1.0 eq? pl`)
		require.NoError(t, err)
		assert.Equal(t, "true\n", got)
	})

	t.Run("trailing-comment-preserves-value", func(t *testing.T) {
		got, err := eval(t, `1 2 + # trailing
pl`)
		require.NoError(t, err)
		assert.Equal(t, "3\n", got)
	})

	t.Run("hash-inside-string-literal", func(t *testing.T) {
		got, err := eval(t, `"a # b" pl`)
		require.NoError(t, err)
		assert.Equal(t, "a # b\n", got)
	})
}

// universal properties, spec.md §8.
func TestUniversalProperties(t *testing.T) {
	t.Run("swap-swap-identity", func(t *testing.T) {
		got, err := eval(t, `1 2 swap swap pl pl`)
		require.NoError(t, err)
		assert.Equal(t, "2\n1\n", got)
	})

	t.Run("rot-rot-rot-identity", func(t *testing.T) {
		got, err := eval(t, `1 2 3 rot rot rot pl pl pl`)
		require.NoError(t, err)
		assert.Equal(t, "3\n2\n1\n", got)
	})

	t.Run("dup-drop-identity", func(t *testing.T) {
		got, err := eval(t, `5 dup drop pl`)
		require.NoError(t, err)
		assert.Equal(t, "5\n", got)
	})

	t.Run("def-do-leaves-no-delta-do-bang-does", func(t *testing.T) {
		_, err := eval(t, `[ [ 1 ] [ answer ] def! ] do answer`)
		require.Error(t, err)
		var unk rail.UnknownCommandError
		require.True(t, errors.As(err, &unk))

		got, err := eval(t, `[ [ 1 ] [ answer ] def! ] do! answer pl`)
		require.NoError(t, err)
		assert.Equal(t, "1\n", got)
	})

	t.Run("branch-executes-at-most-one-action", func(t *testing.T) {
		got, err := eval(t, `[ [ false ] [ "a" pl ] [ false ] [ "b" pl ] ] ?`)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("concat-associative-identity", func(t *testing.T) {
		got, err := eval(t, `[ 1 ] [ ] concat pl`)
		require.NoError(t, err)
		assert.Equal(t, "[ 1 ]\n", got)

		got, err = eval(t, `"ab" "" concat pl`)
		require.NoError(t, err)
		assert.Equal(t, "ab\n", got)
	})
}
