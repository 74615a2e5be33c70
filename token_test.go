package rail

import "testing"

func tokenStrs(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}

func assertTokenStrs(t *testing.T, src string, want []string) {
	t.Helper()
	got := tokenStrs(Tokens(src))
	if len(got) != len(want) {
		t.Fatalf("Tokens(%q) = %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokens(%q)[%d] = %q, want %q", src, i, got[i], want[i])
		}
	}
}

func TestTokenizerBasics(t *testing.T) {
	assertTokenStrs(t, "1 1 +", []string{"1", "1", "+"})
	assertTokenStrs(t, `"hello" "there"`, []string{`"hello"`, `"there"`})
	assertTokenStrs(t, `"hello there"`, []string{`"hello there"`})
	assertTokenStrs(t, `1 2 " hello three " 4 5`, []string{"1", "2", `" hello three "`, "4", "5"})
	assertTokenStrs(t, `1 2 "a # in a string is fine" #but at the end is ignored`,
		[]string{"1", "2", `"a # in a string is fine"`})
	assertTokenStrs(t, "1 1 [ + ] do .s", []string{"1", "1", "[", "+", "]", "do", ".s"})
	assertTokenStrs(t, "1 1 [+] do .s", []string{"1", "1", "[", "+", "]", "do", ".s"})
	assertTokenStrs(t, "[1 1][+]doin .s", []string{"[", "1", "1", "]", "[", "+", "]", "doin", ".s"})
}

func TestTokenizerDeferredTerm(t *testing.T) {
	toks := Tokens(`1 \dup do`)
	if len(toks) != 3 {
		t.Fatalf("Tokens = %v, want 3 tokens", toks)
	}
	if toks[1].Kind != TokenDeferredTerm || toks[1].Str != "dup" {
		t.Fatalf("Tokens[1] = %+v, want DeferredTerm(dup)", toks[1])
	}
}

func TestTokenizerLineCommentOnlyTruncatesOwnLine(t *testing.T) {
	toks := Tokens("1 2 + # trailing\n3 4 +")
	got := tokenStrs(toks)
	want := []string{"1", "2", "+", "3", "4", "+"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokens[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizerUnterminatedStringDoesNotPanic(t *testing.T) {
	toks := Tokens(`1 "unterminated`)
	if len(toks) != 2 {
		t.Fatalf("Tokens = %v, want 2 tokens", toks)
	}
	if toks[1].Kind != TokenString || toks[1].Str != "unterminated" {
		t.Fatalf("Tokens[1] = %+v, want String(unterminated)", toks[1])
	}
}

func TestTokenizeIdempotentModuloWhitespace(t *testing.T) {
	for _, src := range []string{
		`1 1 + pl`,
		`[ 1 2 3 ] [ dup * ] map pl`,
		`"a,b,c" "," split pl`,
		`1 \dup do pl`,
	} {
		first := Tokens(src)
		reserialized := ""
		for i, tok := range first {
			if i > 0 {
				reserialized += " "
			}
			reserialized += tok.String()
		}
		second := Tokens(reserialized)
		if len(first) != len(second) {
			t.Fatalf("re-tokenization length mismatch for %q: %v vs %v", src, first, second)
		}
		for i := range first {
			if first[i].String() != second[i].String() {
				t.Fatalf("re-tokenization mismatch for %q at %d: %v vs %v", src, i, first[i], second[i])
			}
		}
	}
}
