package arclang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_ConsCarCdr(t *testing.T) {
	it := NewInterp()

	assert.Equal(t, "1", ExprString(evalSrc(t, it, "(car (cons 1 2))")))
	assert.Equal(t, "2", ExprString(evalSrc(t, it, "(cdr (cons 1 2))")))
	assert.Equal(t, "nil", ExprString(evalSrc(t, it, "(car nil)")))
	assert.Equal(t, "nil", ExprString(evalSrc(t, it, "(cdr nil)")))
}

func TestBuiltin_Is(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "every atom equals itself", src: "(assign x '(1 2)) (is x x)", want: "t"},
		{name: "numbers by value", src: "(is 3 (+ 1 2))", want: "t"},
		{name: "symbols by identity", src: "(is 'foo 'foo)", want: "t"},
		{name: "distinct symbols differ", src: "(is 'foo 'bar)", want: "nil"},
		{name: "nil equals nil", src: "(is nil nil)", want: "t"},
		{name: "strings by content", src: `(is "ab" (string "a" "b"))`, want: "t"},
		{name: "distinct pairs differ", src: "(is (cons 1 2) (cons 1 2))", want: "nil"},
		{name: "builtins by identity", src: "(is car car)", want: "t"},
		{name: "different kinds never equal", src: "(is 1 \"1\")", want: "nil"},
		{name: "closures by pair identity", src: "(assign f (fn (x) x)) (is f f)", want: "t"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			it := NewInterp()
			assert.Equal(t, test.want, ExprString(evalSrc(t, it, test.src)))
		})
	}
}

func TestBuiltin_Mod(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "same signs truncate", src: "(mod 7 3)", want: "1"},
		{name: "negative dividend floors", src: "(mod -7 3)", want: "2"},
		{name: "negative divisor floors", src: "(mod 7 -3)", want: "-2"},
		{name: "both negative", src: "(mod -7 -3)", want: "-1"},
		{name: "exact division", src: "(mod 6 3)", want: "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			it := NewInterp()
			assert.Equal(t, test.want, ExprString(evalSrc(t, it, test.src)))
		})
	}
}

func TestBuiltin_Type(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "(type '(1))", want: "cons"},
		{src: "(type 'x)", want: "sym"},
		{src: "(type nil)", want: "sym"},
		{src: "(type car)", want: "fn"},
		{src: "(type (fn (x) x))", want: "fn"},
		{src: `(type "s")`, want: "string"},
		{src: "(type 1)", want: "num"},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			it := NewInterp()
			assert.Equal(t, test.want, ExprString(evalSrc(t, it, test.src)))
		})
	}
}

func TestBuiltin_TypeOfMacro(t *testing.T) {
	it := NewInterp()
	evalSrc(t, it, "(mac m (x) x)")
	assert.Equal(t, "mac", ExprString(evalSrc(t, it, "(type m)")))
}

func TestBuiltin_ScarScdr(t *testing.T) {
	it := NewInterp()
	evalSrc(t, it, "(assign p (cons 1 2))")

	evalSrc(t, it, "(scar p 10)")
	evalSrc(t, it, "(scdr p 20)")
	assert.Equal(t, "(10 . 20)", ExprString(evalSrc(t, it, "p")))

	_, err := it.EvalString("(scar 1 2)")
	require.Error(t, err)
	assert.Equal(t, ErrType, KindOf(err))
}

func TestBuiltin_ScarSharedStructure(t *testing.T) {
	it := NewInterp()
	evalSrc(t, it, "(assign a '(1 2)) (assign b a) (scar b 99)")
	assert.Equal(t, "(99 2)", ExprString(evalSrc(t, it, "a")))
}

func TestBuiltin_StringSref(t *testing.T) {
	it := NewInterp()
	evalSrc(t, it, `(assign s "hello")`)

	evalSrc(t, it, "(string-sref s 72 0)")
	assert.Equal(t, `"Hello"`, ExprString(evalSrc(t, it, "s")))
	assert.Equal(t, "72", ExprString(evalSrc(t, it, "(s 0)")), "indexing observes the mutation")
}

func TestBuiltin_StringAndSym(t *testing.T) {
	it := NewInterp()

	assert.Equal(t, `"a1(2 3)"`, ExprString(evalSrc(t, it, `(string "a" 1 '(2 3))`)))
	assert.Equal(t, "t", ExprString(evalSrc(t, it, `(is 'abc (sym "abc"))`)))
	assert.Equal(t, "t", ExprString(evalSrc(t, it, "(is 'x2 (sym (string 'x 2)))")))
}

func TestBuiltin_PrWritesHumanReadably(t *testing.T) {
	it := NewInterp()
	var out bytes.Buffer
	it.SetOutput(&out)

	result := evalSrc(t, it, `(pr "hi " 1 '(2))`)
	assert.Equal(t, "hi 1(2)", out.String())
	assert.Equal(t, `"hi "`, ExprString(result), "pr returns its first argument")
}

func TestBuiltin_Writeb(t *testing.T) {
	it := NewInterp()
	var out bytes.Buffer
	it.SetOutput(&out)

	evalSrc(t, it, "(writeb 104) (writeb 105)")
	assert.Equal(t, "hi", out.String())
}

func TestBuiltin_NumericTable(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "(expt 2 10)", want: "1024"},
		{src: "(log 1)", want: "0"},
		{src: "(sqrt 16)", want: "4"},
		{src: "(trunc 3.7)", want: "3"},
		{src: "(trunc -3.7)", want: "-3"},
		{src: "(int 3.5)", want: "4"},
		{src: `(int "12.3")`, want: "12"},
		{src: "(int '7)", want: "7"},
		{src: "(sin 0)", want: "0"},
		{src: "(cos 0)", want: "1"},
		{src: "(tan 0)", want: "0"},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			it := NewInterp()
			assert.Equal(t, test.want, ExprString(evalSrc(t, it, test.src)))
		})
	}
}

func TestBuiltin_ModTruncIdentity(t *testing.T) {
	// (mod a b) relates to trunc-division with a floor correction
	// when the signs disagree
	it := NewInterp()
	src := "(is (mod 7 3) (- 7 (* 3 (trunc (/ 7 3)))))"
	assert.Equal(t, "t", ExprString(evalSrc(t, it, src)))
}

func TestBuiltin_Rand(t *testing.T) {
	it := NewInterp()

	for i := 0; i < 100; i++ {
		v := evalSrc(t, it, "(rand)")
		require.True(t, v.Num >= 0 && v.Num < 1, "rand() in [0,1): %v", v.Num)

		d := evalSrc(t, it, "(rand 6)")
		require.True(t, d.Num >= 0 && d.Num <= 5 && d.Num == float64(int(d.Num)),
			"rand(6) is an integral die roll: %v", d.Num)
	}

	_, err := it.EvalString("(rand 1 2)")
	require.Error(t, err)
	assert.Equal(t, ErrArgs, KindOf(err))
}

func TestBuiltin_ReadFromString(t *testing.T) {
	it := NewInterp()

	result := evalSrc(t, it, `(read "(+ 1 2)")`)
	assert.Equal(t, "(+ 1 2)", ExprString(result))

	result = evalSrc(t, it, `(eval (read "(+ 1 2)"))`)
	assert.Equal(t, "3", ExprString(result))
}

func TestBuiltin_ReadFromInput(t *testing.T) {
	it := NewInterp()
	it.SetInput(strings.NewReader("(a b c)\n"))

	result := evalSrc(t, it, "(read)")
	assert.Equal(t, "(a b c)", ExprString(result))
}

func TestBuiltin_Readline(t *testing.T) {
	it := NewInterp()
	it.SetInput(strings.NewReader("first line\nsecond\n"))

	assert.Equal(t, `"first line"`, ExprString(evalSrc(t, it, "(readline)")))
	assert.Equal(t, `"second"`, ExprString(evalSrc(t, it, "(readline)")))
	assert.Equal(t, "nil", ExprString(evalSrc(t, it, "(readline)")), "EOF reads as nil")
}

func TestBuiltin_Quit(t *testing.T) {
	it := NewInterp()
	code := -1
	it.exit = func(c int) { code = c }

	evalSrc(t, it, "(quit)")
	assert.Equal(t, 0, code)
}

func TestBuiltin_Macex(t *testing.T) {
	it := NewInterp()
	// macex on a macro-free form is structural identity
	result := evalSrc(t, it, "(macex '(+ 1 2))")
	assert.Equal(t, "(+ 1 2)", ExprString(result))
}

func TestBuiltin_ApplyOnIndexables(t *testing.T) {
	it := NewInterp()

	assert.Equal(t, "20", ExprString(evalSrc(t, it, "(apply '(10 20) '(1))")))
	assert.Equal(t, "101", ExprString(evalSrc(t, it, `(apply "he" '(1))`)))
}
