package arclang

import (
	"fmt"
	"io"
	"strings"
)

// Two renderings exist: the machine one quotes strings so output can
// be read back, the human one prints string contents raw.  The
// difference only applies at the top level; elements of a list are
// always rendered machine-readably.

// WriteExpr renders a machine-readable.
func WriteExpr(w io.Writer, a Atom) {
	writeAtom(w, a, true)
}

// WriteHuman renders a for humans: a top-level string prints its
// bytes without quotes.
func WriteHuman(w io.Writer, a Atom) {
	writeAtom(w, a, false)
}

// ExprString is WriteExpr into a string.
func ExprString(a Atom) string {
	var b strings.Builder
	WriteExpr(&b, a)
	return b.String()
}

// HumanString is WriteHuman into a string.
func HumanString(a Atom) string {
	var b strings.Builder
	WriteHuman(&b, a)
	return b.String()
}

func writeAtom(w io.Writer, a Atom, quoted bool) {
	switch a.Kind {
	case KindNil:
		io.WriteString(w, "nil")
	case KindCons:
		io.WriteString(w, "(")
		writeAtom(w, car(a), true)
		a = cdr(a)
		for !no(a) {
			if a.Kind == KindCons {
				io.WriteString(w, " ")
				writeAtom(w, car(a), true)
				a = cdr(a)
			} else {
				io.WriteString(w, " . ")
				writeAtom(w, a, true)
				break
			}
		}
		io.WriteString(w, ")")
	case KindSym:
		io.WriteString(w, a.Sym.Name)
	case KindNum:
		fmt.Fprintf(w, "%.16g", a.Num)
	case KindBuiltin:
		fmt.Fprintf(w, "#<builtin:%s>", a.Builtin.Name)
	case KindClosure:
		io.WriteString(w, "(closure ")
		writeAtom(w, cdr(a), true)
		io.WriteString(w, ")")
	case KindMacro:
		io.WriteString(w, "(macro ")
		writeAtom(w, cdr(a), true)
		io.WriteString(w, ")")
	case KindString:
		// the reader recognizes no escapes, so none are emitted
		if quoted {
			fmt.Fprintf(w, "\"%s\"", a.Str.Value)
		} else {
			w.Write(a.Str.Value)
		}
	default:
		io.WriteString(w, "(unknown type)")
	}
}
