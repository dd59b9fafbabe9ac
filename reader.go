package arclang

import "strconv"

// ReadExpr parses one expression starting at pos and returns it
// together with the position immediately past it, so callers can
// drive a multi-expression loop over the same input.
func (it *Interp) ReadExpr(input string, pos int) (Atom, int, error) {
	start, end, err := lex(input, pos)
	if err != nil {
		return Nil, pos, err
	}

	switch input[start] {
	case '(':
		return it.readList(input, end)
	case ')':
		return Nil, end, errSyntax()
	case '\'':
		return it.readPrefixed(input, end, "quote")
	case '`':
		return it.readPrefixed(input, end, "quasiquote")
	case ',':
		name := "unquote"
		if end-start == 2 {
			name = "unquote-splicing"
		}
		return it.readPrefixed(input, end, name)
	default:
		a, err := it.parseSimple(input, start, end)
		return a, end, err
	}
}

// readPrefixed desugars the reader macros 'x `x ,x ,@x into their
// two-element list form.
func (it *Interp) readPrefixed(input string, pos int, name string) (Atom, int, error) {
	result := it.cons(it.makeSym(name), it.cons(Nil, Nil))
	inner, end, err := it.ReadExpr(input, pos)
	if err != nil {
		return Nil, end, err
	}
	cdr(result).Pair.Car = inner
	return result, end, nil
}

// readList consumes expressions until the closing paren, allowing a
// single `.` improper-list marker anywhere but first.
func (it *Interp) readList(input string, pos int) (Atom, int, error) {
	result := Nil
	p := Nil

	for {
		start, end, err := lex(input, pos)
		if err != nil {
			return Nil, pos, err
		}
		pos = end

		if input[start] == ')' {
			return result, pos, nil
		}

		if end-start == 1 && input[start] == '.' {
			if no(p) {
				return Nil, pos, errSyntax()
			}

			item, end, err := it.ReadExpr(input, pos)
			if err != nil {
				return Nil, end, err
			}
			p.Pair.Cdr = item
			pos = end

			start, end, err = lex(input, pos)
			if err != nil {
				return Nil, pos, err
			}
			if input[start] != ')' {
				return Nil, end, errSyntax()
			}
			return result, end, nil
		}

		item, end, err := it.ReadExpr(input, start)
		if err != nil {
			return Nil, end, err
		}
		pos = end

		if no(p) {
			result = it.cons(item, Nil)
			p = result
		} else {
			p.Pair.Cdr = it.cons(item, Nil)
			p = cdr(p)
		}
	}
}

// parseSimple classifies a non-structural token: a full-token float
// is a number, a quoted token is a string, `nil` is nil, anything
// else is an interned symbol.
func (it *Interp) parseSimple(input string, start, end int) (Atom, error) {
	token := input[start:end]

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return makeNumber(f), nil
	}

	if token[0] == '"' {
		body := token[1:]
		if n := len(body); n > 0 && body[n-1] == '"' {
			body = body[:n-1]
		}
		return it.makeString([]byte(body)), nil
	}

	if token == "nil" {
		return Nil, nil
	}
	return it.makeSym(token), nil
}
