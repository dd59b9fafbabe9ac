package arclang

// Macex is the compile-time half of macro handling: it rewrites
// every macro-headed form in expr before the evaluator sees it.
// Macro bodies receive their arguments unexpanded and unevaluated;
// whatever they return is expanded again until a fixpoint.
func (it *Interp) Macex(expr Atom) (result Atom, err error) {
	ss := len(it.stack)
	it.stackAdd(expr)
	it.stackAdd(it.global)
	defer func() {
		it.stackRestore(ss)
		it.stackAdd(result)
	}()

	if expr.Kind != KindCons || !listp(expr) {
		return expr, nil
	}

	op := car(expr)
	args := cdr(expr)

	if op.Kind == KindSym {
		switch {
		case op.Sym == it.symQuote.Sym:
			if no(args) || !no(cdr(args)) {
				return Nil, errArgs()
			}
			return expr, nil

		case op.Sym == it.symMac.Sym:
			// (mac name (params...) body...) binds at expansion
			// time and leaves (quote name) as its residual.
			if no(args) || no(cdr(args)) || no(cdr(cdr(args))) {
				return Nil, errArgs()
			}

			name := car(args)
			if name.Kind != KindSym {
				return Nil, errType()
			}

			macro, err := it.makeClosure(it.global, car(cdr(args)), cdr(cdr(args)))
			if err != nil {
				return Nil, err
			}
			macro.Kind = KindMacro
			result := it.cons(it.symQuote, it.cons(name, Nil))
			it.envAssign(it.global, name, macro)
			return result, nil
		}
	}

	if op.Kind == KindSym {
		if bound, err := it.envGet(it.global, op); err == nil && bound.Kind == KindMacro {
			// apply the macro to the unexpanded argument list,
			// then expand whatever it produced
			op, err := it.evalExpr(op, it.global)
			if err != nil {
				return Nil, err
			}
			op.Kind = KindClosure
			expansion, err := it.apply(op, args)
			if err != nil {
				return Nil, err
			}
			it.stackAdd(expansion)
			return it.Macex(expansion)
		}
	}

	// no macro in operator position: expand each element of a
	// fresh spine copy in place
	expr2 := it.copyList(expr)
	for p := expr2; !no(p); p = cdr(p) {
		expanded, err := it.Macex(car(p))
		if err != nil {
			return Nil, err
		}
		p.Pair.Car = expanded
	}
	return expr2, nil
}

// MacexEval expands and then evaluates expr in the global
// environment, the pipeline every top-level expression goes through.
func (it *Interp) MacexEval(expr Atom) (Atom, error) {
	expanded, err := it.Macex(expr)
	if err != nil {
		return Nil, err
	}
	return it.evalExpr(expanded, it.global)
}
