package arclang

// evalExpr is the tree-walking evaluator.  Special forms are matched
// by symbol identity against the atoms cached at startup; everything
// else is application.  The guard-stack discipline brackets the
// whole function: intermediates become collectable on return, the
// result stays rooted.
func (it *Interp) evalExpr(expr, env Atom) (result Atom, err error) {
	ss := len(it.stack)
	it.stackAdd(expr)
	it.stackAdd(env)
	defer func() {
		it.stackRestore(ss)
		it.stackAdd(result)
	}()

	if expr.Kind == KindSym {
		return it.envGet(env, expr)
	}
	if expr.Kind != KindCons {
		return expr, nil
	}
	if !listp(expr) {
		return Nil, errSyntax()
	}

	op := car(expr)
	args := cdr(expr)

	if op.Kind == KindSym {
		switch {
		case op.Sym == it.symQuote.Sym:
			if no(args) || !no(cdr(args)) {
				return Nil, errArgs()
			}
			return car(args), nil

		case op.Sym == it.symAssign.Sym:
			if no(args) || no(cdr(args)) {
				return Nil, errArgs()
			}
			sym := car(args)
			if sym.Kind != KindSym {
				return Nil, errType()
			}
			val, err := it.evalExpr(car(cdr(args)), env)
			if err != nil {
				return Nil, err
			}
			it.envAssignEq(env, sym, val)
			return val, nil

		case op.Sym == it.symFn.Sym:
			if no(args) || no(cdr(args)) {
				return Nil, errArgs()
			}
			return it.makeClosure(env, car(args), cdr(args))

		case op.Sym == it.symIf.Sym:
			// clause pairs left to right; a trailing singleton is
			// its own else
			for !no(args) {
				cond, err := it.evalExpr(car(args), env)
				if err != nil {
					return Nil, err
				}
				if no(cdr(args)) {
					return cond, nil
				}
				if !no(cond) {
					return it.evalExpr(car(cdr(args)), env)
				}
				args = cdr(cdr(args))
			}
			return Nil, nil

		case op.Sym == it.symMac.Sym:
			// counterpart of the expansion-time path in macro.go, for
			// forms that reach the evaluator unexpanded; here the
			// macro captures and is bound in env, not the global frame
			if no(args) || no(cdr(args)) || no(cdr(cdr(args))) {
				return Nil, errArgs()
			}
			name := car(args)
			if name.Kind != KindSym {
				return Nil, errType()
			}
			macro, err := it.makeClosure(env, car(cdr(args)), cdr(cdr(args)))
			if err != nil {
				return Nil, err
			}
			macro.Kind = KindMacro
			it.envAssign(env, name, macro)
			return name, nil

		case op.Sym == it.symWhile.Sym:
			if no(args) {
				return Nil, errArgs()
			}
			pred := car(args)
			ss2 := len(it.stack)
			for {
				result, err = it.evalExpr(pred, env)
				if err != nil {
					return Nil, err
				}
				if no(result) {
					break
				}
				for e := cdr(args); !no(e); e = cdr(e) {
					result, err = it.evalExpr(car(e), env)
					if err != nil {
						return Nil, err
					}
				}
				it.stackRestore(ss2)
			}
			return result, nil
		}
	}

	op, err = it.evalExpr(op, env)
	if err != nil {
		return Nil, err
	}

	if op.Kind == KindMacro {
		// late-bound expansion: the head only turned out to be a
		// macro after evaluation
		op.Kind = KindClosure
		expansion, err := it.apply(op, args)
		it.stackAdd(expansion)
		if err != nil {
			return Nil, err
		}
		return it.evalExpr(expansion, env)
	}

	args = it.copyList(args)
	for p := args; !no(p); p = cdr(p) {
		v, err := it.evalExpr(car(p), env)
		if err != nil {
			return Nil, err
		}
		p.Pair.Car = v
	}
	return it.apply(op, args)
}

// apply invokes a callable with an already-evaluated argument list.
// Strings and lists are callable as indexers.
func (it *Interp) apply(fn, args Atom) (Atom, error) {
	switch {
	case fn.Kind == KindBuiltin:
		return fn.Builtin.Fn(it, args)

	case fn.Kind == KindClosure:
		env := it.envCreate(car(fn))
		params := car(cdr(fn))
		body := cdr(cdr(fn))

		for !no(params) {
			if params.Kind == KindSym {
				// rest parameter takes whatever is left
				it.envAssign(env, params, args)
				args = Nil
				break
			}
			if no(args) {
				return Nil, errArgs()
			}
			it.envAssign(env, car(params), car(args))
			params = cdr(params)
			args = cdr(args)
		}
		if !no(args) {
			return Nil, errArgs()
		}

		result := Nil
		for ; !no(body); body = cdr(body) {
			var err error
			result, err = it.evalExpr(car(body), env)
			if err != nil {
				return Nil, err
			}
		}
		return result, nil

	case fn.Kind == KindString:
		if listLen(args) != 1 {
			return Nil, errArgs()
		}
		i := int(car(args).Num)
		if i < 0 || i >= len(fn.Str.Value) {
			return Nil, errArgs()
		}
		return makeNumber(float64(fn.Str.Value[i])), nil

	case fn.Kind == KindCons && listp(fn):
		if listLen(args) != 1 {
			return Nil, errArgs()
		}
		i := int(car(args).Num)
		a := fn
		for ; i > 0; i-- {
			a = cdr(a)
			if no(a) {
				return Nil, nil
			}
		}
		return car(a), nil

	default:
		return Nil, errType()
	}
}
