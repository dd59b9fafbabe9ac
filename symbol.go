package arclang

// makeSym interns a name.  The symbol table is itself a cons list on
// the managed heap, rooted by the collector, so walking it is a
// plain list scan.  A hit returns the previously interned atom,
// which is what makes symbol equality a pointer comparison.
func (it *Interp) makeSym(name string) Atom {
	for p := it.symTable; !no(p); p = cdr(p) {
		a := car(p)
		if a.Sym.Name == name {
			return a
		}
	}

	a := Atom{Kind: KindSym, Sym: &Symbol{Name: name}}
	it.symTable = it.cons(a, it.symTable)
	return a
}

// symEq reports whether two atoms are the same interned symbol.
func symEq(a, b Atom) bool {
	return a.Kind == KindSym && b.Kind == KindSym && a.Sym == b.Sym
}
