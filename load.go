package arclang

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// slurp reads a whole source file into memory.
func slurp(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", &LangError{Kind: ErrFile, Message: path}
	}
	return string(buf), nil
}

// LoadFile loads Arc source.  The path may be a doublestar pattern
// (lib/**/*.arc); every match is loaded in lexical order.  Errors
// raised while evaluating an expression are reported to the
// interpreter output and loading continues with the next top-level
// form; reading a file stops without a report at the first form that
// does not parse.
func (it *Interp) LoadFile(path string) error {
	if !strings.ContainsAny(path, "*?[{") {
		return it.loadOne(path)
	}

	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return &LangError{Kind: ErrFile, Message: path}
	}
	if len(matches) == 0 {
		return &LangError{Kind: ErrFile, Message: path}
	}
	sort.Strings(matches)
	for _, m := range matches {
		if err := it.loadOne(m); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) loadOne(path string) error {
	text, err := slurp(path)
	if err != nil {
		return err
	}

	pos := 0
	for {
		expr, next, rerr := it.ReadExpr(text, pos)
		if rerr != nil {
			return nil
		}
		pos = next

		it.codeExpr = expr
		if _, eerr := it.MacexEval(expr); eerr != nil {
			fmt.Fprintln(it.out, eerr.Error())
			fmt.Fprint(it.out, "error in expression:\n\t")
			WriteExpr(it.out, expr)
			fmt.Fprintln(it.out)
		}
		it.codeExpr = Nil
	}
}

// LoadPrelude looks for the prelude next to the given executable
// path, then in its parent directory, and loads the first hit.  A
// missing prelude is not an error; the interpreter just starts bare.
func (it *Interp) LoadPrelude(exePath string) error {
	name := it.config.Prelude
	dir := filepath.Dir(exePath)
	for _, candidate := range []string{
		filepath.Join(dir, name),
		filepath.Join(dir, "..", name),
	} {
		if err := it.LoadFile(candidate); err == nil {
			return nil
		}
	}
	return &LangError{Kind: ErrFile, Message: name}
}
