package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/arclang/arclang"
)

type args struct {
	loadPath *string
	expr     *string

	gcThreshold *int
	gcDisabled  *bool

	noPrelude *bool
	printEnv  *bool
	prompt    *string
}

func readArgs() *args {
	a := &args{
		loadPath: flag.String("load", "", "Path (or doublestar pattern) of source files to load before starting"),
		expr:     flag.String("e", "", "Evaluate an expression and exit"),

		// Debugging Options

		gcThreshold: flag.Int("gc-threshold", 10000, "Allocations between collection checkpoints"),
		gcDisabled:  flag.Bool("gc-disable", false, "Never run the collector"),
		printEnv:    flag.Bool("print-env", false, "Print the global bindings after loading"),

		// REPL Options

		noPrelude: flag.Bool("no-prelude", false, "Skip loading library.arc"),
		prompt:    flag.String("prompt", "> ", "REPL prompt"),
	}

	flag.Parse()

	return a
}

func main() {
	a := readArgs()

	cfg := arclang.NewConfig()
	cfg.GCThreshold = *a.gcThreshold
	cfg.GCEnabled = !*a.gcDisabled
	cfg.Prompt = *a.prompt

	it := arclang.NewInterpWithConfig(cfg)

	if !*a.noPrelude {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}
		// a bare interpreter is still usable, so a missing
		// prelude is not fatal
		it.LoadPrelude(exe)
	}

	if *a.loadPath != "" {
		if err := it.LoadFile(*a.loadPath); err != nil {
			log.Fatalf("Can't load `%s`: %s", *a.loadPath, err.Error())
		}
	}

	if *a.printEnv {
		fmt.Println("Environment:")
		fmt.Println(" " + strings.Join(it.GlobalNames(), " "))
	}

	if *a.expr != "" {
		result, err := it.EvalString(*a.expr)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(arclang.ExprString(result))
		return
	}

	repl(it, cfg.Prompt)
}

func repl(it *arclang.Interp, prompt string) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		text, err := reader.ReadString('\n')

		if text == "" && err == io.EOF {
			fmt.Println("")
			break
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		result, err := it.EvalString(text)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		fmt.Println(arclang.ExprString(result))
	}
}
