package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"osyris"
)

// astCmd implements §6's `--print-ast` mode as its own subcommand: it
// parses but never evaluates, printing each top-level expression's display
// form.
type astCmd struct{}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Parse a source file and print its expression tree" }
func (*astCmd) Usage() string {
	return `ast <path>:
  Parse <path> and print each top-level expression's display form without
  evaluating it.
`
}
func (*astCmd) SetFlags(*flag.FlagSet) {}

func (*astCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "no source file given")
		return subcommands.ExitUsageError
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		reportError("failed to read file", err)
		return subcommands.ExitFailure
	}

	exprs, err := osyris.Parse(data, path)
	if err != nil {
		reportError("parse error", err)
		return subcommands.ExitFailure
	}

	printHeader(fmt.Sprintf("%s (%d top-level expressions)", path, len(exprs)))
	for _, expr := range exprs {
		fmt.Println(expr.Display())
	}
	return subcommands.ExitSuccess
}
