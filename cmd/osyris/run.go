package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"osyris"
)

// runCmd evaluates a source file against a fresh root scope.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Evaluate an Osyris source file" }
func (*runCmd) Usage() string {
	return `run <path>:
  Evaluate the Osyris program in <path> against a fresh root scope.
`
}
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	log.Debug().Str("path", path).Msg("osyris: running file")
	scope := osyris.NewRootScope()
	if _, err := osyris.Run(data, path, scope); err != nil {
		reportError("error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
