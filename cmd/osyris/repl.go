package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"osyris"
	"osyris/value"
)

// replCmd implements the interactive read-eval-print loop. Each line is
// parsed and evaluated against one persistent root scope so definitions
// made on one line are visible to later lines.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive Osyris session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive read-eval-print loop.
`
}
func (*replCmd) SetFlags(*flag.FlagSet) {}

func (*replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		reportError("failed to start readline", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Println("Osyris")
	scope := osyris.NewRootScope()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			reportError("readline error", err)
			return subcommands.ExitFailure
		}

		result, runErr := osyris.Run([]byte(line), "<repl>", scope)
		if runErr != nil {
			reportError("error", runErr)
			continue
		}
		if _, isNone := result.(value.None); !isNone && result != nil {
			fmt.Println(result.Display())
		}
	}
}
