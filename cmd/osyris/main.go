// Command osyris is the Osyris language's CLI front end: it reads a source
// file (or an interactive line at a time) and evaluates it against a fresh
// root scope. It is an external collaborator of the language core — the
// core packages never import it.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("OSYRIS_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&astCmd{}, "")

	// A bare `osyris <file>` with no recognized subcommand name defaults to
	// `run`, keeping the single-binary `program [--print-ast] <path>`
	// surface working without requiring `osyris run <path>`.
	// A leading `--print-ast` selects the `ast` subcommand.
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--print-ast" {
		os.Args = append([]string{os.Args[0], "ast"}, args[1:]...)
	} else if len(args) > 0 && !isKnownSubcommand(args[0]) {
		os.Args = append([]string{os.Args[0], "run"}, args...)
	}

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

func isKnownSubcommand(name string) bool {
	switch name {
	case "run", "repl", "ast", "help", "flags", "-h", "--help":
		return true
	default:
		return false
	}
}
