package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches to a subcommand and returns the process exit code.
// Split from main for testability.
func realMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "build":
		return runBuildCmd(rest, env)
	case "watch":
		return runWatchCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "init":
		return runInitCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "dossier %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}
