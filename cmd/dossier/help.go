package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dossier <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Assemble the self-contained HTML dossier")
	fmt.Fprintln(w, "  watch      Rebuild automatically when input files change")
	fmt.Fprintln(w, "  doctor     Check that the environment is ready to build")
	fmt.Fprintln(w, "  init       Scaffold a starter config and template")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dossier help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dossier build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble a self-contained HTML document from the configured photo,")
	fmt.Fprintln(w, "PDF files, and optional Markdown notes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration is read from --config, falling back to dossier.yaml or")
	fmt.Fprintln(w, "dossier.yml in the working directory, then to built-in defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -o, --output <path>   Output HTML file (overrides config)")
	fmt.Fprintln(w, "      --dpi <f>         Rasterization DPI (36-600, 0 = config/default)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show extra detail")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dossier watch [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build once, then watch the configured input files and rebuild on")
	fmt.Fprintln(w, "change. Stops on Ctrl+C. Accepts the same flags as build.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dossier init [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter dossier.yaml and dossier.html into dir (default: the")
	fmt.Fprintln(w, "working directory). Refuses to overwrite existing files.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dossier doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the rendering engine, configuration, and system requirements.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: dossier version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: dossier help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
