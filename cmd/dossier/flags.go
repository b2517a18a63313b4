package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for the build and watch commands.
type buildFlags struct {
	common commonFlags
	output string
	dpi    float64
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show extra detail")
}

// parseBuildFlags parses build/watch flags and returns positional args.
// The name parameter selects the FlagSet name for error messages.
func parseBuildFlags(name string, args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (overrides config)")
	fs.Float64Var(&f.dpi, "dpi", 0, "rasterization DPI (36-600, 0 = config/default)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
