package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/config"
	"github.com/alnah/go-dossier/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInputs = errors.New("required input files are missing")
	ErrReadTemplate  = errors.New("failed to read template file")
	ErrWriteOutput   = errors.New("failed to write output file")
)

// filePermissions for generated files: rw-r--r--.
const filePermissions = 0o644

// renderEngineHint is appended when the MuPDF self-check fails.
const renderEngineHint = "MuPDF is linked in through github.com/gen2brain/go-fitz; rebuild with CGO_ENABLED=1 and a working C toolchain"

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, rest, err := parseBuildFlags("build", args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(rest) > 0 {
		fmt.Fprintf(env.Stderr, "Unexpected argument: %s\n", rest[0])
		printBuildUsage(env.Stderr)
		return ExitUsage
	}

	if err := runBuild(context.Background(), flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild assembles one dossier according to the resolved config.
// The output file is only touched after a fully successful assembly.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	cfg, cfgPath, err := resolveConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	if flags.common.verbose {
		if cfgPath != "" {
			fmt.Fprintf(env.Stdout, "Using config %s\n", cfgPath)
		} else {
			fmt.Fprintln(env.Stdout, "Using built-in default config")
		}
	}

	// Verify the rendering engine before touching any input file.
	if len(cfg.Documents) > 0 {
		if err := dossier.SelfCheck(); err != nil {
			return fmt.Errorf("%w\n%s", err, renderEngineHint)
		}
	}

	// Upfront existence check: report every missing input at once, then
	// bail without creating or overwriting the output.
	if missing := fileutil.Missing(cfg.InputPaths()); len(missing) > 0 {
		fmt.Fprintln(env.Stderr, "ERROR: the following required files were not found:")
		for _, m := range missing {
			fmt.Fprintf(env.Stderr, "    - %s\n", m)
		}
		return fmt.Errorf("%w: %d file(s)", ErrMissingInputs, len(missing))
	}

	templateBytes, err := os.ReadFile(cfg.Template) // #nosec G304 -- template path comes from user config
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	svc := dossier.New(buildServiceOptions(cfg, flags, env)...)

	result, err := svc.Assemble(ctx, buildInput(cfg, string(templateBytes)))
	if err != nil {
		return err
	}

	// Template drift is tolerated but never silent.
	for _, name := range result.Unmatched {
		fmt.Fprintf(env.Stderr, "warning: template has no placeholder for %s; section left unchanged\n", name)
	}

	if err := os.WriteFile(cfg.Output, result.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		sizeMB := float64(len(result.HTML)) / 1024 / 1024
		fmt.Fprintf(env.Stdout, "Created %s (%.1f MB)\n", cfg.Output, sizeMB)
		fmt.Fprintln(env.Stdout, "The file is fully self-contained and opens in any browser.")
	}
	return nil
}

// resolveConfig loads the job config. Priority: explicit flag, dossier.yaml
// or dossier.yml in the working directory, then the built-in legacy default.
// Returns the path the config was loaded from ("" for the built-in default).
func resolveConfig(nameOrPath string) (*config.Config, string, error) {
	if nameOrPath != "" {
		cfg, err := config.LoadConfig(nameOrPath)
		return cfg, nameOrPath, err
	}
	for _, candidate := range []string{"dossier.yaml", "dossier.yml"} {
		if fileutil.FileExists(candidate) {
			cfg, err := config.LoadConfig(candidate)
			return cfg, candidate, err
		}
	}
	return config.DefaultConfig(), "", nil
}

// mergeFlags merges CLI flags into the config. CLI values win.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.dpi > 0 {
		cfg.DPI = flags.dpi
	}
}

// buildInput converts a config into a library Input.
func buildInput(cfg *config.Config, template string) dossier.Input {
	input := dossier.Input{Template: template}
	if cfg.Photo != "" {
		input.Photo = &dossier.Photo{Path: cfg.Photo}
	}
	for _, d := range cfg.Documents {
		input.Documents = append(input.Documents, dossier.Document{
			Path:     d.File,
			RotateCW: d.Rotate == config.RotateCW,
		})
	}
	if cfg.Notes != "" {
		input.Notes = &dossier.Notes{Path: cfg.Notes}
	}
	return input
}

// buildServiceOptions wires DPI and progress reporting into service options.
func buildServiceOptions(cfg *config.Config, flags *buildFlags, env *Environment) []dossier.Option {
	var opts []dossier.Option
	if cfg.DPI > 0 {
		opts = append(opts, dossier.WithDPI(cfg.DPI))
	}
	if flags.common.quiet {
		return opts
	}

	plan := planStages(cfg)
	opts = append(opts,
		dossier.WithStageProgress(func(stage string) {
			fmt.Fprintf(env.Stdout, "[%d/%d] %s\n", plan.index[stage], plan.total, plan.label[stage])
		}),
		dossier.WithPageProgress(func(doc string, page, total int) {
			fmt.Fprintf(env.Stdout, "    %s: page %d/%d converted\n", doc, page, total)
		}),
	)
	return opts
}

// stagePlan numbers the pipeline stages that will actually run, so progress
// lines read "[2/3] ..." regardless of which optional stages are configured.
type stagePlan struct {
	index map[string]int
	label map[string]string
	total int
}

// planStages builds the stage numbering for a config.
func planStages(cfg *config.Config) *stagePlan {
	plan := &stagePlan{
		index: make(map[string]int),
		label: map[string]string{
			dossier.StagePhoto:     "Encoding profile photo...",
			dossier.StageDocuments: "Converting PDF documents to images...",
			dossier.StageNotes:     "Rendering notes...",
		},
	}
	add := func(stage string) {
		plan.total++
		plan.index[stage] = plan.total
	}
	if cfg.Photo != "" {
		add(dossier.StagePhoto)
	}
	if len(cfg.Documents) > 0 {
		add(dossier.StageDocuments)
	}
	if cfg.Notes != "" {
		add(dossier.StageNotes)
	}
	return plan
}
