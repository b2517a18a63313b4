package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-dossier/internal/assets"
	"github.com/alnah/go-dossier/internal/fileutil"
)

// ErrRefuseOverwrite is returned when init would clobber an existing file.
var ErrRefuseOverwrite = errors.New("refusing to overwrite existing file")

// dirPermissions for scaffolded directories: rwxr-x---.
const dirPermissions = 0o750

// scaffoldFiles lists the files init writes, in creation order.
var scaffoldFiles = []struct {
	name    string
	content func() string
}{
	{"dossier.yaml", assets.StarterConfig},
	{"dossier.html", assets.StarterTemplate},
}

// runInitCmd executes the init command and returns an exit code.
func runInitCmd(args []string, env *Environment) int {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := runInit(dir, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runInit scaffolds a starter config and template into dir.
// Existing files are never overwritten; the check runs for all files
// before anything is written so init is all-or-nothing.
func runInit(dir string, env *Environment) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for _, f := range scaffoldFiles {
		path := filepath.Join(dir, f.name)
		if fileutil.FileExists(path) {
			return fmt.Errorf("%w: %s", ErrRefuseOverwrite, path)
		}
	}

	for _, f := range scaffoldFiles {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content()), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}

	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Next steps:")
	fmt.Fprintln(env.Stdout, "  1. Drop profile.jpg, degree.pdf, transcript.pdf, and bio.md next to the config")
	fmt.Fprintln(env.Stdout, "     (or edit dossier.yaml to point at your own files)")
	fmt.Fprintln(env.Stdout, "  2. Run 'dossier build'")
	return nil
}
