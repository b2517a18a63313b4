package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Renderer rendererInfo `json:"renderer"`
	Config   configInfo   `json:"config"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// rendererInfo holds the PDF rendering self-check result.
type rendererInfo struct {
	Working bool   `json:"working"`
	Engine  string `json:"engine"`
}

// configInfo holds config detection results.
type configInfo struct {
	Found         bool     `json:"found"`
	Path          string   `json:"path,omitempty"`
	Inputs        int      `json:"inputs"`
	MissingInputs []string `json:"missing_inputs,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status:   "ready",
		Renderer: rendererInfo{Engine: "mupdf (go-fitz)"},
	}

	checkRenderer(result)
	checkConfig(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkRenderer renders a tiny in-memory PDF to prove the engine works
// before any real input is touched.
func checkRenderer(result *doctorResult) {
	if err := dossier.SelfCheck(); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("PDF rendering self-check failed: %v. %s", err, renderEngineHint))
		return
	}
	result.Renderer.Working = true
}

// checkConfig looks for a job config in the working directory and, when
// one is found, reports which of its inputs are currently missing.
func checkConfig(result *doctorResult) {
	cfg, path, err := resolveConfig("")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("config is invalid: %v", err))
		return
	}

	if path == "" {
		result.Warnings = append(result.Warnings,
			"no dossier.yaml found; build would use built-in defaults (run 'dossier init' to scaffold one)")
	} else {
		result.Config.Found = true
		result.Config.Path = path
	}

	inputs := cfg.InputPaths()
	result.Config.Inputs = len(inputs)
	if missing := fileutil.Missing(inputs); len(missing) > 0 {
		result.Config.MissingInputs = missing
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d configured input file(s) missing", len(missing)))
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "dossier-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "dossier doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderer")
	if r.Renderer.Working {
		fmt.Fprintf(w, "  [OK] %s renders\n", r.Renderer.Engine)
	} else {
		fmt.Fprintln(w, "  [ERROR] rendering self-check failed")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	if r.Config.Found {
		fmt.Fprintf(w, "  [OK] Found %s (%d input files)\n", r.Config.Path, r.Config.Inputs)
		for _, m := range r.Config.MissingInputs {
			fmt.Fprintf(w, "  [WARN] missing input: %s\n", m)
		}
	} else {
		fmt.Fprintln(w, "  [WARN] no config file found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
