package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-dossier/internal/config"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	t.Run("scaffolds config and template", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "newproject")
		env, stdout, _ := testEnv()

		if err := runInit(dir, env); err != nil {
			t.Fatalf("runInit() error = %v", err)
		}

		for _, name := range []string{"dossier.yaml", "dossier.html"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("%s not created: %v", name, err)
			}
		}
		if !strings.Contains(stdout.String(), "Next steps:") {
			t.Errorf("stdout missing next steps:\n%s", stdout.String())
		}

		// The scaffolded config must load through the normal path.
		cfg, err := config.LoadConfig(filepath.Join(dir, "dossier.yaml"))
		if err != nil {
			t.Fatalf("scaffolded config does not load: %v", err)
		}
		if cfg.Template != "dossier.html" {
			t.Errorf("Template = %q, want dossier.html", cfg.Template)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		existing := filepath.Join(dir, "dossier.html")
		if err := os.WriteFile(existing, []byte("mine"), 0o600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		env, _, _ := testEnv()
		err := runInit(dir, env)
		if !errors.Is(err, ErrRefuseOverwrite) {
			t.Fatalf("error = %v, want ErrRefuseOverwrite", err)
		}
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
		}

		// All-or-nothing: the config was not written either.
		if _, statErr := os.Stat(filepath.Join(dir, "dossier.yaml")); !errors.Is(statErr, os.ErrNotExist) {
			t.Errorf("dossier.yaml written despite refusal: %v", statErr)
		}

		// The existing file is untouched.
		content, readErr := os.ReadFile(existing)
		if readErr != nil || string(content) != "mine" {
			t.Errorf("existing file changed: %q, %v", content, readErr)
		}
	})
}

func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "scaffold")
	env, _, _ := testEnv()

	if code := runInitCmd([]string{dir}, env); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}
