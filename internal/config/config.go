// Package config loads and validates dossier job configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-dossier/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field limits.
const (
	MaxPathLength = 4096 // single filesystem path
	MaxDocuments  = 64   // PDFs per dossier; well beyond any sane template

	// DPI bounds mirror the library's rasterization limits.
	MinDPI = 36
	MaxDPI = 600
)

// Rotation values accepted in DocumentEntry.Rotate.
const (
	RotateNone = ""
	RotateCW   = "cw"
)

// Config holds one dossier assembly job.
type Config struct {
	Photo     string          `yaml:"photo"`     // profile photo path (optional)
	Template  string          `yaml:"template"`  // HTML template path (required)
	Output    string          `yaml:"output"`    // output HTML path (required)
	Notes     string          `yaml:"notes"`     // Markdown notes path (optional)
	DPI       float64         `yaml:"dpi"`       // 0 = library default (200)
	Documents []DocumentEntry `yaml:"documents"` // PDFs to inline, in template order
}

// DocumentEntry describes one PDF to rasterize and inline.
type DocumentEntry struct {
	File   string `yaml:"file"`
	Rotate string `yaml:"rotate"` // "" or "cw" (90 degrees clockwise per page)
}

// DefaultConfig returns the legacy fixed file set the tool was originally
// built around: one photo, one template, four PDFs with the third rotated a
// quarter turn clockwise. Used when no config file is present so the tool
// keeps working as a zero-flag batch script in that layout.
func DefaultConfig() *Config {
	return &Config{
		Photo:    "26.jpg.jpeg",
		Template: "credenciales.html",
		Output:   "index.html",
		DPI:      0,
		Documents: []DocumentEntry{
			{File: "T1.pdf"},
			{File: "tp1.pdf"},
			{File: "T2.pdf", Rotate: RotateCW},
			{File: "tp2.pdf"},
		},
	}
}

// Validate checks required fields, path lengths, and enumerated values.
func (c *Config) Validate() error {
	if c.Template == "" {
		return fmt.Errorf("%w: template is required", ErrInvalidField)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is required", ErrInvalidField)
	}

	for _, field := range []struct{ name, value string }{
		{"photo", c.Photo},
		{"template", c.Template},
		{"output", c.Output},
		{"notes", c.Notes},
	} {
		if len(field.value) > MaxPathLength {
			return fmt.Errorf("%w: %s exceeds %d chars", ErrInvalidField, field.name, MaxPathLength)
		}
	}

	if c.DPI != 0 && (c.DPI < MinDPI || c.DPI > MaxDPI) {
		return fmt.Errorf("%w: dpi %.0f (must be 0 or between %d and %d)", ErrInvalidField, c.DPI, MinDPI, MaxDPI)
	}

	if len(c.Documents) > MaxDocuments {
		return fmt.Errorf("%w: %d documents (max %d)", ErrInvalidField, len(c.Documents), MaxDocuments)
	}
	for i, d := range c.Documents {
		if d.File == "" {
			return fmt.Errorf("%w: documents[%d].file is required", ErrInvalidField, i)
		}
		if len(d.File) > MaxPathLength {
			return fmt.Errorf("%w: documents[%d].file exceeds %d chars", ErrInvalidField, i, MaxPathLength)
		}
		switch d.Rotate {
		case RotateNone, RotateCW:
			// valid
		default:
			return fmt.Errorf("%w: documents[%d].rotate %q (must be empty or %q)", ErrInvalidField, i, d.Rotate, RotateCW)
		}
	}

	return nil
}

// InputPaths returns every input file the job reads, in pipeline order.
// Used for the upfront existence check before any conversion starts.
func (c *Config) InputPaths() []string {
	paths := make([]string, 0, len(c.Documents)+3)
	if c.Photo != "" {
		paths = append(paths, c.Photo)
	}
	paths = append(paths, c.Template)
	for _, d := range c.Documents {
		paths = append(paths, d.File)
	}
	if c.Notes != "" {
		paths = append(paths, c.Notes)
	}
	return paths
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-dossier/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-dossier", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
