// Package assets provides the embedded starter template and starter config
// used by the init scaffold command.
package assets

import _ "embed"

//go:embed templates/starter.html
var starterTemplate string

//go:embed configs/dossier.yaml
var starterConfig string

// StarterTemplate returns the embedded HTML template with one photo
// reference and placeholder objects matching the starter config.
func StarterTemplate() string {
	return starterTemplate
}

// StarterConfig returns the embedded YAML config matching the starter
// template's placeholders.
func StarterConfig() string {
	return starterConfig
}
