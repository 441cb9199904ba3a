package config

import "strings"

// SourceFileExt is the extension of YAML-encoded bare trees handed over by the parser.
const SourceFileExt = ".ende.yaml"

// SourceFileExtensions are all recognized bare tree file extensions
var SourceFileExtensions = []string{".ende.yaml", ".ende.yml"}

// ConfigFileNames are searched for, in order, by FindConfig.
var ConfigFileNames = []string{"ende.yaml", "ende.yml"}

// Built-in type names
const (
	IntTypeName     = "I32"
	UnitTypeName    = "Unit"
	UnitVariantName = "unit"
)

// REPL settings
const (
	ReplPrompt      = "ende> "
	ReplHistoryFile = ".ende_history"
)

// HasSourceExt reports whether path ends in one of SourceFileExtensions.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// TrimSourceExt strips a recognized source extension from name.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
