// Package config holds build-time and process-wide settings that
// don't belong to any one rendering stage: the module's version,
// recognized file extensions, and test-mode toggles.
package config

// Version is the current gocsl version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

const (
	StyleFileExt  = ".csl"
	LocaleFileExt = ".xml"
)

// StyleFileExtensions are all recognized compiled/source style file
// extensions a style loader should accept.
var StyleFileExtensions = []string{".csl", ".csl.xml"}

// TrimStyleExt removes any recognized style extension from a
// filename, returning the original string if none matches.
func TrimStyleExt(name string) string {
	for _, ext := range StyleFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasStyleExt reports whether path ends with a recognized style
// extension.
func HasStyleExt(path string) bool {
	for _, ext := range StyleFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// DefaultLocale is the fallback locale code used when a style
// specifies none.
const DefaultLocale = "en-US"

// IsTestMode indicates the process is running under `go test` or a
// CLI test subcommand. No package in this module reads it; it is a
// flag for callers.
var IsTestMode = false
