//nolint:gochecknoglobals
package pkg

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and the cache path.
	Name = "minigrep"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Search for a pattern in the given file"
)
