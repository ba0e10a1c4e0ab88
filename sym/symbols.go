// Package sym defines canonical output symbols for dataset builder
// operations. These symbols are stable across CLI output and documentation.
package sym

// Pipeline stage markers used in CLI and log output.
const (
	Doc   = "📄" // corpus documents
	Clean = "🧹" // normalization
	Save  = "💾" // artifact export
	DB    = "🗄" // relational materialization
	OK    = "✓"  // completed artifact
	Build = "🚀" // build run
	Stats = "📊" // corpus statistics
)
