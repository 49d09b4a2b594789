// Package output produces human and machine-readable renderings of a
// comparison report.
package output

import (
	"io"

	"chiller-payback/core/engine"
	"chiller-payback/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter renders a report in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report *Report) error
}

// Report wraps an engine result with execution context
type Report struct {
	// Result is the scenario evaluation outcome
	Result *engine.Result `json:"result"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context for a report
type Metadata struct {
	// Timestamp is when the evaluation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the evaluation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is the scenario input source
	Source string `json:"source,omitempty"`
}

// New returns a formatter for the requested format
func New(format Format, showDetails bool) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q (want cli or json)", format)
	}
}
