// Package output - CLI table formatter
package output

import (
	"fmt"
	"io"

	"chiller-payback/core/types"
)

// CLIFormatter renders a human-readable box table
type CLIFormatter struct {
	// ShowDetails includes the per-option breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report as a CLI table
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	r := report.Result
	cur := r.Currency

	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                       CHILLER PAYBACK COMPARISON                        │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Total installed capacity", fmt.Sprintf("%.0f kW", r.TotalCapacityKW))
	row(w, "Average cooling load", fmt.Sprintf("%.0f kW", r.AverageCoolingKW))
	row(w, "Operating hours per year", fmt.Sprintf("%.0f h", r.OperatingHours))

	if f.ShowDetails {
		fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
		f.renderOption(w, "OPTION 1 (higher efficiency)", r.Higher, cur)
		fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
		f.renderOption(w, "OPTION 2 (lower efficiency)", r.Lower, cur)
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	c := r.Comparison
	row(w, "Annual savings", fmt.Sprintf("%s %s", c.AnnualSavings.StringFixed(0), cur))
	row(w, "Annual savings (energy)", fmt.Sprintf("%.0f kWh", c.AnnualSavingsKWh))
	row(w, "Extra capital for option 1", fmt.Sprintf("%s %s", c.IncrementalCapital.StringFixed(0), cur))

	if c.Payback == nil {
		row(w, "Payback", "not achievable")
	} else {
		row(w, "Payback (calendar months)", fmt.Sprintf("%.1f", c.Payback.CalendarMonths))
		row(w, "Payback (operating months)", fmt.Sprintf("%.1f", c.Payback.OperatingMonths))
	}

	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
	fmt.Fprintf(w, "\nEvaluation completed in %s\n", report.Metadata.Duration)
	return nil
}

func (f *CLIFormatter) renderOption(w io.Writer, title string, opt types.OptionSummary, cur types.Currency) {
	row(w, title, "")
	row(w, "  Energy method", opt.Estimate.Method.Label())
	row(w, "  Average electric draw", fmt.Sprintf("%.1f kW", opt.Estimate.AverageDrawKW))
	row(w, "  Annual electricity", fmt.Sprintf("%.0f kWh", opt.Estimate.AnnualKWh))
	row(w, "  Annual cost", fmt.Sprintf("%s %s", opt.AnnualCost.StringFixed(0), cur))
	row(w, "  Total capital", fmt.Sprintf("%s %s", opt.TotalCapital.StringFixed(0), cur))
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-45s %25s │\n", truncate(label, 45), truncate(value, 25))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
