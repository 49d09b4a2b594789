// Package cmd - compare command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chiller-payback/adapters/scenario"
	hcladapter "chiller-payback/adapters/scenario/hcl"
	"chiller-payback/core/engine"
	"chiller-payback/core/output"
	"chiller-payback/internal/config"
	"chiller-payback/internal/logging"
)

var (
	outputFormat string
	showDetails  bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare two chiller options from a scenario file",
	Long: `Evaluate a scenario file and report annual energy, cost, savings and the
payback period of the higher-efficiency option.

The scenario file is HCL with a plant block, an economics block, and one
"higher" and one "lower" option block.

Examples:
  chiller-payback compare scenario.hcl
  chiller-payback compare --format json scenario.hcl
  chiller-payback compare --details=false scenario.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	compareCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show per-option breakdown")
}

func runCompare(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	path := args[0]

	// Validate path exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("scenario file does not exist: %s", path)
	}

	logging.Info("Starting payback comparison")

	raw, err := hcladapter.NewScanner().ScanFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse scenario: %w", err)
	}

	cfg := config.Get()
	s, err := scenario.Normalize(raw, cfg.Currencies.Energy, cfg.Currencies.Capital)
	if err != nil {
		return fmt.Errorf("failed to normalize scenario: %w", err)
	}

	result := engine.New(cfg.Bins).Run(s)

	report := &output.Report{
		Result: result,
		Metadata: output.Metadata{
			Timestamp: time.Now().Format(time.RFC3339),
			Duration:  time.Since(startTime).String(),
			Version:   version,
			Source:    path,
		},
	}

	format := output.Format(cfg.Output.DefaultFormat)
	if outputFormat != "" {
		format = output.Format(outputFormat)
	}

	formatter, err := output.New(format, showDetails)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, report)
}
