package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/retirekit/income-engine/internal/calculation"
	"github.com/retirekit/income-engine/internal/config"
	"github.com/retirekit/income-engine/internal/output"
)

var (
	calculateFormat string
	calculateDebug  bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate <plan-file>",
	Short: "Run the income projection for a plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}

		engine := calculation.NewCalculationEngine()
		engine.Debug = calculateDebug
		if calculateDebug {
			engine.SetLogger(calculation.StdLogger{})
		}

		comparison, err := engine.RunPlan(plan)
		if err != nil {
			return fmt.Errorf("running plan: %w", err)
		}

		return output.GenerateReport(comparison, calculateFormat)
	},
}

func init() {
	// Debug chatter goes to stderr so piped report output stays clean.
	log.SetOutput(os.Stderr)
	calculateCmd.Flags().StringVarP(&calculateFormat, "format", "f", "console", "output format: console, json, csv, detailed-csv")
	calculateCmd.Flags().BoolVar(&calculateDebug, "debug", false, "log per-scenario calculation detail")
	rootCmd.AddCommand(calculateCmd)
}
