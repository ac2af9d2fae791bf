package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "income-engine",
	Short: "Deterministic retirement income projection",
	Long: `income-engine projects retirement cash flow year by year: Social Security
benefits by filing age, a longevity estimate with survival probabilities, and
phased spending against pension, portfolio withdrawal, and other income.

All projections are deterministic; portfolio withdrawal amounts are inputs,
not simulated.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
