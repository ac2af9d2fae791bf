package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retirekit/income-engine/internal/config"
)

var exampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a starter plan file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if err := parser.WriteExamplePlan(exampleOut); err != nil {
			return fmt.Errorf("writing example plan: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exampleOut)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOut, "output", "o", "plan.yaml", "path for the example plan")
	rootCmd.AddCommand(exampleCmd)
}
