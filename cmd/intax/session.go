package main

import (
	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/session"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run the interactive salary and tax walkthrough",
	Long:  "Prompts for salary, pension, expenses, deductions and SIP inputs, prints a yearly report and optionally rolls forward with a salary hike.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		regime, _ := cmd.Flags().GetString("new-regime")
		if regime != "" {
			if _, err := calculation.LookupRegime(regime); err != nil {
				return err
			}
		}
		startYear, _ := cmd.Flags().GetInt("start-year")

		s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), newEngine(cmd))
		s.NewRegime = regime
		s.StartYear = startYear
		return s.Run(cmd.Context())
	},
}
