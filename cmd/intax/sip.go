package main

import (
	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/spf13/cobra"
)

var sipCmd = &cobra.Command{
	Use:   "sip",
	Short: "Project the corpus of a monthly SIP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthlyFlag, _ := cmd.Flags().GetString("monthly")
		rateFlag, _ := cmd.Flags().GetString("rate")
		yearsFlag, _ := cmd.Flags().GetString("years")

		monthly, err := config.ParseAmount("monthly", monthlyFlag)
		if err != nil {
			return err
		}
		rate, err := config.ParsePercent("rate", rateFlag)
		if err != nil {
			return err
		}
		years, err := config.ParseYears("years", yearsFlag)
		if err != nil {
			return err
		}

		params := domain.SIPParameters{
			MonthlyContribution: monthly,
			AnnualReturnPct:     rate,
			DurationYears:       years,
		}
		output.WriteSIPReport(cmd.OutOrStdout(), params,
			calculation.ProjectSIP(params),
			calculation.ProjectSIPSchedule(params))
		return nil
	},
}
