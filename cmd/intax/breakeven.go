package main

import (
	"fmt"

	"github.com/rgehrsitz/intax/internal/breakeven"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven [profile-file]",
	Short: "Solve for break-even deductions or the gross salary for a target in-hand income",
	Long: `Searches for the point where a goal is first met:

  deductions  smallest 80C+80D claim at which the old regime costs no more than the new one
  in-hand     smallest gross salary whose first-year in-hand income reaches --monthly-in-hand

Without a profile file an empty profile is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := domain.Profile{}
		if len(args) == 1 {
			loaded, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			profile = *loaded
		}
		profile, err := applyWhatIfs(cmd, profile)
		if err != nil {
			return err
		}

		req := breakeven.Request{Profile: profile}
		targetFlag, _ := cmd.Flags().GetString("target")
		switch targetFlag {
		case "deductions":
			req.Target = breakeven.TargetDeductions
		case "in-hand":
			req.Target = breakeven.TargetGrossForInHand
			monthlyFlag, _ := cmd.Flags().GetString("monthly-in-hand")
			if monthlyFlag == "" {
				return fmt.Errorf("--monthly-in-hand is required for the in-hand target")
			}
			monthly, err := config.ParseAmount("monthly-in-hand", monthlyFlag)
			if err != nil {
				return err
			}
			req.TargetMonthlyInHand = &monthly
		default:
			return fmt.Errorf("unknown target %q (available: deductions, in-hand)", targetFlag)
		}

		if req.MinGross, err = optionalAmount(cmd, "min-gross"); err != nil {
			return err
		}
		if req.MaxGross, err = optionalAmount(cmd, "max-gross"); err != nil {
			return err
		}

		solver := breakeven.NewDefaultSolver(newEngine(cmd))
		result, err := solver.Solve(cmd.Context(), req)
		if err != nil {
			return err
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		var out string
		switch outputFormat {
		case "table":
			out = (&breakeven.TableFormatter{}).Format(result)
		case "json":
			out, err = (&breakeven.JSONFormatter{Pretty: true}).Format(result)
			if err != nil {
				return err
			}
			out += "\n"
		default:
			return fmt.Errorf("unknown format %q (available: table, json)", outputFormat)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func optionalAmount(cmd *cobra.Command, flag string) (*decimal.Decimal, error) {
	v, _ := cmd.Flags().GetString(flag)
	if v == "" {
		return nil, nil
	}
	amount, err := config.ParseAmount(flag, v)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
