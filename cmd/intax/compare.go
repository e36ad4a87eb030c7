package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/compare"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare tax on one income across regimes",
	Long: `Compare tax on one income across the old regime and every new-regime edition.

Examples:
  intax compare --income 1200000 --80c 150000 --80d 25000
  intax compare --income "₹18,00,000" --with new-fy2024-25,new-fy2025-26 -f csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incomeFlag, _ := cmd.Flags().GetString("income")
		c80Flag, _ := cmd.Flags().GetString("80c")
		d80Flag, _ := cmd.Flags().GetString("80d")
		baseRegime, _ := cmd.Flags().GetString("base")
		withFlag, _ := cmd.Flags().GetString("with")
		outputFormat, _ := cmd.Flags().GetString("format")

		income, err := config.ParseAmount("income", incomeFlag)
		if err != nil {
			return err
		}
		var deductions domain.Deductions
		if deductions.Section80C, err = config.ParseAmount("80c", c80Flag); err != nil {
			return err
		}
		if deductions.Section80D, err = config.ParseAmount("80d", d80Flag); err != nil {
			return err
		}

		var regimes []string
		if withFlag != "" {
			for _, name := range strings.Split(withFlag, ",") {
				if name = strings.TrimSpace(name); name != "" {
					regimes = append(regimes, name)
				}
			}
		}

		ce := compare.NewCompareEngine(newEngine(cmd))
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		compSet, err := ce.Compare(ctx, compare.CompareOptions{
			GrossIncome: income,
			Deductions:  deductions,
			BaseRegime:  baseRegime,
			Regimes:     regimes,
		})
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}

		var out string
		switch strings.ToLower(outputFormat) {
		case "table", "":
			out = (&compare.TableFormatter{}).Format(compSet)
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(compSet)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		default:
			return fmt.Errorf("unknown format %q (valid: table, csv, json)", outputFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var regimesCmd = &cobra.Command{
	Use:   "regimes",
	Short: "List the available tax regimes and their slabs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, name := range calculation.RegimeNames() {
			regime, err := calculation.LookupRegime(name)
			if err != nil {
				continue
			}
			marker := ""
			if name == calculation.DefaultNewRegime {
				marker = " (default new regime)"
			}
			fmt.Fprintf(w, "%s - %s%s\n", regime.Name, regime.Label, marker)

			lower := decimal.Zero
			for _, b := range regime.Brackets {
				if b.IsOpen() {
					fmt.Fprintf(w, "  above %-22s %s\n", output.FormatINR(lower), output.FormatPercentage(b.Rate))
					continue
				}
				span := fmt.Sprintf("%s - %s", output.FormatINR(lower), output.FormatINR(*b.UpperBound))
				fmt.Fprintf(w, "  %-28s %s\n", span, output.FormatPercentage(b.Rate))
				lower = *b.UpperBound
			}
			fmt.Fprintf(w, "  Section 87A rebate up to %s\n", output.FormatINR(regime.RebateThreshold))
			if regime.AllowsDeductions {
				fmt.Fprintln(w, "  Allows Section 80C/80D deductions")
			}
			fmt.Fprintln(w)
		}
	},
}
