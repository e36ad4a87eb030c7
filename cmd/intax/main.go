package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "intax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// newEngine builds a calculation engine honouring the --debug flag
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine
}

var rootCmd = &cobra.Command{
	Use:          "intax",
	Short:        "Indian income tax and in-hand salary calculator",
	Long:         "Compares old and new regime income tax, works out in-hand salary after PF, expenses and savings, and projects SIP growth.",
	SilenceUsage: true,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [profile-file]",
	Short: "Calculate tax and in-hand income for a YAML profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		if regime, _ := cmd.Flags().GetString("new-regime"); regime != "" {
			if _, err := calculation.LookupRegime(regime); err != nil {
				return err
			}
			profile.NewRegime = regime
		}
		if years, _ := cmd.Flags().GetInt("years"); years > 0 {
			profile.Years = years
		}
		adjusted, err := applyWhatIfs(cmd, *profile)
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		report, err := engine.ProjectYears(adjusted)
		if err != nil {
			return err
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			return fmt.Errorf("unknown format %q (available: %v)", outputFormat, output.AvailableFormatterNames())
		}
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", args[0])
		return nil
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, html, json, csv)")
	calculateCmd.Flags().String("new-regime", "", "New regime edition to compare against (default: "+calculation.DefaultNewRegime+")")
	calculateCmd.Flags().IntP("years", "y", 0, "Override the number of years to project")
	calculateCmd.Flags().String("what-if", "", whatIfUsage())
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	sessionCmd.Flags().String("new-regime", "", "New regime edition to compare against")
	sessionCmd.Flags().Int("start-year", 0, "Fiscal year the session starts in, e.g. 2025")
	sessionCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	sipCmd.Flags().String("monthly", "", "Monthly contribution in INR (required)")
	sipCmd.Flags().String("rate", "12", "Expected annual return %")
	sipCmd.Flags().String("years", "", "Investment duration in years (required)")
	_ = sipCmd.MarkFlagRequired("monthly")
	_ = sipCmd.MarkFlagRequired("years")

	compareCmd.Flags().String("income", "", "Gross annual income in INR (required)")
	compareCmd.Flags().String("80c", "0", "Section 80C claim in INR")
	compareCmd.Flags().String("80d", "0", "Section 80D claim in INR")
	compareCmd.Flags().String("base", calculation.RegimeOld, "Regime to compare against")
	compareCmd.Flags().String("with", "", "Comma-separated regimes to compare (default: all)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	_ = compareCmd.MarkFlagRequired("income")

	breakevenCmd.Flags().String("target", "deductions", "What to solve for (deductions, in-hand)")
	breakevenCmd.Flags().String("monthly-in-hand", "", "Monthly in-hand income to reach, for the in-hand target")
	breakevenCmd.Flags().String("min-gross", "", "Lower bound of the gross salary search")
	breakevenCmd.Flags().String("max-gross", "", "Upper bound of the gross salary search")
	breakevenCmd.Flags().String("what-if", "", whatIfUsage())
	breakevenCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	breakevenCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(sipCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(regimesCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
