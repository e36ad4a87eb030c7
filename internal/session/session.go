// Package session drives the interactive salary and tax walkthrough: it
// prompts for a profile line by line, prints each year's report and offers to
// roll forward to the next year with a salary hike.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/config"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/output"
	"github.com/shopspring/decimal"
)

// errInputClosed marks the end of the input stream
var errInputClosed = errors.New("input closed")

// Session is one interactive run over a reader and writer pair
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *calculation.CalculationEngine

	// NewRegime selects the new-regime edition; empty means the default
	NewRegime string
	// StartYear labels the first fiscal year; zero leaves years unlabelled
	StartYear int
}

// New creates a session reading answers from r and writing prompts to w
func New(r io.Reader, w io.Writer, engine *calculation.CalculationEngine) *Session {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if engine.Logger == nil {
		engine.SetLogger(nil)
	}
	return &Session{
		in:     bufio.NewScanner(r),
		out:    w,
		engine: engine,
	}
}

// Run collects a profile and reports year after year until the user stops,
// the input ends or ctx is cancelled. Invalid numeric answers abort the
// calculation with a message and return nil.
func (s *Session) Run(ctx context.Context) error {
	profile, err := s.collectProfile()
	if err != nil {
		return s.finish(err)
	}

	state := domain.InitialYearState(profile)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		yr, err := s.engine.CalculateYear(profile, state)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)
		output.WriteYearReport(s.out, yr)
		if state.Index == 1 {
			s.printPensionNote(profile, yr)
			if !profile.SIP.IsZero() {
				fmt.Fprintln(s.out)
				output.WriteSIPReport(s.out, profile.SIP,
					calculation.ProjectSIP(profile.SIP),
					calculation.ProjectSIPSchedule(profile.SIP))
			}
		}
		fmt.Fprintln(s.out)

		again, err := s.ask("Continue to next year? (yes/no): ")
		if err != nil {
			return s.finish(err)
		}
		if !config.ParseYesNo(again) {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}

		hike, err := s.askPercent("salary hike", "Expected salary hike % for next year: ", decimal.Zero)
		if err != nil {
			return s.finish(err)
		}
		state = state.Next(hike)
		s.engine.Logger.Debugf("session advanced to year %d, salary %s", state.Index, state.Salary.StringFixed(2))
	}
}

// finish turns input errors into a user message and a clean exit
func (s *Session) finish(err error) error {
	switch {
	case errors.Is(err, errInputClosed):
		fmt.Fprintln(s.out)
		return nil
	case errors.Is(err, config.ErrInvalidNumericInput):
		fmt.Fprintf(s.out, "\nInvalid input. %v\nCalculation aborted.\n", err)
		return nil
	}
	return err
}

func (s *Session) collectProfile() (domain.Profile, error) {
	p := domain.Profile{
		StartYear: s.StartYear,
		NewRegime: s.NewRegime,
		Years:     1,
	}
	var err error

	if p.AnnualSalary, err = s.askAmount("salary", "Enter your annual salary in INR: ", nil); err != nil {
		return p, err
	}

	answer, err := s.ask("Do you contribute to a pension fund? (yes/no): ")
	if err != nil {
		return p, err
	}
	p.ContributesPF = config.ParseYesNo(answer)
	if p.ContributesPF {
		prompt := fmt.Sprintf("PF contribution %% of salary [%s]: ", domain.DefaultPFPercent.String())
		if p.PFPercent, err = s.askPercent("PF percent", prompt, domain.DefaultPFPercent); err != nil {
			return p, err
		}
	}

	zero := decimal.Zero
	expenses, err := s.askAmount("monthly expenses", "Monthly expenses in INR [0]: ", &zero)
	if err != nil {
		return p, err
	}
	if !expenses.IsZero() {
		p.Expenses = []domain.ExpenseItem{{Name: "Living expenses", Monthly: expenses}}
	}

	if p.Deductions.Section80C, err = s.askAmount("80C", "Section 80C investments in INR (capped at 1,50,000) [0]: ", &zero); err != nil {
		return p, err
	}
	if p.Deductions.Section80D, err = s.askAmount("80D", "Section 80D medical insurance in INR (capped at 50,000) [0]: ", &zero); err != nil {
		return p, err
	}
	if p.MonthlySavingsGoal, err = s.askAmount("savings goal", "Monthly savings goal in INR [0]: ", &zero); err != nil {
		return p, err
	}

	if p.SIP.MonthlyContribution, err = s.askAmount("SIP contribution", "Monthly SIP contribution in INR [0]: ", &zero); err != nil {
		return p, err
	}
	if p.SIP.MonthlyContribution.GreaterThan(decimal.Zero) {
		if p.SIP.AnnualReturnPct, err = s.askPercent("SIP return", "Expected annual return %: ", decimal.Zero); err != nil {
			return p, err
		}
		line, err := s.ask("SIP duration in years: ")
		if err != nil {
			return p, err
		}
		if p.SIP.DurationYears, err = config.ParseYears("SIP duration", line); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *Session) printPensionNote(p domain.Profile, yr domain.YearReport) {
	if p.ContributesPF {
		fmt.Fprintf(s.out, "\nEstimated pension contribution %s may be claimed under Section 80C.\n",
			output.FormatINR(yr.PFContribution))
		return
	}
	fmt.Fprintln(s.out, "\nNo pension contribution detected.")
}

// ask prints a prompt and returns the next trimmed line
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// askAmount reads a rupee amount; a blank answer yields def when it is set
func (s *Session) askAmount(field, prompt string, def *decimal.Decimal) (decimal.Decimal, error) {
	line, err := s.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	if line == "" && def != nil {
		return *def, nil
	}
	return config.ParseAmount(field, line)
}

func (s *Session) askPercent(field, prompt string, def decimal.Decimal) (decimal.Decimal, error) {
	line, err := s.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	if line == "" {
		return def, nil
	}
	return config.ParsePercent(field, line)
}
