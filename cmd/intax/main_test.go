package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleProfile = "../../test/testdata/example_profile.yaml"

// execute runs the root command with args and returns combined output
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "intax", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "validate", "session", "sip", "compare", "regimes", "breakeven", "version"}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %s not registered", name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "", "invalid-command")
	assert.Error(t, err)
}

func TestCalculateCommand(t *testing.T) {
	out, err := execute(t, "", "calculate", exampleProfile, "-f", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "INCOME TAX & IN-HAND SALARY REPORT")
	assert.Contains(t, out, "YEAR 3 (FY2027-28)")
	assert.Contains(t, out, "SIP PROJECTION")

	out, err = execute(t, "", "calculate", exampleProfile, "-f", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = execute(t, "", "calculate", exampleProfile, "-f", "pdf")
	assert.Error(t, err)

	_, err = execute(t, "", "calculate", exampleProfile, "-f", "console", "--new-regime", "new-fy1999-00")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "", "validate", exampleProfile)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("annual_salary: -1\n"), 0o644))
	_, err = execute(t, "", "validate", bad)
	assert.Error(t, err)
}

func TestSIPCommand(t *testing.T) {
	out, err := execute(t, "", "sip", "--monthly", "1000", "--rate", "0", "--years", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "₹12,000.00")

	_, err = execute(t, "", "sip", "--monthly", "lots", "--rate", "12", "--years", "10")
	assert.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "", "compare", "--income", "12,00,000", "--80c", "150000", "--80d", "25000", "--with=", "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "TAX REGIME COMPARISON")
	assert.Contains(t, out, "New Regime (FY2023-24)")

	out, err = execute(t, "", "compare", "--income", "1200000", "--with", "new", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(strings.TrimSpace(out), "\n")+1)

	_, err = execute(t, "", "compare", "--income", "1200000", "--with=", "-f", "xml")
	assert.Error(t, err)
}

func TestRegimesCommand(t *testing.T) {
	out, err := execute(t, "", "regimes")
	require.NoError(t, err)
	assert.Contains(t, out, "old - Old Regime")
	assert.Contains(t, out, "(default new regime)")
	assert.Contains(t, out, "Section 87A rebate up to ₹12,00,000.00")
}

func TestSessionCommand(t *testing.T) {
	out, err := execute(t, "700000\nno\n\n\n\n\n\nno\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "YEAR 1")
	assert.Contains(t, out, "Goodbye.")
}

func TestCalculateCommand_WhatIf(t *testing.T) {
	t.Cleanup(func() { _ = calculateCmd.Flags().Set("what-if", "") })

	out, err := execute(t, "", "calculate", exampleProfile, "-f", "json", "-y", "1", "--new-regime", "new",
		"--what-if", "set_salary:amount=700000; set_pf:pct=0")
	require.NoError(t, err)

	var report struct {
		Years []struct {
			GrossIncome string `json:"gross_income"`
		} `json:"years"`
	}
	jsonStart := strings.Index(out, "{")
	require.GreaterOrEqual(t, jsonStart, 0)
	require.NoError(t, json.Unmarshal([]byte(out[jsonStart:]), &report))
	require.Len(t, report.Years, 1)
	assert.Equal(t, "700000", report.Years[0].GrossIncome)
	assert.Contains(t, out, "What-if: Set salary to ₹7,00,000.00")

	_, err = execute(t, "", "calculate", exampleProfile, "-f", "json", "-y", "1", "--new-regime", "new", "--what-if", "buy_house:amount=5000000")
	assert.Error(t, err)
}

func TestBreakevenCommand(t *testing.T) {
	out, err := execute(t, "", "breakeven", "--target", "in-hand", "--monthly-in-hand", "150000", "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "BREAK-EVEN ANALYSIS")
	assert.Contains(t, out, "₹20,10,811.00")

	out, err = execute(t, "", "breakeven", exampleProfile, "--target", "deductions", "-f", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, `"target": "deductions"`)

	_, err = execute(t, "", "breakeven", "--target", "in-hand", "--monthly-in-hand", "", "-f", "table")
	assert.Error(t, err)

	_, err = execute(t, "", "breakeven", "--target", "pension", "-f", "table")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "intax dev")
}
