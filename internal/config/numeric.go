package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumericInput is matched by every InvalidNumericInputError
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// InvalidNumericInputError reports user text that is not an acceptable number
type InvalidNumericInputError struct {
	Field  string
	Input  string
	Reason string
}

func (e *InvalidNumericInputError) Error() string {
	return fmt.Sprintf("%s: %q is not valid: %s", e.Field, e.Input, e.Reason)
}

// Is lets errors.Is match ErrInvalidNumericInput
func (e *InvalidNumericInputError) Is(target error) bool {
	return target == ErrInvalidNumericInput
}

// cleanNumber strips currency symbols, grouping commas and whitespace
func cleanNumber(s string) string {
	r := strings.NewReplacer(",", "", "₹", "", "_", "", " ", "")
	out := r.Replace(strings.TrimSpace(s))
	out = strings.TrimPrefix(strings.TrimPrefix(out, "Rs."), "INR")
	return strings.TrimSuffix(out, "%")
}

// ParseAmount parses a non-negative rupee amount such as "12,50,000" or
// "₹ 1500.50".
func ParseAmount(field, input string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(cleanNumber(input))
	if err != nil {
		return decimal.Zero, &InvalidNumericInputError{Field: field, Input: input, Reason: "not a number"}
	}
	if v.LessThan(decimal.Zero) {
		return decimal.Zero, &InvalidNumericInputError{Field: field, Input: input, Reason: "must not be negative"}
	}
	return v, nil
}

// ParsePercent parses a percentage in [0, 100]; a trailing % is allowed
func ParsePercent(field, input string) (decimal.Decimal, error) {
	v, err := ParseAmount(field, input)
	if err != nil {
		return v, err
	}
	if v.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, &InvalidNumericInputError{Field: field, Input: input, Reason: "must be at most 100"}
	}
	return v, nil
}

// ParseYears parses a positive whole number of years
func ParseYears(field, input string) (int, error) {
	n, err := strconv.Atoi(cleanNumber(input))
	if err != nil {
		return 0, &InvalidNumericInputError{Field: field, Input: input, Reason: "not a whole number"}
	}
	if n < 1 || n > MaxProjectionYears {
		return 0, &InvalidNumericInputError{Field: field, Input: input, Reason: fmt.Sprintf("must be between 1 and %d", MaxProjectionYears)}
	}
	return n, nil
}

// ParseYesNo interprets yes/no answers; anything else is false
func ParseYesNo(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
