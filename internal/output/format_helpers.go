package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in rupees with Indian digit grouping
// (last three digits, then pairs): ₹12,34,567.89
func FormatINR(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "₹" + groupIndian(intPart) + frac
}

// groupIndian inserts lakh/crore separators into a string of digits
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatPercentage formats a fraction (0.0563) as a percentage (5.63%)
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatRegimeLabel turns a regime identifier into a display label
func FormatRegimeLabel(name string) string {
	switch {
	case name == "old":
		return "Old Regime"
	case strings.HasPrefix(name, "new-fy"):
		return "New Regime (FY" + strings.ToUpper(strings.TrimPrefix(name, "new-fy")) + ")"
	case name == "new":
		return "New Regime"
	}
	return name
}
