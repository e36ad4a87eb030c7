package calculation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// REGIME TABLES:
//
// Old regime: 0-2.5L nil, 2.5-5L 5%, 5-10L 20%, above 30%. 87A rebate up to 5L.
//
// New regime editions differ by fiscal year. All three are exposed by name;
// "new" resolves to DefaultNewRegime.
//   - FY2023-24: 3L steps from 3L to 15L, rebate up to 7L
//   - FY2024-25: revised 3-7L/7-10L slabs, rebate up to 7L
//   - FY2025-26: 4L steps from 4L to 24L, rebate up to 12L
//
// Cess is 4% on any non-rebated tax in every regime.

const (
	RegimeOld          = "old"
	RegimeNew          = "new"
	RegimeNewFY2023_24 = "new-fy2023-24"
	RegimeNewFY2024_25 = "new-fy2024-25"
	RegimeNewFY2025_26 = "new-fy2025-26"

	DefaultNewRegime = RegimeNewFY2025_26
)

// ErrUnknownRegime is returned by LookupRegime for names not in the registry
var ErrUnknownRegime = errors.New("unknown tax regime")

var cessRate = decimal.NewFromFloat(0.04)

var regimeBuilders = map[string]func() domain.TaxRegime{
	RegimeOld:          OldRegime,
	RegimeNewFY2023_24: NewRegimeFY2023_24,
	RegimeNewFY2024_25: NewRegimeFY2024_25,
	RegimeNewFY2025_26: NewRegimeFY2025_26,
}

// lakh returns n lakh rupees as a bracket bound
func lakh(n float64) *decimal.Decimal {
	v := decimal.NewFromFloat(n).Mul(decimal.NewFromInt(100000))
	return &v
}

func rate(pct int64) decimal.Decimal {
	return decimal.New(pct, -2)
}

// OldRegime returns the old tax regime. Each call builds a fresh value so
// callers can never share or mutate a slab table.
func OldRegime() domain.TaxRegime {
	return domain.TaxRegime{
		Name:  RegimeOld,
		Label: "Old Regime",
		Brackets: []domain.TaxBracket{
			{UpperBound: lakh(2.5), Rate: rate(0)},
			{UpperBound: lakh(5), Rate: rate(5)},
			{UpperBound: lakh(10), Rate: rate(20)},
			{Rate: rate(30)},
		},
		RebateThreshold:  *lakh(5),
		CessRate:         cessRate,
		AllowsDeductions: true,
	}
}

// NewRegimeFY2023_24 returns the new regime as introduced for FY2023-24
func NewRegimeFY2023_24() domain.TaxRegime {
	return domain.TaxRegime{
		Name:  RegimeNewFY2023_24,
		Label: "New Regime (FY2023-24)",
		Brackets: []domain.TaxBracket{
			{UpperBound: lakh(3), Rate: rate(0)},
			{UpperBound: lakh(6), Rate: rate(5)},
			{UpperBound: lakh(9), Rate: rate(10)},
			{UpperBound: lakh(12), Rate: rate(15)},
			{UpperBound: lakh(15), Rate: rate(20)},
			{Rate: rate(30)},
		},
		RebateThreshold: *lakh(7),
		CessRate:        cessRate,
	}
}

// NewRegimeFY2024_25 returns the new regime with the FY2024-25 slab revision
func NewRegimeFY2024_25() domain.TaxRegime {
	return domain.TaxRegime{
		Name:  RegimeNewFY2024_25,
		Label: "New Regime (FY2024-25)",
		Brackets: []domain.TaxBracket{
			{UpperBound: lakh(3), Rate: rate(0)},
			{UpperBound: lakh(7), Rate: rate(5)},
			{UpperBound: lakh(10), Rate: rate(10)},
			{UpperBound: lakh(12), Rate: rate(15)},
			{UpperBound: lakh(15), Rate: rate(20)},
			{Rate: rate(30)},
		},
		RebateThreshold: *lakh(7),
		CessRate:        cessRate,
	}
}

// NewRegimeFY2025_26 returns the new regime for FY2025-26
func NewRegimeFY2025_26() domain.TaxRegime {
	return domain.TaxRegime{
		Name:  RegimeNewFY2025_26,
		Label: "New Regime (FY2025-26)",
		Brackets: []domain.TaxBracket{
			{UpperBound: lakh(4), Rate: rate(0)},
			{UpperBound: lakh(8), Rate: rate(5)},
			{UpperBound: lakh(12), Rate: rate(10)},
			{UpperBound: lakh(16), Rate: rate(15)},
			{UpperBound: lakh(20), Rate: rate(20)},
			{UpperBound: lakh(24), Rate: rate(25)},
			{Rate: rate(30)},
		},
		RebateThreshold: *lakh(12),
		CessRate:        cessRate,
	}
}

// NewRegime returns the default new-regime edition
func NewRegime() domain.TaxRegime {
	return regimeBuilders[DefaultNewRegime]()
}

// NormalizeRegimeName lowers the name and resolves the "new" alias
func NormalizeRegimeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", RegimeNew:
		return DefaultNewRegime
	}
	return n
}

// LookupRegime returns the named regime. An empty name or "new" yields the
// default new-regime edition.
func LookupRegime(name string) (domain.TaxRegime, error) {
	build, ok := regimeBuilders[NormalizeRegimeName(name)]
	if !ok {
		return domain.TaxRegime{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownRegime, name, strings.Join(RegimeNames(), ", "))
	}
	return build(), nil
}

// RegimeNames returns the registered regime names in sorted order
func RegimeNames() []string {
	names := make([]string, 0, len(regimeBuilders))
	for n := range regimeBuilders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewRegimeNames returns only the new-regime editions
func NewRegimeNames() []string {
	var names []string
	for _, n := range RegimeNames() {
		if n != RegimeOld {
			names = append(names, n)
		}
	}
	return names
}
