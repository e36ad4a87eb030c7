package breakeven

import (
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/shopspring/decimal"
)

// Target defines what the solver searches for
type Target string

const (
	// TargetDeductions finds the smallest 80C+80D claim at which the old
	// regime costs no more than the new regime
	TargetDeductions Target = "deductions"
	// TargetGrossForInHand finds the gross salary that reaches a monthly
	// in-hand income
	TargetGrossForInHand Target = "gross_for_in_hand"
)

// DefaultMaxGross bounds the in-hand search when no MaxGross is given
var DefaultMaxGross = decimal.NewFromInt(100000000)

// Request defines the parameters for a solver run
type Request struct {
	Target  Target
	Profile domain.Profile

	// TargetMonthlyInHand is required for TargetGrossForInHand
	TargetMonthlyInHand *decimal.Decimal `json:"target_monthly_in_hand,omitempty"`
	MinGross            *decimal.Decimal `json:"min_gross,omitempty"`
	MaxGross            *decimal.Decimal `json:"max_gross,omitempty"`

	MaxIterations int
}

// Result contains the outcome of a solver run
type Result struct {
	Request         Request `json:"-"`
	Target          Target  `json:"target"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergence_info"`

	RequiredDeductions *domain.Deductions `json:"required_deductions,omitempty"`
	RequiredGross      *decimal.Decimal   `json:"required_gross,omitempty"`

	// Year is the report evaluated at the solution
	Year domain.YearReport `json:"year"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{MaxIterations: 64}
}

// Validate checks the request is complete and internally consistent
func (r *Request) Validate() error {
	switch r.Target {
	case TargetDeductions:
	case TargetGrossForInHand:
		if r.TargetMonthlyInHand == nil {
			return &BreakEvenError{Operation: "validate_request", Message: "target monthly in-hand income is required"}
		}
		if r.TargetMonthlyInHand.IsNegative() {
			return &BreakEvenError{Operation: "validate_request", Message: "target monthly in-hand income cannot be negative"}
		}
	default:
		return &BreakEvenError{Operation: "validate_request", Message: "unsupported target: " + string(r.Target)}
	}

	if r.MinGross != nil && r.MaxGross != nil && r.MinGross.GreaterThan(*r.MaxGross) {
		return &BreakEvenError{Operation: "validate_request", Message: "min_gross cannot be greater than max_gross"}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
