package breakeven

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgehrsitz/intax/internal/calculation"
	"github.com/rgehrsitz/intax/internal/domain"
	"github.com/rgehrsitz/intax/internal/transform"
	"github.com/shopspring/decimal"
)

// Solver runs rupee-granular binary searches over the calculation engine
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{CalcEngine: calcEngine, Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve routes the request to the solver for its target
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if s.CalcEngine == nil {
		s.CalcEngine = calculation.NewCalculationEngine()
	}
	if s.CalcEngine.Logger == nil {
		s.CalcEngine.SetLogger(nil)
	}

	switch req.Target {
	case TargetDeductions:
		return s.solveDeductions(ctx, req)
	default:
		return s.solveGrossForInHand(ctx, req)
	}
}

// predicate reports whether a candidate value meets the goal, along with the
// year report it was judged on
type predicate func(v int64) (bool, domain.YearReport, error)

// bisect finds the smallest v in (lo, hi] with ok(v) true, given ok(lo) is
// false, ok(hi) is true and ok is monotone over the range.
func (s *Solver) bisect(ctx context.Context, req Request, lo, hi int64, ok predicate) (int64, int, error) {
	iterations := 0
	for hi-lo > 1 {
		if iterations >= req.MaxIterations {
			return hi, iterations, &BreakEvenError{
				Operation: "bisect",
				Message:   fmt.Sprintf("did not converge after %d iterations", req.MaxIterations),
			}
		}
		iterations++

		select {
		case <-ctx.Done():
			return hi, iterations, ctx.Err()
		default:
		}

		mid := lo + (hi-lo)/2
		met, _, err := ok(mid)
		if err != nil {
			return hi, iterations, err
		}
		if met {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, iterations, nil
}

// splitDeductions fills 80C first and puts any remainder in 80D
func splitDeductions(total int64) domain.Deductions {
	amount := decimal.NewFromInt(total)
	c := decimal.Min(amount, domain.Section80CCap)
	d := decimal.Min(amount.Sub(c), domain.Section80DCap)
	return domain.Deductions{Section80C: c, Section80D: d}
}

func (s *Solver) solveDeductions(ctx context.Context, req Request) (*Result, error) {
	profile := req.Profile
	state := domain.InitialYearState(profile)

	ok := func(total int64) (bool, domain.YearReport, error) {
		split := splitDeductions(total)
		p, err := transform.ApplyTransforms(profile, []transform.ProfileTransform{
			&transform.SetDeductions{Section80C: &split.Section80C, Section80D: &split.Section80D},
		})
		if err != nil {
			return false, domain.YearReport{}, &BreakEvenError{Operation: "solve_deductions", Message: "failed to apply deductions", Cause: err}
		}
		yr, err := s.CalcEngine.CalculateYear(p, state)
		if err != nil {
			return false, yr, &BreakEvenError{Operation: "solve_deductions", Message: "failed to calculate year", Cause: err}
		}
		return yr.OldRegime.TaxPayable.LessThanOrEqual(yr.NewRegime.TaxPayable), yr, nil
	}

	result := &Result{Request: req, Target: req.Target}
	maxTotal := domain.Section80CCap.Add(domain.Section80DCap).IntPart()

	met, yr, err := ok(0)
	if err != nil {
		return nil, err
	}
	if met {
		result.Success = true
		result.ConvergenceInfo = "Old regime already costs no more without deductions"
		result.RequiredDeductions = &domain.Deductions{Section80C: decimal.Zero, Section80D: decimal.Zero}
		result.Year = yr
		return result, nil
	}

	met, yr, err = ok(maxTotal)
	if err != nil {
		return nil, err
	}
	if !met {
		result.ConvergenceInfo = "Old regime stays costlier even with full 80C and 80D claims"
		result.Year = yr
		return result, nil
	}

	total, iterations, err := s.bisect(ctx, req, 0, maxTotal, ok)
	result.Iterations = iterations
	if err != nil {
		return nil, err
	}
	_, yr, err = ok(total)
	if err != nil {
		return nil, err
	}
	required := splitDeductions(total)
	result.Success = true
	result.ConvergenceInfo = "Binary search converged"
	result.RequiredDeductions = &required
	result.Year = yr
	s.CalcEngine.Logger.Debugf("break-even deductions %d after %d iterations", total, iterations)
	return result, nil
}

func (s *Solver) solveGrossForInHand(ctx context.Context, req Request) (*Result, error) {
	profile := req.Profile
	target := req.TargetMonthlyInHand.Mul(decimal.NewFromInt(12))

	ok := func(gross int64) (bool, domain.YearReport, error) {
		p, err := transform.ApplyTransforms(profile, []transform.ProfileTransform{
			&transform.SetSalary{Amount: decimal.NewFromInt(gross)},
		})
		if err != nil {
			return false, domain.YearReport{}, &BreakEvenError{Operation: "solve_gross", Message: "failed to apply salary", Cause: err}
		}
		yr, err := s.CalcEngine.CalculateYear(p, domain.InitialYearState(p))
		if err != nil {
			return false, yr, &BreakEvenError{Operation: "solve_gross", Message: "failed to calculate year", Cause: err}
		}
		return yr.InHandAnnual.GreaterThanOrEqual(target), yr, nil
	}

	lo := int64(0)
	if req.MinGross != nil {
		lo = req.MinGross.Floor().IntPart()
	}
	hi := DefaultMaxGross.IntPart()
	if req.MaxGross != nil {
		hi = req.MaxGross.Ceil().IntPart()
	}

	result := &Result{Request: req, Target: req.Target}

	met, yr, err := ok(lo)
	if err != nil {
		return nil, err
	}
	if met {
		gross := decimal.NewFromInt(lo)
		result.Success = true
		result.ConvergenceInfo = "Lower bound already meets the target"
		result.RequiredGross = &gross
		result.Year = yr
		return result, nil
	}

	cliffs, err := rebateCliffs(profile)
	if err != nil {
		return nil, err
	}

	// In-hand only drops just past a rebate cliff, so each segment ending at
	// a cliff is monotone and the first segment whose end meets the target
	// holds the smallest gross.
	segStart := lo
	for _, segEnd := range segmentEnds(lo, hi, cliffs) {
		met, yr, err = ok(segEnd)
		if err != nil {
			return nil, err
		}
		if !met {
			segStart = segEnd
			continue
		}

		gross, iterations, err := s.bisect(ctx, req, segStart, segEnd, ok)
		result.Iterations += iterations
		if err != nil {
			return nil, err
		}
		_, yr, err = ok(gross)
		if err != nil {
			return nil, err
		}
		required := decimal.NewFromInt(gross)
		result.Success = true
		result.ConvergenceInfo = "Binary search converged"
		result.RequiredGross = &required
		result.Year = yr
		s.CalcEngine.Logger.Debugf("break-even gross %d after %d iterations", gross, result.Iterations)
		return result, nil
	}

	result.ConvergenceInfo = fmt.Sprintf("Target is out of reach below a gross of %s", decimal.NewFromInt(hi).StringFixed(0))
	result.Year = yr
	return result, nil
}

// rebateCliffs returns the gross salaries just past which a Section 87A
// rebate is lost, in ascending order
func rebateCliffs(profile domain.Profile) ([]int64, error) {
	newRegime, err := calculation.LookupRegime(profile.NewRegime)
	if err != nil {
		return nil, &BreakEvenError{Operation: "solve_gross", Message: "failed to resolve regime", Cause: err}
	}
	var cliffs []int64
	for _, regime := range []domain.TaxRegime{calculation.OldRegime(), newRegime} {
		cliff := regime.RebateThreshold
		if regime.AllowsDeductions {
			cliff = cliff.Add(profile.Deductions.Total())
		}
		cliffs = append(cliffs, cliff.Floor().IntPart())
	}
	sort.Slice(cliffs, func(i, j int) bool { return cliffs[i] < cliffs[j] })
	return cliffs, nil
}

// segmentEnds returns the cliffs strictly inside (lo, hi) followed by hi
func segmentEnds(lo, hi int64, cliffs []int64) []int64 {
	var ends []int64
	for _, c := range cliffs {
		if c > lo && c < hi && (len(ends) == 0 || ends[len(ends)-1] != c) {
			ends = append(ends, c)
		}
	}
	return append(ends, hi)
}
