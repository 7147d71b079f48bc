// Package effectiverate derives the annual effective interest rate of a loan
// from its cash-flow series.
package effectiverate

import (
	"errors"
	"math"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	// ErrUndefinedRate is returned when the series lacks either an inflow or
	// an outflow, so no rate of return exists.
	ErrUndefinedRate = errors.New("effective rate undefined for cash flows without both inflows and outflows")

	// ErrNoConvergence is returned when the solver exhausts its iterations.
	ErrNoConvergence = errors.New("effective rate did not converge")
)

const (
	defaultMaxIterations = 200
	defaultTolerance     = 1e-10

	// Monthly rate search interval.
	lowerBound = -0.5
	upperBound = 10.0
)

// Calculator computes an annual effective rate, in whole percent, from a
// series of monthly cash flows starting with the disbursement.
type Calculator interface {
	Compute(cashFlows []decimal.Decimal) (int, error)
}

// IRR solves for the monthly internal rate of return by bisection and
// compounds it over a year.
type IRR struct {
	MaxIterations int
	Tolerance     float64
}

// NewIRR returns an IRR calculator with default solver settings.
func NewIRR() *IRR {
	return &IRR{
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
	}
}

// Compute returns the annual effective rate rounded to the nearest percent.
func (c *IRR) Compute(cashFlows []decimal.Decimal) (int, error) {
	monthly, err := c.MonthlyRate(cashFlows)
	if err != nil {
		return 0, err
	}
	annual := math.Pow(1+monthly, constants.MonthsPerYear) - 1
	return int(math.Round(annual * constants.PercentageMultiplier)), nil
}

// MonthlyRate returns the periodic rate r at which the net present value of
// cashFlows is zero.
func (c *IRR) MonthlyRate(cashFlows []decimal.Decimal) (float64, error) {
	flows := make([]float64, len(cashFlows))
	var hasInflow, hasOutflow bool
	for i, cf := range cashFlows {
		flows[i] = cf.InexactFloat64()
		switch {
		case cf.IsPositive():
			hasInflow = true
		case cf.IsNegative():
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, ErrUndefinedRate
	}

	maxIterations := c.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}
	tolerance := c.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	lo, hi := lowerBound, upperBound
	npvLo := npv(flows, lo)
	if npvLo*npv(flows, hi) > 0 {
		return 0, ErrNoConvergence
	}

	for i := 0; i < maxIterations; i++ {
		mid := (lo + hi) / 2
		npvMid := npv(flows, mid)
		if math.Abs(npvMid) < tolerance || (hi-lo)/2 < tolerance {
			return mid, nil
		}
		if npvMid*npvLo < 0 {
			hi = mid
		} else {
			lo, npvLo = mid, npvMid
		}
	}
	return 0, ErrNoConvergence
}

func npv(flows []float64, rate float64) float64 {
	total := 0.0
	discount := 1.0
	for _, cf := range flows {
		total += cf / discount
		discount *= 1 + rate
	}
	return total
}
