package schedule

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/shopspring/decimal"
)

// ErrInvalidParameter is returned for a non-positive term or loan amount or a
// negative interest rate.
var ErrInvalidParameter = errors.New("invalid mortgage parameter")

var monthsPerYear = decimal.NewFromInt(constants.MonthsPerYear)

// Parameters holds the loan term, amount and annual interest rate of a
// mortgage. It is never modified once constructed.
type Parameters struct {
	loanTerm     int
	loanAmount   decimal.Decimal
	interestRate decimal.Decimal
}

// NewParameters validates and returns a Parameters value.
func NewParameters(loanTerm int, loanAmount, interestRate decimal.Decimal) (Parameters, error) {
	p := Parameters{
		loanTerm:     loanTerm,
		loanAmount:   loanAmount,
		interestRate: interestRate,
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate reports whether the parameters describe a computable mortgage.
func (p Parameters) Validate() error {
	if p.loanTerm <= 0 {
		return fmt.Errorf("%w: loan term must be positive, got %d", ErrInvalidParameter, p.loanTerm)
	}
	if !p.loanAmount.IsPositive() {
		return fmt.Errorf("%w: loan amount must be positive, got %s", ErrInvalidParameter, p.loanAmount)
	}
	if p.interestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate must not be negative, got %s", ErrInvalidParameter, p.interestRate)
	}
	return nil
}

// LoanTerm returns the term in months.
func (p Parameters) LoanTerm() int { return p.loanTerm }

// LoanAmount returns the borrowed principal.
func (p Parameters) LoanAmount() decimal.Decimal { return p.loanAmount }

// InterestRate returns the annual interest rate in percent.
func (p Parameters) InterestRate() decimal.Decimal { return p.interestRate }

// MonthlyRatio is the annual percentage divided by twelve, still expressed in
// percent. Interest for a month is balance * MonthlyRatio / 100.
func (p Parameters) MonthlyRatio() decimal.Decimal {
	return p.interestRate.Div(monthsPerYear)
}

// MonthlyCompoundRate is the periodic rate as a fraction, used by the annuity
// payment formula.
func (p Parameters) MonthlyCompoundRate() float64 {
	return p.interestRate.InexactFloat64() / constants.PercentageMultiplier / constants.MonthsPerYear
}
