package schedule

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Annuity computes schedules where every month's total payment is the same.
type Annuity struct {
	logger *zap.Logger
}

// NewAnnuity creates a new annuity schedule.
func NewAnnuity(logger *zap.Logger) *Annuity {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annuity{logger: logger}
}

// Kind returns KindAnnuity.
func (a *Annuity) Kind() Kind {
	return KindAnnuity
}

// Compute builds the full annuity schedule for params.
func (a *Annuity) Compute(params Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	term := params.LoanTerm()
	payment, err := AnnuityPayment(params)
	if err != nil {
		return nil, err
	}

	// Interest uses the percentage ratio while the payment above uses the
	// compound rate; both derivations are kept.
	ratio := params.MonthlyRatio()

	reports := make([]MonthlyReport, 0, term)
	balance := params.LoanAmount()
	totalInterest := decimal.Zero

	for month := 1; month <= term; month++ {
		interest := mathutil.RoundCents(mathutil.PercentOf(balance, ratio))
		totalInterest = totalInterest.Add(interest)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)
		reports = append(reports, newReport(month, payment, interest, principal, balance))
	}

	a.logger.Debug("computed annuity schedule",
		zap.String("op", "schedule.Annuity.Compute"),
		zap.Int("months", term),
		zap.String("payment", payment.StringFixed(2)),
		zap.String("totalInterest", totalInterest.StringFixed(2)),
	)

	return &Result{
		Reports:       reports,
		TotalInterest: mathutil.RoundCents(totalInterest),
		CashFlows:     []decimal.Decimal{mathutil.RoundCents(params.LoanAmount())},
	}, nil
}

// AnnuityPayment returns the constant monthly payment for params using the
// standard annuity formula. A rate too small to change 1+r falls back to
// straight-line division of the loan amount.
func AnnuityPayment(params Parameters) (decimal.Decimal, error) {
	term := params.LoanTerm()
	if term <= 0 {
		return decimal.Zero, nil
	}

	rate := params.MonthlyCompoundRate()
	if 1+rate == 1 {
		return mathutil.RoundCents(params.LoanAmount().Div(decimal.NewFromInt(int64(term)))), nil
	}

	// L*r/(1-(1+r)^-n) equals L*r*f/(f-1) with f=(1+r)^n. Written with the
	// discount factor, long terms drive it towards zero instead of +Inf, and
	// Log1p/Expm1 keep the denominator accurate for tiny rates.
	denominator := -math.Expm1(-float64(term) * math.Log1p(rate))
	payment := params.LoanAmount().InexactFloat64() * rate / denominator
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return decimal.Zero, fmt.Errorf("%w: annuity payment is not finite for loan amount %s over %d months",
			ErrInvalidParameter, params.LoanAmount(), term)
	}
	return mathutil.RoundCents(decimal.NewFromFloat(payment)), nil
}
