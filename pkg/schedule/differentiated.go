package schedule

import (
	"github.com/iwvelando/mortgage-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Differentiated computes schedules where every month repays the same
// principal and the total payment declines with the outstanding balance.
type Differentiated struct {
	logger *zap.Logger
}

// NewDifferentiated creates a new differentiated schedule.
func NewDifferentiated(logger *zap.Logger) *Differentiated {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Differentiated{logger: logger}
}

// Kind returns KindDifferentiated.
func (d *Differentiated) Kind() Kind {
	return KindDifferentiated
}

// Compute builds the full differentiated schedule for params.
//
// The outstanding balance of every month is derived from the month index
// rather than carried over from the previous month.
func (d *Differentiated) Compute(params Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	term := params.LoanTerm()
	amount := params.LoanAmount()
	ratio := params.MonthlyRatio()
	principal := FixedPrincipal(params)

	reports := make([]MonthlyReport, 0, term)
	cashFlows := make([]decimal.Decimal, 0, term+1)
	cashFlows = append(cashFlows, mathutil.RoundCents(amount))
	totalInterest := decimal.Zero

	for month := 1; month <= term; month++ {
		outstanding := amount.Sub(principal.Mul(decimal.NewFromInt(int64(month - 1))))
		interest := mathutil.RoundCents(mathutil.PercentOf(outstanding, ratio))
		totalInterest = totalInterest.Add(interest)
		total := mathutil.RoundCents(interest.Add(principal))
		remaining := amount.Sub(principal.Mul(decimal.NewFromInt(int64(month))))

		reports = append(reports, newReport(month, total, interest, principal, remaining))
		cashFlows = append(cashFlows, total.Neg())
	}

	d.logger.Debug("computed differentiated schedule",
		zap.String("op", "schedule.Differentiated.Compute"),
		zap.Int("months", term),
		zap.String("principal", principal.StringFixed(2)),
		zap.String("totalInterest", totalInterest.StringFixed(2)),
	)

	return &Result{
		Reports:       reports,
		TotalInterest: mathutil.RoundCents(totalInterest),
		CashFlows:     cashFlows,
	}, nil
}

// FixedPrincipal is the principal repaid each month, the loan amount split
// evenly over the term and rounded to cents.
func FixedPrincipal(params Parameters) decimal.Decimal {
	if params.LoanTerm() <= 0 {
		return decimal.Zero
	}
	return mathutil.RoundCents(params.LoanAmount().Div(decimal.NewFromInt(int64(params.LoanTerm()))))
}
