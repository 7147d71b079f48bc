// Package mortgage exposes a computed repayment schedule together with its
// aggregate figures.
package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-schedule/internal/config"
	"github.com/iwvelando/mortgage-schedule/pkg/effectiverate"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Mortgage is a loan whose schedule has been computed once, at construction.
type Mortgage struct {
	params schedule.Parameters
	kind   schedule.Kind
	result *schedule.Result
	rate   effectiverate.Calculator
}

// New computes the schedule for params and wraps it with the effective rate
// calculator.
func New(params schedule.Parameters, sched schedule.Schedule, rate effectiverate.Calculator) (*Mortgage, error) {
	if sched == nil {
		return nil, fmt.Errorf("no repayment schedule provided")
	}
	if rate == nil {
		rate = effectiverate.NewIRR()
	}

	result, err := sched.Compute(params)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s schedule: %w", sched.Kind(), err)
	}

	return &Mortgage{
		params: params,
		kind:   sched.Kind(),
		result: result,
		rate:   rate,
	}, nil
}

// NewFromConfig builds a Mortgage from the mortgage section of the configuration.
func NewFromConfig(logger *zap.Logger, conf config.MortgageConfig) (*Mortgage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	params, err := conf.Parameters()
	if err != nil {
		return nil, err
	}
	kind, err := conf.Kind()
	if err != nil {
		return nil, err
	}
	sched, err := schedule.New(kind, logger)
	if err != nil {
		return nil, err
	}

	m, err := New(params, sched, effectiverate.NewIRR())
	if err != nil {
		return nil, err
	}

	logger.Info("mortgage schedule computed",
		zap.String("op", "mortgage.NewFromConfig"),
		zap.String("type", m.MortgageType()),
		zap.Int("months", params.LoanTerm()),
		zap.String("totalInterest", m.PercentAmount().StringFixed(2)),
	)
	return m, nil
}

// Parameters returns the loan the schedule was computed for.
func (m *Mortgage) Parameters() schedule.Parameters {
	return m.params
}

// RepaymentSchedule returns a copy of the monthly reports.
func (m *Mortgage) RepaymentSchedule() []schedule.MonthlyReport {
	reports := make([]schedule.MonthlyReport, len(m.result.Reports))
	copy(reports, m.result.Reports)
	return reports
}

// PercentAmount is the total interest paid over the term.
func (m *Mortgage) PercentAmount() decimal.Decimal {
	return m.result.TotalInterest
}

// TotalAmount is the loan amount plus all interest.
func (m *Mortgage) TotalAmount() decimal.Decimal {
	return m.result.TotalInterest.Add(m.params.LoanAmount())
}

// EffectiveRate returns the annual effective rate in whole percent.
func (m *Mortgage) EffectiveRate() (int, error) {
	cashFlows := make([]decimal.Decimal, len(m.result.CashFlows))
	copy(cashFlows, m.result.CashFlows)
	return m.rate.Compute(cashFlows)
}

// Kind returns the repayment policy of the schedule.
func (m *Mortgage) Kind() schedule.Kind {
	return m.kind
}

// MortgageType returns the label of the repayment policy.
func (m *Mortgage) MortgageType() string {
	return m.kind.Label()
}
