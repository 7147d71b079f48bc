// Package schedule computes month-by-month repayment schedules for fixed-rate
// mortgages.
//
// Two repayment policies are provided. Annuity keeps the total monthly
// payment constant while the interest/principal mix shifts over time.
// Differentiated keeps the principal portion constant so the total payment
// declines month over month. Money values are rounded to cents at every step.
package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnknownKind is returned when a schedule kind name is not recognised.
var ErrUnknownKind = errors.New("unknown schedule kind")

// Kind identifies a repayment policy.
type Kind string

const (
	KindAnnuity        Kind = constants.ScheduleAnnuity
	KindDifferentiated Kind = constants.ScheduleDifferentiated
)

// ParseKind converts a configuration value into a Kind. Empty selects the
// default schedule.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Kind(constants.DefaultSchedule), nil
	case constants.ScheduleAnnuity:
		return KindAnnuity, nil
	case constants.ScheduleDifferentiated:
		return KindDifferentiated, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownKind, name,
			constants.ScheduleAnnuity, constants.ScheduleDifferentiated)
	}
}

// Label returns the human-readable mortgage type.
func (k Kind) Label() string {
	switch k {
	case KindAnnuity:
		return constants.AnnuityLabel
	case KindDifferentiated:
		return constants.DifferentiatedLabel
	default:
		return string(k)
	}
}

// MonthlyReport is the breakdown of a single month's payment.
type MonthlyReport struct {
	Month            int
	TotalPayment     decimal.Decimal
	InterestPayment  decimal.Decimal
	PrincipalPayment decimal.Decimal
	RemainingBalance decimal.Decimal
}

func newReport(month int, total, interest, principal, remaining decimal.Decimal) MonthlyReport {
	return MonthlyReport{
		Month:            month,
		TotalPayment:     mathutil.RoundCents(total),
		InterestPayment:  mathutil.RoundCents(interest),
		PrincipalPayment: mathutil.RoundCents(principal),
		RemainingBalance: mathutil.RoundCents(remaining),
	}
}

// Result is the output of one schedule computation.
type Result struct {
	Reports []MonthlyReport
	// TotalInterest is the sum of every month's interest payment.
	TotalInterest decimal.Decimal
	// CashFlows starts with the disbursed loan amount. The differentiated
	// schedule follows it with each month's negated total payment; the
	// annuity schedule carries only the disbursement.
	CashFlows []decimal.Decimal
}

// Schedule produces a repayment schedule from mortgage parameters.
type Schedule interface {
	Compute(params Parameters) (*Result, error)
	Kind() Kind
}

// New returns the schedule implementation for kind.
func New(kind Kind, logger *zap.Logger) (Schedule, error) {
	switch kind {
	case KindAnnuity:
		return NewAnnuity(logger), nil
	case KindDifferentiated:
		return NewDifferentiated(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
