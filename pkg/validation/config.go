package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-schedule/pkg/constants"
)

// MortgageConfig is the subset of the mortgage configuration inspected for
// warnings.
type MortgageConfig struct {
	LoanTerm     int
	LoanAmount   float64
	InterestRate float64
	Schedule     string
}

// ValidateMortgage returns warnings for configurations that are computable
// but probably not what the user intended. Hard failures are reported when
// the schedule is computed.
func ValidateMortgage(m MortgageConfig) []string {
	var warnings []string

	if m.LoanTerm > constants.MaxLoanTermMonths {
		warnings = append(warnings, fmt.Sprintf("Loan term of %d months exceeds %d months (%d years)",
			m.LoanTerm, constants.MaxLoanTermMonths, constants.MaxLoanTermMonths/constants.MonthsPerYear))
	}

	if m.InterestRate > constants.HighInterestRatePercent {
		warnings = append(warnings, fmt.Sprintf("Interest rate of %.2f%% is unusually high; rates are annual percentages",
			m.InterestRate))
	}

	if m.InterestRate > 0 && m.InterestRate < 1 {
		warnings = append(warnings, fmt.Sprintf("Interest rate of %.4f%% is below one percent; expected a percentage such as 6.5, not a fraction",
			m.InterestRate))
	}

	if m.InterestRate == 0 && isAnnuity(m.Schedule) {
		warnings = append(warnings, "Interest rate is zero; annuity payments fall back to equal principal division")
	}

	return warnings
}

func isAnnuity(kind string) bool {
	kind = strings.ToLower(strings.TrimSpace(kind))
	return kind == "" || kind == constants.ScheduleAnnuity
}
