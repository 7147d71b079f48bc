// Package output provides utilities for formatting and displaying repayment
// schedules.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-schedule/internal/mortgage"
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/format"
)

// PrettyFormat writes a human-readable rather than machine-readable table
// followed by the schedule totals.
func PrettyFormat(w io.Writer, m *mortgage.Mortgage) {
	amount := format.NumericCurrency

	_, _ = fmt.Fprintf(w, "--- Repayment schedule (%s) ---\n", m.MortgageType())
	_, _ = fmt.Fprintf(w, "Month | Payment | Interest | Principal | Balance\n")
	_, _ = fmt.Fprintf(w, "_____ | _______ | ________ | _________ | _______\n")
	for _, report := range m.RepaymentSchedule() {
		_, _ = fmt.Fprintf(w, "%d | %s | %s | %s | %s\n", report.Month,
			amount(report.TotalPayment),
			amount(report.InterestPayment),
			amount(report.PrincipalPayment),
			amount(report.RemainingBalance),
		)
	}

	_, _ = fmt.Fprintf(w, "\n")
	_, _ = fmt.Fprintf(w, "Loan amount    | %s\n", amount(m.Parameters().LoanAmount()))
	_, _ = fmt.Fprintf(w, "Total interest | %s\n", amount(m.PercentAmount()))
	_, _ = fmt.Fprintf(w, "Total amount   | %s\n", amount(m.TotalAmount()))
	if rate, err := m.EffectiveRate(); err == nil {
		_, _ = fmt.Fprintf(w, "Effective rate | %s\n", format.Percent(rate))
	} else {
		_, _ = fmt.Fprintf(w, "Effective rate | n/a (%v)\n", err)
	}
}

// CsvFormat writes the schedule in comma-separated value format.
func CsvFormat(w io.Writer, m *mortgage.Mortgage) {
	_, _ = io.WriteString(w, CsvString(m))
}

// CsvString renders the schedule as CSV, one row per month.
func CsvString(m *mortgage.Mortgage) string {
	var b strings.Builder
	b.WriteString(`"month","total payment","interest payment","principal payment","remaining balance"`)
	b.WriteString("\n")
	for _, report := range m.RepaymentSchedule() {
		fmt.Fprintf(&b, `"%d","%s","%s","%s","%s"`, report.Month,
			report.TotalPayment.StringFixed(constants.CurrencyPlaces),
			report.InterestPayment.StringFixed(constants.CurrencyPlaces),
			report.PrincipalPayment.StringFixed(constants.CurrencyPlaces),
			report.RemainingBalance.StringFixed(constants.CurrencyPlaces),
		)
		b.WriteString("\n")
	}
	return b.String()
}
