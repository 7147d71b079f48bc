package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-schedule/internal/mortgage"
	"github.com/iwvelando/mortgage-schedule/pkg/effectiverate"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/iwvelando/mortgage-schedule/pkg/testutil"
)

func newMortgage(t *testing.T, sched schedule.Schedule) *mortgage.Mortgage {
	t.Helper()
	params, err := schedule.NewParameters(12, testutil.Dec("120000"), testutil.Dec("12"))
	if err != nil {
		t.Fatalf("NewParameters() error = %v", err)
	}
	m, err := mortgage.New(params, sched, effectiverate.NewIRR())
	if err != nil {
		t.Fatalf("mortgage.New() error = %v", err)
	}
	return m
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, newMortgage(t, schedule.NewDifferentiated(nil)))
	output := buf.String()

	expected := []string{
		"--- Repayment schedule (Differentiated Payment) ---",
		"Month | Payment | Interest | Principal | Balance",
		"1 | 11,200.00 | 1,200.00 | 10,000.00 | 110,000.00",
		"12 | 10,100.00 | 100.00 | 10,000.00 | 0.00",
		"Total interest | 7,800.00",
		"Total amount   | 127,800.00",
		"Effective rate | 13%",
	}
	for _, e := range expected {
		if !strings.Contains(output, e) {
			t.Errorf("PrettyFormat output missing %q\n%s", e, output)
		}
	}
}

func TestPrettyFormatUndefinedEffectiveRate(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, newMortgage(t, schedule.NewAnnuity(nil)))
	output := buf.String()

	if !strings.Contains(output, "--- Repayment schedule (Annuity Payment) ---") {
		t.Errorf("PrettyFormat missing header\n%s", output)
	}
	if !strings.Contains(output, "Effective rate | n/a") {
		t.Errorf("PrettyFormat should report an undefined effective rate\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	m := newMortgage(t, schedule.NewDifferentiated(nil))
	CsvFormat(&buf, m)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d lines", len(lines))
	}
	if lines[0] != `"month","total payment","interest payment","principal payment","remaining balance"` {
		t.Errorf("unexpected header %s", lines[0])
	}
	if lines[1] != `"1","11200.00","1200.00","10000.00","110000.00"` {
		t.Errorf("unexpected first row %s", lines[1])
	}
	if lines[12] != `"12","10100.00","100.00","10000.00","0.00"` {
		t.Errorf("unexpected last row %s", lines[12])
	}

	if buf.String() != CsvString(m) {
		t.Error("CsvFormat output differs from CsvString")
	}
}
