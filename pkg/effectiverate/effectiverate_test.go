package effectiverate

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func series(disbursement float64, payments ...float64) []decimal.Decimal {
	flows := []decimal.Decimal{decimal.NewFromFloat(disbursement)}
	for _, p := range payments {
		flows = append(flows, decimal.NewFromFloat(-p))
	}
	return flows
}

func repeat(amount float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amount
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		flows    []decimal.Decimal
		expected int
	}{
		{
			name:     "Differentiated one percent monthly",
			flows:    series(120000, 11200, 11100, 11000, 10900, 10800, 10700, 10600, 10500, 10400, 10300, 10200, 10100),
			expected: 13, // 1.01^12 - 1 = 12.68%
		},
		{
			name:     "Level payments at one percent monthly",
			flows:    series(120000, repeat(10661.85, 12)...),
			expected: 13,
		},
		{
			name:     "Zero interest",
			flows:    series(1200, repeat(100, 12)...),
			expected: 0,
		},
		{
			name:     "Thirty year six percent",
			flows:    series(240000, repeat(1438.92, 360)...),
			expected: 6, // 1.005^12 - 1 = 6.17%
		},
	}

	calc := NewIRR()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Compute(tt.flows)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Compute() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestMonthlyRate(t *testing.T) {
	rate, err := NewIRR().MonthlyRate(series(120000, 11200, 11100, 11000, 10900, 10800, 10700, 10600, 10500, 10400, 10300, 10200, 10100))
	if err != nil {
		t.Fatalf("MonthlyRate() error = %v", err)
	}
	if math.Abs(rate-0.01) > 1e-6 {
		t.Errorf("MonthlyRate() = %v, expected 0.01", rate)
	}
}

func TestComputeUndefinedRate(t *testing.T) {
	tests := []struct {
		name  string
		flows []decimal.Decimal
	}{
		{"Empty series", nil},
		{"Disbursement only", series(120000)},
		{"Outflows only", []decimal.Decimal{decimal.NewFromInt(-5), decimal.NewFromInt(-5)}},
		{"All zero", []decimal.Decimal{decimal.Zero, decimal.Zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIRR().Compute(tt.flows)
			if !errors.Is(err, ErrUndefinedRate) {
				t.Errorf("Compute() error = %v, expected ErrUndefinedRate", err)
			}
		})
	}
}

func TestComputeNoRootInInterval(t *testing.T) {
	// Repaying twelve times the loan in one month is beyond the search interval.
	_, err := NewIRR().Compute(series(100, 1200))
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("Compute() error = %v, expected ErrNoConvergence", err)
	}
}

func TestZeroSolverSettingsUseDefaults(t *testing.T) {
	calc := &IRR{}
	got, err := calc.Compute(series(1200, repeat(100, 12)...))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Compute() = %d, expected 0", got)
	}
}
