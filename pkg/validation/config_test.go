package validation

import (
	"strings"
	"testing"
)

func TestValidateMortgage(t *testing.T) {
	tests := []struct {
		name          string
		config        MortgageConfig
		expectedCount int
		contains      string
	}{
		{
			name:          "Typical thirty year mortgage",
			config:        MortgageConfig{LoanTerm: 360, LoanAmount: 250000, InterestRate: 6.5, Schedule: "annuity"},
			expectedCount: 0,
		},
		{
			name:          "Term beyond fifty years",
			config:        MortgageConfig{LoanTerm: 720, LoanAmount: 250000, InterestRate: 6.5},
			expectedCount: 1,
			contains:      "exceeds 600 months",
		},
		{
			name:          "Fifty years exactly",
			config:        MortgageConfig{LoanTerm: 600, LoanAmount: 250000, InterestRate: 6.5},
			expectedCount: 0,
		},
		{
			name:          "Very high rate",
			config:        MortgageConfig{LoanTerm: 12, LoanAmount: 1000, InterestRate: 75},
			expectedCount: 1,
			contains:      "unusually high",
		},
		{
			name:          "Rate given as a fraction",
			config:        MortgageConfig{LoanTerm: 360, LoanAmount: 250000, InterestRate: 0.065},
			expectedCount: 1,
			contains:      "below one percent",
		},
		{
			name:          "Zero rate annuity",
			config:        MortgageConfig{LoanTerm: 12, LoanAmount: 1200, InterestRate: 0, Schedule: "annuity"},
			expectedCount: 1,
			contains:      "fall back",
		},
		{
			name:          "Zero rate default schedule",
			config:        MortgageConfig{LoanTerm: 12, LoanAmount: 1200},
			expectedCount: 1,
			contains:      "fall back",
		},
		{
			name:          "Zero rate differentiated",
			config:        MortgageConfig{LoanTerm: 12, LoanAmount: 1200, Schedule: "differentiated"},
			expectedCount: 0,
		},
		{
			name:          "Long term and high rate",
			config:        MortgageConfig{LoanTerm: 900, LoanAmount: 1000, InterestRate: 60},
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateMortgage(tt.config)
			if len(warnings) != tt.expectedCount {
				t.Fatalf("ValidateMortgage() returned %d warnings, expected %d: %v", len(warnings), tt.expectedCount, warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("warning %q does not contain %q", warnings[0], tt.contains)
			}
		})
	}
}
