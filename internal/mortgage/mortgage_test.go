package mortgage

import (
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-schedule/internal/config"
	"github.com/iwvelando/mortgage-schedule/pkg/effectiverate"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/iwvelando/mortgage-schedule/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingCalculator struct {
	received []decimal.Decimal
	rate     int
}

func (c *recordingCalculator) Compute(cashFlows []decimal.Decimal) (int, error) {
	c.received = cashFlows
	return c.rate, nil
}

func twelveMonthParameters(t *testing.T) schedule.Parameters {
	t.Helper()
	params, err := schedule.NewParameters(12, testutil.Dec("120000"), testutil.Dec("12"))
	require.NoError(t, err)
	return params
}

func TestDifferentiatedMortgage(t *testing.T) {
	m, err := New(twelveMonthParameters(t), schedule.NewDifferentiated(nil), effectiverate.NewIRR())
	require.NoError(t, err)

	assert.Equal(t, "Differentiated Payment", m.MortgageType())
	assert.Len(t, m.RepaymentSchedule(), 12)
	assert.True(t, m.PercentAmount().Equal(testutil.Dec("7800")), "got %s", m.PercentAmount())
	assert.True(t, m.TotalAmount().Equal(testutil.Dec("127800")), "got %s", m.TotalAmount())

	rate, err := m.EffectiveRate()
	require.NoError(t, err)
	assert.Equal(t, 13, rate)
}

func TestAnnuityMortgageEffectiveRateUndefined(t *testing.T) {
	m, err := New(twelveMonthParameters(t), schedule.NewAnnuity(nil), nil)
	require.NoError(t, err)

	assert.Equal(t, "Annuity Payment", m.MortgageType())
	assert.True(t, m.TotalAmount().Equal(m.PercentAmount().Add(testutil.Dec("120000"))))

	_, err = m.EffectiveRate()
	assert.ErrorIs(t, err, effectiverate.ErrUndefinedRate)
}

func TestEffectiveRateReceivesCashFlows(t *testing.T) {
	calc := &recordingCalculator{rate: 42}
	m, err := New(twelveMonthParameters(t), schedule.NewDifferentiated(nil), calc)
	require.NoError(t, err)

	rate, err := m.EffectiveRate()
	require.NoError(t, err)
	assert.Equal(t, 42, rate)
	require.Len(t, calc.received, 13)
	assert.True(t, calc.received[0].Equal(testutil.Dec("120000")))
	assert.True(t, calc.received[1].Equal(testutil.Dec("-11200")))

	// Mutating what the calculator saw must not leak back into the mortgage.
	calc.received[1] = decimal.Zero
	_, _ = m.EffectiveRate()
	assert.True(t, calc.received[1].Equal(testutil.Dec("-11200")))
}

func TestRepaymentScheduleIsACopy(t *testing.T) {
	m, err := New(twelveMonthParameters(t), schedule.NewAnnuity(nil), nil)
	require.NoError(t, err)

	reports := m.RepaymentSchedule()
	reports[0].TotalPayment = decimal.Zero
	assert.False(t, m.RepaymentSchedule()[0].TotalPayment.IsZero())
}

func TestNewFailsFast(t *testing.T) {
	_, err := New(schedule.Parameters{}, schedule.NewAnnuity(nil), nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidParameter)

	_, err = New(twelveMonthParameters(t), nil, nil)
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name         string
		conf         config.MortgageConfig
		expectedType string
		wantErr      error
	}{
		{
			name:         "Annuity by default",
			conf:         config.MortgageConfig{LoanTerm: 12, LoanAmount: 120000, InterestRate: 12},
			expectedType: "Annuity Payment",
		},
		{
			name:         "Differentiated",
			conf:         config.MortgageConfig{LoanTerm: 12, LoanAmount: 120000, InterestRate: 12, Schedule: "differentiated"},
			expectedType: "Differentiated Payment",
		},
		{
			name:    "Zero loan amount",
			conf:    config.MortgageConfig{LoanTerm: 12, InterestRate: 12},
			wantErr: schedule.ErrInvalidParameter,
		},
		{
			name:    "Zero term",
			conf:    config.MortgageConfig{LoanAmount: 120000, InterestRate: 12},
			wantErr: schedule.ErrInvalidParameter,
		},
		{
			name:    "Unknown schedule",
			conf:    config.MortgageConfig{LoanTerm: 12, LoanAmount: 120000, InterestRate: 12, Schedule: "balloon"},
			wantErr: schedule.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewFromConfig(zap.NewNop(), tt.conf)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, m.MortgageType())
			assert.Equal(t, 12, m.Parameters().LoanTerm())
		})
	}
}
