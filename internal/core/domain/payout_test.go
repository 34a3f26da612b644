// internal/core/domain/payout_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/opsdash-be/internal/core/domain"
)

func TestComputePayoutLine(t *testing.T) {
	orderDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		gross              string
		rate               string
		expectedCommission string
		expectedNet        string
		expectedError      bool
	}{
		{
			name:               "fifteen_percent",
			gross:              "100.00",
			rate:               "0.15",
			expectedCommission: "15",
			expectedNet:        "85",
		},
		{
			name:               "rounds_commission_to_cents",
			gross:              "33.33",
			rate:               "0.10",
			expectedCommission: "3.33",
			expectedNet:        "30",
		},
		{
			name:               "zero_rate",
			gross:              "49.99",
			rate:               "0",
			expectedCommission: "0",
			expectedNet:        "49.99",
		},
		{
			name:          "negative_gross",
			gross:         "-1.00",
			rate:          "0.10",
			expectedError: true,
		},
		{
			name:          "rate_above_one",
			gross:         "10.00",
			rate:          "1.5",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross := decimal.RequireFromString(tt.gross)
			rate := decimal.RequireFromString(tt.rate)

			line, err := domain.ComputePayoutLine("ord-1", orderDate, gross, rate)
			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.True(t, line.CommissionAmount.Equal(decimal.RequireFromString(tt.expectedCommission)),
				"commission: expected %s, got %s", tt.expectedCommission, line.CommissionAmount)
			assert.True(t, line.NetAmount.Equal(decimal.RequireFromString(tt.expectedNet)),
				"net: expected %s, got %s", tt.expectedNet, line.NetAmount)
			// Gross must always split exactly into commission + net.
			assert.True(t, line.GrossAmount.Equal(line.CommissionAmount.Add(line.NetAmount)))
		})
	}
}

func TestNewPayoutStatement_Totals(t *testing.T) {
	orderDate := time.Now()
	rate := decimal.RequireFromString("0.12")

	var lines []domain.PayoutLine
	for _, gross := range []string{"120.00", "75.50", "9.99"} {
		line, err := domain.ComputePayoutLine("ord", orderDate, decimal.RequireFromString(gross), rate)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	st := domain.NewPayoutStatement("seller-1", orderDate.AddDate(0, -1, 0), orderDate, lines)

	assert.True(t, st.TotalGross.Equal(decimal.RequireFromString("205.49")))
	assert.True(t, st.TotalGross.Equal(st.TotalCommission.Add(st.TotalNet)))
	assert.Len(t, st.Lines, 3)
}

func TestPayoutReport_Validate(t *testing.T) {
	now := time.Now()

	report := &domain.PayoutReport{
		SellerID:    "seller-1",
		PeriodStart: now.AddDate(0, -1, 0),
		PeriodEnd:   now,
	}
	require.NoError(t, report.Validate())

	report.PeriodEnd = report.PeriodStart.AddDate(0, 0, -1)
	err := report.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period_end")
}
