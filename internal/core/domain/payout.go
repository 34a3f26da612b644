// internal/core/domain/payout.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportStatus tracks the lifecycle of an async payout report job.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusRunning   ReportStatus = "running"
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusFailed    ReportStatus = "failed"
)

// PayoutLine is one order's contribution to a seller payout statement.
type PayoutLine struct {
	OrderID          string          `json:"order_id"`
	OrderDate        time.Time       `json:"order_date"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
}

// PayoutStatement aggregates payout lines for one seller over a period.
type PayoutStatement struct {
	SellerID        string          `json:"seller_id"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	Lines           []PayoutLine    `json:"lines"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	TotalNet        decimal.Decimal `json:"total_net"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// ComputePayoutLine applies the commission rate to a gross order amount.
// Amounts are rounded to cents, with the commission rounded first so that
// gross = commission + net always holds.
func ComputePayoutLine(orderID string, orderDate time.Time, gross, rate decimal.Decimal) (PayoutLine, error) {
	if gross.IsNegative() {
		return PayoutLine{}, fmt.Errorf("gross amount cannot be negative: %s", gross)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return PayoutLine{}, fmt.Errorf("commission rate must be within [0,1]: %s", rate)
	}

	gross = gross.Round(2)
	commission := gross.Mul(rate).Round(2)
	net := gross.Sub(commission)

	return PayoutLine{
		OrderID:          orderID,
		OrderDate:        orderDate,
		GrossAmount:      gross,
		CommissionRate:   rate,
		CommissionAmount: commission,
		NetAmount:        net,
	}, nil
}

// NewPayoutStatement builds a statement from lines and computes totals.
func NewPayoutStatement(sellerID string, periodStart, periodEnd time.Time, lines []PayoutLine) *PayoutStatement {
	st := &PayoutStatement{
		SellerID:        sellerID,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		Lines:           lines,
		TotalGross:      decimal.Zero,
		TotalCommission: decimal.Zero,
		TotalNet:        decimal.Zero,
		GeneratedAt:     time.Now(),
	}
	for _, line := range lines {
		st.TotalGross = st.TotalGross.Add(line.GrossAmount)
		st.TotalCommission = st.TotalCommission.Add(line.CommissionAmount)
		st.TotalNet = st.TotalNet.Add(line.NetAmount)
	}
	return st
}

// PayoutReport is the persisted job record for an async report generation.
type PayoutReport struct {
	ReportID    uuid.UUID    `json:"report_id"`
	SellerID    string       `json:"seller_id"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Status      ReportStatus `json:"status"`
	FileKey     string       `json:"file_key,omitempty"`
	Error       string       `json:"error,omitempty"`
	RequestedBy string       `json:"requested_by,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Validate checks the report request fields.
func (r *PayoutReport) Validate() error {
	if r.SellerID == "" {
		return fmt.Errorf("seller_id is required")
	}
	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return fmt.Errorf("period_start and period_end are required")
	}
	if r.PeriodEnd.Before(r.PeriodStart) {
		return fmt.Errorf("period_end must not precede period_start")
	}
	return nil
}

// PrepareForStorage fills ids, status and timestamps before insert.
func (r *PayoutReport) PrepareForStorage() {
	if r.ReportID == uuid.Nil {
		r.ReportID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ReportStatusPending
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}
