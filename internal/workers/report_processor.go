// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/sellerhub/opsdash-be/internal/adapters/storage"
	"github.com/sellerhub/opsdash-be/internal/core/domain"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
)

// ReportJobPayload represents the payload for payout report jobs
type ReportJobPayload struct {
	ReportID uuid.UUID `json:"report_id"`
}

// ReportProcessor generates seller payout statements as Excel workbooks and
// uploads them for download.
type ReportProcessor struct {
	reports ports.ReportRepository
	payouts ports.PayoutSource
	storage storage.StorageClient
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(reports ports.ReportRepository, payouts ports.PayoutSource, storage storage.StorageClient, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		reports: reports,
		payouts: payouts,
		storage: storage,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// GenerateReport runs one payout report job end to end: fetch order data,
// build the statement workbook, upload it, mark the record completed.
func (p *ReportProcessor) GenerateReport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ReportJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	report, err := p.reports.FindByID(ctx, payload.ReportID)
	if err != nil {
		return fmt.Errorf("failed to load report record: %w", err)
	}
	if report == nil {
		p.logger.WarnContext(ctx, "report record vanished, dropping task",
			slog.String("report_id", payload.ReportID.String()))
		return nil
	}
	if report.Status == domain.ReportStatusCompleted {
		return nil
	}

	if err := p.reports.MarkRunning(ctx, report.ReportID); err != nil {
		return fmt.Errorf("failed to mark report running: %w", err)
	}

	p.logger.InfoContext(ctx, "generating payout report",
		slog.String("report_id", report.ReportID.String()),
		slog.String("seller_id", report.SellerID))

	lines, err := p.payouts.FetchPayoutLines(ctx, report.SellerID, report.PeriodStart, report.PeriodEnd)
	if err != nil {
		// Upstream hiccups are retryable; asynq re-runs the task.
		return fmt.Errorf("failed to fetch payout data: %w", err)
	}

	statement := domain.NewPayoutStatement(report.SellerID, report.PeriodStart, report.PeriodEnd, lines)

	workbook, err := p.buildWorkbook(statement)
	if err != nil {
		reason := fmt.Sprintf("workbook generation failed: %v", err)
		if markErr := p.reports.MarkFailed(ctx, report.ReportID, reason); markErr != nil {
			return fmt.Errorf("failed to mark report failed: %w", markErr)
		}
		return nil
	}

	fileKey := fmt.Sprintf("reports/%s/%s.xlsx", report.SellerID, report.ReportID)
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if _, err := p.storage.Upload(ctx, fileKey, bytes.NewReader(workbook), contentType); err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	if err := p.reports.MarkCompleted(ctx, report.ReportID, fileKey); err != nil {
		return fmt.Errorf("failed to mark report completed: %w", err)
	}

	p.logger.InfoContext(ctx, "payout report generated",
		slog.String("report_id", report.ReportID.String()),
		slog.Int("line_count", len(lines)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// buildWorkbook renders the statement as a single-sheet workbook with a
// totals row after the order lines.
func (p *ReportProcessor) buildWorkbook(st *domain.PayoutStatement) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Payout Statement")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().Value = fmt.Sprintf("Seller %s payout, %s to %s",
		st.SellerID,
		st.PeriodStart.Format("2006-01-02"),
		st.PeriodEnd.Format("2006-01-02"))

	headerRow := sheet.AddRow()
	for _, header := range []string{"Order ID", "Order Date", "Gross", "Commission Rate", "Commission", "Net"} {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, line := range st.Lines {
		row := sheet.AddRow()
		row.AddCell().Value = line.OrderID
		row.AddCell().Value = line.OrderDate.Format("2006-01-02")
		row.AddCell().Value = line.GrossAmount.StringFixed(2)
		row.AddCell().Value = line.CommissionRate.String()
		row.AddCell().Value = line.CommissionAmount.StringFixed(2)
		row.AddCell().Value = line.NetAmount.StringFixed(2)
	}

	totalRow := sheet.AddRow()
	totalCell := totalRow.AddCell()
	totalCell.Value = "Totals"
	totalCell.GetStyle().Font.Bold = true
	totalRow.AddCell().Value = ""
	totalRow.AddCell().Value = st.TotalGross.StringFixed(2)
	totalRow.AddCell().Value = ""
	totalRow.AddCell().Value = st.TotalCommission.StringFixed(2)
	totalRow.AddCell().Value = st.TotalNet.StringFixed(2)

	for i := 1; i <= 6; i++ {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
