package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/entrypass/internal/repository"
)

// EntryReportStore defines the audit query surface needed by reporting.
type EntryReportStore interface {
	List(ctx context.Context, filter repository.EntryFilter) ([]repository.EntryReportRow, error)
}

// ReportUseCase serves the audit-trail queries behind the admin panel.
// Rendering (PDF and friends) lives outside this service; this is the data
// layer only.
type ReportUseCase struct {
	entries EntryReportStore
	logger  *zap.Logger
}

func NewReportUseCase(entries EntryReportStore, logger *zap.Logger) *ReportUseCase {
	return &ReportUseCase{entries: entries, logger: logger.Named("report_usecase")}
}

// ListEntries returns filtered audit entries, newest first.
func (uc *ReportUseCase) ListEntries(ctx context.Context, filter repository.EntryFilter) ([]repository.EntryReportRow, error) {
	return uc.entries.List(ctx, filter)
}

// EntrySummary aggregates admittance counts over a filtered entry set.
type EntrySummary struct {
	Total     int     `json:"total"`
	Admitted  int     `json:"admitted"`
	Denied    int     `json:"denied"`
	AdmitRate float64 `json:"admit_rate"`
}

// Summarize computes admittance statistics for the filtered entries.
func (uc *ReportUseCase) Summarize(ctx context.Context, filter repository.EntryFilter) (*EntrySummary, error) {
	rows, err := uc.entries.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &EntrySummary{Total: len(rows)}
	for _, row := range rows {
		if row.Code == CodeSuccess {
			summary.Admitted++
		} else {
			summary.Denied++
		}
	}
	if summary.Total > 0 {
		summary.AdmitRate = float64(summary.Admitted) / float64(summary.Total)
	}
	return summary, nil
}
