package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EntryRepository provides append-only persistence for audit entries.
// Entries are never updated or deleted.
type EntryRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	retry  retrier
}

func NewEntryRepository(db *gorm.DB, logger *zap.Logger) *EntryRepository {
	logger = logger.Named("entry_repository")
	return &EntryRepository{db: db, logger: logger, retry: newRetrier(logger)}
}

// AutoMigrate ensures the entries schema is available.
func (r *EntryRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Entry{})
}

// Create appends one audit entry. The insert happens synchronously in the
// request path; transient storage errors are retried, anything else
// propagates to the caller because a lost audit record for a flagged
// decision is itself a security incident.
func (r *EntryRepository) Create(ctx context.Context, requestID string, entry *Entry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	return r.retry.execute(ctx, "entry_repository.create", requestID, func() error {
		return r.db.WithContext(ctx).Create(entry).Error
	})
}

// EntryFilter narrows an entry report query. Zero values mean "no filter";
// selecting both or neither of OnlyValid/OnlyInvalid returns all entries.
type EntryFilter struct {
	From        *time.Time
	To          *time.Time
	WorkerID    *uint
	OnlyValid   bool
	OnlyInvalid bool
}

// EntryReportRow is one report line: the entry joined with the worker's
// current name when the weak reference still resolves.
type EntryReportRow struct {
	ID         uint      `json:"id"`
	Date       time.Time `json:"date"`
	WorkerID   *uint     `json:"worker_id"`
	WorkerName *string   `json:"worker_name"`
	Code       int       `json:"code"`
	Message    string    `json:"message"`
}

// List queries entries with the given filter, newest first.
func (r *EntryRepository) List(ctx context.Context, filter EntryFilter) ([]EntryReportRow, error) {
	query := r.db.WithContext(ctx).
		Table("entries").
		Select("entries.id, entries.date, entries.worker_id, workers.name AS worker_name, entries.code, entries.message").
		Joins("LEFT JOIN workers ON workers.id = entries.worker_id")

	query = applyEntryFilter(query, filter)

	var rows []EntryReportRow
	if err := query.Order("entries.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func applyEntryFilter(query *gorm.DB, filter EntryFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("entries.date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("entries.date <= ?", *filter.To)
	}
	if filter.WorkerID != nil {
		query = query.Where("entries.worker_id = ?", *filter.WorkerID)
	}
	switch {
	case filter.OnlyValid && filter.OnlyInvalid:
		// both selected: no validity filter
	case filter.OnlyValid:
		query = query.Where("entries.code = 0")
	case filter.OnlyInvalid:
		query = query.Where("entries.code <> 0")
	}
	return query
}
