package ports

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/summary"
)

// SummaryRepository defines the persistence contract for daily summaries.
type SummaryRepository interface {
	// Upsert inserts the summary for its day or replaces the existing row.
	// The day (date truncated to midnight) is the conflict key.
	Upsert(ctx context.Context, aggregate *summary.DailySummary) error

	// GetByDate retrieves the summary for the given day, if the shift was
	// already closed. Returns ObjectNotFound otherwise.
	GetByDate(ctx context.Context, date time.Time) (*summary.DailySummary, error)
}
