package summaryrepo

import (
	"context"
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/summary"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSummaryRepository implements SummaryRepository using GORM.
type GormSummaryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSummaryRepository creates a new GORM summary repository.
func NewGormSummaryRepository(db *gorm.DB, tracker aggregateTracker) *GormSummaryRepository {
	return &GormSummaryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the summary row for its day or replaces the existing one.
func (r *GormSummaryRepository) Upsert(ctx context.Context, aggregate *summary.DailySummary) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ClosedBy(), aggregate)
	return nil
}

// GetByDate retrieves the summary for the given day.
func (r *GormSummaryRepository) GetByDate(
	ctx context.Context,
	date time.Time,
) (*summary.DailySummary, error) {
	var dto SummaryDTO
	err := r.db.WithContext(ctx).First(&dto, "date = ?", summary.Day(date)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("summary", date.Format(time.DateOnly))
		}
		return nil, err
	}

	return toDomain(dto)
}
