// Package summaryrepo provides data transfer objects and mapping functions
// for daily summary persistence. One row per closed business day, keyed by
// the calendar date.
package summaryrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/summary"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryDTO represents the database structure of a daily summary.
type SummaryDTO struct {
	Date            time.Time       `gorm:"type:date;primaryKey"`
	TotalOrders     int             `gorm:"not null"`
	TotalRevenue    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MesaOrders      int             `gorm:"not null"`
	MesaRevenue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DeliveryOrders  int             `gorm:"not null"`
	DeliveryRevenue decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AverageTicket   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ClosedBy        uuid.UUID       `gorm:"type:uuid"`
	ClosedAt        time.Time
}

// TableName specifies the database table name for daily summaries.
func (SummaryDTO) TableName() string {
	return "daily_summaries"
}

// fromDomain converts a summary aggregate to its database representation.
func fromDomain(aggregate *summary.DailySummary) SummaryDTO {
	totals := aggregate.Totals()
	return SummaryDTO{
		Date:            aggregate.Date(),
		TotalOrders:     totals.TotalOrders,
		TotalRevenue:    totals.TotalRevenue.Decimal(),
		MesaOrders:      totals.MesaOrders,
		MesaRevenue:     totals.MesaRevenue.Decimal(),
		DeliveryOrders:  totals.DeliveryOrders,
		DeliveryRevenue: totals.DeliveryRevenue.Decimal(),
		AverageTicket:   totals.AverageTicket.Decimal(),
		ClosedBy:        aggregate.ClosedBy().Bytes(),
		ClosedAt:        aggregate.ClosedAt(),
	}
}

// toDomain converts a database row to a summary aggregate.
func toDomain(dto SummaryDTO) (*summary.DailySummary, error) {
	closedBy, err := kernel.UUIDFromBytes(dto.ClosedBy[:])
	if err != nil {
		return nil, err
	}

	var totals summary.Totals
	totals.TotalOrders = dto.TotalOrders
	totals.MesaOrders = dto.MesaOrders
	totals.DeliveryOrders = dto.DeliveryOrders

	if totals.TotalRevenue, err = kernel.NewMoney(dto.TotalRevenue); err != nil {
		return nil, err
	}
	if totals.MesaRevenue, err = kernel.NewMoney(dto.MesaRevenue); err != nil {
		return nil, err
	}
	if totals.DeliveryRevenue, err = kernel.NewMoney(dto.DeliveryRevenue); err != nil {
		return nil, err
	}
	if totals.AverageTicket, err = kernel.NewMoney(dto.AverageTicket); err != nil {
		return nil, err
	}

	return summary.RestoreDailySummary(dto.Date, totals, closedBy, dto.ClosedAt)
}
