package summary

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

// ErrSummaryIsNotConstructed is returned when a DailySummary instance was
// not created through BuildDailySummary or RestoreDailySummary.
var ErrSummaryIsNotConstructed = errors.New(
	"DailySummary must be created via BuildDailySummary constructor")

// Totals holds the aggregated figures of one business day.
type Totals struct {
	TotalOrders     int
	TotalRevenue    kernel.Money
	MesaOrders      int
	MesaRevenue     kernel.Money
	DeliveryOrders  int
	DeliveryRevenue kernel.Money
	AverageTicket   kernel.Money
}

// DailySummary is the end-of-day rollup: one row per calendar day, keyed by
// the day truncated to local midnight. After a shift close it is the sole
// source of truth for that day, since the live order rows are purged.
type DailySummary struct {
	date     time.Time
	totals   Totals
	closedBy kernel.UUID
	closedAt time.Time

	isConstructed bool
}

// Day truncates a timestamp to local midnight, the key a summary row is
// stored under.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BuildDailySummary aggregates a day's orders into its summary.
//
// Only orders that count toward revenue (FECHADO tables and DELIVERY
// orders) enter the figures; still-open and cancelled orders are excluded.
// The average ticket is total revenue over counted orders, zero for a day
// without a single counted order. The caller passes every order of the day;
// filtering happens here so the aggregation rule lives in one place.
func BuildDailySummary(
	date time.Time,
	orders []*order.Order,
	closedBy kernel.UUID,
	closedAt time.Time,
) (*DailySummary, error) {
	if err := closedBy.Validate(); err != nil {
		return nil, err
	}

	totals := Totals{
		TotalRevenue:    kernel.ZeroMoney(),
		MesaRevenue:     kernel.ZeroMoney(),
		DeliveryRevenue: kernel.ZeroMoney(),
		AverageTicket:   kernel.ZeroMoney(),
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.Status().CountsTowardRevenue() {
			continue
		}

		totals.TotalOrders++
		totals.TotalRevenue = totals.TotalRevenue.Add(o.Total())

		switch o.Type() {
		case order.TypeDelivery:
			totals.DeliveryOrders++
			totals.DeliveryRevenue = totals.DeliveryRevenue.Add(o.Total())
		default:
			totals.MesaOrders++
			totals.MesaRevenue = totals.MesaRevenue.Add(o.Total())
		}
	}

	totals.AverageTicket = totals.TotalRevenue.DivInt(totals.TotalOrders)

	return &DailySummary{
		date:          Day(date),
		totals:        totals,
		closedBy:      closedBy,
		closedAt:      closedAt,
		isConstructed: true,
	}, nil
}

// RestoreDailySummary reconstructs a summary from persistence.
// Used only by repository adapters.
func RestoreDailySummary(
	date time.Time,
	totals Totals,
	closedBy kernel.UUID,
	closedAt time.Time,
) (*DailySummary, error) {
	if err := closedBy.Validate(); err != nil {
		return nil, err
	}
	if totals.TotalOrders < 0 {
		return nil, errs.NewValueIsInvalidError("totalOrders")
	}

	return &DailySummary{
		date:          Day(date),
		totals:        totals,
		closedBy:      closedBy,
		closedAt:      closedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the summary was properly constructed.
func (s *DailySummary) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSummaryIsNotConstructed
	}
	return nil
}

// Date returns the day the summary covers, truncated to local midnight.
func (s *DailySummary) Date() time.Time {
	return s.date
}

// Totals returns the aggregated figures.
func (s *DailySummary) Totals() Totals {
	return s.totals
}

// ClosedBy returns the identifier of the actor who closed the shift.
func (s *DailySummary) ClosedBy() kernel.UUID {
	return s.closedBy
}

// ClosedAt returns the closing timestamp.
func (s *DailySummary) ClosedAt() time.Time {
	return s.closedAt
}
