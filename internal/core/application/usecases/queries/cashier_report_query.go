package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrCashierReportQueryIsNotConstructed = errors.New(
		"CashierReportQuery must be created via NewCashierReportQuery constructor",
	)
)

// Period selects the reporting window of a cashier report.
type Period int

const (
	PeriodUnknown Period = iota
	PeriodDaily
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly
)

func getPeriodStrings() map[Period]string {
	return map[Period]string{
		PeriodUnknown:   "unknown",
		PeriodDaily:     "daily",
		PeriodMonthly:   "monthly",
		PeriodQuarterly: "quarterly",
		PeriodYearly:    "yearly",
	}
}

// ParsePeriod converts a request string into a Period.
func ParsePeriod(s string) (Period, error) {
	for period, str := range getPeriodStrings() {
		if period != PeriodUnknown && str == s {
			return period, nil
		}
	}
	return PeriodUnknown, errs.NewValueIsInvalidError("period")
}

// Validate checks that the period is a known reporting window.
func (p Period) Validate() error {
	if p == PeriodUnknown {
		return errs.NewValueIsInvalidError("period")
	}
	if _, ok := getPeriodStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("period")
	}
	return nil
}

// String returns the request representation of the period.
func (p Period) String() string {
	return getPeriodStrings()[p]
}

// Window returns the [from, to) interval the period spans around the
// instant at, in at's location. Calendar-aligned: the month, quarter or
// year containing at, not a sliding window.
func (p Period) Window(at time.Time) (time.Time, time.Time) {
	year, month, day := at.Date()
	loc := at.Location()

	switch p {
	case PeriodMonthly:
		from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0)
	case PeriodQuarterly:
		quarterStart := month - (month-1)%3
		from := time.Date(year, quarterStart, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 3, 0)
	case PeriodYearly:
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0)
	default:
		from := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 1)
	}
}

// CashierReportQuery computes revenue figures for a reporting window.
//
// Example:
//
//	period, _ := ParsePeriod("monthly")
//	query, _ := NewCashierReportQuery(period, time.Now())
//	handler := NewCashierReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//
//	fmt.Printf("%s: %s across %d orders\n",
//	    report.Period, report.TotalRevenue, report.TotalOrders)
type CashierReportQuery struct {
	period Period
	at     time.Time

	guard guard.ConstructorGuard
}

// NewCashierReportQuery creates a report query for the window that
// contains the instant at.
func NewCashierReportQuery(period Period, at time.Time) (CashierReportQuery, error) {
	if err := period.Validate(); err != nil {
		return CashierReportQuery{}, err
	}
	if at.IsZero() {
		return CashierReportQuery{}, errs.NewValueIsRequiredError("at")
	}
	return CashierReportQuery{period: period, at: at, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CashierReportQuery) Validate() error {
	return q.guard.Validate(ErrCashierReportQueryIsNotConstructed)
}

// Period returns the reporting window kind.
func (q CashierReportQuery) Period() Period {
	return q.period
}

// At returns the instant the window is anchored on.
func (q CashierReportQuery) At() time.Time {
	return q.at
}

// CashierReportQueryResponse represents the revenue figures of one window.
type CashierReportQueryResponse struct {
	Period          string
	From            time.Time
	To              time.Time
	TotalOrders     int
	TotalRevenue    kernel.Money
	MesaOrders      int
	MesaRevenue     kernel.Money
	DeliveryOrders  int
	DeliveryRevenue kernel.Money
	AverageTicket   kernel.Money
}
