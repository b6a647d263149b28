package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashierReportQueryHandler computes revenue reports from the database.
//
// The daily report prefers the day's summary row: once the shift is closed
// the orders are gone and the summary is the source of truth. Before the
// close it falls back to the live order rows, counting everything except
// CANCELADO so open tabs show up as expected takings. Longer windows are
// summed from the daily summary rows alone; days whose shift was never
// closed contribute nothing, matching what the drawer actually recorded.
type CashierReportQueryHandler struct {
	db *gorm.DB
}

// NewCashierReportQueryHandler creates a handler for cashier reports.
func NewCashierReportQueryHandler(db *gorm.DB) CashierReportQueryHandler {
	return CashierReportQueryHandler{db: db}
}

// Handle executes the report query for the requested window.
func (h CashierReportQueryHandler) Handle(
	ctx context.Context,
	query CashierReportQuery,
) (CashierReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CashierReportQueryResponse{}, err
	}

	from, to := query.Period().Window(query.At())
	resp := CashierReportQueryResponse{
		Period:          query.Period().String(),
		From:            from,
		To:              to,
		TotalRevenue:    kernel.ZeroMoney(),
		MesaRevenue:     kernel.ZeroMoney(),
		DeliveryRevenue: kernel.ZeroMoney(),
		AverageTicket:   kernel.ZeroMoney(),
	}

	if query.Period() == PeriodDaily {
		found, err := h.fillFromDailySummary(ctx, &resp, from)
		if err != nil {
			return CashierReportQueryResponse{}, err
		}
		if !found {
			if err = h.fillFromLiveOrders(ctx, &resp, from, to); err != nil {
				return CashierReportQueryResponse{}, err
			}
		}
		return resp, nil
	}

	if err := h.sumSummaries(ctx, &resp, from, to); err != nil {
		return CashierReportQueryResponse{}, err
	}
	return resp, nil
}

// fillFromDailySummary loads the closed-shift figures for the day.
// Returns false without touching resp when the shift is still open.
func (h CashierReportQueryHandler) fillFromDailySummary(
	ctx context.Context,
	resp *CashierReportQueryResponse,
	day time.Time,
) (bool, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			total_orders,
			total_revenue,
			mesa_orders,
			mesa_revenue,
			delivery_orders,
			delivery_revenue,
			average_ticket
		FROM daily_summaries
		WHERE date = ?
	`, day).Row()

	var totalRevenue, mesaRevenue, deliveryRevenue, averageTicket decimal.Decimal

	err := row.Scan(
		&resp.TotalOrders,
		&totalRevenue,
		&resp.MesaOrders,
		&mesaRevenue,
		&resp.DeliveryOrders,
		&deliveryRevenue,
		&averageTicket,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = assignMoney(
		moneyTarget{&resp.TotalRevenue, totalRevenue},
		moneyTarget{&resp.MesaRevenue, mesaRevenue},
		moneyTarget{&resp.DeliveryRevenue, deliveryRevenue},
		moneyTarget{&resp.AverageTicket, averageTicket},
	); err != nil {
		return false, err
	}
	return true, nil
}

// fillFromLiveOrders aggregates today's not-yet-closed shift from the order
// rows. CANCELADO orders are excluded; ABERTO tabs count as expected
// takings.
func (h CashierReportQueryHandler) fillFromLiveOrders(
	ctx context.Context,
	resp *CashierReportQueryResponse,
	from, to time.Time,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			type,
			total
		FROM orders
		WHERE created_at >= ? AND created_at < ? AND status != ?
	`, from, to, order.StatusCancelado.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	mesaType := order.TypeMesa.String()
	for rows.Next() {
		var orderType string
		var total decimal.Decimal

		if err = rows.Scan(&orderType, &total); err != nil {
			return err
		}

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return moneyErr
		}

		resp.TotalOrders++
		resp.TotalRevenue = resp.TotalRevenue.Add(money)
		if orderType == mesaType {
			resp.MesaOrders++
			resp.MesaRevenue = resp.MesaRevenue.Add(money)
		} else {
			resp.DeliveryOrders++
			resp.DeliveryRevenue = resp.DeliveryRevenue.Add(money)
		}
	}
	if err = rows.Err(); err != nil {
		return err
	}

	resp.AverageTicket = resp.TotalRevenue.DivInt(resp.TotalOrders)
	return nil
}

// sumSummaries aggregates the closed shifts inside [from, to).
func (h CashierReportQueryHandler) sumSummaries(
	ctx context.Context,
	resp *CashierReportQueryResponse,
	from, to time.Time,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			total_orders,
			total_revenue,
			mesa_orders,
			mesa_revenue,
			delivery_orders,
			delivery_revenue
		FROM daily_summaries
		WHERE date >= ? AND date < ?
		ORDER BY date
	`, from, to).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var totalOrders, mesaOrders, deliveryOrders int
		var totalRevenue, mesaRevenue, deliveryRevenue decimal.Decimal

		err = rows.Scan(
			&totalOrders,
			&totalRevenue,
			&mesaOrders,
			&mesaRevenue,
			&deliveryOrders,
			&deliveryRevenue,
		)
		if err != nil {
			return err
		}

		var total, mesa, delivery kernel.Money
		if err = assignMoney(
			moneyTarget{&total, totalRevenue},
			moneyTarget{&mesa, mesaRevenue},
			moneyTarget{&delivery, deliveryRevenue},
		); err != nil {
			return err
		}

		resp.TotalOrders += totalOrders
		resp.MesaOrders += mesaOrders
		resp.DeliveryOrders += deliveryOrders
		resp.TotalRevenue = resp.TotalRevenue.Add(total)
		resp.MesaRevenue = resp.MesaRevenue.Add(mesa)
		resp.DeliveryRevenue = resp.DeliveryRevenue.Add(delivery)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	resp.AverageTicket = resp.TotalRevenue.DivInt(resp.TotalOrders)
	return nil
}

type moneyTarget struct {
	dst *kernel.Money
	src decimal.Decimal
}

func assignMoney(targets ...moneyTarget) error {
	for _, t := range targets {
		money, err := kernel.NewMoney(t.src)
		if err != nil {
			return err
		}
		*t.dst = money
	}
	return nil
}
