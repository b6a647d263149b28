package commands

import (
	"context"
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/summary"
	"comanda/internal/pkg/errs"
)

// ErrShiftAlreadyClosed reports a repeat close of a day whose orders were
// already aggregated and purged.
var ErrShiftAlreadyClosed = errs.NewInvalidTransitionError("close shift", "already closed", "")

// CloseShiftCommandHandler handles the end-of-day close.
// The whole close runs in a single transaction: read the day's orders,
// aggregate FECHADO and DELIVERY ones into the summary, upsert the summary
// row and delete exactly the orders that were read. A failure at any step
// rolls everything back, so orders are never purged without their revenue
// landing in a summary.
type CloseShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewCloseShiftCommandHandler creates a handler for the shift close.
func NewCloseShiftCommandHandler(uowFactory ShiftUoWFactory) CloseShiftCommandHandler {
	return CloseShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift close command and returns the written summary.
func (h *CloseShiftCommandHandler) Handle(
	ctx context.Context,
	cmd CloseShiftCommand,
) (*summary.DailySummary, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	day := summary.Day(cmd.At())

	// A day closes exactly once. Orders that trickle in after the close
	// must not rebuild the summary from themselves alone and wipe the
	// revenue already recorded there.
	summaryRepo := uow.SummaryRepository()
	_, getErr := summaryRepo.GetByDate(ctx, day)
	if getErr == nil {
		return nil, ErrShiftAlreadyClosed
	}
	if !errors.Is(getErr, errs.ErrObjectNotFound) {
		return nil, getErr
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllCreatedBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	s, err := summary.BuildDailySummary(day, orders, cmd.Actor().ID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = summaryRepo.Upsert(ctx, s); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	if err = orderRepo.DeleteByIDs(ctx, ids); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
