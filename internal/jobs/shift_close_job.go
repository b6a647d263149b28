package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/staff"

	"github.com/robfig/cron/v3"
)

// ShiftCloseJob closes the day's shift on a schedule, so the books are
// settled even when nobody presses the button. Runs as a system ADMIN
// actor since the close is not tied to any staff member on duty.
type ShiftCloseJob struct {
	handler  commands.CloseShiftCommandHandler
	actor    staff.Actor
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShiftCloseJob creates the scheduled shift close. The schedule is a
// standard five-field cron expression. Each run settles the previous
// calendar day, so schedule it after midnight, e.g. "0 4 * * *".
func NewShiftCloseJob(
	handler commands.CloseShiftCommandHandler,
	actor staff.Actor,
	schedule string,
	logger *slog.Logger,
) *ShiftCloseJob {
	return &ShiftCloseJob{
		handler:  handler,
		actor:    actor,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "shift_close_job"),
	}
}

// Start begins the scheduled shift close.
func (j *ShiftCloseJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		// A close fired after midnight settles the previous day.
		at := time.Now().AddDate(0, 0, -1)

		cmd, err := commands.NewCloseShiftCommand(j.actor, at)
		if err != nil {
			j.logger.ErrorContext(ctx, "Shift close job could not build command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// An operator already closed the day by hand; nothing to do.
			if errors.Is(err, commands.ErrShiftAlreadyClosed) {
				j.logger.InfoContext(ctx, "Shift already closed, skipping", "date", at.Format(time.DateOnly))
				return
			}
			j.logger.ErrorContext(ctx, "Shift close job failed", "error", err)
			return
		}

		totals := result.Totals()
		j.logger.InfoContext(ctx, "Shift closed",
			"date", result.Date().Format(time.DateOnly),
			"orders", totals.TotalOrders,
			"revenue", totals.TotalRevenue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shift close job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled shift close.
func (j *ShiftCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shift close job stopped")
}
