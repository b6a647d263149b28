package jobs

import (
	"fmt"
	"log/slog"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/staff"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shiftCloseJob *ShiftCloseJob
}

// NewJobManager creates a new job manager with all configured jobs.
// An empty shift close schedule disables the job: closes then happen only
// through the API, and StartAll and StopAll become no-ops.
func NewJobManager(
	closeShiftHandler commands.CloseShiftCommandHandler,
	systemActor staff.Actor,
	shiftCloseSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if shiftCloseSchedule != "" {
		jm.shiftCloseJob = NewShiftCloseJob(closeShiftHandler, systemActor, shiftCloseSchedule, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.shiftCloseJob == nil {
		return nil
	}
	if err := jm.shiftCloseJob.Start(); err != nil {
		return fmt.Errorf("failed to start shift close job: %w", err)
	}
	return nil
}

// StopAll stops all configured jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.shiftCloseJob == nil {
		return
	}
	jm.shiftCloseJob.Stop()
}
