package jobs_test

import (
	"io"
	"log/slog"
	"testing"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/jobs"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// An empty schedule disables the shift close job: the manager starts and
// stops cleanly without touching the close handler or needing an actor.
func TestJobManager_EmptyScheduleDisablesShiftClose(t *testing.T) {
	jm := jobs.NewJobManager(
		commands.CloseShiftCommandHandler{}, staff.Actor{}, "", testLogger())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAndStopWithSchedule(t *testing.T) {
	actor, err := staff.NewActor(kernel.NewUUID(), staff.RoleAdmin)
	require.NoError(t, err)

	jm := jobs.NewJobManager(
		commands.CloseShiftCommandHandler{}, actor, "0 4 * * *", testLogger())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_InvalidScheduleRejected(t *testing.T) {
	actor, err := staff.NewActor(kernel.NewUUID(), staff.RoleAdmin)
	require.NoError(t, err)

	jm := jobs.NewJobManager(
		commands.CloseShiftCommandHandler{}, actor, "not a schedule", testLogger())

	require.Error(t, jm.StartAll())
}
