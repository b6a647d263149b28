package http

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the authenticated staff identity. The gateway in
// front of this service verifies credentials and forwards the result; the
// service itself never sees passwords or sessions.
const (
	HeaderStaffID   = "X-Staff-Id"
	HeaderStaffRole = "X-Staff-Role"
)

const actorContextKey = "actor"

// ActorMiddleware builds the acting staff member from the identity headers
// and stores it on the request context. Requests without a valid identity
// are rejected before any handler runs; role checks stay in the command
// handlers where the operation is known.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderStaffID)
			rawRole := ctx.Request().Header.Get(HeaderStaffRole)
			if rawID == "" || rawRole == "" {
				return writeError(ctx, errs.NewUnauthenticatedError("missing staff identity"))
			}

			id, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return writeError(ctx, errs.NewUnauthenticatedError("invalid staff id"))
			}

			role, err := staff.ParseRole(rawRole)
			if err != nil {
				return writeError(ctx, errs.NewUnauthenticatedError("unknown staff role"))
			}

			actor, err := staff.NewActor(id, role)
			if err != nil {
				return writeError(ctx, errs.NewUnauthenticatedError("invalid staff identity"))
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom retrieves the staff member placed on the context by
// ActorMiddleware.
func actorFrom(ctx echo.Context) (staff.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(staff.Actor)
	if !ok {
		return staff.Actor{}, errs.NewUnauthenticatedError("missing staff identity")
	}
	return actor, nil
}
