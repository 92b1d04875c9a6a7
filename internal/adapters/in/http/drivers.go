package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetMyAssignments handles GET /api/v1/drivers/me/assignments.
func (s *Server) GetMyAssignments(ctx echo.Context) error {
	viewer, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	query, err := queries.NewGetDriverAssignmentsQuery(viewer.ID(), viewer)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	tasks, err := s.handlers.DriverAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, newDriverTasks(tasks))
}
