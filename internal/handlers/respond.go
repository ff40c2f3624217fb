package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/hafiz-aliAwj/portfolio/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	msgInternalError   = "Internal server error"
	msgInvalidBody     = "Invalid request body"
	msgInvalidSequence = "Invalid sequence data"
	msgUnauthorized    = "Unauthorized"
)

func writeError(c *drift.Context, status int, msg string) {
	_ = c.JSON(status, dto.ErrorResponse{Error: msg})
}

// respondError maps a service error to its HTTP status. Anything not
// recognised is logged and reported as a generic 500.
func respondError(c *drift.Context, err error, notFound, action string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, services.ErrNotFound):
		writeError(c, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrEmptySequence), errors.Is(err, services.ErrNoValidIDs):
		writeError(c, http.StatusBadRequest, msgInvalidSequence)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrUserExists):
		writeError(c, http.StatusBadRequest, "Username or email already exists")
	case errors.Is(err, services.ErrInvalidToken):
		writeError(c, http.StatusUnauthorized, msgUnauthorized)
	default:
		slog.Error(action+" failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(c, http.StatusInternalServerError, msgInternalError)
	}
}

func parseID(c *drift.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}

func queryInt(c *drift.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func pagination(p services.PageResult) dto.Pagination {
	return dto.Pagination{
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: p.Pages(),
	}
}
