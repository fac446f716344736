package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	"wms-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

// Caller identity headers, filled by the external identity collaborator
// fronting this service.
const (
	HeaderCallerID   = "X-Caller-Id"
	HeaderCallerRole = "X-Caller-Role"
)

// callerFrom turns the identity headers into an explicit Caller; the core
// never consults ambient state to find out who is asking.
func callerFrom(c echo.Context) (auth.Caller, error) {
	rawID := strings.TrimSpace(c.Request().Header.Get(HeaderCallerID))
	role := auth.Role(strings.TrimSpace(c.Request().Header.Get(HeaderCallerRole)))
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 || !role.Valid() {
		return auth.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid caller identity")
	}
	return auth.Caller{ID: id, Role: role}, nil
}

// respondError maps the core's error taxonomy to HTTP status codes in one
// place; anything outside the taxonomy is an opaque 500.
func respondError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.KindAuthorization:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// rangeFromQuery reads optional inclusive start/end date bounds.
func rangeFromQuery(c echo.Context) (report.Range, error) {
	var rng report.Range
	if raw := c.QueryParam("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, apperr.Validation("start must be YYYY-MM-DD")
		}
		rng.Start = &t
	}
	if raw := c.QueryParam("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, apperr.Validation("end must be YYYY-MM-DD")
		}
		rng.End = &t
	}
	return rng, nil
}

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid %s path param", name)
	}
	return id, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0, apperr.Validation("%s query param must be an integer", name)
	}
	return n, nil
}
