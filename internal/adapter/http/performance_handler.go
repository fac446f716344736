package http

import (
	"fmt"
	"net/http"

	uc "wms-backend/internal/usecase/performance"
	"wms-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type PerformanceHandler struct {
	uc       *uc.Usecase
	reports  *report.Usecase
	exporter Exporter
}

// Exporter renders monthly sheet rows into a downloadable file; the
// rendering itself is outside the core.
type Exporter interface {
	ContentType() string
	FileExtension() string
	Write(c echo.Context, rows []uc.ExportRow) error
}

func NewPerformanceHandler(u *uc.Usecase, reports *report.Usecase, exporter Exporter) *PerformanceHandler {
	return &PerformanceHandler{uc: u, reports: reports, exporter: exporter}
}

type recordEntryReq struct {
	WishMasterID     uint64   `json:"wish_master_id"`
	EmployeeCode     string   `json:"employee_code"`
	DeliveryDate     *string  `json:"delivery_date"    validate:"omitempty,datetime=2006-01-02"`
	ParcelsTaken     *int     `json:"parcels_taken"    validate:"required"`
	ParcelsDelivered *int     `json:"parcels_delivered" validate:"required"`
	ParcelsFailed    *int     `json:"parcels_failed"   validate:"required"`
	ParcelsReturned  *int     `json:"parcels_returned"`
	ScreenshotURL    string   `json:"screenshot_url"`
	OverrideAmount   *float64 `json:"override_amount"  validate:"omitempty,gte=0,dec2"`
}

func (h *PerformanceHandler) RecordEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req recordEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordEntry(c.Request().Context(), caller, uc.RecordEntryInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PerformanceHandler) DeleteMonth(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	wishMasterID, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	year, err := intQuery(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	month, err := intQuery(c, "month")
	if err != nil {
		return respondError(c, err)
	}
	n, err := h.uc.DeleteMonth(c.Request().Context(), caller, wishMasterID, year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": n})
}

func (h *PerformanceHandler) ExportMonth(c echo.Context) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}
	wishMasterID, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	year, err := intQuery(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	month, err := intQuery(c, "month")
	if err != nil {
		return respondError(c, err)
	}
	rows, err := h.uc.ExportMonth(c.Request().Context(), wishMasterID, year, month)
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("monthly-sheet-%d-%d-%02d.%s", wishMasterID, year, month, h.exporter.FileExtension())
	c.Response().Header().Set(echo.HeaderContentType, h.exporter.ContentType())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return h.exporter.Write(c, rows)
}
