package http

import (
	"net/http"

	uc "wms-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *uc.Usecase }

func NewReportHandler(u *uc.Usecase) *ReportHandler { return &ReportHandler{uc: u} }

func (h *ReportHandler) Summary(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	wishMasterID, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	rng, err := rangeFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Summarize(c.Request().Context(), caller, wishMasterID, rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Detailed(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	wishMasterID, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	rng, err := rangeFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.DetailedReport(c.Request().Context(), caller, wishMasterID, rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) DayEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	wishMasterID, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.DayEntry(c.Request().Context(), caller, wishMasterID, c.QueryParam("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Search(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	rng, err := rangeFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Search(c.Request().Context(), caller, c.QueryParam("employee_code"), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) RosterByHubAdmin(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	hubAdminID, err := pathID(c, "hub_admin_id")
	if err != nil {
		return respondError(c, err)
	}
	rng, err := rangeFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RosterByHubAdmin(c.Request().Context(), caller, hubAdminID, rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) RosterByHub(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	hubID, err := pathID(c, "hub_id")
	if err != nil {
		return respondError(c, err)
	}
	rng, err := rangeFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RosterByHub(c.Request().Context(), caller, hubID, rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
