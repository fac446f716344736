package http

import (
	"net/http"

	uc "wms-backend/internal/usecase/registration"

	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct{ uc *uc.Usecase }

func NewRegistrationHandler(u *uc.Usecase) *RegistrationHandler { return &RegistrationHandler{uc: u} }

type submitRegistrationReq struct {
	HubAdminID    uint64            `json:"hub_admin_id"`
	EmployeeCode  string            `json:"employee_code" validate:"required"`
	Name          string            `json:"name"          validate:"required"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	VehicleNumber string            `json:"vehicle_number"`
	Password      string            `json:"password"      validate:"required,min=8"`
	ProposedRate  float64           `json:"proposed_rate" validate:"required,gt=0,dec2"`
	Documents     map[string]string `json:"documents"`
}

func (h *RegistrationHandler) Submit(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req submitRegistrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), caller, uc.SubmitInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type resolveRegistrationReq struct {
	Approved     bool     `json:"approved"`
	OverrideRate *float64 `json:"override_rate" validate:"omitempty,gt=0,dec2"`
}

func (h *RegistrationHandler) Resolve(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "request_id")
	if err != nil {
		return respondError(c, err)
	}
	var req resolveRegistrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Resolve(c.Request().Context(), caller, requestID, req.Approved, req.OverrideRate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RegistrationHandler) ListPending(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListPending(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RegistrationHandler) GetRequest(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "request_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetRequest(c.Request().Context(), caller, requestID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
