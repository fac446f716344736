package http

import (
	"net/http"

	uc "wms-backend/internal/usecase/priceapproval"

	"github.com/labstack/echo/v4"
)

type PriceApprovalHandler struct{ uc *uc.Usecase }

func NewPriceApprovalHandler(u *uc.Usecase) *PriceApprovalHandler {
	return &PriceApprovalHandler{uc: u}
}

type proposePriceReq struct {
	WishMasterID uint64  `json:"wish_master_id" validate:"required"`
	ProposedRate float64 `json:"proposed_rate"  validate:"required,gt=0,dec2"`
}

func (h *PriceApprovalHandler) Propose(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req proposePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Propose(c.Request().Context(), caller, req.WishMasterID, req.ProposedRate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type resolvePriceReq struct {
	Approved  bool     `json:"approved"`
	FinalRate *float64 `json:"final_rate" validate:"omitempty,gt=0,dec2"`
}

func (h *PriceApprovalHandler) Resolve(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "request_id")
	if err != nil {
		return respondError(c, err)
	}
	var req resolvePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Resolve(c.Request().Context(), caller, requestID, req.Approved, req.FinalRate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PriceApprovalHandler) ListPending(c echo.Context) error {
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
