package http

import (
	"net/http"

	uc "wms-backend/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct{ uc *uc.Usecase }

func NewDirectoryHandler(u *uc.Usecase) *DirectoryHandler { return &DirectoryHandler{uc: u} }

type createHubReq struct {
	HubCode string `json:"hub_code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Area    string `json:"area" validate:"required"`
}

func (h *DirectoryHandler) CreateHub(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req createHubReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateHub(c.Request().Context(), caller, uc.CreateHubInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DirectoryHandler) DeactivateHub(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	hubID, err := pathID(c, "hub_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeactivateHub(c.Request().Context(), caller, hubID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "inactive"})
}

func (h *DirectoryHandler) GetHub(c echo.Context) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}
	hubID, err := pathID(c, "hub_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetHub(c.Request().Context(), hubID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) ListHubs(c echo.Context) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}
	out, err := h.uc.ListHubs(c.Request().Context(), c.QueryParam("city"), c.QueryParam("area"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createHubAdminReq struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	HubCode  string `json:"hub_code" validate:"required"`
}

func (h *DirectoryHandler) CreateHubAdmin(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req createHubAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateHubAdmin(c.Request().Context(), caller, uc.CreateHubAdminInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DirectoryHandler) DeactivateHubAdmin(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "hub_admin_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeactivateHubAdmin(c.Request().Context(), caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "inactive"})
}

func (h *DirectoryHandler) ListHubAdmins(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListHubAdmins(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type createSuperAdminReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *DirectoryHandler) CreateSuperAdmin(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req createSuperAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateSuperAdmin(c.Request().Context(), caller, uc.CreateSuperAdminInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DirectoryHandler) DeactivateWishMaster(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "wish_master_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeactivateWishMaster(c.Request().Context(), caller, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "inactive"})
}

func (h *DirectoryHandler) ListInactiveEmployees(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListInactiveEmployees(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
