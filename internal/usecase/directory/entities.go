package directory

import "wms-backend/internal/domain/directory"

type CreateHubInput struct {
	HubCode string `json:"hub_code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Area    string `json:"area"`
}

type HubDTO struct {
	ID      uint64           `json:"id"`
	HubCode string           `json:"hub_code"`
	Name    string           `json:"name"`
	City    string           `json:"city"`
	Area    string           `json:"area"`
	Status  directory.Status `json:"status"`
}

type CreateHubAdminInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	HubCode  string `json:"hub_code"`
}

type HubAdminDTO struct {
	ID       uint64           `json:"id"`
	Name     string           `json:"name"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	HubID    uint64           `json:"hub_id"`
	HubName  string           `json:"hub_name"`
	City     string           `json:"city"`
	Status   directory.Status `json:"status"`
}

type CreateSuperAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SuperAdminDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InactiveEmployeeDTO is one line of the deactivated-staff report the top
// authority reviews (both hub admins and wish masters).
type InactiveEmployeeDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Role         string `json:"role"`
	HubName      string `json:"hub_name"`
	City         string `json:"city"`
}

func toHubDTO(h *directory.Hub) HubDTO {
	return HubDTO{ID: h.ID, HubCode: h.HubCode, Name: h.Name, City: h.City, Area: h.Area, Status: h.Status}
}
