package auth

// Role of the authenticated principal, as resolved by the external
// identity collaborator before a request reaches the core.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHubAdmin   Role = "HUB_ADMIN"
	RoleWishMaster Role = "WISH_MASTER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHubAdmin, RoleWishMaster:
		return true
	}
	return false
}

// Caller identifies who is invoking a core operation. Every usecase takes
// it explicitly; nothing reaches into ambient/global state for identity.
type Caller struct {
	ID   uint64
	Role Role
}

func (c Caller) IsSuperAdmin() bool { return c.Role == RoleSuperAdmin }
func (c Caller) IsHubAdmin() bool   { return c.Role == RoleHubAdmin }
func (c Caller) IsWishMaster() bool { return c.Role == RoleWishMaster }
