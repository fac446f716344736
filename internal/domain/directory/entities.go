package directory

import "time"

// Lifecycle status shared by directory entities. Entities are never hard
// deleted; deactivation flips Status and every query path filters on it.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsActive() bool { return s == StatusActive }

type Hub struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	HubCode   string    `gorm:"size:32;uniqueIndex:ux_hubs_hub_code" json:"hub_code"`
	Name      string    `gorm:"size:128" json:"name"`
	City      string    `gorm:"size:64;index:idx_hubs_city" json:"city"`
	Area      string    `gorm:"size:64" json:"area"`
	Status    Status    `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Hub) TableName() string { return "hubs" }

// HubAdmin is assigned to exactly one hub; at most one active admin per hub.
type HubAdmin struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Username  string    `gorm:"size:64;uniqueIndex:ux_hub_admins_username" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex:ux_hub_admins_email" json:"email"`
	Password  string    `gorm:"size:128" json:"-"`
	HubID     uint64    `gorm:"index:idx_hub_admins_hub" json:"hub_id"`
	Status    Status    `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HubAdmin) TableName() string { return "hub_admins" }

type SuperAdmin struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:128;uniqueIndex:ux_super_admins_email" json:"email"`
	Password  string    `gorm:"size:128" json:"-"`
	Status    Status    `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SuperAdmin) TableName() string { return "super_admins" }
