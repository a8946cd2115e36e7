package models

import "gorm.io/gorm"

// Role is the closed set of roles a sacco user can hold.
// Authorization is decided from this enum, never from free-form group names.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDriver    Role = "driver"
	RoleConductor Role = "conductor"
	RoleOwner     Role = "owner"
)

// ParseRole normalizes a role string coming from client input.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleDriver, RoleConductor, RoleOwner:
		return Role(s), true
	}
	return "", false
}

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     Role   `json:"role" gorm:"type:varchar(10);not null"`
	Active   bool   `json:"is_active" gorm:"not null"`

	// Role-profile relations. Deleting a user removes its profile record.
	OwnerProfile     *MatatuOwner `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner_profile,omitempty"`
	ManagerProfile   *Manager     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"manager_profile,omitempty"`
	DriverProfile    *Driver      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"driver_profile,omitempty"`
	ConductorProfile *Conductor   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"conductor_profile,omitempty"`
}
