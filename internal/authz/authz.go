// Package authz decides what an authenticated caller may do. Decisions are a
// lookup in a fixed role -> capability table; the admin role bypasses the
// table entirely.
package authz

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

// Identity is the resolved caller for one request. It is built once by the
// auth middleware and passed explicitly into every authorization check.
type Identity struct {
	UserID        uint
	Role          models.Role
	Authenticated bool
}

// IsSuperuser reports whether the caller holds the admin role.
func (id Identity) IsSuperuser() bool {
	return id.Authenticated && id.Role == models.RoleAdmin
}

// Capability names a guarded slice of the API surface.
type Capability string

const (
	// CapManageManagers guards the manager roster. Admin only.
	CapManageManagers Capability = "managers:manage"
	// CapManageStaff guards driver and conductor rosters.
	CapManageStaff Capability = "staff:manage"
	// CapManageFleet guards matatus and routes.
	CapManageFleet Capability = "fleet:manage"
	// CapLogTakings guards revenue and expense records.
	CapLogTakings Capability = "takings:log"
	// CapManageFinance guards payments and route-revenue rollups.
	CapManageFinance Capability = "finance:manage"
)

// capabilities is the full grant table. Roles absent from the table hold no
// capabilities; admin never consults it.
var capabilities = map[models.Role]map[Capability]bool{
	models.RoleManager: {
		CapManageStaff:   true,
		CapManageFleet:   true,
		CapLogTakings:    true,
		CapManageFinance: true,
	},
	models.RoleDriver: {
		CapLogTakings: true,
	},
	models.RoleConductor: {
		CapLogTakings: true,
	},
}

// Allowed reports whether the caller holds the capability.
func Allowed(id Identity, cap Capability) bool {
	if !id.Authenticated {
		return false
	}
	if id.IsSuperuser() {
		return true
	}
	return capabilities[id.Role][cap]
}

// CanWriteMatatu implements the owner-or-read-only object rule: only the
// matatu's owner (or an admin) may mutate it.
func CanWriteMatatu(id Identity, m *models.Matatu) bool {
	if id.IsSuperuser() {
		return true
	}
	return id.Authenticated && m.Owner.UserID == id.UserID
}
