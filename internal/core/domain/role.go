package domain

import "strings"

// Role classifies the acting user. Values are always upper-case; the zero
// value is RoleUnknown.
type Role string

const (
	RoleUnknown Role = ""
	RoleCM      Role = "CM"
	RoleAM      Role = "AM"
	RoleJE      Role = "JE"
	RoleManager Role = "MANAGER"
	RoleSDO     Role = "SDO"
	RoleGM      Role = "GM"
	RoleCitizen Role = "CITIZEN"
)

// Capability is a permission tag shown next to a role and consulted by
// action controls.
type Capability string

const (
	CapValidate    Capability = "validate"
	CapAssign      Capability = "assign"
	CapRegister    Capability = "register"
	CapView        Capability = "view"
	CapVerify      Capability = "verify"
	CapEscalate    Capability = "escalate"
	CapReview      Capability = "review"
	CapReassign    Capability = "reassign"
	CapSupervise   Capability = "supervise"
	CapApprove     Capability = "approve"
	CapReject      Capability = "reject"
	CapOversee     Capability = "oversee"
	CapFinalReview Capability = "final_review"
	CapMonitor     Capability = "monitor"
	CapReports     Capability = "reports"
	CapOversight   Capability = "oversight"
	CapSubmit      Capability = "submit"
	CapTrack       Capability = "track"
)

// RoleInfo is the display metadata of a role.
type RoleInfo struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	IconKey     string `json:"icon_key"`
	Description string `json:"description"`
}

type roleEntry struct {
	info        RoleInfo
	permissions []Capability
}

// registry holds one entry per known role. TestRegistryCoversEveryRole keeps
// it in step with knownRoles.
var registry = map[Role]roleEntry{
	RoleCM: {
		info:        RoleInfo{Code: "CM", Label: "Complaint Manager", IconKey: "shield", Description: "Validates and assigns complaints"},
		permissions: []Capability{CapValidate, CapAssign, CapRegister, CapView},
	},
	RoleAM: {
		info:        RoleInfo{Code: "AM", Label: "Assistant Manager", IconKey: "users", Description: "Assigns tasks and verifies completion"},
		permissions: []Capability{CapAssign, CapVerify, CapEscalate, CapView},
	},
	RoleJE: {
		info:        RoleInfo{Code: "JE", Label: "Junior Engineer", IconKey: "settings", Description: "Reviews and reassigns work"},
		permissions: []Capability{CapReview, CapReassign, CapSupervise, CapView},
	},
	RoleManager: {
		info:        RoleInfo{Code: "Manager", Label: "Manager", IconKey: "user", Description: "Final approval authority"},
		permissions: []Capability{CapApprove, CapReject, CapOversee, CapView},
	},
	RoleSDO: {
		info:        RoleInfo{Code: "SDO", Label: "Sub-Divisional Officer", IconKey: "crown", Description: "Reviews and approves resolutions"},
		permissions: []Capability{CapApprove, CapReject, CapFinalReview, CapView},
	},
	RoleGM: {
		info:        RoleInfo{Code: "GM", Label: "Grievance Manager", IconKey: "eye", Description: "Oversight and monitoring only"},
		permissions: []Capability{CapMonitor, CapView, CapReports, CapOversight},
	},
	RoleCitizen: {
		info:        RoleInfo{Code: "CITIZEN", Label: "Citizen", IconKey: "user", Description: "Submits and tracks complaints"},
		permissions: []Capability{CapSubmit, CapTrack},
	},
}

var knownRoles = []Role{RoleCM, RoleAM, RoleJE, RoleManager, RoleSDO, RoleGM, RoleCitizen}

var unknownRoleInfo = RoleInfo{Label: "Unknown Role", IconKey: "help", Description: "Role not recognised"}

// Roles returns every known role in display order.
func Roles() []Role {
	out := make([]Role, len(knownRoles))
	copy(out, knownRoles)
	return out
}

// ParseRole normalizes s (trimmed, upper-cased) and maps it onto the closed
// role set. Anything else is RoleUnknown.
func ParseRole(s string) Role {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := registry[r]; ok {
		return r
	}
	return RoleUnknown
}

// Known reports whether r is a member of the closed role set.
func (r Role) Known() bool {
	_, ok := registry[r]
	return ok
}

// Staff reports whether r is an official (any known role except citizen).
func (r Role) Staff() bool {
	return r.Known() && r != RoleCitizen
}

// Info returns display metadata; unknown roles get the "Unknown Role" fallback.
func (r Role) Info() RoleInfo {
	if e, ok := registry[r]; ok {
		return e.info
	}
	return unknownRoleInfo
}

// Permissions returns a copy of the capability list; empty for unknown roles.
func (r Role) Permissions() []Capability {
	e, ok := registry[r]
	if !ok {
		return []Capability{}
	}
	out := make([]Capability, len(e.permissions))
	copy(out, e.permissions)
	return out
}

// Can reports whether r carries capability c.
func (r Role) Can(c Capability) bool {
	for _, p := range registry[r].permissions {
		if p == c {
			return true
		}
	}
	return false
}

// HomePage is where a freshly logged-in session lands.
func (r Role) HomePage() string {
	switch r {
	case RoleGM:
		return "/admin"
	case RoleJE:
		return "/je/dashboard"
	case RoleSDO:
		return "/sdo/dashboard"
	case RoleCM:
		return "/complaint/manager"
	case RoleUnknown:
		return "/login"
	default:
		return "/dashboard"
	}
}

// Wire is the role code the grievance API stores and compares, which is
// case-sensitive ("Manager", not "MANAGER").
func (r Role) Wire() string {
	if e, ok := registry[r]; ok {
		return e.info.Code
	}
	return string(r)
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "UNKNOWN"
	}
	return string(r)
}
