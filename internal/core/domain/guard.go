package domain

// Decision is the outcome of a route guard check.
type Decision int

const (
	Render Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "login"
	case RedirectUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Requirement describes who may reach a route. Public routes skip the
// check entirely; an empty Roles list on a non-public route means any
// authenticated role.
type Requirement struct {
	Public bool
	Roles  []Role
}

// RequireAny builds a non-public requirement for the given roles.
func RequireAny(roles ...Role) Requirement {
	return Requirement{Roles: roles}
}

// Allows reports whether role r satisfies the role list.
func (q Requirement) Allows(r Role) bool {
	if len(q.Roles) == 0 {
		return true
	}
	for _, allowed := range q.Roles {
		if ParseRole(string(allowed)) == r {
			return true
		}
	}
	return false
}

// Guard decides whether s may render a route with requirement q.
//
// The decision is advisory: it shapes what the browser sees, and the
// grievance API re-checks every mutating request on its own.
func Guard(s *Session, q Requirement) Decision {
	if q.Public {
		return Render
	}
	if !s.LoggedIn() {
		return RedirectLogin
	}
	role := s.Role()
	if role == RoleUnknown {
		return RedirectLogin
	}
	if !q.Allows(role) {
		return RedirectUnauthorized
	}
	return Render
}
