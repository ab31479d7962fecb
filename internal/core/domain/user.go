package domain

// UserStatus values accepted by the grievance API.
const (
	UserActive   = "Active"
	UserInactive = "Inactive"
)

// NewStaffUser is a staff account to be created by a GM.
type NewStaffUser struct {
	Name     string
	Email    string
	Password string
	Role     Role
	Division string
}

// UserPatch carries the fields of a staff account update; nil means unchanged.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Role     *Role
	Division *string
	Status   *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil &&
		p.Role == nil && p.Division == nil && p.Status == nil
}
