package authdomain

// Role is the role claim carried by an admin API token.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanEditVotes reports whether the role may call the admin API.
func (r Role) CanEditVotes() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
