package rosterdomain

import "strings"

// Role is a player's position, stored as its one-letter code.
type Role string

const (
	RoleGoalkeeper Role = "P"
	RoleDefender   Role = "D"
	RoleMidfielder Role = "C"
	RoleAttacker   Role = "A"
)

var roleOrder = map[Role]int{
	RoleGoalkeeper: 0,
	RoleDefender:   1,
	RoleMidfielder: 2,
	RoleAttacker:   3,
}

var roleNames = map[Role]string{
	RoleGoalkeeper: "Goalkeeper",
	RoleDefender:   "Defender",
	RoleMidfielder: "Midfielder",
	RoleAttacker:   "Attacker",
}

// ParseRole accepts the one-letter code or the English name, case-insensitively.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	if r := Role(strings.ToUpper(s)); r.IsValid() {
		return r, true
	}
	for r, name := range roleNames {
		if strings.EqualFold(name, s) {
			return r, true
		}
	}
	return "", false
}

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleOrder[r]
	return ok
}

// IsGoalkeeper reports whether goalkeeper-only statistics apply.
func (r Role) IsGoalkeeper() bool {
	return r == RoleGoalkeeper
}

// Order is the display rank: goalkeepers first, attackers last, unknown roles after.
func (r Role) Order() int {
	if o, ok := roleOrder[r]; ok {
		return o
	}
	return len(roleOrder)
}

// Name returns the English position name.
func (r Role) Name() string {
	return roleNames[r]
}

func (r Role) String() string {
	return string(r)
}
