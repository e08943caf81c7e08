package rosterservice

import (
	"cmp"
	"slices"

	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
)

// SortPlayers orders players goalkeeper, defender, midfielder, attacker, then by name.
func SortPlayers(players []rosterdb.Player) {
	slices.SortStableFunc(players, func(a, b rosterdb.Player) int {
		if c := cmp.Compare(a.Role.Order(), b.Role.Order()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
