package user

import (
	"cmp"
	"fmt"
	"slices"
)

// DisplayName joins first and last name with a single space, verbatim.
func DisplayName(u *User) string {
	return u.FirstName() + " " + u.LastName()
}

// ActiveNamesByID returns the display names of the active users, ordered by
// ascending ID. Users sharing an ID keep their relative input order.
// Neither the slice nor its users are modified.
//
// A nil element yields an error wrapping ErrInvalidInput.
func ActiveNamesByID(users []*User) ([]string, error) {
	active := make([]*User, 0, len(users))
	for i, u := range users {
		if u == nil {
			return nil, fmt.Errorf("%w: user at index %d is nil", ErrInvalidInput, i)
		}
		if u.Active() {
			active = append(active, u)
		}
	}

	slices.SortStableFunc(active, func(a, b *User) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	names := make([]string, 0, len(active))
	for _, u := range active {
		names = append(names, DisplayName(u))
	}
	return names, nil
}
