package user

import (
	"sync/atomic"

	"github.com/goccy/go-json"
)

// User is a roster entry. ID and names are fixed at construction; only the
// active flag may change afterwards.
//
// The flag is stored atomically, so SetActive never races with readers, but
// ActiveNamesByID still only observes a point-in-time view of each user.
// Callers needing a consistent snapshot across several users must
// synchronize on their own.
type User struct {
	id        int
	firstName string
	lastName  string
	active    atomic.Bool
}

func NewUser(id int, firstName, lastName string, active bool) *User {
	u := &User{id: id, firstName: firstName, lastName: lastName}
	u.active.Store(active)
	return u
}

func (u *User) ID() int {
	return u.id
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Active() bool {
	return u.active.Load()
}

func (u *User) SetActive(active bool) {
	u.active.Store(active)
}

// userJSON is the wire shape of a User.
type userJSON struct {
	ID        int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    bool   `json:"active"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{
		ID:        u.id,
		FirstName: u.firstName,
		LastName:  u.lastName,
		Active:    u.Active(),
	})
}
