// Package seed loads roster users from YAML documents.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/wichananm65/user-roster/internal/user"
	"gopkg.in/yaml.v3"
)

var ErrNoUsers = errors.New("seed document has no users key")

type document struct {
	Users *[]entry `yaml:"users"`
}

type entry struct {
	ID        int    `yaml:"id"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Active    *bool  `yaml:"active"`
}

func LoadFile(path string) ([]*user.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	users, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return users, nil
}

// Parse decodes a seed document. Entries without an active key are active.
// Names are kept exactly as written.
func Parse(data []byte) ([]*user.User, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if doc.Users == nil {
		return nil, ErrNoUsers
	}

	users := make([]*user.User, 0, len(*doc.Users))
	for _, e := range *doc.Users {
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		users = append(users, user.NewUser(e.ID, e.FirstName, e.LastName, active))
	}
	return users, nil
}
