package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wichananm65/user-roster/internal/user"
)

const sample = `
users:
  - id: 3
    firstName: Bob
    lastName: Lee
  - id: 1
    firstName: Amy
    lastName: Choi
    active: true
  - id: 2
    firstName: Cy
    lastName: Park
    active: false
  - id: 5
    firstName: ""
    lastName: Zed
`

func TestParse(t *testing.T) {
	users, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}
	if !users[0].Active() {
		t.Fatalf("missing active key should default to true")
	}
	if users[2].Active() {
		t.Fatalf("explicit active false was ignored")
	}

	names, err := user.ActiveNamesByID(users)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	want := []string{"Amy Choi", "Bob Lee", " Zed"}
	if len(names) != len(want) {
		t.Fatalf("expected %q, got %q", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %q, got %q", want, names)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("other: 1\n")); !errors.Is(err, ErrNoUsers) {
		t.Fatalf("expected ErrNoUsers, got %v", err)
	}
	if _, err := Parse([]byte("users: [\n")); err == nil {
		t.Fatalf("expected yaml error")
	}

	users, err := Parse([]byte("users: []\n"))
	if err != nil || len(users) != 0 {
		t.Fatalf("expected empty roster, got %d users err %v", len(users), err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	users, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
