package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Names(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	doc := "users:\n  - {id: 3, firstName: Bob, lastName: Lee}\n  - {id: 1, firstName: Amy, lastName: Choi}\n  - {id: 2, firstName: Cy, lastName: Park, active: false}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"names", path}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "Amy Choi\nBob Lee\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRun_Hash(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"hash", "pw"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "$2") {
		t.Fatalf("expected bcrypt hash, got %q", out.String())
	}
}

func TestRun_Usage(t *testing.T) {
	if err := run(nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected usage error")
	}
	if err := run([]string{"bogus", "x"}, &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
