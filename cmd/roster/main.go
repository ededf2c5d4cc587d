package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wichananm65/user-roster/internal/auth"
	"github.com/wichananm65/user-roster/internal/seed"
	"github.com/wichananm65/user-roster/internal/user"
)

const usage = `usage:
  roster names <seed.yaml>   print active display names ordered by id
  roster hash <password>     print a bcrypt hash for ADMIN_PASSWORD_HASH
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%s", usage)
	}

	switch args[0] {
	case "names":
		users, err := seed.LoadFile(args[1])
		if err != nil {
			return err
		}
		names, err := user.ActiveNamesByID(users)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	case "hash":
		hashed, err := auth.HashPassword(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hashed)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}
