// Command admin inspects and maintains user accounts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
)

const usage = `usage: admin <command> [flags]

commands:
  listusers                      list registered users
  resetpassword -username NAME   set a new password for NAME
`

const minPasswordLen = 6

type app struct {
	repo         *repositories.Repository
	out          io.Writer
	readPassword func(prompt string) (string, error)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	db, err := repositories.ConnectDatabase(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := &app{repo: repositories.New(db), out: os.Stdout, readPassword: terminalPassword}
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New(strings.TrimSpace(usage))
	}
	switch args[0] {
	case "listusers":
		return a.listUsers(ctx)
	case "resetpassword":
		fs := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
		fs.SetOutput(a.out)
		username := fs.String("username", "", "account to update")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *username == "" {
			return errors.New("resetpassword: -username is required")
		}
		return a.resetPassword(ctx, *username)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func (a *app) listUsers(ctx context.Context) error {
	users, err := a.repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tPASSWORD HASH")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, truncate(u.Password, 20))
	}
	return tw.Flush()
}

func (a *app) resetPassword(ctx context.Context, username string) error {
	if _, err := a.repo.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("user %q not found", username)
		}
		return err
	}

	password, err := a.readPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := a.readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := a.repo.UpdatePassword(ctx, username, string(hash)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "password updated for %s\n", username)
	return nil
}

func terminalPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
