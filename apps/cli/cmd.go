package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gourbalissakh/scolaris/backend"
	"github.com/gourbalissakh/scolaris/session"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	svcs   *backend.Services
	store  *session.Store
	theme  *session.Theme
	out    io.Writer
	in     io.Reader
	notify *notifier
}

func newCommandLine(svcs *backend.Services, store *session.Store, theme *session.Theme, out io.Writer, in io.Reader) *commandLine {
	return &commandLine{
		svcs:   svcs,
		store:  store,
		theme:  theme,
		out:    out,
		in:     in,
		notify: newNotifier(out, theme),
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                        - open a session (password prompted)")
	fmt.Fprintln(cli.out, "  register -name N -surname S -email E ...  - create an account and open a session")
	fmt.Fprintln(cli.out, "  logout                                    - close the session")
	fmt.Fprintln(cli.out, "  whoami                                    - show the current account")
	fmt.Fprintln(cli.out, "  theme [-set NAME]                         - show, set or toggle the theme")
	fmt.Fprintln(cli.out, "  dashboard                                 - role dashboard for the current account")
	fmt.Fprintln(cli.out, "  filieres|niveaux|classes|cours|emplois|notes|users ACTION [flags]")
	fmt.Fprintln(cli.out, "      ACTION: list [-search TERM] | show -id ID | add [flags] | update -id ID [flags] | delete -id ID")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "register":
		return cli.register(ctx, args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "theme":
		return cli.themeCmd(args[2:])
	case "dashboard":
		return cli.dashboard(ctx)
	case "filieres":
		return cli.filieres(ctx, args[2:])
	case "niveaux":
		return cli.niveaux(ctx, args[2:])
	case "classes":
		return cli.classes(ctx, args[2:])
	case "cours":
		return cli.cours(ctx, args[2:])
	case "emplois":
		return cli.emplois(ctx, args[2:])
	case "notes":
		return cli.notes(ctx, args[2:])
	case "users":
		return cli.users(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm asks before a destructive action; only an explicit yes proceeds.
func (cli *commandLine) confirm(prompt string) bool {
	fmt.Fprintf(cli.out, "%s [y/N] ", prompt)
	var answer string
	if _, err := fmt.Fscanln(cli.in, &answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
