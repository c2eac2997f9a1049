package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/gourbalissakh/scolaris/core/user"
)

var readPasswordFunc = term.ReadPassword // mockable

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "The account's email. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		loginCmd.Usage()
		return errHelp
	}
	pwd, err := cli.promptPassword()
	if err != nil {
		return err
	}

	usr, err := cli.store.Login(ctx, cli.svcs.Auth, user.Credentials{Email: *email, Password: pwd})
	if err != nil {
		cli.notify.SaveError("session", err)
		return err
	}
	cli.notify.Success("logged in as %s (%s)", usr.FullName(), usr.Role)
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	regCmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := regCmd.String("name", "", "First name.")
	surname := regCmd.String("surname", "", "Surname.")
	email := regCmd.String("email", "", "Email address.")
	role := regCmd.String("role", user.RoleStudent, "Account role: admin, teacher or student.")
	matricule := regCmd.String("matricule", "", "Institutional identifier (XXX-NNNN-NNNN), required for students.")
	telephone := regCmd.String("telephone", "", "Local mobile number.")
	classeID := regCmd.Int("classe", 0, "Class section id, for students.")
	if err := regCmd.Parse(args); err != nil {
		return err
	}
	if *name == "" || *surname == "" || *email == "" {
		regCmd.Usage()
		return errHelp
	}
	pwd, err := cli.promptPassword()
	if err != nil {
		return err
	}

	usr, err := cli.store.Register(ctx, cli.svcs.Auth, user.NewUser{
		Name:      *name,
		Surname:   *surname,
		Email:     *email,
		Password:  pwd,
		Role:      *role,
		Matricule: *matricule,
		Telephone: *telephone,
		ClasseID:  *classeID,
	})
	if err != nil {
		cli.notify.SaveError("account", err)
		return err
	}
	cli.notify.Success("registered and logged in as %s", usr.FullName())
	return nil
}

func (cli *commandLine) logout() error {
	cli.store.Logout()
	cli.notify.Success("logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	usr, ok := cli.store.User()
	if !ok {
		cli.notify.Info("not logged in")
		return nil
	}
	fmt.Fprintf(cli.out, "%s <%s>\nrole: %s\n", usr.FullName(), usr.Email, usr.Role)
	if usr.Matricule.Valid {
		fmt.Fprintf(cli.out, "matricule: %s\n", usr.Matricule.String)
	}
	return nil
}

func (cli *commandLine) themeCmd(args []string) error {
	themeCmd := flag.NewFlagSet("theme", flag.ExitOnError)
	set := themeCmd.String("set", "", "Theme name to activate.")
	toggle := themeCmd.Bool("toggle", false, "Flip between light and dark.")
	if err := themeCmd.Parse(args); err != nil {
		return err
	}
	switch {
	case *set != "":
		cli.theme.Set(*set)
		cli.notify.Success("theme set to %s", *set)
	case *toggle:
		cli.notify.Success("theme set to %s", cli.theme.Toggle())
	default:
		fmt.Fprintln(cli.out, cli.theme.Name())
	}
	return nil
}
