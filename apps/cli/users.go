package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/user"
)

func (cli *commandLine) users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("users list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on name, surname and email.")
		role := listCmd.String("role", "", "Restrict to one role.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listUsers(ctx, *search, *role)

	case "show":
		showCmd := flag.NewFlagSet("users show", flag.ExitOnError)
		id := showCmd.Int("id", 0, "User id.")
		if err := showCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			showCmd.Usage()
			return errHelp
		}
		usr, err := cli.svcs.Users.Get(ctx, *id)
		if err != nil {
			cli.notify.LoadError("user", err)
			return err
		}
		fmt.Fprintf(cli.out, "%s <%s>\nrole: %s  matricule: %s  tel: %s\n",
			usr.FullName(), usr.Email, usr.Role, orDash(usr.Matricule), orDash(usr.Telephone))
		return nil

	case "add":
		addCmd := flag.NewFlagSet("users add", flag.ExitOnError)
		name := addCmd.String("name", "", "First name.")
		surname := addCmd.String("surname", "", "Surname.")
		email := addCmd.String("email", "", "Email address.")
		role := addCmd.String("role", user.RoleStudent, "admin, teacher or student.")
		matricule := addCmd.String("matricule", "", "Institutional identifier.")
		telephone := addCmd.String("telephone", "", "Local mobile number.")
		classeID := addCmd.Int("classe", 0, "Class section id, for students.")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" || *surname == "" || *email == "" {
			addCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		_, err = cli.svcs.Users.Create(ctx, user.NewUser{
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
			cli.notify.SaveError("user", err)
			return err
		}
		cli.notify.Success("user saved")
		return cli.listUsers(ctx, "", "")

	case "update":
		updCmd := flag.NewFlagSet("users update", flag.ExitOnError)
		id := updCmd.Int("id", 0, "User id.")
		name := updCmd.String("name", "", "First name.")
		surname := updCmd.String("surname", "", "Surname.")
		email := updCmd.String("email", "", "Email address.")
		role := updCmd.String("role", "", "admin, teacher or student.")
		matricule := updCmd.String("matricule", "", "Institutional identifier.")
		telephone := updCmd.String("telephone", "", "Local mobile number.")
		adresse := updCmd.String("adresse", "", "Postal address.")
		statut := updCmd.String("statut", "", "Account status.")
		classeID := updCmd.Int("classe", 0, "Class section id.")
		if err := updCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			updCmd.Usage()
			return errHelp
		}
		_, err := cli.svcs.Users.Update(ctx, *id, user.UpdateUser{
			Name:      *name,
			Surname:   *surname,
			Email:     *email,
			Role:      *role,
			Matricule: *matricule,
			Telephone: *telephone,
			Adresse:   *adresse,
			Statut:    *statut,
			ClasseID:  *classeID,
		})
		if err != nil {
			cli.notify.SaveError("user", err)
			return err
		}
		cli.notify.Success("user saved")
		return cli.listUsers(ctx, "", "")

	case "delete":
		delCmd := flag.NewFlagSet("users delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "User id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete user %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Users.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("user", err)
			return err
		}
		cli.notify.Success("user deleted")
		return cli.listUsers(ctx, "", "")

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listUsers(ctx context.Context, search, role string) error {
	var (
		all []user.User
		err error
	)
	if role != "" {
		all, err = cli.svcs.Users.ByRole(ctx, role)
	} else {
		all, err = cli.svcs.Users.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("users", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, usr := range all {
		if !matchesSearch(search, usr.Name, usr.Surname, usr.Email) {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(usr.ID), usr.FullName(), usr.Email, usr.Role, orDash(usr.Matricule),
		})
	}
	renderTable(cli.out, []string{"ID", "NOM", "EMAIL", "ROLE", "MATRICULE"}, rows)
	return nil
}
