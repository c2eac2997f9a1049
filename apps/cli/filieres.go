package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) filieres(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("filieres list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on name and code.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listFilieres(ctx, *search)

	case "show":
		showCmd := flag.NewFlagSet("filieres show", flag.ExitOnError)
		id := showCmd.Int("id", 0, "Filiere id.")
		if err := showCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			showCmd.Usage()
			return errHelp
		}
		fil, err := cli.svcs.Filieres.Get(ctx, *id)
		if err != nil {
			cli.notify.LoadError("filiere", err)
			return err
		}
		fmt.Fprintf(cli.out, "%s (%s)\n%s\n", fil.Nom, fil.Code, orDash(fil.Description))
		return nil

	case "add", "update":
		cmd := flag.NewFlagSet("filieres "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Filiere id (update only).")
		nom := cmd.String("nom", "", "Program name.")
		code := cmd.String("code", "", "Program code; stored upper-cased.")
		desc := cmd.String("description", "", "Optional description.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.saveFiliere(ctx, args[0], *id, *nom, *code, *desc)

	case "delete":
		delCmd := flag.NewFlagSet("filieres delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Filiere id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		return cli.deleteFiliere(ctx, *id)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listFilieres(ctx context.Context, search string) error {
	all, err := cli.svcs.Filieres.GetAll(ctx)
	if err != nil {
		cli.notify.LoadError("filieres", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, fil := range all {
		if !matchesSearch(search, fil.Nom, fil.Code) {
			continue
		}
		rows = append(rows, []string{strconv.Itoa(fil.ID), fil.Nom, fil.Code, orDash(fil.Description)})
	}
	renderTable(cli.out, []string{"ID", "NOM", "CODE", "DESCRIPTION"}, rows)
	return nil
}

func (cli *commandLine) saveFiliere(ctx context.Context, action string, id int, nom, code, desc string) error {
	in := academic.NewFiliere{Nom: nom, Code: code, Description: desc}

	var err error
	if action == "update" {
		if id == 0 {
			return errHelp
		}
		_, err = cli.svcs.Filieres.Update(ctx, id, in)
	} else {
		_, err = cli.svcs.Filieres.Create(ctx, in)
	}
	if err != nil {
		cli.notify.SaveError("filiere", err)
		return err
	}
	cli.notify.Success("filiere saved")
	return cli.listFilieres(ctx, "")
}

func (cli *commandLine) deleteFiliere(ctx context.Context, id int) error {
	if !cli.confirm(fmt.Sprintf("delete filiere %d?", id)) {
		cli.notify.Info("delete cancelled")
		return nil
	}
	if err := cli.svcs.Filieres.Delete(ctx, id); err != nil {
		cli.notify.DeleteError("filiere", err)
		return err
	}
	cli.notify.Success("filiere deleted")
	return cli.listFilieres(ctx, "")
}
