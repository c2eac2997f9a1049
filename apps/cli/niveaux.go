package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) niveaux(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("niveaux list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on name.")
		filiereID := listCmd.Int("filiere", 0, "Restrict to one program.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listNiveaux(ctx, *search, *filiereID)

	case "add", "update":
		cmd := flag.NewFlagSet("niveaux "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Niveau id (update only).")
		nom := cmd.String("nom", "", "Level name.")
		filiereID := cmd.Int("filiere", 0, "Owning program id.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		in := academic.NewNiveau{Nom: *nom, FiliereID: *filiereID}
		var err error
		if args[0] == "update" {
			if *id == 0 {
				cmd.Usage()
				return errHelp
			}
			_, err = cli.svcs.Niveaux.Update(ctx, *id, in)
		} else {
			_, err = cli.svcs.Niveaux.Create(ctx, in)
		}
		if err != nil {
			cli.notify.SaveError("niveau", err)
			return err
		}
		cli.notify.Success("niveau saved")
		return cli.listNiveaux(ctx, "", 0)

	case "delete":
		delCmd := flag.NewFlagSet("niveaux delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Niveau id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete niveau %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Niveaux.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("niveau", err)
			return err
		}
		cli.notify.Success("niveau deleted")
		return cli.listNiveaux(ctx, "", 0)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listNiveaux(ctx context.Context, search string, filiereID int) error {
	var (
		all []academic.Niveau
		err error
	)
	if filiereID != 0 {
		all, err = cli.svcs.Niveaux.ByFiliere(ctx, filiereID)
	} else {
		all, err = cli.svcs.Niveaux.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("niveaux", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, niv := range all {
		if !matchesSearch(search, niv.Nom) {
			continue
		}
		rows = append(rows, []string{strconv.Itoa(niv.ID), niv.Nom, strconv.Itoa(niv.FiliereID)})
	}
	renderTable(cli.out, []string{"ID", "NOM", "FILIERE"}, rows)
	return nil
}
