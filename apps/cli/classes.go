package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) classes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("classes list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on name and code.")
		niveauID := listCmd.Int("niveau", 0, "Restrict to one level.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listClasses(ctx, *search, *niveauID)

	case "show":
		showCmd := flag.NewFlagSet("classes show", flag.ExitOnError)
		id := showCmd.Int("id", 0, "Classe id.")
		if err := showCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			showCmd.Usage()
			return errHelp
		}
		cls, err := cli.svcs.Classes.Get(ctx, *id)
		if err != nil {
			cli.notify.LoadError("classe", err)
			return err
		}
		fmt.Fprintf(cli.out, "%s (%s)\nfiliere %d, niveau %d\ncapacite: %s  effectif: %s  salle: %s\n",
			cls.Nom, cls.Code, cls.FiliereID, cls.NiveauID,
			intOrDash(cls.Capacite), intOrDash(cls.Effectif), orDash(cls.Salle))
		return nil

	case "add", "update":
		cmd := flag.NewFlagSet("classes "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Classe id (update only).")
		nom := cmd.String("nom", "", "Section name.")
		code := cmd.String("code", "", "Section code; stored upper-cased.")
		filiereID := cmd.Int("filiere", 0, "Owning program id.")
		niveauID := cmd.Int("niveau", 0, "Owning level id.")
		capacite := cmd.Int("capacite", 0, "Seat capacity.")
		salle := cmd.String("salle", "", "Default room.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		in := academic.NewClasse{
			Nom:       *nom,
			Code:      *code,
			FiliereID: *filiereID,
			NiveauID:  *niveauID,
			Capacite:  *capacite,
			Salle:     *salle,
		}
		var err error
		if args[0] == "update" {
			if *id == 0 {
				cmd.Usage()
				return errHelp
			}
			_, err = cli.svcs.Classes.Update(ctx, *id, in)
		} else {
			_, err = cli.svcs.Classes.Create(ctx, in)
		}
		if err != nil {
			cli.notify.SaveError("classe", err)
			return err
		}
		cli.notify.Success("classe saved")
		return cli.listClasses(ctx, "", 0)

	case "delete":
		delCmd := flag.NewFlagSet("classes delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Classe id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete classe %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Classes.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("classe", err)
			return err
		}
		cli.notify.Success("classe deleted")
		return cli.listClasses(ctx, "", 0)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listClasses(ctx context.Context, search string, niveauID int) error {
	var (
		all []academic.Classe
		err error
	)
	if niveauID != 0 {
		all, err = cli.svcs.Classes.ByNiveau(ctx, niveauID)
	} else {
		all, err = cli.svcs.Classes.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("classes", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, cls := range all {
		if !matchesSearch(search, cls.Nom, cls.Code) {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(cls.ID), cls.Nom, cls.Code,
			strconv.Itoa(cls.FiliereID), strconv.Itoa(cls.NiveauID),
			intOrDash(cls.Capacite), intOrDash(cls.Effectif), orDash(cls.Salle),
		})
	}
	renderTable(cli.out, []string{"ID", "NOM", "CODE", "FILIERE", "NIVEAU", "CAPACITE", "EFFECTIF", "SALLE"}, rows)
	return nil
}
