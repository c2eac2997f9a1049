package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) cours(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("cours list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on name and code.")
		classeID := listCmd.Int("classe", 0, "Restrict to one class section.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listCours(ctx, *search, *classeID)

	case "show":
		showCmd := flag.NewFlagSet("cours show", flag.ExitOnError)
		id := showCmd.Int("id", 0, "Cours id.")
		if err := showCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			showCmd.Usage()
			return errHelp
		}
		crs, err := cli.svcs.Cours.Get(ctx, *id)
		if err != nil {
			cli.notify.LoadError("cours", err)
			return err
		}
		fmt.Fprintf(cli.out, "%s (%s)\ncredits: %d  coefficient: %g\nCM/TD/TP: %s/%s/%s  semestre: %s\n",
			crs.Nom, crs.Code, crs.Credits, crs.Coefficient,
			intOrDash(crs.HeuresCM), intOrDash(crs.HeuresTD), intOrDash(crs.HeuresTP), orDash(crs.Semestre))
		return nil

	case "add", "update":
		cmd := flag.NewFlagSet("cours "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Cours id (update only).")
		nom := cmd.String("nom", "", "Course name.")
		code := cmd.String("code", "", "Course code; stored upper-cased.")
		credits := cmd.Int("credits", 0, "Credit count.")
		coefficient := cmd.Float64("coefficient", 0, "Weight in averages.")
		heuresCM := cmd.Int("cm", 0, "Lecture hours.")
		heuresTD := cmd.Int("td", 0, "Tutorial hours.")
		heuresTP := cmd.Int("tp", 0, "Lab hours.")
		semestre := cmd.String("semestre", "", "Semester label.")
		coursType := cmd.String("type", "", "CM, TD or TP.")
		teacherID := cmd.Int("teacher", 0, "Assigned teacher id.")
		niveauID := cmd.Int("niveau", 0, "Level id.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		in := academic.NewCours{
			Nom:         *nom,
			Code:        *code,
			Credits:     *credits,
			Coefficient: *coefficient,
			HeuresCM:    *heuresCM,
			HeuresTD:    *heuresTD,
			HeuresTP:    *heuresTP,
			Semestre:    *semestre,
			Type:        *coursType,
			TeacherID:   *teacherID,
			NiveauID:    *niveauID,
		}
		var err error
		if args[0] == "update" {
			if *id == 0 {
				cmd.Usage()
				return errHelp
			}
			_, err = cli.svcs.Cours.Update(ctx, *id, in)
		} else {
			_, err = cli.svcs.Cours.Create(ctx, in)
		}
		if err != nil {
			cli.notify.SaveError("cours", err)
			return err
		}
		cli.notify.Success("cours saved")
		return cli.listCours(ctx, "", 0)

	case "delete":
		delCmd := flag.NewFlagSet("cours delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Cours id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete cours %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Cours.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("cours", err)
			return err
		}
		cli.notify.Success("cours deleted")
		return cli.listCours(ctx, "", 0)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listCours(ctx context.Context, search string, classeID int) error {
	var (
		all []academic.Cours
		err error
	)
	if classeID != 0 {
		all, err = cli.svcs.Cours.ByClasse(ctx, classeID)
	} else {
		all, err = cli.svcs.Cours.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("cours", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, crs := range all {
		if !matchesSearch(search, crs.Nom, crs.Code) {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(crs.ID), crs.Nom, crs.Code,
			strconv.Itoa(crs.Credits), strconv.FormatFloat(crs.Coefficient, 'g', -1, 64),
			orDash(crs.Semestre), orDash(crs.Type),
		})
	}
	renderTable(cli.out, []string{"ID", "NOM", "CODE", "CREDITS", "COEF", "SEMESTRE", "TYPE"}, rows)
	return nil
}
