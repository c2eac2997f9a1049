package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) notes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("notes list", flag.ExitOnError)
		studentID := listCmd.Int("student", 0, "Restrict to one student.")
		coursID := listCmd.Int("cours", 0, "Restrict to one course.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listNotes(ctx, *studentID, *coursID)

	case "add", "update":
		cmd := flag.NewFlagSet("notes "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Note id (update only).")
		studentID := cmd.Int("student", 0, "Student id.")
		coursID := cmd.Int("cours", 0, "Course id.")
		valeur := cmd.Float64("valeur", -1, "Grade on the 0-20 scale.")
		coefficient := cmd.Float64("coefficient", 1, "Weight of this evaluation.")
		evalType := cmd.String("type", "", "Evaluation type (devoir, examen...).")
		semestre := cmd.String("semestre", "", "Semester label.")
		date := cmd.String("date", "", "Evaluation date YYYY-MM-DD.")
		remarque := cmd.String("remarque", "", "Optional remark.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		in := academic.NewNote{
			StudentID:      *studentID,
			CoursID:        *coursID,
			Valeur:         *valeur,
			Coefficient:    *coefficient,
			TypeEvaluation: *evalType,
			Semestre:       *semestre,
			DateEvaluation: *date,
			Remarque:       *remarque,
		}
		var err error
		if args[0] == "update" {
			if *id == 0 {
				cmd.Usage()
				return errHelp
			}
			_, err = cli.svcs.Notes.Update(ctx, *id, in)
		} else {
			_, err = cli.svcs.Notes.Create(ctx, in)
		}
		if err != nil {
			cli.notify.SaveError("note", err)
			return err
		}
		cli.notify.Success("note saved")
		return cli.listNotes(ctx, in.StudentID, 0)

	case "delete":
		delCmd := flag.NewFlagSet("notes delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Note id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete note %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Notes.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("note", err)
			return err
		}
		cli.notify.Success("note deleted")
		return cli.listNotes(ctx, 0, 0)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listNotes(ctx context.Context, studentID, coursID int) error {
	var (
		all []academic.Note
		err error
	)
	switch {
	case studentID != 0:
		all, err = cli.svcs.Notes.ByStudent(ctx, studentID)
	case coursID != 0:
		all, err = cli.svcs.Notes.ByCours(ctx, coursID)
	default:
		all, err = cli.svcs.Notes.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("notes", err)
		return err
	}
	rows := make([][]string, 0, len(all))
	for _, n := range all {
		rows = append(rows, []string{
			strconv.Itoa(n.ID), strconv.Itoa(n.StudentID), strconv.Itoa(n.CoursID),
			strconv.FormatFloat(n.Valeur, 'g', -1, 64), strconv.FormatFloat(n.Coefficient, 'g', -1, 64),
			n.TypeEvaluation, n.Semestre, n.DateEvaluation,
		})
	}
	renderTable(cli.out, []string{"ID", "STUDENT", "COURS", "VALEUR", "COEF", "TYPE", "SEMESTRE", "DATE"}, rows)
	if len(all) > 0 {
		fmt.Fprintf(cli.out, "weighted average: %.2f/20\n", academic.WeightedAverage(all))
	}
	return nil
}
