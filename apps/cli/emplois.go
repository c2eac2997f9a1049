package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/gourbalissakh/scolaris/core/academic"
)

func (cli *commandLine) emplois(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("emplois list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive filter on code and day.")
		classeID := listCmd.Int("classe", 0, "Restrict to one class section.")
		jour := listCmd.String("jour", "", "Restrict to one day (Lundi..Samedi).")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.listEmplois(ctx, *search, *classeID, *jour)

	case "add", "update":
		cmd := flag.NewFlagSet("emplois "+args[0], flag.ExitOnError)
		id := cmd.Int("id", 0, "Slot id (update only).")
		code := cmd.String("code", "", "Slot code; stored upper-cased.")
		classeID := cmd.Int("classe", 0, "Class section id.")
		coursID := cmd.Int("cours", 0, "Course id.")
		teacherID := cmd.Int("teacher", 0, "Teacher id.")
		jour := cmd.String("jour", "", "Day (Lundi..Samedi).")
		debut := cmd.String("debut", "", "Start time HH:MM.")
		fin := cmd.String("fin", "", "End time HH:MM.")
		salle := cmd.String("salle", "", "Room.")
		slotType := cmd.String("type", "", "CM, TD or TP.")
		remarques := cmd.String("remarques", "", "Free remarks.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		in := academic.NewEmploiTemps{
			Code:      *code,
			ClasseID:  *classeID,
			CoursID:   *coursID,
			TeacherID: *teacherID,
			Jour:      *jour,
			HeureDeb:  *debut,
			HeureFin:  *fin,
			Salle:     *salle,
			Type:      *slotType,
			Remarques: *remarques,
		}
		var err error
		if args[0] == "update" {
			if *id == 0 {
				cmd.Usage()
				return errHelp
			}
			_, err = cli.svcs.Emplois.Update(ctx, *id, in)
		} else {
			_, err = cli.svcs.Emplois.Create(ctx, in)
		}
		if err != nil {
			cli.notify.SaveError("emploi du temps", err)
			return err
		}
		cli.notify.Success("slot saved")
		return cli.listEmplois(ctx, "", in.ClasseID, "")

	case "delete":
		delCmd := flag.NewFlagSet("emplois delete", flag.ExitOnError)
		id := delCmd.Int("id", 0, "Slot id.")
		if err := delCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if !cli.confirm(fmt.Sprintf("delete slot %d?", *id)) {
			cli.notify.Info("delete cancelled")
			return nil
		}
		if err := cli.svcs.Emplois.Delete(ctx, *id); err != nil {
			cli.notify.DeleteError("emploi du temps", err)
			return err
		}
		cli.notify.Success("slot deleted")
		return cli.listEmplois(ctx, "", 0, "")

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listEmplois(ctx context.Context, search string, classeID int, jour string) error {
	var (
		all []academic.EmploiTemps
		err error
	)
	if classeID != 0 {
		all, err = cli.svcs.Emplois.ByClasse(ctx, classeID)
	} else {
		all, err = cli.svcs.Emplois.GetAll(ctx)
	}
	if err != nil {
		cli.notify.LoadError("emplois du temps", err)
		return err
	}
	if jour != "" {
		all = academic.SlotsForDay(all, jour)
	}
	renderSlots(cli, all, search)
	return nil
}

func renderSlots(cli *commandLine, slots []academic.EmploiTemps, search string) {
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		if !matchesSearch(search, slot.Code, slot.Jour) {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(slot.ID), slot.Code, strconv.Itoa(slot.ClasseID), strconv.Itoa(slot.CoursID),
			slot.Jour, slot.HeureDeb + "-" + slot.HeureFin, orDash(slot.Salle), orDash(slot.Type),
		})
	}
	renderTable(cli.out, []string{"ID", "CODE", "CLASSE", "COURS", "JOUR", "HORAIRE", "SALLE", "TYPE"}, rows)
}
