package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gourbalissakh/scolaris/core/academic"
	"github.com/gourbalissakh/scolaris/core/user"
)

// dashboard renders the role-specific overview. Collections are fetched in
// parallel and only combined once all have resolved; one failing branch
// fails the whole aggregation.
func (cli *commandLine) dashboard(ctx context.Context) error {
	usr, ok := cli.store.User()
	if !ok {
		cli.notify.Info("log in to see a dashboard")
		return nil
	}
	switch {
	case usr.IsAdmin():
		return cli.adminDashboard(ctx)
	case usr.IsTeacher():
		return cli.teacherDashboard(ctx, usr)
	default:
		return cli.studentDashboard(ctx, usr)
	}
}

func (cli *commandLine) adminDashboard(ctx context.Context) error {
	var (
		filieres []academic.Filiere
		niveaux  []academic.Niveau
		classes  []academic.Classe
		cours    []academic.Cours
		users    []user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { filieres, err = cli.svcs.Filieres.GetAll(gctx); return })
	g.Go(func() (err error) { niveaux, err = cli.svcs.Niveaux.GetAll(gctx); return })
	g.Go(func() (err error) { classes, err = cli.svcs.Classes.GetAll(gctx); return })
	g.Go(func() (err error) { cours, err = cli.svcs.Cours.GetAll(gctx); return })
	g.Go(func() (err error) { users, err = cli.svcs.Users.GetAll(gctx); return })
	if err := g.Wait(); err != nil {
		cli.notify.LoadError("dashboard", err)
		return err
	}

	var teachers, students int
	for _, usr := range users {
		switch usr.Role {
		case user.RoleTeacher:
			teachers++
		case user.RoleStudent:
			students++
		}
	}

	fmt.Fprintf(cli.out, "Etablissement\n")
	fmt.Fprintf(cli.out, "  filieres: %d   niveaux: %d   classes: %d   cours: %d\n",
		len(filieres), len(niveaux), len(classes), len(cours))
	fmt.Fprintf(cli.out, "  enseignants: %d   etudiants: %d\n", teachers, students)

	// seat occupancy per section, fullest first
	type occupancy struct {
		classe  academic.Classe
		percent float64
	}
	occ := make([]occupancy, 0, len(classes))
	for _, cls := range classes {
		if cls.Capacite.Valid && cls.Capacite.Int > 0 && cls.Effectif.Valid {
			occ = append(occ, occupancy{cls, 100 * float64(cls.Effectif.Int) / float64(cls.Capacite.Int)})
		}
	}
	sort.Slice(occ, func(i, j int) bool { return occ[i].percent > occ[j].percent })
	if len(occ) > 0 {
		fmt.Fprintln(cli.out, "Occupation des classes")
		for _, o := range occ {
			fmt.Fprintf(cli.out, "  %-20s %3.0f%% (%d/%d)\n",
				o.classe.Nom, o.percent, o.classe.Effectif.Int, o.classe.Capacite.Int)
		}
	}
	return nil
}

func (cli *commandLine) teacherDashboard(ctx context.Context, usr user.User) error {
	var (
		cours []academic.Cours
		slots []academic.EmploiTemps
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { cours, err = cli.svcs.Cours.ByTeacher(gctx, usr.ID); return })
	g.Go(func() (err error) { slots, err = cli.svcs.Emplois.ByTeacher(gctx, usr.ID); return })
	if err := g.Wait(); err != nil {
		cli.notify.LoadError("dashboard", err)
		return err
	}

	fmt.Fprintf(cli.out, "Enseignant %s: %d cours, %d creneaux\n", usr.FullName(), len(cours), len(slots))

	if today := academic.Today(time.Now()); today != "" {
		fmt.Fprintf(cli.out, "Aujourd'hui (%s)\n", today)
		renderSlots(cli, academic.SlotsForDay(slots, today), "")
	}

	// class average per taught course; sequential on purpose, one row each
	for _, crs := range cours {
		notes, err := cli.svcs.Notes.ByCours(ctx, crs.ID)
		if err != nil {
			cli.notify.LoadError("notes for "+crs.Code, err)
			return err
		}
		fmt.Fprintf(cli.out, "  %-10s moyenne de classe: %.2f/20 (%d notes)\n",
			crs.Code, academic.WeightedAverage(notes), len(notes))
	}
	return nil
}

func (cli *commandLine) studentDashboard(ctx context.Context, usr user.User) error {
	var (
		notes []academic.Note
		slots []academic.EmploiTemps
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { notes, err = cli.svcs.Notes.ByStudent(gctx, usr.ID); return })
	if usr.ClasseID.Valid {
		g.Go(func() (err error) { slots, err = cli.svcs.Emplois.ByClasse(gctx, usr.ClasseID.Int); return })
	}
	if err := g.Wait(); err != nil {
		cli.notify.LoadError("dashboard", err)
		return err
	}

	fmt.Fprintf(cli.out, "Etudiant %s\n", usr.FullName())

	if today := academic.Today(time.Now()); today != "" && usr.ClasseID.Valid {
		fmt.Fprintf(cli.out, "Aujourd'hui (%s)\n", today)
		renderSlots(cli, academic.SlotsForDay(slots, today), "")
	}

	avgs := academic.AveragesByCours(notes)
	ids := make([]int, 0, len(avgs))
	for id := range avgs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(cli.out, "  cours %-4d moyenne: %.2f/20\n", id, avgs[id])
	}
	fmt.Fprintf(cli.out, "Moyenne generale: %.2f/20\n", academic.WeightedAverage(notes))
	return nil
}
