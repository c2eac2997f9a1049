package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/gourbalissakh/scolaris/backend"
	"github.com/gourbalissakh/scolaris/core"
	logsvc "github.com/gourbalissakh/scolaris/services/logger"
	"github.com/gourbalissakh/scolaris/session"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "SCOLARIS : ", log.LstdFlags|log.Lmicroseconds)

	var logSvc core.Logger
	if token := core.Conf.GetString("rollbarToken"); token != "" && !core.Conf.GetBool("debug") {
		logSvc = logsvc.NewRollbarLogger(logger, token, "prod")
	} else {
		logSvc = logsvc.NewStdLogger(logger)
	}

	stateDir := core.Conf.GetString("stateDir")
	store := session.NewStore(stateDir)
	theme := session.NewTheme(stateDir, core.Conf.GetString("theme"))

	client := backend.NewClient(
		core.Conf.GetString("apiBaseURL"),
		core.Conf.GetDuration("requestTimeout"),
		backend.WithTokenSource(store),
		backend.WithLogger(logSvc),
		backend.WithAuthExpiredHook(store.Clear),
	)
	svcs := backend.NewServices(client)

	// a fetch abandoned by an interrupt is cancelled for real
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := store.Init(ctx, svcs.Auth); err != nil {
		logger.Printf("session bootstrap: %v", err)
	}

	cli := newCommandLine(svcs, store, theme, os.Stdout, os.Stdin)
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
