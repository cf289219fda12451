package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/mbolis/hvac-backend/app"
	"github.com/mbolis/hvac-backend/config"
	"github.com/mbolis/hvac-backend/database"
	"github.com/mbolis/hvac-backend/log"
	"github.com/mbolis/hvac-backend/notify"
	"github.com/mbolis/hvac-backend/routes"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal("main.config:", err)
	}
	setLogLevel(cfg)

	store, err := database.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer store.Close()

	var notifier notify.Notifier = notify.NewMailer(cfg.Mail)
	if cfg.MailDryRun {
		notifier = &notify.Recorder{Recipient: cfg.Mail.AdminEmail}
	}

	app := app.App{
		Store:    store,
		Notifier: notifier,
		Config:   cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func setLogLevel(cfg config.Config) {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
		return
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("main.log_level: %s, keeping info", err)
		return
	}
	log.SetLevel(level)
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
