package app

import (
	"github.com/mbolis/hvac-backend/config"
	"github.com/mbolis/hvac-backend/database"
	"github.com/mbolis/hvac-backend/notify"
)

type App struct {
	*database.Store
	notify.Notifier
	config.Config
}
