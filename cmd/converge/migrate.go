package main

import (
	"github.com/ReconfigureIO/converge/models"
)

func migrateCmd() {
	if err := models.MigrateAll(db); err != nil {
		exitWithErr(err)
	}
}
