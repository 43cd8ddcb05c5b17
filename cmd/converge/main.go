package main

import (
	"fmt"
	"os"

	"github.com/ReconfigureIO/converge/config"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	conf *config.Config
	db   *gorm.DB

	RootCmd = &cobra.Command{
		Use:              "converge",
		Short:            "The job queue and plugin dispatcher of Converge",
		PersistentPreRun: setup,
	}

	version string
)

func setup(*cobra.Command, []string) {
	var err error
	conf, err = config.ParseEnvConfig()
	if err != nil {
		log.Fatal(err)
	}

	err = config.SetupLogging(version, conf)
	if err != nil {
		log.Fatal(err)
	}

	db = config.SetupDB(conf)
}

// add commands to root command
func main() {
	RootCmd.AddCommand(commands...)

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var commands = []*cobra.Command{
	// health
	&cobra.Command{
		Use:   "health",
		Short: "Check database health",
		Run: func(*cobra.Command, []string) {
			healthCmd()
		},
	},
	// migrate
	&cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema",
		Run: func(*cobra.Command, []string) {
			migrateCmd()
		},
	},
	// serve
	&cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Run: func(*cobra.Command, []string) {
			serveCmd()
		},
	},
	// worker
	&cobra.Command{
		Use:   "worker",
		Short: "Run queue items and consume dispatch messages",
		Run: func(*cobra.Command, []string) {
			workerCmd()
		},
	},
	// cron
	&cobra.Command{
		Use:   "cron",
		Short: "Start cron worker",
		Run: func(*cobra.Command, []string) {
			cronCmd()
		},
	},
}

func healthCmd() {
	if err := db.DB().Ping(); err != nil {
		exitWithErr("error connecting to db")
	}
	fmt.Println("OK")
}

func exitWithErr(err interface{}) {
	log.Error(err)
	os.Exit(1)
}
