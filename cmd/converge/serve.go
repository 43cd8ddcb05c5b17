package main

import (
	"context"

	"github.com/ReconfigureIO/converge/routes"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func serveCmd() {
	a, err := newApp()
	if err != nil {
		exitWithErr(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.watchCatalog(ctx)

	if a.local {
		log.Info("running worker in process")
		go a.runWorker(ctx)
	}

	if conf.Converge.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		QueueRepo: a.queueRepo,
		Actions:   a.actions,
		Executor:  a.scheduler,
		Editions:  a.editions,
		Broker:    a.broker,
		Tracker:   a.tracker,
		Plugins:   a.plugins,
	})

	log.WithField("port", conf.Port).Info("serving api")
	// Listen and Server in 0.0.0.0:$PORT
	if err := r.Run(":" + conf.Port); err != nil {
		exitWithErr(err)
	}
}
