package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ReconfigureIO/converge/config"
	"github.com/ReconfigureIO/converge/dispatch"
	"github.com/ReconfigureIO/converge/message"
	log "github.com/sirupsen/logrus"
)

const metricsInterval = time.Minute

func workerCmd() {
	a, err := newApp()
	if err != nil {
		exitWithErr(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.WithField("signal", sig).Info("stopping worker")
		cancel()
	}()

	if _, err := a.scheduler.RecoverStale(conf.Queue.StaleAfter); err != nil {
		log.WithError(err).Error("could not requeue stale queue items")
	}

	go a.watchCatalog(ctx)
	a.runWorker(ctx)
	a.broker.Close()
}

// runWorker runs the scheduler and both consumers until ctx is done.
func (a *app) runWorker(ctx context.Context) {
	editionConsumer := dispatch.NewConsumer(a.broker, message.TopicEditionActions, a.editionConsumer.HandleDelivery)
	newswireConsumer := dispatch.NewConsumer(a.broker, message.TopicNewswireFetch, a.newswireConsumer.HandleDelivery)

	var wg sync.WaitGroup
	run := func(name string, f func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				log.WithError(err).WithField("component", name).Error("worker component stopped")
			}
		}()
	}

	run("scheduler", func(ctx context.Context) error {
		a.scheduler.Start(ctx)
		return nil
	})
	run("edition consumer", editionConsumer.Start)
	run("newswire consumer", newswireConsumer.Start)
	run("metrics", func(ctx context.Context) error {
		config.LogMetrics(ctx, a.metrics, metricsInterval)
		return nil
	})

	log.Printf("starting workers")
	wg.Wait()
}
