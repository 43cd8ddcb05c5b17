package main

import (
	"context"
	"time"

	"github.com/ReconfigureIO/converge/dispatch"
	"github.com/ReconfigureIO/converge/message"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

func cronCmd() {
	a, err := newApp()
	if err != nil {
		exitWithErr(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.local {
		log.Info("consuming newswire fetches in process")
		go a.consumeFetches(ctx)
	}

	every := conf.Newswire.FetchEvery
	worker := cron.New()
	worker.Schedule(cron.Every(every), cron.FuncJob(func() {
		if err := fetchNewswires(ctx, a.broker, every); err != nil {
			log.WithError(err).Error("could not request newswire fetch")
		}
	}))

	worker.Start()
	log.WithField("every", every).Printf("starting cron")

	waitForever := make(chan struct{})
	<-waitForever
}

// consumeFetches handles newswire fetch messages in this process until ctx
// is done. It is used when messages cannot reach a worker.
func (a *app) consumeFetches(ctx context.Context) {
	c := dispatch.NewConsumer(a.broker, message.TopicNewswireFetch, a.newswireConsumer.HandleDelivery)
	if err := c.Start(ctx); err != nil {
		log.WithError(err).Error("newswire fetch consumer stopped")
	}
}

// fetchNewswires requests a fetch of every active newswire service. It gives
// up after timeout so a stalled broker does not pile up cron runs.
func fetchNewswires(ctx context.Context, broker message.Broker, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Printf("requesting newswire fetch")
	return broker.Publish(ctx, message.TopicNewswireFetch, message.NewswireFetchMessage{})
}
