package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/task"
	log "github.com/sirupsen/logrus"
)

// FetchOutcome is the result of fetching one newswire service.
type FetchOutcome struct {
	ServiceID int64  `json:"service_id"`
	Service   string `json:"service"`
	Decoded   int    `json:"decoded"`
	Stored    int    `json:"stored"`
	Err       error  `json:"-"`
	Error     string `json:"error,omitempty"`
}

// FetchReport collects the outcomes of a newswire fetch.
type FetchReport struct {
	Outcomes []FetchOutcome `json:"outcomes"`
}

// Failed returns the number of services that could not be fetched.
func (r FetchReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// NewswireFetchConsumer fetches newswire services.
type NewswireFetchConsumer struct {
	newswires models.NewswireRepo
	plugins   *plugin.Registry
	pctx      plugin.Context
	tracker   *task.Tracker
	now       func() time.Time
}

// NewNewswireFetchConsumer creates a NewswireFetchConsumer.
func NewNewswireFetchConsumer(newswires models.NewswireRepo, plugins *plugin.Registry, pctx plugin.Context, tracker *task.Tracker) *NewswireFetchConsumer {
	return &NewswireFetchConsumer{
		newswires: newswires,
		plugins:   plugins,
		pctx:      pctx,
		tracker:   tracker,
		now:       time.Now,
	}
}

// Handle fetches the service of msg, or every active service when msg
// names none. A failing service does not stop the others.
func (c *NewswireFetchConsumer) Handle(ctx context.Context, msg message.NewswireFetchMessage) (FetchReport, error) {
	var report FetchReport
	var services []models.NewswireService
	if msg.ServiceID != nil {
		service, err := c.newswires.ByID(*msg.ServiceID)
		if err != nil {
			return report, fmt.Errorf("newswire service %d: %w", *msg.ServiceID, err)
		}
		services = append(services, service)
	} else {
		var err error
		if services, err = c.newswires.Active(); err != nil {
			return report, err
		}
	}

	for _, service := range services {
		if ctx.Err() != nil {
			break
		}
		outcome := c.fetch(ctx, service)
		if outcome.Err != nil {
			outcome.Error = outcome.Err.Error()
			log.WithError(outcome.Err).WithField("service", service.Name).Warn("newswire fetch failed")
			c.pctx.Log(ctx, models.SeverityWarning, "newswire-fetch", fmt.Sprintf("NewswireService:%d", service.ID), "fetch failed: %v", outcome.Err)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	log.WithFields(log.Fields{
		"services": len(report.Outcomes),
		"failed":   report.Failed(),
	}).Info("newswire fetch finished")
	return report, ctx.Err()
}

// fetch fetches one service inside a background task bracket. A panic in
// the decoder becomes the error of the outcome.
func (c *NewswireFetchConsumer) fetch(ctx context.Context, service models.NewswireService) (outcome FetchOutcome) {
	outcome.ServiceID = service.ID
	outcome.Service = service.Name
	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("decoder '%s' panicked: %v", service.DecoderKey, r)
		}
	}()

	outcome.Err = task.Track(ctx, c.tracker, "newswire fetch: "+service.Name, func(ctx context.Context) error {
		decoder, err := c.plugins.NewswireDecoder(service.DecoderKey)
		if err != nil {
			return err
		}
		conf, err := plugin.NewswireConfigurationOf(service)
		if err != nil {
			return err
		}
		items, err := decoder.Decode(ctx, c.pctx, service, conf)
		if err != nil {
			return err
		}
		outcome.Decoded = len(items)

		now := c.now()
		for i := range items {
			items[i].NewswireServiceID = service.ID
			if items[i].Received.IsZero() {
				items[i].Received = now
			}
		}
		if outcome.Stored, err = c.newswires.Store(service, items); err != nil {
			return err
		}
		return c.newswires.MarkFetched(&service, now)
	})
	return outcome
}

// HandleDelivery decodes a NewswireFetchMessage and handles it.
func (c *NewswireFetchConsumer) HandleDelivery(ctx context.Context, d message.Delivery) error {
	var msg message.NewswireFetchMessage
	if err := d.Decode(&msg); err != nil {
		return fmt.Errorf("decode newswire fetch message: %w", err)
	}
	report, err := c.Handle(ctx, msg)
	if err != nil {
		return err
	}
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d newswire services failed", failed, len(report.Outcomes))
	}
	return nil
}
