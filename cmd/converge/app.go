package main

import (
	"context"

	"github.com/ReconfigureIO/converge/dispatch"
	"github.com/ReconfigureIO/converge/jobs"
	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/plugins/builtin"
	"github.com/ReconfigureIO/converge/queue"
	"github.com/ReconfigureIO/converge/service/edition"
	"github.com/ReconfigureIO/converge/service/index"
	"github.com/ReconfigureIO/converge/service/mail"
	"github.com/ReconfigureIO/converge/service/notification"
	"github.com/ReconfigureIO/converge/service/pluginctx"
	"github.com/ReconfigureIO/converge/service/workflow"
	"github.com/ReconfigureIO/converge/task"
	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

// app holds the services shared by the commands.
type app struct {
	queueRepo models.QueueRepo
	broker    message.Broker
	tracker   *task.Tracker
	catalog   *plugin.Catalog
	plugins   *plugin.Registry
	actions   *queue.Registry
	scheduler *queue.Scheduler
	editions  *edition.Service
	pctx      *pluginctx.Context
	metrics   metrics.Registry

	// local is set when messages cannot leave this process.
	local bool

	editionConsumer  *dispatch.EditionActionConsumer
	newswireConsumer *dispatch.NewswireFetchConsumer
}

func newApp() (*app, error) {
	a := &app{metrics: metrics.NewRegistry()}

	if conf.Converge.MemoryStore {
		log.Info("using in-memory queue and task store")
		a.queueRepo = queue.NewMemoryStore()
		a.tracker = task.NewTracker(task.NewMemoryRepo())
	} else {
		a.queueRepo = models.QueueDataSource(db)
		a.tracker = task.NewTracker(models.TaskDataSource(db))
	}

	var indexer index.Indexer
	if conf.RedisUrl == "" || conf.Converge.MemoryStore {
		log.Info("using in-memory broker and index")
		a.broker = message.NewMemory()
		a.local = true
		indexer = index.NewMemory()
	} else {
		pool := message.NewRedisPool(conf.RedisUrl)
		a.broker = message.NewRedis(pool)
		indexer = index.NewRedis(pool, index.DefaultKey)
	}

	var err error
	if conf.Converge.PluginCatalog != "" {
		if a.catalog, err = plugin.LoadCatalog(conf.Converge.PluginCatalog); err != nil {
			return nil, err
		}
	}
	a.plugins = plugin.NewRegistry(a.catalog)
	if err := builtin.Register(a.plugins); err != nil {
		return nil, err
	}

	var mailer mail.Mailer = &mail.Outbox{}
	if conf.Mail.Host != "" {
		mailer = mail.New(conf.Mail)
	}

	content := models.ContentDataSource(db)
	editions := models.EditionDataSource(db)
	a.pctx = pluginctx.New(db, pluginctx.Services{
		Logs:     models.ActionLogDataSource(db),
		Indexer:  indexer,
		Notifier: notification.New(models.NotificationDataSource(db)),
		Mailer:   mailer,
		Workflow: workflow.New(content, a.queueRepo),
	})

	a.actions = queue.NewRegistry()
	err = jobs.Register(a.actions, jobs.Deps{
		Content:       content,
		PluginConfigs: models.PluginConfigDataSource(db),
		Plugins:       a.plugins,
		Context:       a.pctx,
	})
	if err != nil {
		return nil, err
	}
	a.scheduler = queue.NewScheduler(a.queueRepo, a.actions, conf.Queue.Concurrent, conf.Queue.PollInterval, a.metrics)
	a.editions = edition.New(editions, a.broker)

	a.editionConsumer = dispatch.NewEditionActionConsumer(editions, a.plugins, a.pctx)
	a.newswireConsumer = dispatch.NewNewswireFetchConsumer(models.NewswireDataSource(db), a.plugins, a.pctx, a.tracker)
	return a, nil
}

// watchCatalog reloads the plugin catalog when its file changes.
func (a *app) watchCatalog(ctx context.Context) {
	if a.catalog == nil {
		return
	}
	if err := a.catalog.Watch(ctx); err != nil {
		log.WithError(err).Warn("not watching plugin catalog")
	}
}
