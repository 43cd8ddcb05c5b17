package routes

import (
	"time"

	"github.com/ReconfigureIO/converge/handlers/api"
	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/models"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/queue"
	"github.com/ReconfigureIO/converge/task"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Deps are the services the routes serve.
type Deps struct {
	DB        *gorm.DB
	QueueRepo models.QueueRepo
	Actions   *queue.Registry
	Executor  api.Executor
	Editions  api.EditionService
	Broker    message.Broker
	Tracker   *task.Tracker
	Plugins   *plugin.Registry
}

// SetupRoutes sets up api routes.
func SetupRoutes(r gin.IRouter, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	health := api.Health{DB: d.DB}
	r.GET("/health", health.Get)

	apiRoutes := r.Group("/api")

	q := api.NewQueue(d.QueueRepo, d.Actions, d.Executor)
	queueRoute := apiRoutes.Group("/queue")
	{
		queueRoute.GET("", q.List)
		queueRoute.POST("", q.Create)
		queueRoute.GET("/:id", q.Get)
		queueRoute.POST("/:id/execute", q.Execute)
		queueRoute.POST("/:id/requeue", q.Requeue)
		queueRoute.DELETE("/:id", q.Delete)
	}

	tasks := api.Task{Tracker: d.Tracker}
	apiRoutes.GET("/tasks", tasks.List)

	edition := api.Edition{Service: d.Editions}
	editionRoute := apiRoutes.Group("/editions")
	{
		editionRoute.POST("/:id/close", edition.Close)
		editionRoute.POST("/:id/actions/:action", edition.Trigger)
	}

	newswire := api.Newswire{Broker: d.Broker}
	apiRoutes.POST("/newswire/fetch", newswire.Fetch)

	plugins := api.Plugin{Registry: d.Plugins}
	apiRoutes.GET("/plugins", plugins.List)
}
