package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/config"
	"github.com/discoverpt/discover-portugal-backend/database"
	"github.com/discoverpt/discover-portugal-backend/internal/event"
	"github.com/discoverpt/discover-portugal-backend/internal/health"
	"github.com/discoverpt/discover-portugal-backend/internal/overview"
	"github.com/discoverpt/discover-portugal-backend/internal/rsvp"
)

// Setup wires repositories, services and handlers, then registers all
// routes on the router.
func Setup(router *gin.Engine, store *database.Store, cfg *config.Config) {
	eventRepo := event.NewRepository(store)
	eventSvc := event.NewService(eventRepo)
	eventHandler := event.NewHandler(eventSvc)

	rsvpRepo := rsvp.NewRepository(store)
	rsvpSvc := rsvp.NewService(rsvpRepo)
	rsvpHandler := rsvp.NewHandler(rsvpSvc)

	overviewSvc := overview.NewService(eventRepo, rsvpRepo)
	overviewHandler := overview.NewHandler(overviewSvc)

	healthHandler := health.NewHandler(store, cfg)

	router.GET("/", healthHandler.Root)
	router.GET("/test", healthHandler.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/hello", healthHandler.Hello)

		api.POST("/events", eventHandler.CreateEvent)
		api.GET("/events", eventHandler.ListEvents)
		api.GET("/events/:id", eventHandler.GetEvent)

		api.POST("/rsvps", rsvpHandler.CreateRsvp)
		api.GET("/rsvps", rsvpHandler.ListRsvps)

		api.GET("/my", overviewHandler.MyOverview)
	}
}
