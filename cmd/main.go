package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/config"
	"github.com/discoverpt/discover-portugal-backend/database"
	"github.com/discoverpt/discover-portugal-backend/middleware"
	"github.com/discoverpt/discover-portugal-backend/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)
	store := database.NewStore(db)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimiter())

	// Optional request logger
	router.Use(func(c *gin.Context) {
		log.Printf("REQUEST -> 👉 %s %s [%s] from origin %s",
			c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), c.Request.Header.Get("Origin"))
		c.Next()
	})

	// Permissive CORS: any origin, method and header. The cors library
	// forbids credentials together with a wildcard origin, so credentials
	// stay off.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	routes.Setup(router, store, cfg)

	// Start server
	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if store.Configured() {
		fmt.Printf("✅ Database: %s\n", store.Name())
	} else {
		fmt.Println("⚠️ Database not configured, data endpoints will report errors")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
