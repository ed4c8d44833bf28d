package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/router"
	"github.com/lksmueller/fankurve/pkg/config"
)

func main() {
	// Initialize the graph store connection; this also loads .env
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure the connection is closed when main exits

	// Load configuration after the environment is in place
	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Executor, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
