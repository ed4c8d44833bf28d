package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/handlers"
	"github.com/lksmueller/fankurve/internal/middleware"
	"github.com/lksmueller/fankurve/internal/repositories"
	"github.com/lksmueller/fankurve/internal/services"
	"github.com/lksmueller/fankurve/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, runner graph.Runner, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewNeo4jUserRepository(runner)
	postRepo := repositories.NewNeo4jPostRepository(runner)
	commentRepo := repositories.NewNeo4jCommentRepository(runner)
	likeRepo := repositories.NewNeo4jLikeRepository(runner)
	friendshipRepo := repositories.NewNeo4jFriendshipRepository(runner)
	feedRepo := repositories.NewNeo4jFeedRepository(runner)
	exportRepo := repositories.NewNeo4jExportRepository(runner)

	// --- Initialize Services ---
	friendshipService := services.NewFriendshipService(userRepo, friendshipRepo)
	feedService := services.NewFeedService(userRepo, feedRepo, postRepo)
	postService := services.NewPostService(userRepo, postRepo, commentRepo, likeRepo)
	userService := services.NewUserService(userRepo, exportRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a valid session token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	friendshipHandler := handlers.NewFriendshipHandler(friendshipService)
	friendshipHandler.RegisterFriendshipRoutes(api)
	log.Println("Friendship routes configured.")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(postService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(postService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	log.Println("All routes configured.")
}
