package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Darlington6/safeboda/internal/handler"
	"github.com/Darlington6/safeboda/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler      *handler.UserHandler
	PassengerHandler *handler.PassengerHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
	Logger           *logrus.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
			users.GET("/:id", deps.UserHandler.GetUser)
		}

		// Passenger profile routes.
		passengers := v1.Group("/passengers")
		{
			passengers.POST("", deps.PassengerHandler.Create)
			passengers.GET("", deps.PassengerHandler.List)
			passengers.GET("/:user_id", deps.PassengerHandler.Get)
			passengers.PATCH("/:user_id", deps.PassengerHandler.Update)
			passengers.DELETE("/:user_id", deps.PassengerHandler.Delete)
			passengers.GET("/:user_id/stats", deps.PassengerHandler.GetStats)

			// Hooks for the verification and ride-completion processes.
			passengers.POST("/:user_id/verify-phone", deps.PassengerHandler.VerifyPhone)
			passengers.POST("/:user_id/rides", deps.PassengerHandler.RecordRide)
		}
	}

	return router
}
