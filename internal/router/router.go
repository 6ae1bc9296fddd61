// Package router wires handlers and middleware onto the gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/api"
	"github.com/ashpazyar/backend/internal/middleware"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Health *api.HealthHandler
	LLM    *api.LLMHandler
	Auth   *api.AuthHandler
	OAuth  *api.OAuthHandler
	Saved  *api.SavedRecipeHandler
}

// Options carries router-level configuration.
type Options struct {
	AllowedOrigins []string
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// Setup configures the application routes.
func Setup(h Handlers, auth middleware.Authenticator, logger *zap.Logger, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")

	// Generation endpoints are open; rate limiting keys by session when
	// present, client IP otherwise.
	recipes := v1.Group("/recipes")
	if opts.RateLimiter != nil {
		recipes.Use(opts.RateLimiter.Middleware())
	}
	{
		recipes.POST("/generate", h.LLM.Generate)
		recipes.POST("/suggestions", h.LLM.Suggestions)
		recipes.POST("/step-question", h.LLM.StepQuestion)
	}

	users := v1.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)
		users.POST("/logout", h.Auth.Logout)

		me := users.Group("", middleware.AuthMiddleware(auth))
		{
			me.GET("/me", h.Auth.Me)
			me.PUT("/me", h.Auth.UpdateMe)
			me.DELETE("/me", h.Auth.DeleteMe)
		}
	}

	google := v1.Group("/auth/google")
	{
		google.GET("", h.OAuth.Redirect)
		google.GET("/callback", h.OAuth.Callback)
	}

	saved := v1.Group("/saved-recipes", middleware.AuthMiddleware(auth))
	{
		saved.GET("", h.Saved.List)
		saved.POST("", h.Saved.Save)
		saved.DELETE("", h.Saved.Delete)
	}

	return router
}
