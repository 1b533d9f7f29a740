package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, o := range trusted {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/signup", app.Handler.SignUp)
		v1.POST("/auth/login", app.Handler.Login)

		// autocomplete for the interview form
		v1.GET("/suggestions/roles", app.Handler.SuggestRoles)
		v1.GET("/suggestions/tech", app.Handler.SuggestTech)

		// connectivity smoke tests
		v1.GET("/health", app.Handler.Health)
		v1.GET("/health/db", app.Handler.HealthDB)
		v1.GET("/health/ai", app.Handler.HealthAI)
		v1.GET("/health/voice", app.Handler.HealthVoice)
		v1.GET("/health/cache", app.Handler.HealthCache)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// interview routes
		protected.POST("/interviews/generate", app.Handler.GenerateInterview)
		protected.GET("/interviews", app.Handler.ListInterviews)
		protected.GET("/interviews/:id", app.Handler.GetInterview)
		protected.GET("/interviews/:id/voice", app.Handler.VoiceSession)
	}

	return r
}
