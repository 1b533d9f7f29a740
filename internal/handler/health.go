package handler

import (
	"context"
	"time"

	"github.com/Harsh-986/PrepWise/internal/cache"
	"github.com/Harsh-986/PrepWise/internal/database"
	"github.com/Harsh-986/PrepWise/pkg/response"
	"github.com/gin-gonic/gin"
)

// Connectivity smoke tests, one per external collaborator. They exist so a
// fresh deployment can verify each credential without driving the app.

func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// HealthDB pings the document store and runs a write/delete round trip.
func (h *Handler) HealthDB(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.Mongo); err != nil {
		h.Logger.Sugar().Errorw("db health ping failed", "err", err)
		response.ServiceUnavailable(c, "database unreachable")
		return
	}

	if err := h.Interviews.SmokeTest(c.Request.Context()); err != nil {
		h.Logger.Sugar().Errorw("db health write failed", "err", err)
		response.ServiceUnavailable(c, "database write failed")
		return
	}

	response.OK(c, gin.H{
		"message":    "database connection is working",
		"write_test": "write and delete successful",
	})
}

// HealthAI sends one tiny prompt to the text model.
func (h *Handler) HealthAI(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	text, err := h.AI.Generate(ctx, `Generate a JSON array with 3 interview questions for a React developer. Return only the JSON array, nothing else.`)
	if err != nil {
		h.Logger.Sugar().Errorw("ai health check failed", "err", err)
		response.ServiceUnavailable(c, "text model unreachable")
		return
	}

	response.OK(c, gin.H{
		"message":        "text model is working",
		"generated_text": text,
	})
}

// HealthVoice reports whether the voice platform credentials are present.
// The integration is a stub, so presence is all there is to check.
func (h *Handler) HealthVoice(c *gin.Context) {
	response.OK(c, h.Voice.Status())
}

// HealthCache pings redis.
func (h *Handler) HealthCache(c *gin.Context) {
	if err := cache.Ping(c.Request.Context(), h.Redis); err != nil {
		h.Logger.Sugar().Errorw("cache health ping failed", "err", err)
		response.ServiceUnavailable(c, "cache unreachable")
		return
	}
	response.OK(c, gin.H{"message": "cache connection is working"})
}
