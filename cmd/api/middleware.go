package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Harsh-986/PrepWise/internal/auth"
	"github.com/Harsh-986/PrepWise/pkg/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Config.JWT.Secret)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		// Check if user still exists
		if _, err := app.Repository.User.GetByID(c.Request.Context(), claims.UserID); err != nil {
			response.Unauthorized(c, "unauthorized access")
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, secret string) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := auth.ParseToken(secret, fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// RateLimitMiddleware keeps one token bucket per client IP.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
