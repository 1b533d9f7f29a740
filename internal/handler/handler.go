package handler

import (
	"context"
	"time"

	"github.com/Harsh-986/PrepWise/internal/auth"
	"github.com/Harsh-986/PrepWise/internal/cache"
	"github.com/Harsh-986/PrepWise/internal/vapi"
	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserStore is what the handlers need from the user repository.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// InterviewStore is what the handlers need from the interview repository.
type InterviewStore interface {
	Create(ctx context.Context, iv *model.Interview) (string, error)
	GetByID(ctx context.Context, id string) (*model.Interview, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]model.Interview, error)
	SmokeTest(ctx context.Context) error
}

// AIClient is the generative-text collaborator.
type AIClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
	InterviewQuestions(ctx context.Context, req model.GenerateInterviewReq) ([]string, error)
}

type Handler struct {
	Logger     *zap.Logger
	Users      UserStore
	Interviews InterviewStore
	AI         AIClient
	Voice      *vapi.Client
	Cache      *cache.InterviewCache

	JWTSecret string
	JWTTTL    time.Duration
	AITimeout time.Duration

	// Raw connections, used only by the connectivity checks.
	Mongo *mongo.Client
	Redis *redis.Client
}

// GetClaimsFromContext retrieves the verified claims set by the auth middleware.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
