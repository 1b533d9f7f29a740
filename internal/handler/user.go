package handler

import (
	"errors"

	"github.com/Harsh-986/PrepWise/internal/auth"
	"github.com/Harsh-986/PrepWise/internal/repository"
	"github.com/Harsh-986/PrepWise/pkg"
	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/Harsh-986/PrepWise/pkg/response"
	"github.com/gin-gonic/gin"
)

// SignUp creates a new user account
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
	}

	if err := h.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "email already registered")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.BadRequest(c, "could not create user")
		return
	}

	response.Created(c, gin.H{"message": "user created successfully"})
}

// Login verifies credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, exp, err := auth.GenerateToken(h.JWTSecret, user.ID.Hex(), user.Name, user.Email, h.JWTTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to sign token", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, model.TokenRes{
		AccessToken: token,
		ExpiresAt:   exp.Unix(),
		User: model.UserRes{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Me returns the authenticated user
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserRes{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	})
}
