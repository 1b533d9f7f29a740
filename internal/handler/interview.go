package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/Harsh-986/PrepWise/pkg/response"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GenerateInterview is the create-interview operation the form submits to. It
// answers with the flat `{success, interviewId, message, error}` envelope the
// form's submission client parses, on every branch.
func (h *Handler) GenerateInterview(c *gin.Context) {
	var req model.GenerateInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.GenerateInterviewRes{
			Message: "invalid request body",
			Error:   err.Error(),
		})
		return
	}

	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, model.GenerateInterviewRes{Message: "unauthorized"})
		return
	}
	// The payload may carry a userid for compatibility; the token wins.
	req.UserID = claims.UserID

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, model.GenerateInterviewRes{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.AITimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.AITimeout)
		defer cancel()
	}

	questions, err := h.AI.InterviewQuestions(ctx, req)
	if err != nil {
		h.Logger.Sugar().Errorw("question generation failed", "role", req.Role, "err", err)
		c.JSON(http.StatusInternalServerError, model.GenerateInterviewRes{
			Message: "Failed to generate interview questions. Please try again.",
		})
		return
	}

	iv := &model.Interview{
		UserID:    req.UserID,
		Role:      req.Role,
		Level:     req.Level,
		Type:      req.Type,
		Techstack: req.SplitTechstack(),
		Questions: questions,
		Finalized: true,
	}

	id, err := h.Interviews.Create(c.Request.Context(), iv)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to save interview", "err", err)
		c.JSON(http.StatusInternalServerError, model.GenerateInterviewRes{
			Message: "failed to save interview",
		})
		return
	}

	c.JSON(http.StatusOK, model.GenerateInterviewRes{Success: true, InterviewID: id})
}

func (h *Handler) GetInterview(c *gin.Context) {
	id := c.Param("id")

	if iv := h.Cache.Get(c.Request.Context(), id); iv != nil {
		response.OK(c, iv)
		return
	}

	iv, err := h.Interviews.GetByID(c.Request.Context(), id)
	if err != nil {
		// Unknown ids and malformed hex are a 404; anything else is the
		// store misbehaving, not the caller.
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
			response.NotFound(c, "interview not found")
			return
		}
		h.Logger.Sugar().Errorw("get interview failed", "id", id, "err", err)
		response.InternalError(c, "")
		return
	}

	h.Cache.Set(c.Request.Context(), id, iv)
	response.OK(c, iv)
}

func (h *Handler) ListInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ivs, err := h.Interviews.ListByUser(c.Request.Context(), claims.UserID, 50)
	if err != nil {
		h.Logger.Sugar().Errorw("list interviews failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, ivs)
}

// VoiceSession hands the web client everything it needs to start a voice
// interview over the stored questions. The voice platform itself is a stub;
// nothing is dialed from here.
func (h *Handler) VoiceSession(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}
	if !h.Voice.Configured() {
		response.ServiceUnavailable(c, "voice interviews are not configured")
		return
	}

	iv, err := h.Interviews.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.NotFound(c, "interview not found")
		return
	}

	response.OK(c, h.Voice.Session(claims.Name, iv.Questions))
}
