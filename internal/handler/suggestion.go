package handler

import (
	"strings"

	"github.com/Harsh-986/PrepWise/internal/form"
	"github.com/Harsh-986/PrepWise/internal/suggest"
	"github.com/Harsh-986/PrepWise/pkg/response"
	"github.com/gin-gonic/gin"
)

// SuggestRoles serves role autocomplete. The matcher is unbounded; the first
// ten hits are the display contract.
func (h *Handler) SuggestRoles(c *gin.Context) {
	matches := suggest.Match(c.Query("q"), suggest.Roles, nil)
	response.OK(c, suggest.Truncate(matches, form.RoleSuggestionLimit))
}

// SuggestTech serves tech-stack autocomplete. Already-selected tags arrive as
// a comma-separated exclude parameter so they are not offered again.
func (h *Handler) SuggestTech(c *gin.Context) {
	var exclude map[string]struct{}
	if raw := c.Query("exclude"); raw != "" {
		exclude = make(map[string]struct{})
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				exclude[t] = struct{}{}
			}
		}
	}

	matches := suggest.Match(c.Query("q"), suggest.TechStacks, exclude)
	response.OK(c, suggest.Truncate(matches, form.TechSuggestionLimit))
}
