package recommendations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"career-compass/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id/recommendation", h.get)
	rg.GET("/users/:id/recommendation/history", h.history)
}

func (h *Handler) get(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	result, err := h.Svc.ForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}
	if !result.Found {
		respond.OK(c, gin.H{"state": "no_recommendation"})
		return
	}
	respond.OK(c, result.Model)
}

func (h *Handler) history(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			respond.Error(c, http.StatusBadRequest, "invalid_limit", "limit must be an integer between 1 and 100", nil)
			return
		}
		limit = parsed
	}
	records, err := h.Svc.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}
	respond.OK(c, gin.H{"items": records})
}
