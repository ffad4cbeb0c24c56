package progress

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-compass/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the progress service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches progress routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id/progress", h.getProgress)
}

func (h *Handler) getProgress(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return
	}
	state, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load progress", nil)
		return
	}
	respond.OK(c, ComposeProgress(state))
}
