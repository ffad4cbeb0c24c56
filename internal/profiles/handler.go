package profiles

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-compass/internal/extract"
	"career-compass/internal/shared/server/respond"
	"career-compass/internal/shared/util"
)

const maxResumeBytes = 10 << 20

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/users/:id/profile", h.save)
	rg.GET("/users/:id/profile", h.get)
}

type profileRequest struct {
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
}

// save accepts either a JSON body or a multipart form with a "profile" JSON
// part and an optional "resume" PDF part.
func (h *Handler) save(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	userID := c.Param("id")

	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	profile, err := h.Svc.Save(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_resume", "resume must be a PDF", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "invalid_profile", err.Error(), nil)
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) get(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	profile, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) bindInput(c *gin.Context) (SaveInput, bool) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be profile JSON", nil)
			return SaveInput{}, false
		}
		return SaveInput{Skills: req.Skills, Location: req.Location}, true
	}

	var req profileRequest
	if raw := c.PostForm("profile"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_body", "profile part must be JSON", nil)
			return SaveInput{}, false
		}
	}
	in := SaveInput{Skills: req.Skills, Location: req.Location}

	file, err := c.FormFile("resume")
	if err != nil {
		// No resume attached.
		return in, true
	}
	if file.Size > maxResumeBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "resume_too_large", "resume exceeds 10MB", nil)
		return SaveInput{}, false
	}
	f, err := file.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_resume", "failed to read resume", nil)
		return SaveInput{}, false
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_resume", "failed to read resume", nil)
		return SaveInput{}, false
	}
	fileName, err := util.SanitizeFileName(file.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_resume", "invalid resume file name", nil)
		return SaveInput{}, false
	}
	in.ResumeData = data
	in.ResumeMimeType = file.Header.Get("Content-Type")
	in.ResumeFileName = fileName
	return in, true
}
