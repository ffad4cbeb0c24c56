package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-compass/internal/profiles"
	"career-compass/internal/progress"
	"career-compass/internal/recommendations"
	"career-compass/internal/shared/config"
	"career-compass/internal/shared/metrics"
	"career-compass/internal/shared/server/middleware"
	"career-compass/internal/shared/server/respond"
	"career-compass/internal/users"
)

// Deps carries the feature handlers registered on the router.
type Deps struct {
	Config          config.Config
	Users           *users.Handler
	Profiles        *profiles.Handler
	Recommendations *recommendations.Handler
	Progress        *progress.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":        {Rate: 10, Burst: 20},
				"RECOMMENDATION": {Rate: 1, Burst: 5},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.Users != nil {
		deps.Users.RegisterRoutes(api)
	}
	if deps.Profiles != nil {
		deps.Profiles.RegisterRoutes(api)
	}
	if deps.Recommendations != nil {
		deps.Recommendations.RegisterRoutes(api)
	}
	if deps.Progress != nil {
		deps.Progress.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup throttles advisor-backed recommendation fetches harder than
// the rest of the API.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/users/:id/recommendation" {
		return "RECOMMENDATION"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
