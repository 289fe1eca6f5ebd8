package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/assessments"
	"certrisk-backend/internal/certificates"
	"certrisk-backend/internal/sentiment"
	"certrisk-backend/internal/shared/config"
	"certrisk-backend/internal/shared/metrics"
	"certrisk-backend/internal/shared/server/middleware"
	"certrisk-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	CertificateHandler *certificates.Handler
	AssessmentHandler  *assessments.Handler
	SentimentHandler   *sentiment.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.CertificateHandler != nil {
		deps.CertificateHandler.RegisterRoutes(api)
	}
	if deps.AssessmentHandler != nil {
		deps.AssessmentHandler.RegisterRoutes(api)
	}
	if deps.SentimentHandler != nil {
		deps.SentimentHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			switch {
			case c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/sentiment":
				return "SENTIMENT"
			case c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/certificates":
				return "UPLOAD"
			default:
				return "DEFAULT"
			}
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":   {Rate: 10, Burst: 20},
			"UPLOAD":    {Rate: 2, Burst: 5},
			"SENTIMENT": {Rate: 5, Burst: 10},
		},
	}
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
