package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		certificateID, _ := c.Get("certificateId")
		assessmentID, _ := c.Get("assessmentId")
		assessmentStatus := ""
		if raw, ok := c.Get("assessmentStatus"); ok {
			if s, ok := raw.(string); ok {
				assessmentStatus = s
			}
		}

		telemetry.Info("request.complete", map[string]any{
			"request_id":        reqID,
			"method":            c.Request.Method,
			"path":              c.Request.URL.Path,
			"status":            status,
			"assessment_status": assessmentStatus,
			"duration_ms":       float64(latency.Microseconds()) / 1000.0,
			"certificate_id":    certificateID,
			"assessment_id":     assessmentID,
			"client_ip":         c.ClientIP(),
			"user_agent":        c.Request.UserAgent(),
		})
	}
}
