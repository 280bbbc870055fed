package httpserver

import (
	"aquamon-api/pkg/errors"
	"aquamon-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Tags Health
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	redisStatus := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed", 503))
			return
		}
		redisStatus = "connected"
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "aquamon-api",
		"database": "connected",
		"redis":    redisStatus,
	})
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Tags Health
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "aquamon-api",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Tags Health
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "aquamon-api",
	})
}
