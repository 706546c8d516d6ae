package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(requestLogger(logger))
	}

	router.GET("/healthcheck", HealthCheck)

	router.POST("/problems", h.GenerateProblem)
	router.POST("/problems/:id/submissions", h.SubmitAnswer)

	return router
}

// requestLogger logs one line per request. Streaming responses are
// logged when the handler returns, after the last fragment.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
