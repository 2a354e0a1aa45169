package logging

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinLogger logs route, status and processing time of every request under
// the given component prefix.
func GinLogger(component string) gin.HandlerFunc {
	msg := "[" + component + "] Request processed"
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		elapsed := time.Since(start)

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, msg,
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", c.Writer.Status()),
			slog.Float64("processing_time_ms", float64(elapsed.Microseconds())/1000))
	}
}
