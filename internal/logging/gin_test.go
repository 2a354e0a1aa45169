package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGinLoggerRecordsRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	r := gin.New()
	r.Use(GinLogger("API"))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/7", nil))

	out := buf.String()
	assert.Contains(t, out, `msg="[API] Request processed"`)
	assert.Contains(t, out, "route=/items/:id")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "processing_time_ms=")
}
