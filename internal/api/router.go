package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textlens/internal/logging"
	"github.com/spacesedan/textlens/internal/models"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(logging.GinLogger("API"), gin.CustomRecovery(recoverProcessing))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/"+models.EndpointSentiment, h.AnalyzeSentiment)
	api.POST("/"+models.EndpointSummarize, h.Summarize)
	api.POST("/"+models.EndpointKeywords, h.ExtractKeywords)
	api.POST("/"+models.EndpointEnhance, h.EnhanceContent)
	api.POST("/"+models.EndpointTranslate, h.Translate)

	return r
}

func recoverProcessing(c *gin.Context, recovered any) {
	slog.Error("[API] Analysis failed",
		slog.String("route", c.FullPath()),
		slog.Any("error", recovered))
	Fail(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", MessageProcessError, recovered))
}
