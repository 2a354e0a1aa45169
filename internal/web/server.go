// Package web serves the analysis page. Forms post back to the server, which
// keeps the selection per session cookie and renders result cards through
// the page controller. Requests sent by htmx get fragments instead of the
// full page.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spacesedan/textlens/internal/controller"
	"github.com/spacesedan/textlens/internal/languages"
	"github.com/spacesedan/textlens/internal/logging"
	"github.com/spacesedan/textlens/internal/models"
)

const (
	SessionCookie = "textlens_session"
	sessionKey    = "session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Server struct {
	ctrl           *controller.Controller
	backendHealthy *atomic.Bool
	sessionTTL     time.Duration
	page           *template.Template
}

// NewServer reads backend health from healthy, which is kept current by
// the health monitor.
func NewServer(ctrl *controller.Controller, healthy *atomic.Bool, sessionTTL time.Duration) *Server {
	return &Server{
		ctrl:           ctrl,
		backendHealthy: healthy,
		sessionTTL:     sessionTTL,
		page:           template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(logging.GinLogger("Web"), gin.Recovery())
	r.SetHTMLTemplate(s.page)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
	r.GET("/healthz", s.health)

	pages := r.Group("/", s.sessionMiddleware)
	pages.GET("/", s.index)
	pages.POST("/select/:type", s.selectOption)
	pages.POST("/analyze", s.analyze)

	return r
}

// sessionMiddleware issues a fresh session id when the cookie is missing or
// not a uuid, and refreshes the cookie lifetime on every page request.
func (s *Server) sessionMiddleware(c *gin.Context) {
	id, err := c.Cookie(SessionCookie)
	if err == nil {
		_, err = uuid.Parse(id)
	}
	if err != nil {
		id = uuid.NewString()
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, int(s.sessionTTL/time.Second), "/", "", c.Request.TLS != nil, true)
	c.Set(sessionKey, id)
	c.Next()
}

func (s *Server) index(c *gin.Context) {
	data := s.newPage(c)
	c.HTML(http.StatusOK, "index", data)
}

func (s *Server) selectOption(c *gin.Context) {
	status := http.StatusOK
	if _, err := s.ctrl.SelectOption(c.Request.Context(), c.GetString(sessionKey), c.Param("type")); err != nil {
		status = http.StatusInternalServerError
		if errors.Is(err, controller.ErrUnknownMode) {
			status = http.StatusBadRequest
		}
		slog.Warn("[Web] Option not selected",
			slog.String("type", c.Param("type")),
			slog.String("error", err.Error()))
	}

	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(status, "options", s.newPage(c))
}

func (s *Server) analyze(c *gin.Context) {
	in := controller.Input{
		Text:         c.PostForm("inputText"),
		NumSentences: c.PostForm("numSentences"),
		NumKeywords:  c.PostForm("numKeywords"),
		TargetLang:   c.PostForm("targetLang"),
	}

	outcome := s.ctrl.Submit(c.Request.Context(), c.GetString(sessionKey), in)

	data := s.newPage(c)
	data.Text = in.Text
	if in.NumSentences != "" {
		data.NumSentences = in.NumSentences
	}
	if in.NumKeywords != "" {
		data.NumKeywords = in.NumKeywords
	}
	data.Languages = languageOptions(in.TargetLang)
	data.ShowResults = true
	data.Result = outcome.HTML

	if isHTMX(c) {
		c.HTML(http.StatusOK, "results", data)
		return
	}
	c.HTML(http.StatusOK, "index", data)
}

func (s *Server) health(c *gin.Context) {
	backend := "healthy"
	if !s.backendHealthy.Load() {
		backend = "unhealthy"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

type optionView struct {
	Mode     models.Mode
	Label    string
	Icon     string
	Selected bool
}

type languageView struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Options        []optionView
	Languages      []languageView
	Text           string
	NumSentences   string
	NumKeywords    string
	ShowResults    bool
	Result         template.HTML
	BackendHealthy bool
}

func (s *Server) newPage(c *gin.Context) pageData {
	selected, ok := s.ctrl.Selection(c.Request.Context(), c.GetString(sessionKey))

	options := make([]optionView, 0, len(models.Modes))
	for _, m := range models.Modes {
		options = append(options, optionView{
			Mode:     m,
			Label:    m.Label(),
			Icon:     m.Icon(),
			Selected: ok && m == selected,
		})
	}

	return pageData{
		Options:        options,
		Languages:      languageOptions(""),
		NumSentences:   strconv.Itoa(controller.DefaultNumSentences),
		NumKeywords:    strconv.Itoa(controller.DefaultNumKeywords),
		BackendHealthy: s.backendHealthy.Load(),
	}
}

// languageOptions lists the language table; current is the submitted form
// value and keeps its entry selected.
func languageOptions(current string) []languageView {
	views := make([]languageView, 0, len(languages.Table))
	for _, l := range languages.Table {
		name, _ := languages.NameForCode(l.Code)
		views = append(views, languageView{
			Value:    l.Name,
			Label:    name,
			Selected: l.Name == current,
		})
	}
	return views
}
