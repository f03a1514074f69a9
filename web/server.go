// Package web serves the launch dashboard and its JSON API.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the launch dashboard web server
type Server struct {
	svc    *launch.Service
	gen    *generate.Generator
	auth   *auth.Config
	router *gin.Engine
	now    func() time.Time
}

// NewServer creates a new web server. svc may be nil when the store is
// unavailable; pages then report the error instead of failing to start.
func NewServer(svc *launch.Service, gen *generate.Generator, authCfg *auth.Config) *Server {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	s := &Server{
		svc:    svc,
		gen:    gen,
		auth:   authCfg,
		router: router,
		now:    time.Now,
	}

	router.SetHTMLTemplate(template.Must(template.New("").Funcs(s.funcMap()).ParseFS(templateFS, "templates/*.html")))

	// Web routes
	router.GET("/", s.handleDashboard)
	router.GET("/launches", s.handleLaunches)
	router.POST("/launches", s.handleLaunchCreate)
	router.POST("/launches/:id/delete", s.handleLaunchDelete)
	router.GET("/assistant", s.handleAssistant)
	router.POST("/assistant", s.handleAssistantGenerate)
	router.GET("/launch-week", s.handleLaunchWeek)
	router.GET("/the-grid", s.handleGrid)
	router.GET("/samples", s.handleSamples)
	router.GET("/sandbox", s.handleSandbox)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/launches", s.handleAPIList)
		api.GET("/launches/:id", s.handleAPIGet)
		api.POST("/launches", s.handleAPICreate)
		api.PUT("/launches/:id", s.handleAPIUpdate)
		api.DELETE("/launches/:id", s.handleAPIDelete)
		api.GET("/activity", s.handleAPIActivity)
		api.GET("/content-kinds", s.handleAPIContentKinds)
		api.POST("/generate", s.handleAPIGenerate)
		api.POST("/posts/:id/vote", s.handleAPIVote)
	}

	return s
}

// Handler returns the router for mounting on an http.ServeMux.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return "No date"
			}
			return launch.FormatDate(*t)
		},
		"relTime": func(t time.Time) string {
			return launch.RelativeTime(t, s.now())
		},
		"statusClass": statusClass,
	}
}

// statusClass maps a status to its badge class.
func statusClass(st launch.Status) string {
	switch st {
	case launch.StatusPlanning:
		return "badge-planning"
	case launch.StatusInProgress:
		return "badge-progress"
	case launch.StatusReady:
		return "badge-ready"
	case launch.StatusShipped:
		return "badge-shipped"
	default:
		return "badge"
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case len(c.Errors) > 0:
			entry.Warn(c.Errors.String())
		default:
			entry.Debug("request")
		}
	}
}
