package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
	"github.com/ztrade/launchweek/showcase"
)

// loadDashboard fetches launches and recent activity concurrently.
func (s *Server) loadDashboard(ctx context.Context) ([]launch.Launch, []launch.Activity, error) {
	var (
		launches []launch.Launch
		activity []launch.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		launches, err = s.svc.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		activity, err = s.svc.RecentActivity(gctx, launch.DefaultActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return launches, activity, nil
}

func (s *Server) handleDashboard(c *gin.Context) {
	if s.svc == nil {
		s.errorPage(c, http.StatusServiceUnavailable, storeUnavailable)
		return
	}
	if msg := s.denied(c, auth.ActionLaunchDashboard); msg != "" {
		s.errorPage(c, http.StatusForbidden, msg)
		return
	}
	launches, activity, err := s.loadDashboard(c.Request.Context())
	if err != nil {
		s.errorPage(c, statusOf(err), err.Error())
		return
	}

	recent := launches
	if len(recent) > 5 {
		recent = recent[:5]
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":    "Dashboard",
		"stats":    launch.ComputeStats(launches),
		"upcoming": launch.Upcoming(launches, s.now(), launch.DefaultUpcomingLimit),
		"recent":   recent,
		"activity": activity,
	})
}

func (s *Server) renderLaunches(c *gin.Context, code int, formErr string, form launch.Fields) {
	query := c.Query("q")
	status, err := launch.ParseStatusFilter(c.Query("status"))
	if err != nil {
		s.errorPage(c, http.StatusBadRequest, err.Error())
		return
	}
	all, err := s.svc.List(c.Request.Context())
	if err != nil {
		s.errorPage(c, statusOf(err), err.Error())
		return
	}

	c.HTML(code, "launches.html", gin.H{
		"title":     "Launches",
		"query":     query,
		"status":    string(status),
		"statuses":  launch.Statuses,
		"keys":      launch.ChecklistKeys,
		"launches":  launch.Filter(all, query, status),
		"total":     len(all),
		"formError": formErr,
		"form":      form,
	})
}

func (s *Server) handleLaunches(c *gin.Context) {
	if s.svc == nil {
		s.errorPage(c, http.StatusServiceUnavailable, storeUnavailable)
		return
	}
	s.renderLaunches(c, http.StatusOK, "", launch.Fields{})
}

func (s *Server) handleLaunchCreate(c *gin.Context) {
	if s.svc == nil {
		s.errorPage(c, http.StatusServiceUnavailable, storeUnavailable)
		return
	}
	if msg := s.denied(c, auth.ActionCreateLaunch); msg != "" {
		s.errorPage(c, http.StatusForbidden, msg)
		return
	}

	f := launch.Fields{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Status:      c.PostForm("status"),
		LaunchDate:  c.PostForm("launch_date"),
		Owner:       c.PostForm("owner"),
		Tags:        launch.ParseTags(c.PostForm("tags")),
	}
	checklist, err := launch.ChecklistFromKeys(c.PostFormArray("checklist"))
	if err == nil {
		f.Checklist = checklist
		_, err = s.svc.Create(c.Request.Context(), f)
	}
	if err != nil {
		if launch.IsValidation(err) {
			s.renderLaunches(c, http.StatusBadRequest, err.Error(), f)
			return
		}
		s.errorPage(c, statusOf(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/launches")
}

func (s *Server) handleLaunchDelete(c *gin.Context) {
	if s.svc == nil {
		s.errorPage(c, http.StatusServiceUnavailable, storeUnavailable)
		return
	}
	if msg := s.denied(c, auth.ActionDeleteLaunch); msg != "" {
		s.errorPage(c, http.StatusForbidden, msg)
		return
	}
	if err := s.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.errorPage(c, statusOf(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/launches")
}

func (s *Server) renderAssistant(c *gin.Context, code int, kind generate.Kind, inputs map[string]string, content, errMsg string) {
	c.HTML(code, "assistant.html", gin.H{
		"title":     "AI Assistant",
		"kinds":     generate.Kinds(),
		"selected":  string(kind),
		"inputs":    inputs,
		"content":   content,
		"error":     errMsg,
		"available": s.gen.Available(),
		"provider":  s.gen.ProviderName(),
	})
}

func (s *Server) handleAssistant(c *gin.Context) {
	kind := generate.KindAnnouncement
	if k, err := generate.ParseKind(c.Query("kind")); err == nil {
		kind = k
	}
	s.renderAssistant(c, http.StatusOK, kind, nil, "", "")
}

func (s *Server) handleAssistantGenerate(c *gin.Context) {
	kind, err := generate.ParseKind(c.PostForm("kind"))
	if err != nil {
		s.renderAssistant(c, http.StatusBadRequest, generate.KindAnnouncement, nil, "", err.Error())
		return
	}
	if msg := s.denied(c, auth.ActionGenerateContent); msg != "" {
		s.renderAssistant(c, http.StatusForbidden, kind, nil, "", msg)
		return
	}

	spec, _ := generate.Lookup(kind)
	inputs := make(map[string]string, len(spec.Inputs))
	for _, in := range spec.Inputs {
		inputs[in.Key] = c.PostForm(in.Key)
	}
	content, err := s.gen.Generate(c.Request.Context(), kind, inputs)
	if err != nil {
		s.renderAssistant(c, statusOf(err), kind, inputs, "", err.Error())
		return
	}
	s.renderAssistant(c, http.StatusOK, kind, inputs, content, "")
}

func (s *Server) handleLaunchWeek(c *gin.Context) {
	data := gin.H{
		"title":   "Launch Week",
		"days":    showcase.Schedule(),
		"shipped": showcase.ShippedCount(),
	}
	if id := c.Query("feature"); id != "" {
		f, ok := showcase.FeatureByID(id)
		if !ok {
			s.errorPage(c, http.StatusNotFound, "unknown feature: "+id)
			return
		}
		data["feature"] = f
	}
	c.HTML(http.StatusOK, "launch_week.html", data)
}

func (s *Server) handleGrid(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = showcase.CategoryAll
	}
	c.HTML(http.StatusOK, "grid.html", gin.H{
		"title":      "The Grid",
		"category":   category,
		"categories": showcase.Categories,
		"posts":      showcase.Posts(category),
	})
}

func (s *Server) handleSamples(c *gin.Context) {
	c.HTML(http.StatusOK, "samples.html", gin.H{
		"title":   "Content Samples",
		"samples": showcase.Samples(),
	})
}

func (s *Server) handleSandbox(c *gin.Context) {
	c.HTML(http.StatusOK, "sandbox.html", gin.H{
		"title":   "Sandbox",
		"snippet": showcase.SandboxSnippet,
		"tips":    showcase.SandboxTips(),
	})
}
