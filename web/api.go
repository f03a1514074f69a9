package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
	"github.com/ztrade/launchweek/showcase"
)

const maxBodySize = 1 << 20 // 1MB

func (s *Server) requireStore(c *gin.Context) bool {
	if s.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": storeUnavailable})
		return false
	}
	return true
}

func (s *Server) handleAPIList(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionListLaunches) {
		return
	}
	status, err := launch.ParseStatusFilter(c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	all, err := s.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	launches := launch.Filter(all, c.Query("q"), status)
	c.JSON(http.StatusOK, gin.H{
		"launches": launches,
		"count":    len(launches),
	})
}

func (s *Server) handleAPIGet(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionGetLaunch) {
		return
	}
	l, err := s.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (s *Server) bindFields(c *gin.Context) (launch.Fields, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	var f launch.Fields
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return f, false
	}
	return f, true
}

func (s *Server) handleAPICreate(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionCreateLaunch) {
		return
	}
	f, ok := s.bindFields(c)
	if !ok {
		return
	}
	l, err := s.svc.Create(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (s *Server) handleAPIUpdate(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionUpdateLaunch) {
		return
	}
	f, ok := s.bindFields(c)
	if !ok {
		return
	}
	l, err := s.svc.Update(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (s *Server) handleAPIDelete(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionDeleteLaunch) {
		return
	}
	if err := s.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAPIActivity(c *gin.Context) {
	if !s.requireStore(c) || !s.allowed(c, auth.ActionListActivity) {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := s.svc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activity": entries,
		"count":    len(entries),
	})
}

func (s *Server) handleAPIContentKinds(c *gin.Context) {
	if !s.allowed(c, auth.ActionListContentKinds) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"kinds":    generate.Kinds(),
		"provider": s.gen.ProviderName(),
	})
}

type generateRequest struct {
	Type   string            `json:"type"`
	Inputs map[string]string `json:"inputs"`
}

func (s *Server) handleAPIGenerate(c *gin.Context) {
	if !s.allowed(c, auth.ActionGenerateContent) {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Type) == "" || req.Inputs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: type and inputs"})
		return
	}

	content, err := s.gen.Generate(c.Request.Context(), generate.Kind(strings.ToLower(req.Type)), req.Inputs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

type voteRequest struct {
	Current showcase.Vote `json:"current"`
	Vote    showcase.Vote `json:"vote"`
}

// handleAPIVote applies a vote to a post. Votes are not stored; the client
// sends the vote it currently holds.
func (s *Server) handleAPIVote(c *gin.Context) {
	post, ok := showcase.PostByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	current, err := showcase.ParseVote(string(req.Current))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vote, err := showcase.ParseVote(string(req.Vote))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post = showcase.ApplyVote(showcase.ApplyVote(post, current), vote)
	c.JSON(http.StatusOK, gin.H{
		"id":        post.ID,
		"upvotes":   post.Upvotes,
		"downvotes": post.Downvotes,
		"score":     post.Score(),
		"userVote":  post.UserVote,
	})
}
