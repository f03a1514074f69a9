package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
)

const storeUnavailable = "launch store not initialized (check database config)"

// statusOf maps a domain error to an HTTP status code.
func statusOf(err error) int {
	switch {
	case launch.IsValidation(err):
		return http.StatusBadRequest
	case launch.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, generate.ErrNoProvider):
		return http.StatusServiceUnavailable
	case generate.IsGenerationError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	body := gin.H{"error": err.Error()}
	var ve *launch.ValidationError
	if errors.As(err, &ve) {
		body["fields"] = ve.Fields
	}
	c.JSON(statusOf(err), body)
}

// denied returns why the request's user may not perform action, or "".
func (s *Server) denied(c *gin.Context, action string) string {
	if s.auth == nil {
		return ""
	}
	return s.auth.Check(c.Request.Context(), action)
}

// allowed writes a 403 and returns false when the user may not perform action.
func (s *Server) allowed(c *gin.Context, action string) bool {
	if msg := s.denied(c, action); msg != "" {
		c.JSON(http.StatusForbidden, gin.H{"error": msg})
		return false
	}
	return true
}

func (s *Server) errorPage(c *gin.Context, code int, msg string) {
	c.HTML(code, "error.html", gin.H{"title": "Error", "error": msg})
}
