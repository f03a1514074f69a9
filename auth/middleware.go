package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HTTPMiddleware returns a curried middleware that wraps an http.Handler with authentication.
// Usage: handler := auth.HTTPMiddleware(authCfg)(mux)
func HTTPMiddleware(cfg *Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			user := cfg.Authenticate(r)
			if user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HTTPContextFunc returns a function compatible with mcp-go's WithHTTPContextFunc.
// It carries the user set by HTTPMiddleware into the MCP context.
func HTTPContextFunc(cfg *Config) func(ctx context.Context, r *http.Request) context.Context {
	return func(ctx context.Context, r *http.Request) context.Context {
		if user := UserFromContext(r.Context()); user != nil {
			return ContextWithUser(ctx, user)
		}
		if user := cfg.Authenticate(r); user != nil {
			return ContextWithUser(ctx, user)
		}
		return ctx
	}
}

// ToolAuthMiddleware returns an mcp-go tool middleware that checks RBAC permissions.
func ToolAuthMiddleware(cfg *Config) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			user := UserFromContext(ctx)
			if user == nil && cfg.Enabled {
				return nil, fmt.Errorf("authentication required")
			}
			if user != nil && !HasPermission(user.Role, req.Params.Name) {
				return nil, fmt.Errorf("permission denied: role '%s' cannot use tool '%s'", user.Role, req.Params.Name)
			}
			return next(ctx, req)
		}
	}
}

// Check returns an error message if the user in ctx may not perform
// action, or "" if allowed. A missing user is treated as anonymous when
// auth is disabled.
func (c *Config) Check(ctx context.Context, action string) string {
	user := UserFromContext(ctx)
	if user == nil {
		if c.Enabled {
			return "authentication required"
		}
		user = Anonymous()
	}
	if !HasPermission(user.Role, action) {
		return "permission denied: role '" + user.Role + "' cannot use '" + action + "'"
	}
	return ""
}
