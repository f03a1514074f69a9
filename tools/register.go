package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
)

// RegisterAll registers all MCP tools on the server. A nil service leaves
// the launch tools registered but reporting an uninitialized store.
func RegisterAll(s *server.MCPServer, svc *launch.Service, gen *generate.Generator) {
	registerLaunchTools(s, svc)
	registerDashboardTools(s, svc)
	registerContentTools(s, gen)
	registerShowcaseTools(s)
}
