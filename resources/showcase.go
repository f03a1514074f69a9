package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/showcase"
)

const (
	timelineURI = "launchweek://showcase/timeline"
	samplesURI  = "launchweek://showcase/samples"
	sandboxURI  = "launchweek://showcase/sandbox"
)

func registerShowcase(s *server.MCPServer) {
	s.AddResource(mcp.NewResource(
		timelineURI,
		"Launch Week Timeline",
		mcp.WithResourceDescription("The five launch-week days with status and the full announcement of shipped features that have one."),
		mcp.WithMIMEType("application/json"),
	), readTimeline)

	s.AddResource(mcp.NewResource(
		samplesURI,
		"Content Samples",
		mcp.WithResourceDescription("Example launch content per channel: blog, Twitter, LinkedIn, Hacker News and newsletter."),
		mcp.WithMIMEType("text/markdown"),
	), readSamples)

	s.AddResource(mcp.NewResource(
		sandboxURI,
		"Sandbox Snippet",
		mcp.WithResourceDescription("Starter pgvector SQL and assistant tips from the sandbox page."),
		mcp.WithMIMEType("text/markdown"),
	), readSandbox)
}

func readTimeline(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(showcase.Schedule(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: timelineURI, MIMEType: "application/json", Text: string(data)},
	}, nil
}

func readSamples(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var sb strings.Builder
	sb.WriteString("# Content Samples\n")
	for _, sm := range showcase.Samples() {
		fmt.Fprintf(&sb, "\n## %s (%s)\n\n%s\n", sm.Title, sm.Channel, sm.Body)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: samplesURI, MIMEType: "text/markdown", Text: sb.String()},
	}, nil
}

func readSandbox(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var sb strings.Builder
	sb.WriteString("# Sandbox\n\n```sql\n")
	sb.WriteString(showcase.SandboxSnippet)
	sb.WriteString("\n```\n\n## Tips\n\n")
	for _, tip := range showcase.SandboxTips() {
		fmt.Fprintf(&sb, "- %s\n", tip.Message)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: sandboxURI, MIMEType: "text/markdown", Text: sb.String()},
	}, nil
}
