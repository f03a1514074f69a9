package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/showcase"
)

func registerShowcaseTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("launch_week_schedule",
		mcp.WithDescription("Show the five-day launch week schedule with each day's feature and whether it has shipped."),
		mcp.WithString("id", mcp.Description("Feature ID to return with its full announcement (e.g., vector-search). Optional.")),
	), launchWeekSchedule)

	s.AddTool(mcp.NewTool("community_posts",
		mcp.WithDescription("List community posts from The Grid, optionally filtered by category."),
		mcp.WithString("category", mcp.Description("All, Edge Functions, Vector Search, Realtime or Database. Default: All.")),
	), communityPosts)
}

func launchWeekSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if id := req.GetString("id", ""); id != "" {
		f, ok := showcase.FeatureByID(id)
		if !ok {
			return mcp.NewToolResultError("unknown feature: " + id), nil
		}
		return jsonResult(f), nil
	}

	type day struct {
		ID          string                 `json:"id"`
		Day         int                    `json:"day"`
		Title       string                 `json:"title"`
		Description string                 `json:"description"`
		Status      showcase.FeatureStatus `json:"status"`
	}
	days := make([]day, 0, 5)
	for _, f := range showcase.Schedule() {
		days = append(days, day{ID: f.ID, Day: f.Day, Title: f.Title, Description: f.Description, Status: f.Status})
	}
	return jsonResult(map[string]any{
		"shipped": showcase.ShippedCount(),
		"days":    days,
	}), nil
}

func communityPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", showcase.CategoryAll)
	posts := showcase.Posts(category)
	return jsonResult(map[string]any{
		"category":   category,
		"categories": showcase.Categories,
		"total":      len(posts),
		"posts":      posts,
	}), nil
}
