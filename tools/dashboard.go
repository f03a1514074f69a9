package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/ztrade/launchweek/launch"
)

type dashboardTools struct {
	svc *launch.Service
	now func() time.Time
}

func registerDashboardTools(s *server.MCPServer, svc *launch.Service) {
	t := &dashboardTools{svc: svc, now: time.Now}

	s.AddTool(mcp.NewTool("launch_dashboard",
		mcp.WithDescription("Summarize all launches: totals by status, the next upcoming launch dates and the most recent activity."),
		mcp.WithNumber("upcoming", mcp.Description("Number of upcoming launches to include. Default: 4.")),
		mcp.WithNumber("activity", mcp.Description("Number of activity entries to include. Default: 8.")),
	), t.dashboard)

	s.AddTool(mcp.NewTool("list_activity",
		mcp.WithDescription("List the most recent activity log entries, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum entries to return. Default: 8.")),
	), t.activity)
}

type upcomingEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type activityEntry struct {
	Action   string `json:"action"`
	UserName string `json:"user_name"`
	Launch   string `json:"launch,omitempty"`
	When     string `json:"when"`
}

func (t *dashboardTools) dashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	nUpcoming := countArg(req, "upcoming", launch.DefaultUpcomingLimit)
	nActivity := countArg(req, "activity", launch.DefaultActivityLimit)

	var (
		launches []launch.Launch
		recent   []launch.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		launches, err = t.svc.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = t.svc.RecentActivity(gctx, nActivity)
		return err
	})
	if err := g.Wait(); err != nil {
		return errorResult("load dashboard", err), nil
	}

	now := t.now()
	upcoming := make([]upcomingEntry, 0, nUpcoming)
	for _, l := range launch.Upcoming(launches, now, nUpcoming) {
		upcoming = append(upcoming, upcomingEntry{
			ID:     l.ID,
			Title:  l.Title,
			Date:   launch.FormatDate(*l.LaunchDate),
			Status: string(l.Status),
		})
	}

	return jsonResult(map[string]any{
		"stats":    launch.ComputeStats(launches),
		"upcoming": upcoming,
		"activity": activityEntries(recent, now),
	}), nil
}

func (t *dashboardTools) activity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	limit := countArg(req, "limit", launch.DefaultActivityLimit)
	recent, err := t.svc.RecentActivity(ctx, limit)
	if err != nil {
		return errorResult("list activity", err), nil
	}
	entries := activityEntries(recent, t.now())
	return jsonResult(map[string]any{
		"total":    len(entries),
		"activity": entries,
	}), nil
}

func activityEntries(recent []launch.Activity, now time.Time) []activityEntry {
	out := make([]activityEntry, 0, len(recent))
	for _, a := range recent {
		title, _ := a.Details["launch_title"].(string)
		out = append(out, activityEntry{
			Action:   a.Action,
			UserName: a.UserName,
			Launch:   title,
			When:     launch.RelativeTime(a.CreatedAt, now),
		})
	}
	return out
}
