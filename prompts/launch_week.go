package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/launch"
	"github.com/ztrade/launchweek/showcase"
)

func registerLaunchWeekPrompt(s *server.MCPServer) {
	prompt := mcp.NewPrompt("plan_launch_week",
		mcp.WithPromptDescription("Guide for planning a launch week: scheduling launches, working the readiness checklist and drafting content."),
		mcp.WithArgument("theme",
			mcp.ArgumentDescription("Launch week theme, e.g. 'AI-ready Postgres'. Optional."),
		),
		mcp.WithArgument("days",
			mcp.ArgumentDescription("Number of launch days. Default: 5."),
		),
	)
	s.AddPrompt(prompt, planLaunchWeek)
}

func planLaunchWeek(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	theme := strings.TrimSpace(req.Params.Arguments["theme"])
	if theme == "" {
		theme = "the upcoming release"
	}
	days := strings.TrimSpace(req.Params.Arguments["days"])
	if days == "" {
		days = "5"
	}

	var sb strings.Builder
	sb.WriteString("You are a developer-marketing lead coordinating a launch week. Use the launch tools to keep the tracker accurate.\n\n")
	sb.WriteString("## Launch Model\n\n")
	fmt.Fprintf(&sb, "- **Status**: %s\n", joinStatuses())
	fmt.Fprintf(&sb, "- **Checklist**: %s; progress is the share of completed items (0, 20, ... 100%%)\n", strings.Join(launch.ChecklistKeys, ", "))
	sb.WriteString("- **Launch date**: YYYY-MM-DD; launches dated after today appear as upcoming\n\n")
	sb.WriteString("## Tools\n\n")
	sb.WriteString("- `launch_dashboard` for totals, upcoming dates and recent activity\n")
	sb.WriteString("- `list_launches` / `get_launch` to inspect, `create_launch` / `update_launch` to plan\n")
	sb.WriteString("- `list_content_kinds` and `generate_content` to draft announcements, social posts, developer copy, FAQs and competitive notes\n\n")
	sb.WriteString("## Reference Schedule\n\n")
	for _, f := range showcase.Schedule() {
		fmt.Fprintf(&sb, "- Day %d: %s (%s)\n", f.Day, f.Title, f.Status)
	}

	userMsg := fmt.Sprintf("Plan a %s-day launch week for %s.\n\n", days, theme)
	userMsg += "1. Review the dashboard and existing launches\n"
	userMsg += "2. Assign one headline launch per day and set launch dates\n"
	userMsg += "3. Flag launches whose checklist is below 60% progress\n"
	userMsg += "4. Draft an announcement for the day-one launch"

	return &mcp.GetPromptResult{
		Description: "Launch week planning guide",
		Messages: []mcp.PromptMessage{
			{Role: mcp.RoleAssistant, Content: mcp.TextContent{Type: "text", Text: sb.String()}},
			{Role: mcp.RoleUser, Content: mcp.TextContent{Type: "text", Text: userMsg}},
		},
	}, nil
}

func joinStatuses() string {
	names := make([]string, 0, len(launch.Statuses))
	for _, st := range launch.Statuses {
		names = append(names, string(st))
	}
	return strings.Join(names, " → ")
}
