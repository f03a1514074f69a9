package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/launch"
)

const serviceUnavailable = "launch store not initialized (check database config)"

type launchTools struct {
	svc *launch.Service
}

func registerLaunchTools(s *server.MCPServer, svc *launch.Service) {
	t := &launchTools{svc: svc}

	s.AddTool(mcp.NewTool("list_launches",
		mcp.WithDescription("List launches, newest first. Optionally filter by a case-insensitive query over title, description and owner, and by status."),
		mcp.WithString("query", mcp.Description("Search text matched against title, description and owner. Optional.")),
		mcp.WithString("status", mcp.Description("Status filter: All, Planning, In Progress, Ready, Shipped. Default: All.")),
	), t.list)

	s.AddTool(mcp.NewTool("get_launch",
		mcp.WithDescription("Retrieve a launch by ID, including its checklist and progress."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Launch ID")),
	), t.get)

	s.AddTool(mcp.NewTool("create_launch",
		mcp.WithDescription("Create a new launch. Records a 'created a new launch' activity entry."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Launch title")),
		mcp.WithString("description", mcp.Description("What is being launched")),
		mcp.WithString("status", mcp.Description("Planning (default), In Progress, Ready or Shipped")),
		mcp.WithString("launch_date", mcp.Description("Target date as YYYY-MM-DD")),
		mcp.WithString("owner", mcp.Description("Owner name")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags (e.g., 'ai,postgres')")),
		mcp.WithString("checklist", mcp.Description("Comma-separated completed checklist items: blog, demo, social, partner, docs")),
	), t.create)

	s.AddTool(mcp.NewTool("update_launch",
		mcp.WithDescription("Update a launch. Omitted arguments keep their current values. Records an 'updated a launch' activity entry."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Launch ID to update")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("status", mcp.Description("Planning, In Progress, Ready or Shipped")),
		mcp.WithString("launch_date", mcp.Description("Target date as YYYY-MM-DD; empty string clears it")),
		mcp.WithString("owner", mcp.Description("New owner")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; replaces the current tags")),
		mcp.WithString("checklist", mcp.Description("Comma-separated completed checklist items; replaces the current checklist")),
	), t.update)

	s.AddTool(mcp.NewTool("delete_launch",
		mcp.WithDescription("Delete a launch permanently. Records a 'deleted a launch' activity entry."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Launch ID to delete")),
	), t.delete)
}

func (t *launchTools) list(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	status, err := launch.ParseStatusFilter(req.GetString("status", ""))
	if err != nil {
		return errorResult("list launches", err), nil
	}
	all, err := t.svc.List(ctx)
	if err != nil {
		return errorResult("list launches", err), nil
	}
	launches := launch.Filter(all, req.GetString("query", ""), status)
	return jsonResult(map[string]any{
		"total":    len(launches),
		"launches": launches,
	}), nil
}

func (t *launchTools) get(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	l, err := t.svc.Get(ctx, id)
	if err != nil {
		return errorResult("get launch", err), nil
	}
	return jsonResult(l), nil
}

func (t *launchTools) create(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	var f launch.Fields
	if err := overlayFields(&f, req); err != nil {
		return errorResult("create launch", err), nil
	}
	l, err := t.svc.Create(ctx, f)
	if err != nil {
		return errorResult("create launch", err), nil
	}
	return jsonResult(map[string]any{
		"status": "created",
		"launch": l,
	}), nil
}

func (t *launchTools) update(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	existing, err := t.svc.Get(ctx, id)
	if err != nil {
		return errorResult("update launch", err), nil
	}
	f := launch.FieldsOf(existing)
	if err := overlayFields(&f, req); err != nil {
		return errorResult("update launch", err), nil
	}
	l, err := t.svc.Update(ctx, id, f)
	if err != nil {
		return errorResult("update launch", err), nil
	}
	return jsonResult(map[string]any{
		"status": "updated",
		"launch": l,
	}), nil
}

func (t *launchTools) delete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.svc == nil {
		return mcp.NewToolResultError(serviceUnavailable), nil
	}
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	if err := t.svc.Delete(ctx, id); err != nil {
		return errorResult("delete launch", err), nil
	}
	return jsonResult(map[string]any{
		"status": "deleted",
		"id":     id,
	}), nil
}

// overlayFields copies the arguments present in req onto f.
func overlayFields(f *launch.Fields, req mcp.CallToolRequest) error {
	args := req.GetArguments()
	str := func(key string) (string, bool) {
		v, ok := args[key]
		if !ok || v == nil {
			return "", false
		}
		if s, ok := v.(string); ok {
			return s, true
		}
		return fmt.Sprint(v), true
	}

	if v, ok := str("title"); ok {
		f.Title = v
	}
	if v, ok := str("description"); ok {
		f.Description = v
	}
	if v, ok := str("status"); ok {
		f.Status = v
	}
	if v, ok := str("launch_date"); ok {
		f.LaunchDate = v
	}
	if v, ok := str("owner"); ok {
		f.Owner = v
	}
	if v, ok := str("tags"); ok {
		f.Tags = launch.ParseTags(v)
	}
	if v, ok := str("checklist"); ok {
		c, err := launch.ChecklistFromKeys(strings.Split(v, ","))
		if err != nil {
			return err
		}
		f.Checklist = c
	}
	return nil
}
