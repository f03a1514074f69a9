package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const launchDocURI = "launchweek://doc/launches"

const launchDocContent = `# Launch Tracker Reference

## Launch

| field        | notes                                                     |
|--------------|-----------------------------------------------------------|
| id           | assigned on create, never changes                         |
| title        | required, trimmed, at most 200 bytes                      |
| description  | free text                                                 |
| status       | Planning, In Progress, Ready, Shipped (default Planning)  |
| launch_date  | YYYY-MM-DD, optional                                      |
| owner        | free text, at most 100 bytes                              |
| tags         | list of strings                                           |
| checklist    | blog, demo, social, partner, docs (booleans)              |
| progress     | derived: round(100 × completed / 5)                       |
| created_at   | set by the store                                          |

## Dashboard

- **Total**: all launches
- **Active**: status In Progress
- **In Progress**: status In Progress or Ready
- **Completed**: status Shipped
- **Upcoming** (counter): status Planning
- **Upcoming launches** (list): dated after now, soonest first, first 4 shown

## Activity Log

Every successful create, update and delete appends one entry:
"created a new launch", "updated a launch" or "deleted a launch", with the
acting user (falling back to the launch owner, then "Anonymous") and the
launch id and title. Entries are never edited. A failed write to the log
does not undo the launch change.

## Errors

- Validation errors (blank title, unknown status, bad date) are reported
  before anything is stored.
- Updating or deleting an unknown id reports "launch with id … not found"
  and writes no activity.

## Content Assistant

` + "`generate_content`" + ` drafts copy for five kinds: announcement, social,
developer, faq and competitive. Blank required inputs are rejected without
calling the LLM. Each call makes exactly one request; there is no retry.
`

func registerLaunchDoc(s *server.MCPServer) {
	resource := mcp.NewResource(
		launchDocURI,
		"Launch Tracker Reference",
		mcp.WithResourceDescription("Launch data model, status workflow, dashboard figures, activity log and content assistant reference."),
		mcp.WithMIMEType("text/markdown"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      launchDocURI,
				MIMEType: "text/markdown",
				Text:     launchDocContent,
			},
		}, nil
	})
}
