package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/generate"
)

// registerDraftPrompts adds one draft_<kind> prompt per content kind. Each
// renders the same text generate_content sends to the LLM.
func registerDraftPrompts(s *server.MCPServer) {
	for _, spec := range generate.Kinds() {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(spec.Description)}
		for _, in := range spec.Inputs {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(in.Label + " (e.g., " + in.Placeholder + ")")}
			if in.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(in.Key, argOpts...))
		}
		s.AddPrompt(mcp.NewPrompt("draft_"+string(spec.Kind), opts...), draftHandler(spec.Kind))
	}
}

func draftHandler(kind generate.Kind) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := generate.Prompt(kind, req.Params.Arguments)
		if err != nil {
			return nil, err
		}
		spec, _ := generate.Lookup(kind)
		return &mcp.GetPromptResult{
			Description: spec.Title,
			Messages: []mcp.PromptMessage{
				{Role: mcp.RoleUser, Content: mcp.TextContent{Type: "text", Text: text}},
			},
		}, nil
	}
}
