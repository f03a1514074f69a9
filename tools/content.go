package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ztrade/launchweek/generate"
)

type contentTools struct {
	gen *generate.Generator
}

func registerContentTools(s *server.MCPServer, gen *generate.Generator) {
	t := &contentTools{gen: gen}

	s.AddTool(mcp.NewTool("list_content_kinds",
		mcp.WithDescription("List the content types the launch assistant can draft, with their input fields."),
	), t.kinds)

	s.AddTool(mcp.NewTool("generate_content",
		mcp.WithDescription("Draft launch content with the configured LLM. Use list_content_kinds to see the inputs each kind needs. Required inputs must be non-blank."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Content kind: announcement, social, developer, faq, competitive")),
		mcp.WithString("inputs", mcp.Description(`Inputs as a JSON object, e.g. {"featureName":"Edge Functions 2.0","keyBenefit":"50% faster"}. Input keys may also be passed as top-level arguments.`)),
		mcp.WithBoolean("promptOnly", mcp.Description("Return the rendered prompt instead of calling the LLM. Default: false.")),
	), t.generate)
}

func (t *contentTools) kinds(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"provider": t.gen.ProviderName(),
		"kinds":    generate.Kinds(),
	}), nil
}

func (t *contentTools) generate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := generate.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	inputs, err := contentInputs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if req.GetBool("promptOnly", false) {
		prompt, err := generate.Prompt(kind, inputs)
		if err != nil {
			return errorResult("render prompt", err), nil
		}
		return textResult(prompt), nil
	}

	content, err := t.gen.Generate(ctx, kind, inputs)
	if err != nil {
		return errorResult("generate content", err), nil
	}
	return textResult(content), nil
}

// contentInputs merges the "inputs" object with any top-level input keys.
func contentInputs(req mcp.CallToolRequest) (map[string]string, error) {
	inputs := make(map[string]string)
	args := req.GetArguments()

	switch raw := args["inputs"].(type) {
	case nil:
	case string:
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
				return nil, fmt.Errorf("'inputs' must be a JSON object of strings: %s", err.Error())
			}
		}
	case map[string]any:
		for k, v := range raw {
			inputs[k] = fmt.Sprint(v)
		}
	default:
		return nil, fmt.Errorf("'inputs' must be a JSON object")
	}

	for k, v := range args {
		switch k {
		case "kind", "inputs", "promptOnly":
			continue
		}
		if s, ok := v.(string); ok {
			inputs[k] = s
		}
	}
	return inputs, nil
}
