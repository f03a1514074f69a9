package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/internal/textclip"
	"github.com/ztrade/launchweek/launch"
)

// maxResultBytes caps the text returned by a single tool call.
const maxResultBytes = 64 * 1024

// maxCount caps numeric count arguments such as "limit" and "upcoming".
const maxCount = 100

// countArg reads a count argument. Missing, non-positive or non-finite
// values give def; larger values are capped at maxCount.
func countArg(req mcp.CallToolRequest, name string, def int) int {
	v := req.GetFloat(name, float64(def))
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return def
	}
	if v > maxCount {
		return maxCount
	}
	return int(v)
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %s", err.Error()))
	}
	return textResult(string(data))
}

// textResult returns s, cut at a line boundary when it exceeds maxResultBytes.
func textResult(s string) *mcp.CallToolResult {
	lines, truncated := textclip.Lines(strings.Split(s, "\n"), maxResultBytes)
	if truncated {
		log.WithField("bytes", len(s)).Warn("tool result truncated")
		return mcp.NewToolResultText(strings.Join(lines, "\n") + "\n... (truncated)")
	}
	return mcp.NewToolResultText(s)
}

// errorResult turns a domain error into a tool error text.
func errorResult(op string, err error) *mcp.CallToolResult {
	switch {
	case launch.IsValidation(err):
		return mcp.NewToolResultError(fmt.Sprintf("invalid input: %s", err.Error()))
	case launch.IsNotFound(err):
		return mcp.NewToolResultError(err.Error())
	case generate.IsGenerationError(err):
		return mcp.NewToolResultError(err.Error())
	default:
		return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %s", op, err.Error()))
	}
}
