package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ztrade/launchweek/showcase"
)

func text(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	return tc
}

func TestTimelineResource(t *testing.T) {
	contents, err := readTimeline(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	tc := text(t, contents)
	assert.Equal(t, timelineURI, tc.URI)

	var days []showcase.Feature
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &days))
	require.Len(t, days, 5)
	assert.Equal(t, "vector-search", days[0].ID)
	assert.NotEmpty(t, days[0].Announcement)
}

func TestSamplesResource(t *testing.T) {
	contents, err := readSamples(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	tc := text(t, contents)
	for _, sm := range showcase.Samples() {
		assert.Contains(t, tc.Text, "## "+sm.Title)
	}
}

func TestSandboxResource(t *testing.T) {
	contents, err := readSandbox(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	tc := text(t, contents)
	assert.Contains(t, tc.Text, "```sql")
	assert.Contains(t, tc.Text, "Row Level Security")
}
