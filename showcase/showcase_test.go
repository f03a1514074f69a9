package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	days := Schedule()
	require.Len(t, days, 5)
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
	}
	assert.Equal(t, 2, ShippedCount())

	f, ok := FeatureByID("vector-search")
	require.True(t, ok)
	assert.True(t, f.HasAnnouncement())

	f, ok = FeatureByID("edge-functions-v2")
	require.True(t, ok)
	assert.False(t, f.HasAnnouncement())

	_, ok = FeatureByID("nope")
	assert.False(t, ok)
}

func TestPostsByCategory(t *testing.T) {
	assert.Len(t, Posts(CategoryAll), 4)
	assert.Len(t, Posts(""), 4)

	vs := Posts("Vector Search")
	require.Len(t, vs, 1)
	assert.Equal(t, "emma_ai", vs[0].Author)

	assert.Empty(t, Posts("Storage"))
}

func TestApplyVote(t *testing.T) {
	p := Post{Upvotes: 10, Downvotes: 2}

	up := ApplyVote(p, VoteUp)
	assert.Equal(t, 11, up.Upvotes)
	assert.Equal(t, VoteUp, up.UserVote)

	withdrawn := ApplyVote(up, VoteUp)
	assert.Equal(t, 10, withdrawn.Upvotes)
	assert.Equal(t, VoteNone, withdrawn.UserVote)

	switched := ApplyVote(up, VoteDown)
	assert.Equal(t, 10, switched.Upvotes)
	assert.Equal(t, 3, switched.Downvotes)
	assert.Equal(t, VoteDown, switched.UserVote)
	assert.Equal(t, 7, switched.Score())

	cleared := ApplyVote(switched, VoteNone)
	assert.Equal(t, p.Upvotes, cleared.Upvotes)
	assert.Equal(t, p.Downvotes, cleared.Downvotes)

	assert.Equal(t, 10, p.Upvotes, "input is not modified")
}

func TestParseVote(t *testing.T) {
	v, err := ParseVote("down")
	require.NoError(t, err)
	assert.Equal(t, VoteDown, v)

	v, err = ParseVote(" UP ")
	require.NoError(t, err)
	assert.Equal(t, VoteUp, v)

	_, err = ParseVote("sideways")
	assert.Error(t, err)
}

func TestSamples(t *testing.T) {
	s := Samples()
	require.Len(t, s, 5)
	tw, ok := SampleByID("twitter")
	require.True(t, ok)
	assert.LessOrEqual(t, len([]rune(tw.Body)), 280)
	assert.Len(t, SandboxTips(), 4)
	assert.Contains(t, SandboxSnippet, "vector(1536)")
}
