package showcase

import (
	"fmt"
	"strings"
)

// Vote is a reader's vote on a post.
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// ParseVote accepts "up", "down" or "" (no vote), ignoring case.
func ParseVote(s string) (Vote, error) {
	v := Vote(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VoteNone, VoteUp, VoteDown:
		return v, nil
	default:
		return VoteNone, fmt.Errorf("unknown vote %q (want up or down)", s)
	}
}

// Comment is a reply on a community post.
type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Posted  string `json:"posted"`
	Upvotes int    `json:"upvotes"`
}

// Post is a community feed entry.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Posted    string    `json:"posted"`
	Comments  []Comment `json:"comments"`
	UserVote  Vote      `json:"userVote,omitempty"`
}

// Score is upvotes minus downvotes.
func (p Post) Score() int {
	return p.Upvotes - p.Downvotes
}

// ApplyVote returns p after the reader casts v. Casting the current vote
// again withdraws it; casting the opposite vote moves it.
func ApplyVote(p Post, v Vote) Post {
	switch p.UserVote {
	case VoteUp:
		p.Upvotes--
	case VoteDown:
		p.Downvotes--
	}
	if v == VoteNone || p.UserVote == v {
		p.UserVote = VoteNone
		return p
	}
	switch v {
	case VoteUp:
		p.Upvotes++
	case VoteDown:
		p.Downvotes++
	}
	p.UserVote = v
	return p
}

// CategoryAll selects every post.
const CategoryAll = "All"

// Categories lists the feed categories in display order.
var Categories = []string{CategoryAll, "Edge Functions", "Vector Search", "Realtime", "Database"}

var posts = []Post{
	{
		ID:    "1",
		Title: "Built a real-time chat with Realtime + Next.js",
		Content: "Just shipped a Discord-like chat app using Realtime channels. The DX is incredible - went from idea to working prototype in 2 hours.\n\n" +
			"Key learnings:\n- Broadcast channels are perfect for ephemeral data\n- RLS policies work seamlessly with realtime\n- Edge Functions handle message filtering\n\n" +
			"Anyone else building real-time features? Would love to hear your approaches!",
		Author:    "alex_dev",
		Category:  "Realtime",
		Upvotes:   47,
		Downvotes: 2,
		Posted:    "2 hours ago",
		Comments: []Comment{
			{ID: "c1", Content: "This is awesome! I built something similar but used presence for user indicators. How are you handling message history?", Author: "sarah_codes", Posted: "1 hour ago", Upvotes: 12},
			{ID: "c2", Content: "Nice work! The RLS + Realtime combo is really powerful. I use it for collaborative docs.", Author: "mike_builds", Posted: "45 minutes ago", Upvotes: 8},
		},
	},
	{
		ID:    "2",
		Title: "Vector similarity search for code snippets",
		Content: "Experimenting with pgvector to build semantic search for code snippets. You can now search \"authentication middleware\" and it finds relevant auth code even if those exact words aren't in the snippet.\n\n" +
			"The setup was surprisingly simple:\n1. Generate embeddings\n2. Store in vector column\n3. Query with cosine similarity\n\n" +
			"Performance is incredible even with 10k+ snippets. Has anyone tried this for documentation search?",
		Author:    "emma_ai",
		Category:  "Vector Search",
		Upvotes:   89,
		Downvotes: 1,
		Posted:    "4 hours ago",
		Comments: []Comment{
			{ID: "c3", Content: "This is the future! I want to build this for my team's internal docs. Any tips on chunking strategies?", Author: "dev_tom", Posted: "3 hours ago", Upvotes: 15},
		},
	},
	{
		ID:    "3",
		Title: "Edge Functions cold start optimization tricks",
		Content: "After deploying 50+ Edge Functions, here are my top performance tips:\n\n" +
			"Initialization:\n- Pre-import heavy libraries outside handler\n- Use global variables for DB connections\n- Implement connection pooling\n\n" +
			"Bundles:\n- Tree-shake unused exports\n- Use dynamic imports for conditional code\n- Keep dependencies minimal\n\n" +
			"Results: reduced cold starts from ~300ms to ~50ms.",
		Author:    "perf_guru",
		Category:  "Edge Functions",
		Upvotes:   156,
		Downvotes: 3,
		Posted:    "6 hours ago",
		Comments:  []Comment{},
	},
	{
		ID:    "4",
		Title: "Row Level Security patterns for SaaS apps",
		Content: "Building a multi-tenant SaaS and RLS is a game changer. Here's my policy setup:\n\n" +
			"CREATE POLICY \"org_isolation\" ON documents\n  FOR ALL USING (org_id = auth.jwt() ->> 'org_id');\n\n" +
			"Zero application-level filtering needed. Security at the database level is so clean.",
		Author:    "security_sam",
		Category:  "Database",
		Upvotes:   73,
		Downvotes: 0,
		Posted:    "8 hours ago",
		Comments: []Comment{
			{ID: "c4", Content: "RLS is amazing! One gotcha: make sure to test policies thoroughly. I had a bug where admins couldn't see data.", Author: "cautious_dev", Posted: "7 hours ago", Upvotes: 22},
		},
	},
}

// Posts returns the feed filtered by category. "" and CategoryAll return
// every post.
func Posts(category string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category == "" || category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// PostByID looks up a post.
func PostByID(id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
