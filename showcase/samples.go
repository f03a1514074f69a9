package showcase

// Sample is a ready-to-copy piece of launch content.
type Sample struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel"`
	Body    string `json:"body"`
}

var samples = []Sample{
	{
		ID:      "blog",
		Title:   "Launch Announcement: Vector Search Beta",
		Channel: "Blog",
		Body: "# Vector Search in Postgres: Now in Public Beta\n\n" +
			"Today we're opening the beta for Vector Search. This lets you run semantic search queries directly inside Postgres, powered by the pgvector extension, with no extra services required.\n\n" +
			"**Why it matters:**\n" +
			"- No extra infrastructure: store and query embeddings right next to your relational data\n" +
			"- Postgres-native: all your queries, joins, and filters just work\n" +
			"- Production-ready: scale from a side project to millions of vectors without changing tools\n\n" +
			"**Try it now:**\nWe've seeded every new project with pgvector enabled. Start with a single SQL command:\n\n" +
			"```sql\ncreate table documents (\n  id bigserial primary key,\n  content text,\n  embedding vector(1536)\n);\n```\n\n" +
			"Then insert embeddings from your favorite model and query with cosine similarity.\n\n→ Read the full guide",
	},
	{
		ID:      "twitter",
		Title:   "Twitter/X Post",
		Channel: "Twitter",
		Body:    "🚀 Vector Search is now in public beta!\n\nBuild semantic search directly inside Postgres with pgvector.\n\nNo extra services. No added infra. Just SQL.\n\n→ docs link",
	},
	{
		ID:      "linkedin",
		Title:   "LinkedIn Post",
		Channel: "LinkedIn",
		Body:    "We're excited to announce that Vector Search is now in public beta. With pgvector running natively in Postgres, you can store and query embeddings right alongside your relational data, no extra services needed. This makes it easier than ever to add semantic search, recommendations, and AI-powered features to your apps.",
	},
	{
		ID:      "hackernews",
		Title:   "Hacker News Summary",
		Channel: "Hacker News",
		Body:    "Vector Search is now open in public beta.\n\n• pgvector included by default\n• Works with any embeddings model\n• SQL queries, joins, filters, indexes, all in Postgres",
	},
	{
		ID:      "newsletter",
		Title:   "Launch Week Newsletter",
		Channel: "Email",
		Body: "🚀 Launch Week: Vector Search Beta, Edge Functions v2, and More\n\n" +
			"This Launch Week, we're shipping features that make Postgres even more powerful for AI-driven apps. Vector Search is now in public beta, so you can build semantic search directly inside your database without extra services. We've also updated Edge Functions with 10x faster cold starts and added new auth flows for better user experience.\n\n" +
			"This week:\n• Day 1: Vector Search Beta\n• Day 2: Edge Functions v2\n• Day 3: Realtime Broadcast Channels\n• Day 4: Auth Enhancements\n• Day 5: Dashboard 2.0\n\n→ Read all announcements",
	},
}

// Samples returns the content samples in display order.
func Samples() []Sample {
	return append([]Sample(nil), samples...)
}

// SampleByID looks up a content sample.
func SampleByID(id string) (Sample, bool) {
	for _, s := range samples {
		if s.ID == id {
			return s, true
		}
	}
	return Sample{}, false
}
