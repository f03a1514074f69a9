// Package showcase holds the static marketing content of the dashboard:
// the launch-week schedule, the community feed, content samples and the
// sandbox page.
package showcase

// FeatureStatus is the state of a launch-week day.
type FeatureStatus string

const (
	FeatureShipped    FeatureStatus = "shipped"
	FeatureComingSoon FeatureStatus = "coming-soon"
)

// Feature is one day of launch week.
type Feature struct {
	ID           string        `json:"id"`
	Day          int           `json:"day"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Status       FeatureStatus `json:"status"`
	Announcement string        `json:"announcement,omitempty"`
}

// HasAnnouncement reports whether a full write-up exists.
func (f Feature) HasAnnouncement() bool {
	return f.Announcement != ""
}

var schedule = []Feature{
	{
		ID:           "vector-search",
		Day:          1,
		Title:        "Vector Search in Postgres",
		Description:  "Build semantic search directly in your database with pgvector",
		Status:       FeatureShipped,
		Announcement: vectorSearchAnnouncement,
	},
	{
		ID:          "edge-functions-v2",
		Day:         2,
		Title:       "Edge Functions: Now 10x Faster",
		Description: "New runtime with improved cold starts and global deployment",
		Status:      FeatureShipped,
	},
	{
		ID:          "realtime-broadcast",
		Day:         3,
		Title:       "Realtime Broadcast Channels",
		Description: "Build multiplayer experiences with low-latency messaging",
		Status:      FeatureComingSoon,
	},
	{
		ID:          "auth-enhancements",
		Day:         4,
		Title:       "Anonymous Sign-ins & MFA Updates",
		Description: "New auth flows for better user experience",
		Status:      FeatureComingSoon,
	},
	{
		ID:          "dashboard-redesign",
		Day:         5,
		Title:       "Dashboard 2.0: Built for Scale",
		Description: "Redesigned UI for managing production databases",
		Status:      FeatureComingSoon,
	},
}

// Schedule returns the launch-week days in order.
func Schedule() []Feature {
	return append([]Feature(nil), schedule...)
}

// FeatureByID looks up a launch-week day.
func FeatureByID(id string) (Feature, bool) {
	for _, f := range schedule {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

// ShippedCount returns how many days have shipped.
func ShippedCount() int {
	n := 0
	for _, f := range schedule {
		if f.Status == FeatureShipped {
			n++
		}
	}
	return n
}

const vectorSearchAnnouncement = "# Vector Search in Postgres\n\n" +
	"Vector search is now natively supported with pgvector. Build semantic search, recommendations, " +
	"and AI-powered features directly in your PostgreSQL database.\n\n" +
	"## Key Features\n\n" +
	"- **Native PostgreSQL Integration**: pgvector extension built into every database\n" +
	"- **High Performance**: Optimized indexing with HNSW and IVF algorithms\n" +
	"- **Flexible Embeddings**: Support for OpenAI, Cohere, and custom embedding models\n" +
	"- **SQL-First Approach**: Use familiar SQL queries for vector operations\n\n" +
	"## Quick Start\n\n" +
	"```sql\n" +
	"create extension if not exists vector;\n\n" +
	"create table documents (\n" +
	"  id bigserial primary key,\n" +
	"  content text,\n" +
	"  embedding vector(1536)\n" +
	");\n\n" +
	"create index on documents using hnsw (embedding vector_cosine_ops);\n" +
	"```\n\n" +
	"## Hybrid Search\n\n" +
	"Combine full-text search with semantic similarity:\n\n" +
	"```sql\n" +
	"select\n" +
	"  content,\n" +
	"  ts_rank(to_tsvector(content), plainto_tsquery($1)) as text_rank,\n" +
	"  1 - (embedding <=> $2) as semantic_similarity\n" +
	"from documents\n" +
	"where to_tsvector(content) @@ plainto_tsquery($1)\n" +
	"   or (embedding <=> $2) < 0.8\n" +
	"order by semantic_similarity desc;\n" +
	"```\n\n" +
	"## Performance & Scaling\n\n" +
	"- **Sub-millisecond queries** for million+ vector datasets\n" +
	"- **Automatic index optimization** based on your data distribution\n" +
	"- **Connection pooling** to handle high concurrency\n" +
	"- **Read replicas** for geo-distributed search\n"
