package showcase

// Tip is a message shown in the sandbox assistant panel.
type Tip struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Posted  string `json:"posted"`
	Type    string `json:"type"` // tip, code, fun
}

// SandboxSnippet is the SQL preloaded in the sandbox editor.
const SandboxSnippet = `-- Create a table with a vector column
create table documents (
  id bigserial primary key,
  content text,
  embedding vector(1536)
);

-- Create an index for fast similarity search
create index on documents using hnsw (embedding vector_cosine_ops);

-- Query for similar documents
select
  content,
  1 - (embedding <=> query_embedding) as similarity
from documents
where 1 - (embedding <=> query_embedding) > 0.8
order by similarity desc;`

var tips = []Tip{
	{ID: 1, Message: "Need help with semantic search? Try using pgvector with similarity()!", Posted: "2 min ago", Type: "tip"},
	{ID: 2, Message: "Here's a starter snippet in Next.js for calling your database function.", Posted: "5 min ago", Type: "code"},
	{ID: 3, Message: "Tip of the day: Auth + Row Level Security = unstoppable combo.", Posted: "10 min ago", Type: "tip"},
	{ID: 4, Message: "Fun fact: our green is #3ECF8E. Looks good on you.", Posted: "15 min ago", Type: "fun"},
}

// SandboxTips returns the assistant panel messages.
func SandboxTips() []Tip {
	return append([]Tip(nil), tips...)
}
