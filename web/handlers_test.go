package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
	"github.com/ztrade/launchweek/store"
)

type fakeProvider struct {
	calls int
	reply string
	err   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

type testServer struct {
	*Server
	provider *fakeProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open("sqlite", filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	p := &fakeProvider{reply: "## Draft"}
	svc := launch.NewService(st, st, launch.WithActor(auth.ActorName))
	s := NewServer(svc, generate.NewGenerator(p), auth.LoadConfig(viper.New()))
	s.now = func() time.Time { return time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC) }
	return &testServer{Server: s, provider: p}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestAPILaunchLifecycle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/launches", launch.Fields{
		Title:      "Vector Search",
		Status:     "Ready",
		LaunchDate: "2025-08-11",
		Checklist:  launch.Checklist{Blog: true, Demo: true, Social: true},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	id := created["id"].(string)
	assert.EqualValues(t, 60, created["progress"])

	w = ts.do(http.MethodGet, "/api/launches/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Vector Search", decodeBody(t, w)["title"])

	w = ts.do(http.MethodPut, "/api/launches/"+id, launch.Fields{Title: "Vector Search GA", Status: "Shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Shipped", decodeBody(t, w)["status"])

	w = ts.do(http.MethodGet, "/api/launches?q=vector&status=Shipped", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["count"])

	w = ts.do(http.MethodDelete, "/api/launches/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(http.MethodGet, "/api/activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	act := decodeBody(t, w)
	assert.EqualValues(t, 3, act["count"])
	first := act["activity"].([]any)[0].(map[string]any)
	assert.Equal(t, launch.ActionDeleted, first["action"])
	assert.Equal(t, launch.AnonymousActor, first["user_name"])
}

func TestAPIErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/launches", launch.Fields{Title: " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"title"}, decodeBody(t, w)["fields"])

	w = ts.do(http.MethodPost, "/api/launches", launch.Fields{Title: "x", Status: "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/launches/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodDelete, "/api/launches/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodGet, "/api/launches?status=Archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/activity", nil)
	assert.EqualValues(t, 0, decodeBody(t, w)["count"])
}

func TestAPIGenerate(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/generate", map[string]any{"type": "faq"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "type and inputs")

	w = ts.do(http.MethodPost, "/api/generate", map[string]any{"type": "faq", "inputs": map[string]string{"featureInfo": " "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"Feature Information"}, decodeBody(t, w)["fields"])
	assert.Zero(t, ts.provider.calls)

	w = ts.do(http.MethodPost, "/api/generate", map[string]any{"type": "faq", "inputs": map[string]string{"featureInfo": "pgvector"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "## Draft", decodeBody(t, w)["content"])

	ts.provider.err = errors.New("rate limited")
	w = ts.do(http.MethodPost, "/api/generate", map[string]any{"type": "faq", "inputs": map[string]string{"featureInfo": "pgvector"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, 2, ts.provider.calls)

	ts.gen = generate.NewGenerator(nil)
	w = ts.do(http.MethodPost, "/api/generate", map[string]any{"type": "faq", "inputs": map[string]string{"featureInfo": "pgvector"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPIVote(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/posts/1/vote", map[string]string{"vote": "up"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decodeBody(t, w)
	assert.EqualValues(t, 48, out["upvotes"])
	assert.Equal(t, "up", out["userVote"])

	w = ts.do(http.MethodPost, "/api/posts/1/vote", map[string]string{"current": "up", "vote": "up"})
	out = decodeBody(t, w)
	assert.EqualValues(t, 47, out["upvotes"])
	assert.Equal(t, "", out["userVote"])

	w = ts.do(http.MethodPost, "/api/posts/1/vote", map[string]string{"current": "up", "vote": "down"})
	out = decodeBody(t, w)
	assert.EqualValues(t, 47, out["upvotes"])
	assert.EqualValues(t, 3, out["downvotes"])

	w = ts.do(http.MethodPost, "/api/posts/1/vote", map[string]string{"current": "Up", "vote": "DOWN"})
	require.Equal(t, http.StatusOK, w.Code)
	out = decodeBody(t, w)
	assert.EqualValues(t, 47, out["upvotes"])
	assert.EqualValues(t, 3, out["downvotes"])
	assert.Equal(t, "down", out["userVote"])

	w = ts.do(http.MethodPost, "/api/posts/99/vote", map[string]string{"vote": "up"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodPost, "/api/posts/1/vote", map[string]string{"vote": "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewerCannotMutate(t *testing.T) {
	ts := newTestServer(t)
	v := viper.New()
	v.Set("mcp.auth.enabled", true)
	ts.auth = auth.LoadConfig(v)

	req := httptest.NewRequest(http.MethodPost, "/api/launches", strings.NewReader(`{"title":"x"}`))
	req = req.WithContext(auth.ContextWithUser(req.Context(), &auth.User{Name: "Vic", Role: auth.RoleViewer}))
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	for _, path := range []string{"/api/launches", "/api/activity", "/api/content-kinds"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		req = req.WithContext(auth.ContextWithUser(req.Context(), &auth.User{Name: "Vic", Role: auth.RoleViewer}))
		w = httptest.NewRecorder()
		ts.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestActorFromAuthenticatedUser(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/launches", strings.NewReader(`{"title":"Realtime","owner":"Rita"}`))
	req = req.WithContext(auth.ContextWithUser(req.Context(), &auth.User{Name: "Ada", Role: auth.RoleEditor}))
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	entries, err := ts.svc.RecentActivity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ada", entries[0].UserName)
}

func TestPages(t *testing.T) {
	ts := newTestServer(t)
	_, err := ts.svc.Create(context.Background(), launch.Fields{Title: "Edge Functions", Status: "In Progress", LaunchDate: "2025-08-12", Owner: "Perf"})
	require.NoError(t, err)

	cases := []struct {
		path string
		want string
	}{
		{"/", "Edge Functions"},
		{"/launches?q=edge", "Showing 1 of 1 launches"},
		{"/launches?q=nothing", "No launches match"},
		{"/assistant?kind=social", "Create Social Media Variants"},
		{"/launch-week", "Realtime Broadcast Channels"},
		{"/launch-week?feature=vector-search", "Hybrid Search"},
		{"/the-grid?category=Realtime", "alex_dev"},
		{"/samples", "Hacker News Summary"},
		{"/sandbox", "vector_cosine_ops"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := ts.do(http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}

	w := ts.do(http.MethodGet, "/launch-week?feature=nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLaunchFormCreate(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{"title": {"Dashboard 2.0"}, "status": {"Planning"}, "checklist": {"blog", "docs"}}
	req := httptest.NewRequest(http.MethodPost, "/launches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	launches, err := ts.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.Equal(t, 40, launches[0].Progress())

	form = url.Values{"title": {""}}
	req = httptest.NewRequest(http.MethodPost, "/launches", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
}

func TestAssistantForm(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{"kind": {"developer"}, "description": {"Database branching"}}
	req := httptest.NewRequest(http.MethodPost, "/assistant", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "## Draft")

	form = url.Values{"kind": {"developer"}}
	req = httptest.NewRequest(http.MethodPost, "/assistant", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in required fields: Feature Description")
	assert.Equal(t, 1, ts.provider.calls)
}
