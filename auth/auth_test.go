package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, authType string) *Config {
	t.Helper()
	v := viper.New()
	v.Set("mcp.auth.enabled", true)
	v.Set("mcp.auth.type", authType)
	v.Set("mcp.auth.tokens", []map[string]any{
		{"token": "tok-admin", "name": "Ada", "role": "admin"},
		{"token": "tok-view", "name": "Vic"},
	})
	v.Set("mcp.auth.keys", []map[string]any{
		{"key": "key-edit", "name": "Eddie", "role": "Editor"},
	})
	return LoadConfig(v)
}

func TestAuthenticateToken(t *testing.T) {
	cfg := testConfig(t, "token")

	r := httptest.NewRequest(http.MethodGet, "/api/launches", nil)
	r.Header.Set("Authorization", "Bearer tok-admin")
	u := cfg.Authenticate(r)
	require.NotNil(t, u)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, RoleAdmin, u.Role)

	r.Header.Set("Authorization", "Bearer tok-view")
	u = cfg.Authenticate(r)
	require.NotNil(t, u)
	assert.Equal(t, RoleViewer, u.Role, "blank role defaults to viewer")

	r.Header.Set("Authorization", "tok-admin")
	assert.Nil(t, cfg.Authenticate(r), "missing Bearer prefix")
}

func TestAuthenticateAPIKey(t *testing.T) {
	cfg := testConfig(t, "apikey")

	r := httptest.NewRequest(http.MethodGet, "/mcp?api_key=key-edit", nil)
	u := cfg.Authenticate(r)
	require.NotNil(t, u)
	assert.Equal(t, RoleEditor, u.Role)

	r = httptest.NewRequest(http.MethodGet, "/mcp", nil)
	r.Header.Set("X-API-Key", "nope")
	assert.Nil(t, cfg.Authenticate(r))
}

func TestDisabledIsAnonymousAdmin(t *testing.T) {
	cfg := LoadConfig(viper.New())
	u := cfg.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, u)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.Empty(t, cfg.Check(context.Background(), ActionDeleteLaunch))
}

func TestHasPermission(t *testing.T) {
	for _, action := range []string{ActionCreateLaunch, ActionUpdateLaunch, ActionDeleteLaunch, ActionGenerateContent} {
		assert.True(t, HasPermission(RoleAdmin, action), action)
		assert.True(t, HasPermission(RoleEditor, action), action)
		assert.False(t, HasPermission(RoleViewer, action), action)
	}
	for _, action := range []string{ActionListLaunches, ActionGetLaunch, ActionLaunchDashboard, ActionListActivity, ActionListContentKinds} {
		assert.True(t, HasPermission(RoleAdmin, action), action)
		assert.True(t, HasPermission(RoleEditor, action), action)
		assert.True(t, HasPermission(RoleViewer, action), action)
	}
	assert.True(t, HasPermission(RoleViewer, "launch_week_schedule"))
	assert.False(t, HasPermission("trader", ActionListLaunches))
}

func TestActorName(t *testing.T) {
	assert.Empty(t, ActorName(context.Background()))
	assert.Empty(t, ActorName(ContextWithUser(context.Background(), Anonymous())))
	ctx := ContextWithUser(context.Background(), &User{Name: "Ada", Role: RoleAdmin})
	assert.Equal(t, "Ada", ActorName(ctx))
}

func TestHTTPMiddleware(t *testing.T) {
	cfg := testConfig(t, "token")
	var seen *User
	h := HTTPMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/launches", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/api/launches", nil)
	r.Header.Set("Authorization", "Bearer tok-admin")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "Ada", seen.Name)
}

func TestToolAuthMiddleware(t *testing.T) {
	cfg := testConfig(t, "token")
	called := false
	handler := ToolAuthMiddleware(cfg)(func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = ActionDeleteLaunch

	_, err := handler(context.Background(), req)
	assert.ErrorContains(t, err, "authentication required")

	viewer := ContextWithUser(context.Background(), &User{Name: "Vic", Role: RoleViewer})
	_, err = handler(viewer, req)
	assert.ErrorContains(t, err, "permission denied")
	assert.False(t, called)

	req.Params.Name = ActionListLaunches
	_, err = handler(viewer, req)
	require.NoError(t, err)
	assert.True(t, called)
}
