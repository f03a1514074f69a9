package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/spf13/viper"
)

type contextKey string

const userContextKey contextKey = "launchweek_user"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// anonymousName is the user attached to requests when auth is disabled.
const anonymousName = "anonymous"

// User represents an authenticated user
type User struct {
	Name  string `json:"name"`
	Role  string `json:"role"` // "admin", "editor", "viewer"
	Token string `json:"-"`
}

// TokenEntry represents a configured token
type TokenEntry struct {
	Token string `mapstructure:"token"`
	Name  string `mapstructure:"name"`
	Role  string `mapstructure:"role"`
}

// APIKeyEntry represents a configured API key
type APIKeyEntry struct {
	Key  string `mapstructure:"key"`
	Name string `mapstructure:"name"`
	Role string `mapstructure:"role"`
}

// Config holds authentication configuration
type Config struct {
	Enabled bool          `mapstructure:"enabled"`
	Type    string        `mapstructure:"type"` // "token", "apikey"
	Tokens  []TokenEntry  `mapstructure:"tokens"`
	Header  string        `mapstructure:"header"` // for apikey mode
	Keys    []APIKeyEntry `mapstructure:"keys"`

	tokenMap  map[string]*User
	apiKeyMap map[string]*User
}

// LoadConfig loads auth configuration from viper
func LoadConfig(cfg *viper.Viper) *Config {
	c := &Config{}
	c.Enabled = cfg.GetBool("mcp.auth.enabled")
	c.Type = cfg.GetString("mcp.auth.type")
	c.Header = cfg.GetString("mcp.auth.header")

	if c.Header == "" {
		c.Header = "X-API-Key"
	}

	var tokens []TokenEntry
	if err := cfg.UnmarshalKey("mcp.auth.tokens", &tokens); err == nil {
		c.Tokens = tokens
	}

	var keys []APIKeyEntry
	if err := cfg.UnmarshalKey("mcp.auth.keys", &keys); err == nil {
		c.Keys = keys
	}

	c.tokenMap = make(map[string]*User)
	for _, t := range c.Tokens {
		c.tokenMap[t.Token] = &User{Name: t.Name, Role: normalizeRole(t.Role), Token: t.Token}
	}

	c.apiKeyMap = make(map[string]*User)
	for _, k := range c.Keys {
		c.apiKeyMap[k.Key] = &User{Name: k.Name, Role: normalizeRole(k.Role), Token: k.Key}
	}

	return c
}

// normalizeRole defaults blank or unknown roles to viewer.
func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if _, ok := rolePermissions[role]; !ok {
		return RoleViewer
	}
	return role
}

// Authenticate validates credentials from an HTTP request
func (c *Config) Authenticate(r *http.Request) *User {
	if !c.Enabled {
		return Anonymous()
	}

	switch c.Type {
	case "apikey":
		return c.authenticateAPIKey(r)
	default:
		return c.authenticateToken(r)
	}
}

func (c *Config) authenticateToken(r *http.Request) *User {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return nil
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == auth {
		return nil // no "Bearer " prefix
	}
	return c.tokenMap[token]
}

func (c *Config) authenticateAPIKey(r *http.Request) *User {
	key := r.Header.Get(c.Header)
	if key == "" {
		key = r.URL.Query().Get("api_key")
	}
	if key == "" {
		return nil
	}
	return c.apiKeyMap[key]
}

// Anonymous is the user of an unauthenticated deployment.
func Anonymous() *User {
	return &User{Name: anonymousName, Role: RoleAdmin}
}

// UserFromContext extracts User from context
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userContextKey).(*User)
	return u
}

// ContextWithUser returns a new context with user info
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// ActorName returns the name to record in the activity log for ctx, or ""
// when the request is anonymous.
func ActorName(ctx context.Context) string {
	u := UserFromContext(ctx)
	if u == nil || u.Name == anonymousName {
		return ""
	}
	return u.Name
}

// Tool and action names guarded by the permission table. MCP tools use
// their tool names; the dashboard API uses the same names for its routes.
const (
	ActionListLaunches     = "list_launches"
	ActionGetLaunch        = "get_launch"
	ActionCreateLaunch     = "create_launch"
	ActionUpdateLaunch     = "update_launch"
	ActionDeleteLaunch     = "delete_launch"
	ActionGenerateContent  = "generate_content"
	ActionLaunchDashboard  = "launch_dashboard"
	ActionListActivity     = "list_activity"
	ActionListContentKinds = "list_content_kinds"
)

var readOnly = []string{
	ActionListLaunches,
	ActionGetLaunch,
	ActionLaunchDashboard,
	ActionListActivity,
	ActionListContentKinds,
}

var mutating = []string{
	ActionCreateLaunch,
	ActionUpdateLaunch,
	ActionDeleteLaunch,
	ActionGenerateContent,
}

// role permission definitions; tools missing from a role's map are allowed.
var rolePermissions = map[string]map[string]bool{
	RoleAdmin:  grant(allow(readOnly...), allow(mutating...)),
	RoleEditor: grant(allow(readOnly...), allow(mutating...)),
	RoleViewer: grant(allow(readOnly...), deny(mutating...)),
}

func allow(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func deny(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = false
	}
	return m
}

func grant(sets ...map[string]bool) map[string]bool {
	m := make(map[string]bool)
	for _, set := range sets {
		for n, ok := range set {
			m[n] = ok
		}
	}
	return m
}

// HasPermission checks if a role has permission to use a tool
func HasPermission(role, toolName string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	allowed, ok := perms[toolName]
	if !ok {
		return true // unknown tools are allowed by default
	}
	return allowed
}
