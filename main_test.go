package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ztrade/launchweek/launch"
)

func testViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.Set("db.uri", filepath.Join(t.TempDir(), "cli.db"))
	return v
}

func TestParseSeed(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("configs", "launches.yaml"))
	require.NoError(t, err)
	entries, err := parseSeed(data)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "Vector Search in Postgres", entries[0].Title)
	assert.Equal(t, launch.Checklist{Blog: true, Demo: true, Social: true, Partner: true, Docs: true}, entries[0].Checklist)
	assert.Equal(t, []string{"ai", "postgres"}, entries[0].Tags)
	assert.Equal(t, "2025-08-12", entries[1].LaunchDate)
}

func TestSeedSkipsInvalid(t *testing.T) {
	svc, closeStore, err := openService(testViper(t))
	require.NoError(t, err)
	defer closeStore()

	entries, err := parseSeed([]byte(`
launches:
  - title: Realtime
    status: In Progress
  - title: ""
  - title: Archived launch
    status: Archived
  - title: Auth
`))
	require.NoError(t, err)

	created, err := seedLaunches(context.Background(), svc, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	activity, err := svc.RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, activity, 2)
}

func TestParseInputs(t *testing.T) {
	in, err := parseInputs([]string{"featureName=Edge Functions 2.0", "keyBenefit=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"featureName": "Edge Functions 2.0", "keyBenefit": "a=b"}, in)

	_, err = parseInputs([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseInputs([]string{"=x"})
	assert.Error(t, err)
}

func TestPrintLaunches(t *testing.T) {
	date, err := launch.ParseDate("2025-08-11")
	require.NoError(t, err)
	var buf bytes.Buffer
	printLaunches(&buf, []launch.Launch{
		{ID: "l1", Title: "Vector Search", Status: launch.StatusShipped, LaunchDate: date, Checklist: launch.Checklist{Blog: true}},
	}, 3)
	out := buf.String()
	assert.Contains(t, out, "Showing 1 of 3 launches")
	assert.Contains(t, out, "Vector Search")
	assert.Contains(t, out, "2025-08-11")
	assert.Contains(t, out, "20%")

	buf.Reset()
	printLaunches(&buf, nil, 3)
	assert.Contains(t, buf.String(), "No launches match")
}

func TestPrintActivity(t *testing.T) {
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	printActivity(&buf, []launch.Activity{
		{Action: launch.ActionCreated, UserName: "Emma", Details: map[string]any{"launch_title": "Vector Search"}, CreatedAt: now.Add(-2 * time.Hour)},
	}, now)
	assert.Contains(t, buf.String(), "created a new launch Vector Search")
	assert.Contains(t, buf.String(), "2h ago")
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("LAUNCHWEEK_LLM_PROVIDER", "gemini")
	t.Setenv("LAUNCHWEEK_DB_TYPE", "mysql")
	v := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "gemini", v.GetString("llm.provider"))
	assert.Equal(t, "mysql", v.GetString("db.type"))
	assert.Equal(t, 1000, v.GetInt("llm.maxTokens"))
	assert.True(t, v.GetBool("web.enabled"))
}
