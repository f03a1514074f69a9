package launch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistProgress(t *testing.T) {
	want := []int{0, 20, 40, 60, 80, 100}
	for k := 0; k <= 5; k++ {
		var c Checklist
		for _, key := range ChecklistKeys[:k] {
			require.NoError(t, c.Set(key, true))
		}
		assert.Equal(t, k, c.Completed())
		assert.Equal(t, want[k], c.Progress(), "k=%d", k)
	}
}

func TestChecklistProgressIgnoresWhichItems(t *testing.T) {
	a := Checklist{Blog: true, Docs: true}
	b := Checklist{Demo: true, Partner: true}
	assert.Equal(t, 40, a.Progress())
	assert.Equal(t, a.Progress(), b.Progress())
}

func TestChecklistSetUnknown(t *testing.T) {
	var c Checklist
	err := c.Set("video", true)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestChecklistJSONAlwaysHasFiveKeys(t *testing.T) {
	data, err := json.Marshal(Checklist{Social: true})
	require.NoError(t, err)

	var m map[string]bool
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Len(t, m, 5)
	for _, k := range ChecklistKeys {
		_, ok := m[k]
		assert.True(t, ok, "missing key %s", k)
	}

	var c Checklist
	require.NoError(t, json.Unmarshal([]byte(`{"blog":true,"extra":true}`), &c))
	assert.Equal(t, Checklist{Blog: true}, c)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "", want: StatusPlanning},
		{in: "Planning", want: StatusPlanning},
		{in: " in progress ", want: StatusInProgress},
		{in: "READY", want: StatusReady},
		{in: "Shipped", want: StatusShipped},
		{in: "Done", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.True(t, IsValidation(err), "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"ai", "postgres", "beta"}, ParseTags(" ai, postgres,,beta , "))
	assert.Empty(t, ParseTags(""))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2025-08-11")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2025-08-11", d.Format(DateLayout))

	_, err = ParseDate("11/08/2025")
	assert.True(t, IsValidation(err))
}

func TestLaunchMarshalJSON(t *testing.T) {
	d, _ := ParseDate("2025-08-11")
	l := Launch{
		ID:         "abc",
		Title:      "Vector Search",
		Status:     StatusReady,
		LaunchDate: d,
		Checklist:  Checklist{Blog: true, Demo: true, Social: true},
	}
	data, err := json.Marshal(l)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "2025-08-11", out["launch_date"])
	assert.Equal(t, float64(60), out["progress"])
	assert.Equal(t, []any{}, out["tags"])
	assert.Equal(t, "Ready", out["status"])
}
