package explore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExploreLink(t *testing.T) {
	link := ExploreLink{
		GrafanaURL:    "http://grafana.local:3000",
		DataSource:    "loki",
		DataSourceUID: "P8E80F9AEF21F6940",
		Source:        "go-redblack",
		RunID:         "abc123",
	}

	u, err := link.URL()
	require.NoError(t, err)
	assert.Equal(t, "grafana.local:3000", u.Host)
	assert.Equal(t, "/explore", u.Path)

	q := query{}
	require.NoError(t, json.Unmarshal([]byte(u.Query().Get("left")), &q))
	require.Len(t, q.Queries, 1)
	assert.Equal(t, `{source="go-redblack"} | logfmt | run="abc123"`, q.Queries[0].Expr)
	assert.Equal(t, "P8E80F9AEF21F6940", q.Queries[0].DataSource.UID)
	assert.Equal(t, "now-1h", q.Range.From)

	assert.Equal(t, u.String(), link.String())
}

func TestExploreLink_Invalid(t *testing.T) {
	link := ExploreLink{GrafanaURL: "://nope"}
	_, err := link.URL()
	assert.Error(t, err)
	assert.Contains(t, link.String(), "invalid explore link")
}
