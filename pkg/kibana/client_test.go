package kibana

import (
	"context"
	"net/http"
	"testing"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana/kibanatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *kibanatest.Server) *Client {
	t.Helper()
	return NewClient(&config.KibanaConfig{Address: server.URL()})
}

func TestUpsertSavedObject(t *testing.T) {
	server := kibanatest.NewServer()
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	record := &ExportRecord{
		Type: RecordTypeDashboard,
		ID:   "system-overview",
		Source: map[string]interface{}{
			"title":      "System Overview",
			"panelsJSON": "[]",
		},
	}

	err := client.UpsertSavedObject(context.Background(), record)
	require.NoError(t, err)

	requests := server.Requests()
	require.Len(t, requests, 1)

	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/api/saved_objects/dashboard/system-overview", requests[0].Path)
	assert.Equal(t, "true", requests[0].Query.Get("overwrite"))
	assert.Equal(t, "anything", requests[0].Header.Get("kbn-xsrf"))
	assert.Equal(t, map[string]interface{}{
		"attributes": map[string]interface{}{
			"title":      "System Overview",
			"panelsJSON": "[]",
		},
	}, requests[0].Body)

	attributes, ok := server.SavedObject(RecordTypeDashboard, "system-overview")
	require.True(t, ok)
	assert.Equal(t, "System Overview", attributes["title"])
}

func TestUpsertSavedObjectFailure(t *testing.T) {
	server := kibanatest.NewServer().
		FailSavedObject(RecordTypeSearch, "broken", http.StatusInternalServerError)
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	record := &ExportRecord{
		Type:   RecordTypeSearch,
		ID:     "broken",
		Source: map[string]interface{}{"title": "Broken"},
	}

	err := client.UpsertSavedObject(context.Background(), record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestUpsertSavedObjectUnreachable(t *testing.T) {
	client := NewClient(&config.KibanaConfig{Address: "http://127.0.0.1:1"})
	record := &ExportRecord{
		Type:   RecordTypeDashboard,
		ID:     "x",
		Source: map[string]interface{}{},
	}

	err := client.UpsertSavedObject(context.Background(), record)
	assert.Error(t, err)
}
