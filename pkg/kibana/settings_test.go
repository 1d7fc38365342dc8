package kibana

import (
	"context"
	"testing"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana/kibanatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultIndex(t *testing.T) {
	server := kibanatest.NewServer().WithDefaultIndex("logstash-*")
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	indexId, err := client.GetDefaultIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "logstash-*", indexId)
}

func TestGetDefaultIndexAbsent(t *testing.T) {
	server := kibanatest.NewServer()
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	indexId, err := client.GetDefaultIndex(context.Background())
	require.NoError(t, err)
	assert.Empty(t, indexId)
}

func TestGetDefaultIndexUnreachable(t *testing.T) {
	client := NewClient(&config.KibanaConfig{Address: "http://127.0.0.1:1"})

	_, err := client.GetDefaultIndex(context.Background())
	assert.Error(t, err)
}
