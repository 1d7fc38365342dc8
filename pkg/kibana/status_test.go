package kibana

import (
	"context"
	"testing"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana/kibanatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	server := kibanatest.NewServer().
		WithStatusSequence("yellow").
		WithVersion("6.8.0")
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	status, err := client.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "yellow", status.State())
	assert.Equal(t, "6.8.0", status.Version)
}

func TestGetStatusUnreachable(t *testing.T) {
	client := NewClient(&config.KibanaConfig{Address: "http://127.0.0.1:1"})

	_, err := client.GetStatus(context.Background())
	assert.Error(t, err)
}
