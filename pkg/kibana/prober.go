package kibana

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/utils"
)

const probeInterval = 100 * time.Millisecond

// WaitUntilReady blocks until the target Kibana is ready, retrying forever.
// Connection failures are swallowed and drive the next attempt.
func (c *Client) WaitUntilReady(ctx context.Context, strategy config.WaitStrategy) {
	if strategy == config.WaitStrategyPort {
		c.waitForPort(ctx)
		return
	}
	c.waitForGreenStatus(ctx)
}

func (c *Client) waitForGreenStatus(ctx context.Context) {
	for {
		status, err := c.GetStatus(ctx)
		if err != nil {
			utils.GetTaskLogger(ctx).Debugf("kibana is not reachable, retrying...")
		} else if status.State() == StatusStateGreen {
			status.WarnIfUnsupported(ctx)
			return
		} else {
			utils.GetTaskLogger(ctx).Debugf("kibana status is not green (is: %s), retrying...", status.State())
		}
		time.Sleep(probeInterval)
	}
}

func (c *Client) waitForPort(ctx context.Context) {
	hostPort := c.hostPort()
	for {
		conn, err := net.DialTimeout("tcp", hostPort, time.Second)
		if err == nil {
			_ = conn.Close()
			return
		}
		utils.GetTaskLogger(ctx).Debugf("kibana port is not reachable, retrying...")
	}
}

func (c *Client) hostPort() string {
	u, err := url.Parse(c.Address)
	if err != nil {
		return c.Address
	}

	hostPort := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		hostPort = net.JoinHostPort(u.Hostname(), port)
	}
	return hostPort
}
