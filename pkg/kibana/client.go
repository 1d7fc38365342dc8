package kibana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nh2/kibana-importer/config"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Client talks to one Kibana instance. The underlying http.Client is shared
// across all requests of a batch so connections are kept alive.
type Client struct {
	Address  string
	User     string
	Password string

	httpClient *http.Client
}

func NewClient(cfg *config.KibanaConfig) *Client {
	return &Client{
		Address:  strings.TrimRight(cfg.Address, "/"),
		User:     cfg.User,
		Password: cfg.Password,

		httpClient: &http.Client{},
	}
}

func (c *Client) request(req *http.Request) (map[string]interface{}, int, error) {
	// Kibana rejects writes without the xsrf header.
	req.Header.Set("kbn-xsrf", "anything")
	req.Header.Set("Content-Type", "application/json")
	if c.User != "" {
		req.SetBasicAuth(c.User, c.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.WithStack(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, _ := io.ReadAll(resp.Body)
	bodyMap := make(map[string]interface{})
	_ = json.Unmarshal(bodyBytes, &bodyMap)
	return bodyMap, resp.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string) (map[string]interface{}, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Address+path, nil)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.WithStack(err)
	}
	return c.request(req)
}

// UpsertSavedObject writes one saved object with create-or-overwrite
// semantics keyed by the record's id.
func (c *Client) UpsertSavedObject(ctx context.Context, record *ExportRecord) error {
	bodyBytes, err := json.Marshal(map[string]interface{}{
		"attributes": record.Source,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	targetUrl := fmt.Sprintf("%s/api/saved_objects/%s/%s?%s",
		c.Address, record.Type, record.ID, url.Values{"overwrite": []string{"true"}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetUrl, bytes.NewReader(bodyBytes))
	if err != nil {
		return errors.WithStack(err)
	}

	respMap, statusCode, err := c.request(req)
	if err != nil {
		return errors.WithStack(err)
	}

	if statusCode > 299 {
		return fmt.Errorf("upsert %s/%s status %d: %s",
			record.Type, record.ID, statusCode, cast.ToString(respMap["message"]))
	}
	return nil
}
