package kibana

import (
	"context"
	"fmt"

	"github.com/nh2/kibana-importer/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// GetDefaultIndex reads the default index pattern id from the target's
// settings endpoint. An empty string with a nil error means the target has
// no default index configured.
func (c *Client) GetDefaultIndex(ctx context.Context) (string, error) {
	bodyMap, statusCode, err := c.get(ctx, "/api/kibana/settings")
	if err != nil {
		return "", errors.WithStack(err)
	}
	if statusCode > 299 {
		return "", fmt.Errorf("settings request failed with %d", statusCode)
	}

	if value, ok := utils.GetValueFromMapByPath(bodyMap, "settings.defaultIndex.userValue"); ok {
		return cast.ToString(value), nil
	}

	// Older Kibana returns the setting as a bare string.
	if value, ok := utils.GetValueFromMapByPath(bodyMap, "settings.defaultIndex"); ok {
		if indexId, isString := value.(string); isString {
			return indexId, nil
		}
	}

	return "", nil
}
