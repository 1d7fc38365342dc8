package kibana

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-version"
	"github.com/mitchellh/mapstructure"
	"github.com/nh2/kibana-importer/utils"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

const StatusStateGreen = "green"

// minimumKibanaVersion is the first release carrying the saved objects API.
var minimumKibanaVersion = version.Must(version.NewVersion("5.0.0"))

type StatusOverall struct {
	State string `mapstructure:"state"`
}

type StatusInfo struct {
	Overall StatusOverall `mapstructure:"overall"`
}

type Status struct {
	Status  StatusInfo
	Version string
}

func (s *Status) State() string {
	return s.Status.Overall.State
}

// WarnIfUnsupported logs when the target Kibana predates the saved objects
// API. Advisory only, the batch still runs.
func (s *Status) WarnIfUnsupported(ctx context.Context) {
	if lo.IsEmpty(s.Version) {
		return
	}
	v, err := version.NewVersion(s.Version)
	if err != nil {
		return
	}
	if v.LessThan(minimumKibanaVersion) {
		utils.GetTaskLogger(ctx).Warnf("kibana version %s is below %s, the saved objects api may be unavailable",
			s.Version, minimumKibanaVersion)
	}
}

func (c *Client) GetStatus(ctx context.Context) (*Status, error) {
	bodyMap, statusCode, err := c.get(ctx, "/api/status")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if statusCode > 299 {
		return nil, fmt.Errorf("status request failed with %d", statusCode)
	}
	if statusCode == http.StatusOK && len(bodyMap) == 0 {
		return nil, fmt.Errorf("status response is not json")
	}

	var statusInfo StatusInfo
	if err := mapstructure.Decode(cast.ToStringMap(bodyMap["status"]), &statusInfo); err != nil {
		return nil, errors.WithStack(err)
	}

	// Kibana 6+ nests the version, 5.x returns it as a bare string.
	versionNumber, ok := utils.GetValueFromMapByPath(bodyMap, "version.number")
	if !ok {
		versionNumber = bodyMap["version"]
	}

	return &Status{
		Status:  statusInfo,
		Version: cast.ToString(versionNumber),
	}, nil
}
