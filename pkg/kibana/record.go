package kibana

import (
	"encoding/json"
	"io"

	"github.com/nh2/kibana-importer/utils"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

const (
	RecordTypeDashboard     = "dashboard"
	RecordTypeSearch        = "search"
	RecordTypeVisualization = "visualization"
)

// SavedObjectTypes are the record types the importer uploads; anything else
// in an export is skipped with a warning.
var SavedObjectTypes = []string{
	RecordTypeDashboard,
	RecordTypeSearch,
	RecordTypeVisualization,
}

// searchSourcePath locates the JSON-encoded search source string inside a
// record's source document.
const searchSourcePath = "kibanaSavedObjectMeta.searchSourceJSON"

// ExportRecord is one entry of a Kibana "Export Everything" JSON array.
type ExportRecord struct {
	Type   string                 `json:"_type"`
	ID     string                 `json:"_id"`
	Source map[string]interface{} `json:"_source"`
}

func ParseExport(r io.Reader) ([]*ExportRecord, error) {
	var records []*ExportRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (r *ExportRecord) IsEligible() bool {
	return lo.Contains(SavedObjectTypes, r.Type)
}

// SearchSource returns the raw search-source string of the record, if any.
func (r *ExportRecord) SearchSource() (string, bool) {
	if r.Source == nil {
		return "", false
	}
	value, ok := utils.GetValueFromMapByPath(r.Source, searchSourcePath)
	if !ok {
		return "", false
	}
	searchSource, ok := value.(string)
	return searchSource, ok
}

// SetSearchSource replaces the raw search-source string. It reports false
// without mutating the record when the field path does not resolve to an
// existing string value.
func (r *ExportRecord) SetSearchSource(searchSource string) bool {
	if _, ok := r.SearchSource(); !ok {
		return false
	}
	return utils.SetValueFromMapByPath(r.Source, searchSourcePath, searchSource)
}

// SearchSourceIndex parses the embedded search-source fragment and extracts
// the index it references. Malformed or absent fragments report false.
func (r *ExportRecord) SearchSourceIndex() (string, bool) {
	searchSource, ok := r.SearchSource()
	if !ok {
		return "", false
	}

	fragment := make(map[string]interface{})
	if err := json.Unmarshal([]byte(searchSource), &fragment); err != nil {
		return "", false
	}

	index, ok := fragment["index"]
	if !ok {
		return "", false
	}

	indexId := cast.ToString(index)
	return indexId, indexId != ""
}
