package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/nh2/kibana-importer/pkg/kibana"
	"github.com/nh2/kibana-importer/utils"
)

// DiscoverOldIndex scans records in export order and returns the index id
// referenced by the first record whose search-source fragment parses. A
// single export shares one default index, so the first hit is authoritative.
func DiscoverOldIndex(records []*kibana.ExportRecord) (string, bool) {
	for _, record := range records {
		if indexId, ok := record.SearchSourceIndex(); ok {
			return indexId, true
		}
	}
	return "", false
}

// DiscoverNewIndex asks the target for its current default index. Failures
// degrade to "absent", they never abort the batch.
func DiscoverNewIndex(ctx context.Context, client *kibana.Client) (string, bool) {
	indexId, err := client.GetDefaultIndex(ctx)
	if err != nil {
		utils.GetTaskLogger(ctx).Warnf("discover default index: %+v", err)
		return "", false
	}
	return indexId, indexId != ""
}

// ApplyMapping returns a copy of the record with every literal occurrence of
// oldId replaced by newId inside the raw search-source string. The
// substitution stays at the string level so unrelated formatting inside the
// fragment is untouched. Records without a search source come back as an
// unchanged copy.
func ApplyMapping(record *kibana.ExportRecord, oldId, newId string) *kibana.ExportRecord {
	copied := &kibana.ExportRecord{}
	_ = copier.CopyWithOption(copied, record, copier.Option{DeepCopy: true})

	searchSource, ok := copied.SearchSource()
	if !ok {
		return copied
	}

	copied.SetSearchSource(strings.ReplaceAll(searchSource, oldId, newId))
	return copied
}
