package service

import (
	"context"

	"github.com/alitto/pond"
	"github.com/bytedance/gopkg/collection/skipmap"
	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana"
	"github.com/nh2/kibana-importer/utils"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Importer uploads one Kibana export into one target instance: optional
// readiness wait, optional default-index remap, then one concurrent upsert
// per eligible record.
type Importer struct {
	ctx     context.Context
	client  *kibana.Client
	records []*kibana.ExportRecord

	parallelism  uint
	wait         bool
	waitStrategy config.WaitStrategy
	remapIndex   bool
}

func NewImporter(ctx context.Context, client *kibana.Client, records []*kibana.ExportRecord) *Importer {
	return &Importer{
		ctx:          ctx,
		client:       client,
		records:      records,
		waitStrategy: config.WaitStrategyHealth,
	}
}

// WithParallelism bounds the upload fan-out; 0 runs every record's request
// concurrently.
func (m *Importer) WithParallelism(parallelism uint) *Importer {
	m.parallelism = parallelism
	return m
}

func (m *Importer) WithWait(wait bool) *Importer {
	m.wait = wait
	return m
}

func (m *Importer) WithWaitStrategy(strategy config.WaitStrategy) *Importer {
	if lo.IsNotEmpty(strategy) {
		m.waitStrategy = strategy
	}
	return m
}

func (m *Importer) WithRemapIndex(remapIndex bool) *Importer {
	m.remapIndex = remapIndex
	return m
}

func (m *Importer) GetCtx() context.Context {
	return m.ctx
}

func (m *Importer) Run() error {
	if m.wait {
		m.client.WaitUntilReady(m.ctx, m.waitStrategy)
	}

	records := m.records
	if m.remapIndex {
		records = m.remapRecords()
	}

	return m.Upload(records)
}

func (m *Importer) remapRecords() []*kibana.ExportRecord {
	oldId, oldOk := DiscoverOldIndex(m.records)
	newId, newOk := DiscoverNewIndex(m.ctx, m.client)
	if !oldOk || !newOk {
		utils.GetTaskLogger(m.ctx).Warnf("index remap skipped, old index found: %t, new index found: %t", oldOk, newOk)
		return m.records
	}

	utils.GetTaskLogger(m.ctx).Infof("remapping default index %s to %s", oldId, newId)
	return lo.Map(m.records, func(record *kibana.ExportRecord, _ int) *kibana.ExportRecord {
		return ApplyMapping(record, oldId, newId)
	})
}

// Upload fans out one upsert per eligible record and joins before returning.
// Records with an unrecognized type are skipped with a warning and cost no
// request. Any failed request fails the whole batch.
func (m *Importer) Upload(records []*kibana.ExportRecord) error {
	var eligible []*kibana.ExportRecord
	for _, record := range records {
		if !record.IsEligible() {
			utils.GetTaskLogger(m.ctx).Warnf("ignoring unknown kibana export type: %s", record.Type)
			continue
		}
		eligible = append(eligible, record)
	}

	parallelism := cast.ToInt(m.parallelism)
	if parallelism <= 0 || parallelism > len(eligible) {
		parallelism = len(eligible)
	}
	if parallelism == 0 {
		return nil
	}

	resultMap := skipmap.NewString()
	pool := pond.New(parallelism, len(eligible))
	for _, record := range eligible {
		record := record
		pool.Submit(func() {
			ctx := utils.SetCtxKeyRecordType(m.ctx, record.Type)
			ctx = utils.SetCtxKeyRecordID(ctx, record.ID)

			utils.GetTaskLogger(ctx).Infof("processing %s: %s", record.Type, record.ID)
			if err := m.client.UpsertSavedObject(ctx, record); err != nil {
				utils.GetTaskLogger(ctx).Errorf("upsert %+v", err)
				resultMap.Store(record.Type+"/"+record.ID, err)
			}
		})
	}
	pool.StopAndWait()

	errs := &utils.Errs{}
	resultMap.Range(func(key string, value interface{}) bool {
		if err, ok := value.(error); ok {
			errs.Add(err)
		}
		return true
	})
	return errs.Ret()
}
