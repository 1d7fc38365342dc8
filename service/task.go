package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana"
	"github.com/nh2/kibana-importer/utils"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Task struct {
	importer *Importer
}

func NewTaskWithRecords(ctx context.Context, taskCfg *config.TaskCfg, client *kibana.Client, records []*kibana.ExportRecord) *Task {
	taskId := uuid.New().String()

	ctx = utils.SetCtxKeyTaskName(ctx, taskCfg.Name)
	ctx = utils.SetCtxKeyTaskID(ctx, taskId)
	ctx = utils.SetCtxKeyTaskAction(ctx, string(taskCfg.TaskAction))
	ctx = utils.SetCtxKeyKibanaName(ctx, taskCfg.Kibana)
	if lo.IsNotEmpty(client) {
		ctx = utils.SetCtxKeyKibanaURL(ctx, client.Address)
	}

	importer := NewImporter(ctx, client, records).
		WithParallelism(taskCfg.Parallelism).
		WithWait(taskCfg.Wait).
		WithWaitStrategy(taskCfg.WaitStrategy).
		WithRemapIndex(taskCfg.RemapIndex)

	return &Task{
		importer: importer,
	}
}

// NewTask loads the export records from the task's file, or from stdin when
// no file is configured.
func NewTask(ctx context.Context, taskCfg *config.TaskCfg, client *kibana.Client) (*Task, error) {
	reader := os.Stdin
	if lo.IsNotEmpty(taskCfg.ExportFile) {
		file, err := os.Open(taskCfg.ExportFile)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer func() {
			_ = file.Close()
		}()
		reader = file
	}

	records, err := kibana.ParseExport(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewTaskWithRecords(ctx, taskCfg, client, records), nil
}

func (t *Task) GetCtx() context.Context {
	return t.importer.GetCtx()
}

func (t *Task) Import() error {
	return t.importer.Run()
}

func (t *Task) Run() error {
	ctx := t.GetCtx()
	taskAction := config.TaskAction(utils.GetCtxKeyTaskAction(ctx))
	switch taskAction {
	case config.TaskActionImport, "":
		if err := t.Import(); err != nil {
			return errors.WithStack(err)
		}
	default:
		taskName := utils.GetCtxKeyTaskName(ctx)
		return fmt.Errorf("%s invalid task action %s", taskName, taskAction)
	}
	return nil
}
