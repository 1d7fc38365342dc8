package service

import (
	"context"
	"fmt"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/pkg/kibana"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type TaskMgr struct {
	usedKibanaMap map[string]*kibana.Client
	taskCfgs      []*config.TaskCfg
}

func NewTaskMgr(cfg *config.Config) (*TaskMgr, error) {
	usedKibanaMap := make(map[string]*kibana.Client)
	for _, task := range cfg.Tasks {
		if lo.IsEmpty(task.Kibana) {
			continue
		}

		if cfg.KibanaConfigs[task.Kibana] == nil {
			return nil, fmt.Errorf("kibana config not found: %s", task.Kibana)
		}

		usedKibanaMap[task.Kibana] = kibana.NewClient(cfg.KibanaConfigs[task.Kibana])
	}

	return &TaskMgr{
		usedKibanaMap: usedKibanaMap,
		taskCfgs:      cfg.Tasks,
	}, nil
}

func (t *TaskMgr) Run(ctx context.Context, taskNames ...string) error {
	for _, taskCfg := range t.taskCfgs {
		if len(taskNames) > 0 && !lo.Contains(taskNames, taskCfg.Name) {
			continue
		}

		task, err := NewTask(ctx, taskCfg, t.usedKibanaMap[taskCfg.Kibana])
		if err != nil {
			return errors.WithStack(err)
		}
		if err := task.Run(); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
