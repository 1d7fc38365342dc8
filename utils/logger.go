package utils

import (
	"context"
	"os"

	"github.com/nh2/kibana-importer/config"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var logger *log.Logger

func init() {
	logger = &log.Logger{
		Out:       os.Stdout,
		Formatter: &log.JSONFormatter{},
		Hooks:     make(log.LevelHooks),
		Level:     log.InfoLevel,
	}
}

func InitLogger(cfg *config.Config) {
	levelMap := map[string]log.Level{
		"debug": log.DebugLevel,
		"info":  log.InfoLevel,
		"warn":  log.WarnLevel,
		"error": log.ErrorLevel,
	}

	level, ok := levelMap[cfg.Level]
	if !ok {
		level = log.InfoLevel
	}
	logger = &log.Logger{
		Out:       os.Stdout,
		Formatter: &log.JSONFormatter{},
		Hooks:     make(log.LevelHooks),
		Level:     level,
	}
}

func GetTaskLogger(ctx context.Context) *log.Entry {
	entry := log.NewEntry(logger)

	ctxKeyMap := map[CtxKey]func(ctx context.Context) string{
		CtxKeyTaskName:   GetCtxKeyTaskName,
		CtxKeyTaskID:     GetCtxKeyTaskID,
		CtxKeyTaskAction: GetCtxKeyTaskAction,
		CtxKeyKibanaName: GetCtxKeyKibanaName,
		CtxKeyKibanaURL:  GetCtxKeyKibanaURL,
		CtxKeyRecordType: GetCtxKeyRecordType,
		CtxKeyRecordID:   GetCtxKeyRecordID,
	}
	for key, ctxFunc := range ctxKeyMap {
		value := ctx.Value(key)
		if lo.IsNotEmpty(value) {
			entry = entry.WithField(string(key), ctxFunc(ctx))
		}
	}
	return entry
}

func GetLogger(ctx context.Context) *log.Entry {
	return log.NewEntry(logger)
}
