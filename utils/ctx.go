package utils

import (
	"context"

	"github.com/spf13/cast"
)

type CtxKey string

const (
	CtxKeyTaskName   CtxKey = "taskName"
	CtxKeyTaskID     CtxKey = "taskId"
	CtxKeyTaskAction CtxKey = "taskAction"

	CtxKeyKibanaName CtxKey = "kibanaName"
	CtxKeyKibanaURL  CtxKey = "kibanaUrl"

	CtxKeyRecordType CtxKey = "recordType"
	CtxKeyRecordID   CtxKey = "recordId"
)

func GetCtxKeyTaskName(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyTaskName))
}

func SetCtxKeyTaskName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CtxKeyTaskName, name)
}

func GetCtxKeyTaskID(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyTaskID))
}

func SetCtxKeyTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyTaskID, id)
}

func GetCtxKeyTaskAction(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyTaskAction))
}

func SetCtxKeyTaskAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, CtxKeyTaskAction, action)
}

func GetCtxKeyKibanaName(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyKibanaName))
}

func SetCtxKeyKibanaName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CtxKeyKibanaName, name)
}

func GetCtxKeyKibanaURL(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyKibanaURL))
}

func SetCtxKeyKibanaURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, CtxKeyKibanaURL, url)
}

func GetCtxKeyRecordType(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyRecordType))
}

func SetCtxKeyRecordType(ctx context.Context, recordType string) context.Context {
	return context.WithValue(ctx, CtxKeyRecordType, recordType)
}

func GetCtxKeyRecordID(ctx context.Context) string {
	return cast.ToString(ctx.Value(CtxKeyRecordID))
}

func SetCtxKeyRecordID(ctx context.Context, recordID string) context.Context {
	return context.WithValue(ctx, CtxKeyRecordID, recordID)
}
