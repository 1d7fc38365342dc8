package utils

import (
	"strings"

	"github.com/samber/lo"
)

func GetValueFromMapByPath(data map[string]interface{}, path string) (interface{}, bool) {
	if lo.IsEmpty(path) {
		return nil, false
	}
	keys := strings.Split(path, ".")
	lastKeyIndex := len(keys) - 1
	value := data
	for i, key := range keys {
		v, ok := value[key]
		if !ok {
			return nil, false
		}
		if i == lastKeyIndex {
			return v, true
		}
		value, ok = v.(map[string]interface{})
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func SetValueFromMapByPath(data map[string]interface{}, path string, value interface{}) bool {
	if path == "" {
		return false
	}
	keys := strings.Split(path, ".")
	lastKeyIndex := len(keys) - 1
	for i, key := range keys {
		if i == lastKeyIndex {
			data[key] = value
			return true
		}
		if _, ok := data[key]; !ok {
			data[key] = make(map[string]interface{})
		}
		var ok bool
		data, ok = data[key].(map[string]interface{})
		if !ok {
			return false
		}
	}
	return false
}
