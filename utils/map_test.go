package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValueFromMapByPath(t *testing.T) {
	data := map[string]interface{}{
		"status": map[string]interface{}{
			"overall": map[string]interface{}{
				"state": "green",
			},
		},
		"version": "6.8.0",
	}

	value, ok := GetValueFromMapByPath(data, "status.overall.state")
	assert.True(t, ok)
	assert.Equal(t, "green", value)

	value, ok = GetValueFromMapByPath(data, "version")
	assert.True(t, ok)
	assert.Equal(t, "6.8.0", value)

	_, ok = GetValueFromMapByPath(data, "status.overall.missing")
	assert.False(t, ok)

	_, ok = GetValueFromMapByPath(data, "version.number")
	assert.False(t, ok)

	_, ok = GetValueFromMapByPath(data, "")
	assert.False(t, ok)
}

func TestSetValueFromMapByPath(t *testing.T) {
	data := map[string]interface{}{
		"meta": map[string]interface{}{
			"searchSourceJSON": `{"index":"foo-*"}`,
		},
	}

	ok := SetValueFromMapByPath(data, "meta.searchSourceJSON", `{"index":"bar-*"}`)
	assert.True(t, ok)

	value, _ := GetValueFromMapByPath(data, "meta.searchSourceJSON")
	assert.Equal(t, `{"index":"bar-*"}`, value)

	ok = SetValueFromMapByPath(data, "", "whatever")
	assert.False(t, ok)

	// Intermediate non-map values must not be overwritten.
	scalar := map[string]interface{}{"leaf": "value"}
	ok = SetValueFromMapByPath(scalar, "leaf.nested", "x")
	assert.False(t, ok)
	assert.Equal(t, "value", scalar["leaf"])
}
