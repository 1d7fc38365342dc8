package utils

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrsEmpty(t *testing.T) {
	errs := &Errs{}
	errs.Add(nil)

	assert.True(t, errs.IsEmpty())
	assert.NoError(t, errs.Ret())
}

func TestErrsAggregates(t *testing.T) {
	errs := &Errs{}
	errs.Add(fmt.Errorf("upsert dashboard/a status 500"))
	errs.Add(nil)
	errs.Add(fmt.Errorf("upsert search/b status 404"))

	assert.Equal(t, 2, errs.Len())
	assert.Error(t, errs.Ret())
	assert.Contains(t, errs.Error(), "dashboard/a")
	assert.Contains(t, errs.Error(), "search/b")
}

func TestErrsIs(t *testing.T) {
	sentinel := fmt.Errorf("sentinel")

	errs := &Errs{}
	errs.Add(errors.Wrap(sentinel, "wrapped"))

	assert.True(t, errs.Is(sentinel))
	assert.False(t, errs.Is(fmt.Errorf("other")))
}
